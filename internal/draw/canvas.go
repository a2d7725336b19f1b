package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tomz197/skyraid/internal/object"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Callers draw in world units (origin at the center, y up); the canvas scales
// them to terminal pixels.
type Canvas struct {
	termWidth      int      // Actual terminal columns
	termHeight     int      // Actual terminal rows
	subPixelHeight int      // termHeight * 2
	pixels         []uint32 // Flat slice: [y * termWidth + x]; 0 is empty, else color | setBit

	// Scaling from world to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
	numBuf          [20]byte
}

const setBit = 1 << 24

// NewCanvas creates a canvas for the given terminal dimensions showing a
// world area of logicalWidth x logicalHeight.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// world area.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]uint32, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.rescale()
}

// SetView changes the world area shown.
func (c *Canvas) SetView(vp object.Viewport) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	c.logicalWidth = vp.Width
	c.logicalHeight = vp.Height
	c.rescale()
}

func (c *Canvas) rescale() {
	if c.logicalWidth > 0 && c.logicalHeight > 0 {
		c.scaleX = float64(c.termWidth) / c.logicalWidth
		c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
	}
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// toPixel converts world coordinates to pixel coordinates.
func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	return (x + c.logicalWidth/2) * c.scaleX, (c.logicalHeight/2 - y) * c.scaleY
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col object.Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = uint32(col)&0xFFFFFF | setBit
	}
}

// At returns the color at pixel (x, y) and whether the pixel is set.
func (c *Canvas) At(x, y int) (object.Color, bool) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return 0, false
	}
	v := c.pixels[y*c.termWidth+x]
	return object.Color(v & 0xFFFFFF), v&setBit != 0
}

// Plot sets the pixel under world point (x, y).
func (c *Canvas) Plot(x, y float64, col object.Color) {
	px, py := c.toPixel(x, y)
	c.setPixel(int(math.Floor(px)), int(math.Floor(py)), col)
}

// FillCircle fills a world-space circle. The center pixel is always set so
// small things stay visible.
func (c *Canvas) FillCircle(x, y, r float64, col object.Color) {
	c.Plot(x, y, col)
	if r <= 0 {
		return
	}
	cx, cy := c.toPixel(x, y)
	rx, ry := r*c.scaleX, r*c.scaleY
	for py := int(math.Floor(cy - ry)); py <= int(math.Ceil(cy+ry)); py++ {
		for px := int(math.Floor(cx - rx)); px <= int(math.Ceil(cx+rx)); px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			dy := (float64(py) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				c.setPixel(px, py, col)
			}
		}
	}
}

// DrawLine draws a world-space line using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, col object.Color) {
	fx1, fy1 := c.toPixel(p1.X, p1.Y)
	fx2, fy2 := c.toPixel(p2.X, p2.Y)
	x1, y1 := int(math.Floor(fx1)), int(math.Floor(fy1))
	x2, y2 := int(math.Floor(fx2)), int(math.Floor(fy2))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a world-space polygon.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, col object.Color, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, col)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// fillPolygon fills a polygon using scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point, col object.Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		x, y := c.toPixel(p.X, p.Y)
		scaled[i] = Point{X: x, Y: y}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i] - 0.5)); x <= int(math.Floor(intersections[i+1]-0.5)); x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// Render outputs the canvas to the writer using colored half-block characters.
// Empty cells are skipped, so the screen must be cleared first.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if top == 0 && bottom == 0 {
				continue
			}

			c.renderBuf.WriteString("\033[")
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1), 10))
			c.renderBuf.WriteByte(';')
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1), 10))
			c.renderBuf.WriteByte('H')

			switch {
			case top != 0 && bottom != 0 && top == bottom:
				c.renderBuf.WriteString(Fg(object.Color(top & 0xFFFFFF)))
				c.renderBuf.WriteRune(BlockFull)
			case top != 0 && bottom != 0:
				c.renderBuf.WriteString(Fg(object.Color(top & 0xFFFFFF)))
				c.renderBuf.WriteString(Bg(object.Color(bottom & 0xFFFFFF)))
				c.renderBuf.WriteRune(BlockUpperHalf)
			case top != 0:
				c.renderBuf.WriteString(Fg(object.Color(top & 0xFFFFFF)))
				c.renderBuf.WriteRune(BlockUpperHalf)
			default:
				c.renderBuf.WriteString(Fg(object.Color(bottom & 0xFFFFFF)))
				c.renderBuf.WriteRune(BlockLowerHalf)
			}
			c.renderBuf.WriteString(ColorReset)
		}
	}

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// WorldToTerminal converts world coordinates to a 1-based terminal position.
func (c *Canvas) WorldToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return int(math.Floor(px)) + 1, int(math.Floor(py))/2 + 1
}
