// Package object defines the simulated entities: their payloads, motion and
// the stable handles the presentation layer knows them by.
package object

import (
	"github.com/tomz197/skyraid/internal/input"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// ID identifies an entity for its whole lifetime. IDs are never reused
// within a world.
type ID uint64

// Kind is the registry category of an entity.
type Kind uint8

// Entity categories.
const (
	KindBullet Kind = iota
	KindBomb
	KindEnemy
	KindTank
	KindEnemyShot
	KindGround
	KindItem
	KindExplosion
)

var kindNames = [...]string{
	KindBullet:    "bullet",
	KindBomb:      "bomb",
	KindEnemy:     "enemy",
	KindTank:      "tank",
	KindEnemyShot: "enemy-shot",
	KindGround:    "ground",
	KindItem:      "item",
	KindExplosion: "explosion",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Color is a 24-bit RGB value (0xRRGGBB).
type Color uint32

// RGB splits the color into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Palette used by the entities.
const (
	ColorBullet    Color = 0xFF6B6B
	ColorBomb      Color = 0x333333
	ColorTank      Color = 0x556B2F
	ColorEnemyShot Color = 0xFF4400
	ColorGround    Color = 0x8B7355
	ColorTree      Color = 0x228B22
	ColorItem      Color = 0xFFD700
	ColorHeart     Color = 0xFF69B4
	ColorPlayer    Color = 0x87CEEB
	ColorFlash     Color = 0xFFFF00
	ColorTankBlast Color = 0xFF6600
	ColorShotBlast Color = 0xFF0000
	ColorSpark     Color = 0xFFD700
	ColorEmber     Color = 0xFFA500
	ColorDefaultFX Color = 0xFF4500
)

// Handle is the presentation layer's view of an entity. It is the stable
// link between a registry entry and its scene node: the scene keys nodes by
// ID and never sees the entity itself.
type Handle struct {
	ID      ID
	Kind    Kind
	Variant string  // Sub-type, e.g. enemy or item type
	Color   Color   // Base color
	Scale   float64 // Visual size multiplier
}

// Body is the state every entity shares.
type Body struct {
	ID        ID
	X, Y      float64
	destroyed bool
}

// Base returns the shared body. Embedding types inherit it.
func (b *Body) Base() *Body { return b }

// Position returns the body's coordinates.
func (b *Body) Position() (x, y float64) { return b.X, b.Y }

// MarkDestroyed marks the entity for removal. Calling it twice is harmless.
func (b *Body) MarkDestroyed() { b.destroyed = true }

// IsDestroyed returns true if the entity is marked for destruction.
func (b *Body) IsDestroyed() bool { return b.destroyed }

// Entity is anything that lives in a registry collection.
type Entity interface {
	Base() *Body
	Handle() Handle
}

// Rand is the uniform random source the entities draw from.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Viewport is the visible area in world units. The origin is the center,
// y grows upward.
type Viewport struct {
	Width, Height float64
}

// HalfWidth returns half the viewport width.
func (v Viewport) HalfWidth() float64 { return v.Width / 2 }

// HalfHeight returns half the viewport height.
func (v Viewport) HalfHeight() float64 { return v.Height / 2 }

// Top is the y coordinate where descending entities appear.
func (v Viewport) Top() float64 { return v.Height / 2 }

// Bottom is the lower edge.
func (v Viewport) Bottom() float64 { return -v.Height / 2 }

// SpawnX maps r in [0,1) to an x inside the viewport, keeping margin
// units away from both edges.
func (v Viewport) SpawnX(r, margin float64) float64 {
	return r*(v.Width-2*margin) - (v.Width/2 - margin)
}
