package object

// GroundType is the decoration drawn for a ground element.
type GroundType string

// Ground variants.
const (
	GroundPatch GroundType = "ground"
	GroundTree  GroundType = "tree"
)

// Ground is scrolling scenery. It never collides.
type Ground struct {
	Body
	Type GroundType
}

// NewGround creates a ground element of type t at (x, y).
func NewGround(id ID, t GroundType, x, y float64) *Ground {
	return &Ground{Body: Body{ID: id, X: x, Y: y}, Type: t}
}

// Handle returns the element's presentation handle.
func (g *Ground) Handle() Handle {
	c := ColorGround
	if g.Type == GroundTree {
		c = ColorTree
	}
	return Handle{ID: g.ID, Kind: KindGround, Variant: string(g.Type), Color: c, Scale: 1}
}

// ItemType is the effect granted by a pickup.
type ItemType string

// Item types.
const (
	ItemSize  ItemType = "size"
	ItemCount ItemType = "count"
	ItemSpeed ItemType = "speed"
	ItemHeart ItemType = "heart"
)

// ItemTypes is the spawn table for items.
var ItemTypes = []ItemType{ItemSize, ItemCount, ItemSpeed, ItemHeart}

// Item is a collectible power-up.
type Item struct {
	Body
	Type     ItemType
	Rotation float64 // Decorative spin, radians
}

// NewItem creates an item of type t at (x, y).
func NewItem(id ID, t ItemType, x, y float64) *Item {
	return &Item{Body: Body{ID: id, X: x, Y: y}, Type: t}
}

// Handle returns the item's presentation handle.
func (i *Item) Handle() Handle {
	c := ColorItem
	scale := 1.0
	if i.Type == ItemHeart {
		c = ColorHeart
		scale = 1.2
	}
	return Handle{ID: i.ID, Kind: KindItem, Variant: string(i.Type), Color: c, Scale: scale}
}
