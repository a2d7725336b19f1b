package object

// Bullet is a player shot travelling up.
type Bullet struct {
	Body
	Size int // Bullet size at the moment it was fired
}

// NewBullet creates a bullet at (x, y).
func NewBullet(id ID, x, y float64, size int) *Bullet {
	return &Bullet{Body: Body{ID: id, X: x, Y: y}, Size: size}
}

// Handle returns the bullet's presentation handle.
func (b *Bullet) Handle() Handle {
	return Handle{ID: b.ID, Kind: KindBullet, Color: ColorBullet, Scale: float64(b.Size)}
}

// Bomb is a player bomb travelling up. Only tanks react to it.
type Bomb struct {
	Body
}

// NewBomb creates a bomb at (x, y).
func NewBomb(id ID, x, y float64) *Bomb {
	return &Bomb{Body: Body{ID: id, X: x, Y: y}}
}

// Handle returns the bomb's presentation handle.
func (b *Bomb) Handle() Handle {
	return Handle{ID: b.ID, Kind: KindBomb, Color: ColorBomb, Scale: 1}
}

// EnemyShot is a tank shell travelling down.
type EnemyShot struct {
	Body
}

// NewEnemyShot creates a shell at (x, y).
func NewEnemyShot(id ID, x, y float64) *EnemyShot {
	return &EnemyShot{Body: Body{ID: id, X: x, Y: y}}
}

// Handle returns the shell's presentation handle.
func (s *EnemyShot) Handle() Handle {
	return Handle{ID: s.ID, Kind: KindEnemyShot, Color: ColorEnemyShot, Scale: 1}
}
