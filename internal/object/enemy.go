package object

import "math"

// EnemyType selects an enemy's stats and motion pattern.
type EnemyType string

// Enemy types.
const (
	EnemyBasic  EnemyType = "basic"
	EnemyFast   EnemyType = "fast"
	EnemyTank   EnemyType = "tank"
	EnemyBomber EnemyType = "bomber"
	EnemySnake  EnemyType = "snake"
)

// EnemyStats are the per-type base values.
type EnemyStats struct {
	Speed  float64 // Descent per tick
	Health int
	Score  int
	Size   float64
	Color  Color
}

var enemyStats = map[EnemyType]EnemyStats{
	EnemyBasic:  {Speed: 3, Health: 1, Score: 100, Size: 1.0, Color: 0xFF6B6B},
	EnemyFast:   {Speed: 5, Health: 1, Score: 150, Size: 0.8, Color: 0xFFB347},
	EnemyTank:   {Speed: 2, Health: 3, Score: 300, Size: 1.3, Color: 0x98FB98},
	EnemyBomber: {Speed: 2.5, Health: 2, Score: 200, Size: 1.1, Color: 0xDDA0DD},
	EnemySnake:  {Speed: 2, Health: 1, Score: 100, Size: 1.0, Color: 0x228B22},
}

// SpawnableEnemies is the default spawn table. Snake is constructible but
// only spawned when explicitly enabled.
var SpawnableEnemies = []EnemyType{EnemyBasic, EnemyFast, EnemyTank, EnemyBomber}

// StatsFor returns the base stats of t. Unknown types get basic stats.
func StatsFor(t EnemyType) EnemyStats {
	if s, ok := enemyStats[t]; ok {
		return s
	}
	return enemyStats[EnemyBasic]
}

// snakePhaseStep is added to a snake's phase every tick.
const snakePhaseStep = 0.1

// Enemy is a descending hostile craft.
type Enemy struct {
	Body
	Type          EnemyType
	Health        int
	Speed         float64
	ScoreValue    int
	Size          float64
	MovementPhase float64 // Snake only; advances per tick, not per millisecond
}

// NewEnemy creates an enemy of type t at (x, y) with the type's base stats.
func NewEnemy(id ID, t EnemyType, x, y float64) *Enemy {
	s := StatsFor(t)
	return &Enemy{
		Body:       Body{ID: id, X: x, Y: y},
		Type:       t,
		Health:     s.Health,
		Speed:      s.Speed,
		ScoreValue: s.Score,
		Size:       s.Size,
	}
}

// Handle returns the enemy's presentation handle.
func (e *Enemy) Handle() Handle {
	return Handle{
		ID:      e.ID,
		Kind:    KindEnemy,
		Variant: string(e.Type),
		Color:   StatsFor(e.Type).Color,
		Scale:   e.Size,
	}
}

// Color is the type color, also used for the enemy's explosion.
func (e *Enemy) Color() Color {
	return StatsFor(e.Type).Color
}

// Advance moves the enemy one tick: down by its speed, then sideways by its
// type's pattern. ms is the wall clock in milliseconds.
func (e *Enemy) Advance(ms float64) {
	e.Y -= e.Speed

	switch e.Type {
	case EnemyBasic:
		e.X += math.Sin(ms*0.003+e.Y*0.1) * 1
	case EnemyFast:
		e.X += math.Sin(ms*0.006+e.Y*0.2) * 2
	case EnemyTank:
		e.X += math.Sin(ms*0.001) * 0.5
	case EnemyBomber:
		e.X += math.Sin(ms*0.002+e.Y*0.05) * 3
	case EnemySnake:
		e.MovementPhase += snakePhaseStep
		e.X += math.Sin(e.MovementPhase) * 5
	}
}

// Hit takes one point of health and reports whether the enemy is dead.
func (e *Enemy) Hit() (killed bool) {
	e.Health--
	return e.Health <= 0
}
