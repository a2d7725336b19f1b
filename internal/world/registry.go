package world

import "github.com/tomz197/skyraid/internal/object"

// Collection is one registry category. Order is insertion order; removal
// splices so entries before the removed index keep their positions, which is
// what back-to-front iteration relies on.
type Collection[T object.Entity] struct {
	items []T
}

// Add appends e.
func (c *Collection[T]) Add(e T) {
	c.items = append(c.items, e)
}

// Len returns the number of entries.
func (c *Collection[T]) Len() int { return len(c.items) }

// At returns the entry at index i.
func (c *Collection[T]) At(i int) T { return c.items[i] }

// RemoveAt removes and returns the entry at index i.
func (c *Collection[T]) RemoveAt(i int) T {
	e := c.items[i]
	copy(c.items[i:], c.items[i+1:])
	var zero T
	c.items[len(c.items)-1] = zero
	c.items = c.items[:len(c.items)-1]
	return e
}

// Remove removes e by identity. It reports false, and does nothing, when e
// is not present.
func (c *Collection[T]) Remove(e T) bool {
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i].Base() == e.Base() {
			c.RemoveAt(i)
			return true
		}
	}
	return false
}

// ForEachAlive calls fn for every entry not marked destroyed.
func (c *Collection[T]) ForEachAlive(fn func(T)) {
	for _, e := range c.items {
		if !e.Base().IsDestroyed() {
			fn(e)
		}
	}
}

// Clear empties the collection and returns what it held.
func (c *Collection[T]) Clear() []T {
	items := c.items
	c.items = nil
	return items
}

// Registry holds every live entity, one collection per category.
type Registry struct {
	Bullets    Collection[*object.Bullet]
	Bombs      Collection[*object.Bomb]
	Enemies    Collection[*object.Enemy]
	Tanks      Collection[*object.Tank]
	EnemyShots Collection[*object.EnemyShot]
	Ground     Collection[*object.Ground]
	Items      Collection[*object.Item]
	Explosions Collection[*object.Explosion]
}

// Len returns the number of live entities across all categories.
func (r *Registry) Len() int {
	return r.Bullets.Len() + r.Bombs.Len() + r.Enemies.Len() + r.Tanks.Len() +
		r.EnemyShots.Len() + r.Ground.Len() + r.Items.Len() + r.Explosions.Len()
}

// admit adds e to c and hands it to the scene.
func admit[T object.Entity](w *World, c *Collection[T], e T) {
	c.Add(e)
	w.scene.Add(e.Handle())
}

// retireAt removes the entry at index i from c and from the scene.
func retireAt[T object.Entity](w *World, c *Collection[T], i int) {
	e := c.RemoveAt(i)
	e.Base().MarkDestroyed()
	w.scene.Remove(e.Handle())
}

// clearAll retires every entity in c.
func clearAll[T object.Entity](w *World, c *Collection[T]) {
	for _, e := range c.Clear() {
		e.Base().MarkDestroyed()
		w.scene.Remove(e.Handle())
	}
}
