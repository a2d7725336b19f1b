package world

import (
	"testing"

	"github.com/tomz197/skyraid/internal/object"
)

func TestCollectionRemoveAtKeepsEarlierIndices(t *testing.T) {
	var c Collection[*object.Bomb]
	for i := range 5 {
		c.Add(object.NewBomb(object.ID(i+1), 0, 0))
	}

	// Back-to-front removal of every even id.
	for i := c.Len() - 1; i >= 0; i-- {
		if c.At(i).ID%2 == 0 {
			c.RemoveAt(i)
		}
	}

	want := []object.ID{1, 3, 5}
	if c.Len() != len(want) {
		t.Fatalf("len = %d, want %d", c.Len(), len(want))
	}
	for i, id := range want {
		if c.At(i).ID != id {
			t.Fatalf("At(%d) = %d, want %d", i, c.At(i).ID, id)
		}
	}
}

func TestCollectionRemoveIsIdempotent(t *testing.T) {
	var c Collection[*object.Bomb]
	a := object.NewBomb(1, 0, 0)
	b := object.NewBomb(2, 0, 0)
	c.Add(a)
	c.Add(b)

	if !c.Remove(a) {
		t.Fatal("first remove should succeed")
	}
	if c.Remove(a) {
		t.Fatal("second remove should be a no-op")
	}
	if c.Len() != 1 || c.At(0) != b {
		t.Fatal("wrong entry removed")
	}
}

func TestCollectionForEachAliveSkipsDestroyed(t *testing.T) {
	var c Collection[*object.Item]
	a := object.NewItem(1, object.ItemHeart, 0, 0)
	b := object.NewItem(2, object.ItemSize, 0, 0)
	c.Add(a)
	c.Add(b)
	a.MarkDestroyed()

	var seen []object.ID
	c.ForEachAlive(func(it *object.Item) { seen = append(seen, it.ID) })
	if len(seen) != 1 || seen[0] != 2 {
		t.Fatalf("seen = %v, want [2]", seen)
	}
}

func TestCollectionClear(t *testing.T) {
	var c Collection[*object.Ground]
	c.Add(object.NewGround(1, object.GroundTree, 0, 0))
	if got := c.Clear(); len(got) != 1 || c.Len() != 0 {
		t.Fatalf("Clear returned %d, left %d", len(got), c.Len())
	}
}

// Property: five "count" pickups leave the volley at its cap.
func TestArsenalSaturates(t *testing.T) {
	a := DefaultConfig().Arsenal
	for range 5 {
		a.Apply(object.ItemCount)
	}
	if a.BulletCount != 3 {
		t.Fatalf("BulletCount = %d, want 3", a.BulletCount)
	}
	for range 10 {
		a.Apply(object.ItemSize)
		a.Apply(object.ItemSpeed)
	}
	if a.BulletSize != 6 || a.SpeedMultiplier != 2.5 {
		t.Fatalf("size=%d speed=%v, want 6 and 2.5", a.BulletSize, a.SpeedMultiplier)
	}
	before := a
	a.Apply(object.ItemHeart)
	if a != before {
		t.Fatal("heart must not change the arsenal")
	}
}
