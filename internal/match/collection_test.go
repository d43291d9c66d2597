package match

import (
	"reflect"
	"testing"
)

func TestCollection_InsertionOrder(t *testing.T) {
	c := NewCollection()
	c.Insert("b", sig(0.2))
	c.Insert("a", sig(0.1))
	c.Insert("c", sig(0.3))

	if got, want := c.Names(), []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names: got %v, want %v", got, want)
	}
}

func TestCollection_OverwriteKeepsPosition(t *testing.T) {
	c := NewCollection()
	c.Insert("a", sig(0.1))
	c.Insert("b", sig(0.2))
	c.Insert("a", sig(0.9))

	if got, want := c.Names(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names after overwrite: got %v, want %v", got, want)
	}
	got, ok := c.Get("a")
	if !ok || got[0] != 0.9 {
		t.Errorf("Get(a): got %v, want overwritten value 0.9", got)
	}
	if c.Len() != 2 {
		t.Errorf("Len: got %d, want 2", c.Len())
	}
}

func TestCollection_NamesIsACopy(t *testing.T) {
	c := NewCollection()
	c.Insert("a", sig(0.1))

	names := c.Names()
	names[0] = "mutated"

	if got := c.Names()[0]; got != "a" {
		t.Errorf("internal order mutated through Names: got %q", got)
	}
}

func TestMatchSet_SetAndLookup(t *testing.T) {
	m := NewMatchSet()
	m.Set("a", "b")

	if got, ok := m.Lookup("a"); !ok || got != "b" {
		t.Errorf("Lookup(a): got %q/%v", got, ok)
	}
	if got, ok := m.Lookup("b"); !ok || got != "a" {
		t.Errorf("Lookup(b): got %q/%v", got, ok)
	}
	if _, ok := m.Lookup("c"); ok {
		t.Error("Lookup(c) reported a match")
	}
}

func TestMatchSet_AllIsACopy(t *testing.T) {
	m := NewMatchSet()
	m.Set("a", "b")

	all := m.All()
	all["a"] = "z"

	if got, _ := m.Lookup("a"); got != "b" {
		t.Errorf("internal state mutated through All: got %q", got)
	}
}

func TestMatchSetFrom_Verbatim(t *testing.T) {
	// One-sided entries from the greedy resolve policy must survive a
	// restore untouched.
	pairs := map[string]string{"a": "b", "b": "c", "c": "b"}
	m := NewMatchSetFrom(pairs)

	if !reflect.DeepEqual(m.All(), pairs) {
		t.Errorf("restored set: got %v, want %v", m.All(), pairs)
	}
}
