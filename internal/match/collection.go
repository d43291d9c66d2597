package match

import "tearmatch/internal/signature"

// Collection is an insertion-ordered mapping from fragment name to
// signature. Re-inserting an existing name overwrites its signature but
// keeps its original position in the order, so tie-break behavior does not
// shift under updates.
type Collection struct {
	order []string
	sigs  map[string]signature.Signature
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{sigs: make(map[string]signature.Signature)}
}

// Insert adds or overwrites the signature stored under name.
func (c *Collection) Insert(name string, sig signature.Signature) {
	if _, ok := c.sigs[name]; !ok {
		c.order = append(c.order, name)
	}
	c.sigs[name] = sig
}

// Get returns the signature stored under name.
func (c *Collection) Get(name string) (signature.Signature, bool) {
	sig, ok := c.sigs[name]
	return sig, ok
}

// Len returns the number of stored signatures.
func (c *Collection) Len() int { return len(c.order) }

// Names returns the stored names in insertion order. The slice is a copy.
func (c *Collection) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
