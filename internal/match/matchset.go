package match

// MatchSet records the best-found pairing between fragment names. A
// successful comparison writes both directions, so Lookup(a) == b implies
// Lookup(b) == a immediately after the write. Entries are only ever
// replaced by later comparisons, never removed.
type MatchSet struct {
	pairs map[string]string
}

// NewMatchSet returns an empty match set.
func NewMatchSet() *MatchSet {
	return &MatchSet{pairs: make(map[string]string)}
}

// NewMatchSetFrom returns a match set holding a copy of pairs. Used when
// restoring persisted state; the entries are taken verbatim.
func NewMatchSetFrom(pairs map[string]string) *MatchSet {
	m := NewMatchSet()
	for k, v := range pairs {
		m.pairs[k] = v
	}
	return m
}

// Set records a bidirectional match between a and b, overwriting any prior
// entry stored under either name.
func (m *MatchSet) Set(a, b string) {
	m.pairs[a] = b
	m.pairs[b] = a
}

// Lookup returns the recorded match for name.
func (m *MatchSet) Lookup(name string) (string, bool) {
	v, ok := m.pairs[name]
	return v, ok
}

// Has reports whether name has a recorded match.
func (m *MatchSet) Has(name string) bool {
	_, ok := m.pairs[name]
	return ok
}

// Len returns the number of entries (two per fully recorded pair).
func (m *MatchSet) Len() int { return len(m.pairs) }

// All returns a copy of the underlying name-to-name entries.
func (m *MatchSet) All() map[string]string {
	out := make(map[string]string, len(m.pairs))
	for k, v := range m.pairs {
		out[k] = v
	}
	return out
}
