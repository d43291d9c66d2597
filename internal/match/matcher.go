package match

import "tearmatch/internal/signature"

// Matcher owns a signature collection and the match set built over it.
//
// Each Matcher constructed with NewMatcher gets fresh, private state;
// nothing is shared between instances unless a caller passes the same
// collection and match set to NewMatcherWith explicitly.
type Matcher struct {
	collection *Collection
	matches    *MatchSet
}

// NewMatcher returns a Matcher with an empty collection and match set.
func NewMatcher() *Matcher {
	return &Matcher{collection: NewCollection(), matches: NewMatchSet()}
}

// NewMatcherWith returns a Matcher operating on caller-supplied state.
// Nil arguments are replaced by fresh empty values.
func NewMatcherWith(c *Collection, m *MatchSet) *Matcher {
	if c == nil {
		c = NewCollection()
	}
	if m == nil {
		m = NewMatchSet()
	}
	return &Matcher{collection: c, matches: m}
}

// Collection returns the matcher's signature collection.
func (m *Matcher) Collection() *Collection { return m.collection }

// Matches returns the matcher's match set.
func (m *Matcher) Matches() *MatchSet { return m.matches }

// Build inserts sig under name without any comparison. Use it to populate
// the collection before the first Compare or resolve pass. An existing
// entry under name is overwritten.
func (m *Matcher) Build(name string, sig signature.Signature) {
	m.collection.Insert(name, sig)
}

// Compare finds the nearest signature to sig among the collection's
// current entries and records the bidirectional match.
//
// The candidate pool is the collection as it stands before this call;
// an entry already stored under name is excluded, so a signature never
// matches itself. Ties at equal distance go to the first-inserted
// candidate. When insert is true, sig is stored under name after the
// comparison.
//
// The second return value is false when the collection held no candidates
// to compare against. That is a valid outcome, not an error, and the
// match set is left untouched. A length mismatch between sig and any
// stored signature returns a *DimensionMismatchError.
func (m *Matcher) Compare(name string, sig signature.Signature, insert bool) (string, bool, error) {
	best, found, err := m.nearest(sig, name)
	if err != nil {
		return "", false, err
	}
	if found {
		m.matches.Set(name, best)
	}
	if insert {
		m.collection.Insert(name, sig)
	}
	return best, found, nil
}

// ResolveAll computes best matches across the whole collection, preserving
// the legacy greedy policy: names are visited in insertion order, a name
// that already has a match set entry is skipped as the outer key, and each
// remaining name is paired with its nearest neighbor among all other
// entries (ties to first-inserted).
//
// Because skipped names remain legal targets, this does not produce a
// one-to-one pairing: a name can end up as the recorded partner of a later
// key without being revisited itself. ResolveAllMutual is the strict
// alternative. Collections with fewer than two entries are left untouched.
func (m *Matcher) ResolveAll() error {
	for _, k1 := range m.collection.order {
		if m.matches.Has(k1) {
			continue
		}
		sig := m.collection.sigs[k1]
		best, found, err := m.nearest(sig, k1)
		if err != nil {
			return err
		}
		if found {
			m.matches.Set(k1, best)
		}
	}
	return nil
}

// ResolveAllMutual records a pair only when the two names are each other's
// nearest neighbor, leaving everything else unmatched instead of chaining
// one-sided pairings. Names that already have a match set entry keep it
// and are not revisited.
func (m *Matcher) ResolveAllMutual() error {
	nearest := make(map[string]string, m.collection.Len())
	for _, k := range m.collection.order {
		best, found, err := m.nearest(m.collection.sigs[k], k)
		if err != nil {
			return err
		}
		if found {
			nearest[k] = best
		}
	}
	for _, k1 := range m.collection.order {
		if m.matches.Has(k1) {
			continue
		}
		k2, ok := nearest[k1]
		if !ok || m.matches.Has(k2) {
			continue
		}
		if nearest[k2] == k1 {
			m.matches.Set(k1, k2)
		}
	}
	return nil
}

// nearest scans the collection in insertion order for the entry closest to
// sig, excluding the entry stored under exclude. found is false when no
// candidate exists. Strict less-than keeps the first-seen candidate on
// ties.
func (m *Matcher) nearest(sig signature.Signature, exclude string) (best string, found bool, err error) {
	bestDist := 0.0
	for _, name := range m.collection.order {
		if name == exclude {
			continue
		}
		d, derr := sig.Distance(m.collection.sigs[name])
		if derr != nil {
			return "", false, derr
		}
		if !found || d < bestDist {
			best = name
			bestDist = d
			found = true
		}
	}
	return best, found, nil
}
