package match

import (
	"errors"
	"testing"

	"tearmatch/internal/signature"
)

func sig(vals ...float64) signature.Signature {
	return signature.Signature(vals)
}

func TestCompare_EmptyCollection(t *testing.T) {
	m := NewMatcher()

	best, found, err := m.Compare("probe", sig(0.1, 0.2), false)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if found {
		t.Errorf("empty collection reported a match: %q", best)
	}
	if m.Matches().Len() != 0 {
		t.Error("empty comparison mutated the match set")
	}
	if m.Collection().Len() != 0 {
		t.Error("insert=false added the probe to the collection")
	}
}

func TestCompare_EmptyCollectionInserts(t *testing.T) {
	m := NewMatcher()

	_, found, err := m.Compare("probe", sig(0.1), true)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if found {
		t.Error("empty collection reported a match")
	}
	if _, ok := m.Collection().Get("probe"); !ok {
		t.Error("insert=true did not add the probe despite the empty collection")
	}
}

func TestCompare_NeverMatchesItself(t *testing.T) {
	m := NewMatcher()
	m.Build("a", sig(0.5, -0.5))

	// Comparing under an existing name excludes that entry, so an
	// identical signature cannot match itself.
	best, found, err := m.Compare("a", sig(0.5, -0.5), true)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if found {
		t.Errorf("signature matched itself: %q", best)
	}
}

func TestCompare_NearestWins(t *testing.T) {
	m := NewMatcher()
	m.Build("far", sig(1, 1))
	m.Build("near", sig(0.1, 0.1))

	best, found, err := m.Compare("probe", sig(0, 0), true)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if !found || best != "near" {
		t.Errorf("got %q (found=%v), want near", best, found)
	}
}

func TestCompare_TieBreakByInsertionOrder(t *testing.T) {
	// Two candidates at exactly equal distance from the probe: the
	// first-inserted one must win, in either insertion order.
	probe := sig(0, 0)
	left := sig(-1, 0)
	right := sig(1, 0)

	m := NewMatcher()
	m.Build("left", left)
	m.Build("right", right)
	best, _, err := m.Compare("probe", probe, false)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if best != "left" {
		t.Errorf("tie-break: got %q, want left (first inserted)", best)
	}

	m = NewMatcher()
	m.Build("right", right)
	m.Build("left", left)
	best, _, err = m.Compare("probe", probe, false)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if best != "right" {
		t.Errorf("tie-break: got %q, want right (first inserted)", best)
	}
}

func TestCompare_RecordsSymmetricMatch(t *testing.T) {
	m := NewMatcher()
	m.Build("a", sig(0.1))

	_, _, err := m.Compare("b", sig(0.11), true)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if got, _ := m.Matches().Lookup("b"); got != "a" {
		t.Errorf("b -> %q, want a", got)
	}
	if got, _ := m.Matches().Lookup("a"); got != "b" {
		t.Errorf("a -> %q, want b", got)
	}
}

func TestCompare_OverwritesPriorMatch(t *testing.T) {
	m := NewMatcher()
	m.Build("a", sig(0.1))
	if _, _, err := m.Compare("b", sig(0.11), true); err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	// c is nearer to a than b was; a's entry flips to c. b keeps its old
	// entry pointing at a; overwrite only touches the two names
	// involved.
	if _, _, err := m.Compare("c", sig(0.101), true); err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if got, _ := m.Matches().Lookup("a"); got != "c" {
		t.Errorf("a -> %q, want c", got)
	}
	if got, _ := m.Matches().Lookup("c"); got != "a" {
		t.Errorf("c -> %q, want a", got)
	}
	if got, _ := m.Matches().Lookup("b"); got != "a" {
		t.Errorf("b -> %q, want a (stale entries are not scrubbed)", got)
	}
}

func TestCompare_DimensionMismatch(t *testing.T) {
	m := NewMatcher()
	m.Build("a", sig(0.1, 0.2))

	_, _, err := m.Compare("probe", sig(0.1, 0.2, 0.3), true)
	var mismatch *signature.DimensionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %v, want *DimensionMismatchError", err)
	}
}

func TestBuild_NoComparison(t *testing.T) {
	m := NewMatcher()
	m.Build("a", sig(0.1))
	m.Build("b", sig(0.2))

	if m.Matches().Len() != 0 {
		t.Error("Build mutated the match set")
	}
	if m.Collection().Len() != 2 {
		t.Errorf("collection size: got %d, want 2", m.Collection().Len())
	}

	m.Build("a", sig(0.9))
	got, _ := m.Collection().Get("a")
	if got[0] != 0.9 {
		t.Error("Build did not overwrite the existing entry")
	}
}

func TestResolveAll_GreedySkip(t *testing.T) {
	// a=0, b=1, c=3 on a line. a pairs with b; b is then skipped as an
	// outer key, but c still picks b as its nearest neighbor, overwriting
	// b's entry and leaving a's one-sided.
	m := NewMatcher()
	m.Build("a", sig(0))
	m.Build("b", sig(1))
	m.Build("c", sig(3))

	if err := m.ResolveAll(); err != nil {
		t.Fatalf("ResolveAll failed: %v", err)
	}

	want := map[string]string{"a": "b", "b": "c", "c": "b"}
	got := m.Matches().All()
	if len(got) != len(want) {
		t.Fatalf("match set: got %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s -> %q, want %q", k, got[k], v)
		}
	}
}

func TestResolveAll_FewerThanTwoEntries(t *testing.T) {
	m := NewMatcher()
	if err := m.ResolveAll(); err != nil {
		t.Fatalf("ResolveAll on empty collection failed: %v", err)
	}
	if m.Matches().Len() != 0 {
		t.Error("empty collection produced matches")
	}

	m.Build("only", sig(0.5))
	if err := m.ResolveAll(); err != nil {
		t.Fatalf("ResolveAll on single entry failed: %v", err)
	}
	if m.Matches().Len() != 0 {
		t.Error("single entry produced a match")
	}
}

func TestResolveAll_RespectsExistingMatches(t *testing.T) {
	m := NewMatcher()
	m.Build("a", sig(0))
	m.Build("b", sig(1))
	m.Matches().Set("a", "b")

	if err := m.ResolveAll(); err != nil {
		t.Fatalf("ResolveAll failed: %v", err)
	}
	// Both names already matched; nothing to do.
	if m.Matches().Len() != 2 {
		t.Errorf("match set size: got %d, want 2", m.Matches().Len())
	}
}

func TestResolveAllMutual(t *testing.T) {
	// Same line as the greedy test: only a and b are each other's nearest
	// neighbor, so c stays unmatched instead of being chained onto b.
	m := NewMatcher()
	m.Build("a", sig(0))
	m.Build("b", sig(1))
	m.Build("c", sig(3))

	if err := m.ResolveAllMutual(); err != nil {
		t.Fatalf("ResolveAllMutual failed: %v", err)
	}

	if got, _ := m.Matches().Lookup("a"); got != "b" {
		t.Errorf("a -> %q, want b", got)
	}
	if got, _ := m.Matches().Lookup("b"); got != "a" {
		t.Errorf("b -> %q, want a", got)
	}
	if m.Matches().Has("c") {
		t.Error("c gained a match despite having no mutual partner")
	}
}

func TestCompare_MirroredSignatures(t *testing.T) {
	// Two signatures that are mirror images of each other, and a probe
	// nearly identical to the first: the probe must match the first.
	w := 16
	a := make(signature.Signature, w)
	b := make(signature.Signature, w)
	probe := make(signature.Signature, w)
	for i := 0; i < w; i++ {
		v := 0.1
		if i%2 == 1 {
			v = -0.1
		}
		a[i] = v
		b[i] = -v
		probe[i] = v + 0.001
	}

	m := NewMatcher()
	m.Build("first", a)
	m.Build("second", b)

	best, found, err := m.Compare("probe", probe, true)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if !found || best != "first" {
		t.Errorf("got %q (found=%v), want first", best, found)
	}
	if got, _ := m.Matches().Lookup("first"); got != "probe" {
		t.Errorf("first -> %q, want probe", got)
	}
}
