package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"barsplit/core/match"
)

type occ = match.Occurrence

func assertDisjoint(t *testing.T, list []occ) {
	t.Helper()
	for i := range list {
		for j := i + 1; j < len(list); j++ {
			assert.Falsef(t, list[i].Overlaps(list[j]), "%v overlaps %v", list[i], list[j])
		}
	}
}

func TestResolveKeepsDisjointInput(t *testing.T) {
	in := []occ{{Start: 0, End: 4, Dist: 2}, {Start: 5, End: 9, Dist: 0}, {Start: 20, End: 30, Dist: 1}}
	assert.Equal(t, in, Resolve(in))
	assert.Equal(t, in, ResolveCover(in))
}

func TestResolveTieKeepsEarlier(t *testing.T) {
	a := occ{Start: 0, End: 9, Dist: 1}
	b := occ{Start: 5, End: 14, Dist: 1}
	assert.Equal(t, []occ{a}, Resolve([]occ{a, b}))
}

func TestResolveLowerDistanceReplacesInPlace(t *testing.T) {
	a := occ{Start: 0, End: 9, Dist: 2}
	b := occ{Start: 5, End: 14, Dist: 0}
	c := occ{Start: 40, End: 49, Dist: 3}
	assert.Equal(t, []occ{b, c}, Resolve([]occ{a, c, b}))
}

func TestResolveBridgingCandidate(t *testing.T) {
	left := occ{Start: 0, End: 4, Dist: 2}
	right := occ{Start: 6, End: 10, Dist: 2}

	bridge := occ{Start: 3, End: 7, Dist: 1}
	assert.Equal(t, []occ{bridge}, Resolve([]occ{left, right, bridge}))

	// Must beat every entry it touches.
	weak := occ{Start: 3, End: 7, Dist: 2}
	assert.Equal(t, []occ{left, right}, Resolve([]occ{left, right, weak}))
}

func TestResolveOrderDependentChain(t *testing.T) {
	in := []occ{{Start: 0, End: 9, Dist: 2}, {Start: 5, End: 14, Dist: 1}, {Start: 12, End: 20, Dist: 0}}
	assert.Equal(t, []occ{{Start: 12, End: 20, Dist: 0}}, Resolve(in))
	assert.Equal(t, []occ{{Start: 0, End: 9, Dist: 2}, {Start: 12, End: 20, Dist: 0}}, ResolveCover(in))
}

func TestResolveProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		n := rng.Intn(12)
		in := make([]occ, n)
		for i := range in {
			s := rng.Intn(60)
			in[i] = occ{Start: s, End: s + rng.Intn(10), Dist: rng.Intn(4)}
		}
		for _, mode := range []ResolveMode{ResolveFirst, ResolveGreedy} {
			out := mode.Apply(in)
			assertDisjoint(t, out)
			assert.Equal(t, out, mode.Apply(out), "idempotent (%s)", mode)

			if mode != ResolveGreedy {
				continue
			}
			// Every dropped occurrence overlaps a survivor at least as good.
			for _, o := range in {
				if containsOcc(out, o) {
					continue
				}
				found := false
				for _, k := range out {
					if k.Overlaps(o) && k.Dist <= o.Dist {
						found = true
						break
					}
				}
				assert.Truef(t, found, "dropped %v without a better overlapping survivor in %v", o, out)
			}
		}
	}
}

func containsOcc(list []occ, o occ) bool {
	for _, x := range list {
		if x == o {
			return true
		}
	}
	return false
}

func TestParseResolveMode(t *testing.T) {
	m, err := ParseResolveMode("greedy")
	assert.NoError(t, err)
	assert.Equal(t, ResolveGreedy, m)

	m, err = ParseResolveMode("")
	assert.NoError(t, err)
	assert.Equal(t, ResolveFirst, m)

	_, err = ParseResolveMode("best")
	assert.Error(t, err)
}

func TestResolveModeApplyDispatch(t *testing.T) {
	in := []occ{{Start: 0, End: 9, Dist: 2}, {Start: 5, End: 14, Dist: 1}, {Start: 12, End: 20, Dist: 0}}
	assert.Equal(t, ResolveCover(in), ResolveGreedy.Apply(in))
	assert.Equal(t, Resolve(in), ResolveFirst.Apply(in))
	assert.Equal(t, "greedy", ResolveGreedy.String())
}
