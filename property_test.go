package triemap

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/armon/go-radix"
	mapset "github.com/deckarep/golang-set/v2"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFuzzer generates short keys over a tiny alphabet so that random keys
// share prefixes often.
func newFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).NilChance(0).NumElements(0, 40).Funcs(
		func(s *string, c fuzz.Continue) {
			b := make([]byte, c.Intn(5))
			for i := range b {
				b[i] = "ab\x00\xff"[c.Intn(4)]
			}
			*s = string(b)
		},
	)
}

type op struct {
	Insert bool
	Key    string
	Value  int
}

func keySet[V any](m *TrieMap[string, V]) mapset.Set[string] {
	return mapset.NewSet(slices.Collect(m.Keys())...)
}

func TestPropertyOperations(t *testing.T) {
	for seed := range int64(50) {
		t.Run(fmt.Sprintf("%v", seed), func(t *testing.T) {
			var ops []op
			newFuzzer(seed).Fuzz(&ops)

			m := New[string, int]()
			model := map[string]int{}
			for _, o := range ops {
				if o.Insert {
					old, replaced := m.Insert(o.Key, o.Value)
					prev, ok := model[o.Key]
					assert.Equal(t, ok, replaced)
					assert.Equal(t, prev, old)
					model[o.Key] = o.Value
				} else {
					v, removed := m.Remove(o.Key)
					prev, ok := model[o.Key]
					assert.Equal(t, ok, removed)
					assert.Equal(t, prev, v)
					delete(model, o.Key)
				}
				require.Equal(t, len(model), m.Len())
				checkInvariants(t, m)
			}
			assert.Equal(t, model, m.ToMap())
			for k, v := range model {
				got, ok := m.Get(k)
				assert.True(t, ok)
				assert.Equal(t, v, got)
			}
		})
	}
}

func TestPropertyOrderMatchesRadix(t *testing.T) {
	for seed := range int64(50) {
		t.Run(fmt.Sprintf("%v", seed), func(t *testing.T) {
			var src map[string]int
			f := newFuzzer(seed)
			f.Fuzz(&src)
			var prefix string
			f.Fuzz(&prefix)

			m := FromMap(src)
			r := radix.New()
			for k, v := range src {
				r.Insert(k, v)
			}
			require.Equal(t, r.Len(), m.Len())

			var expect []KeyValue[string, int]
			r.Walk(func(k string, v interface{}) bool {
				expect = append(expect, KeyValue[string, int]{Key: k, Value: v.(int)})
				return false
			})
			var got []KeyValue[string, int]
			for k, v := range m.All() {
				got = append(got, KeyValue[string, int]{Key: k, Value: v})
			}
			assert.Equal(t, expect, got)

			expect = nil
			r.WalkPrefix(prefix, func(k string, v interface{}) bool {
				expect = append(expect, KeyValue[string, int]{Key: k, Value: v.(int)})
				return false
			})
			assert.Equal(t, expect, m.GetPrefixMatches(prefix))
			assert.Equal(t, len(expect) > 0, m.StartsWith(prefix))

			removed := m.RemovePrefixMatches(prefix)
			assert.Equal(t, expect, removed)
			for k := range m.Keys() {
				assert.False(t, strings.HasPrefix(k, prefix))
			}
			checkInvariants(t, m)
		})
	}
}

func TestPropertySetAlgebra(t *testing.T) {
	for seed := range int64(50) {
		t.Run(fmt.Sprintf("%v", seed), func(t *testing.T) {
			var srcA, srcB map[string]int
			f := newFuzzer(seed)
			f.Fuzz(&srcA)
			f.Fuzz(&srcB)
			a, b := FromMap(srcA), FromMap(srcB)
			sa, sb := keySet(a), keySet(b)

			i := a.Intersect(b)
			assert.True(t, sa.Intersect(sb).Equal(keySet(i)))
			assert.LessOrEqual(t, i.Len(), min(a.Len(), b.Len()))
			for k, v := range i.All() {
				assert.Equal(t, srcA[k], v)
			}

			d := a.Difference(b)
			assert.True(t, sa.Difference(sb).Equal(keySet(d)))

			u := a.Union(b)
			assert.True(t, sa.Union(sb).Equal(keySet(u)))
			assert.LessOrEqual(t, u.Len(), a.Len()+b.Len())
			for k, v := range u.All() {
				if bv, ok := srcB[k]; ok {
					assert.Equal(t, bv, v)
				} else {
					assert.Equal(t, srcA[k], v)
				}
			}

			s := a.SymmetricDifference(b)
			assert.True(t, sa.SymmetricDifference(sb).Equal(keySet(s)))

			assert.Equal(t, sa.IsSubset(sb), a.IsSubsetOf(b))
			assert.Equal(t, sa.IsProperSubset(sb), a.IsProperSubsetOf(b))

			for _, r := range []*TrieMap[string, int]{i, d, u, s} {
				checkInvariants(t, r)
			}
			assert.Equal(t, srcA, a.ToMap())
			assert.Equal(t, srcB, b.ToMap())
		})
	}
}
