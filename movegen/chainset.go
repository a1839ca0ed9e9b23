package movegen

import (
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/draughts/move"
)

// ChainSet holds alternative capture chains for the same piece. After every
// merge all the chains it holds have the same length, the longest seen so
// far, and no two chains are equal.
type ChainSet struct {
	chains []move.Chain
}

// NewChainSet returns a set holding a copy of a single chain.
func NewChainSet(chain move.Chain) *ChainSet {
	return &ChainSet{chains: []move.Chain{chain.Copy()}}
}

// MergeAll merges any number of sets into a new one. Nil sets are skipped.
func MergeAll(sets ...*ChainSet) *ChainSet {
	res := &ChainSet{}
	for _, s := range sets {
		if s == nil {
			continue
		}
		res.Merge(s)
	}
	return res
}

// Merge adds the chains of other, then drops duplicates and every chain
// shorter than the longest one.
func (cs *ChainSet) Merge(other *ChainSet) {
	if other == nil {
		return
	}
	for _, ch := range other.chains {
		cs.chains = append(cs.chains, ch.Copy())
	}
	cs.chains = lo.UniqBy(cs.chains, func(ch move.Chain) string {
		return ch.Key()
	})
	longest := cs.LongestLength()
	cs.chains = lo.Filter(cs.chains, func(ch move.Chain, _ int) bool {
		return len(ch) == longest
	})
}

// LongestLength is the length of the longest chain, or 0 for an empty set.
func (cs *ChainSet) LongestLength() int {
	if len(cs.chains) == 0 {
		return 0
	}
	return len(lo.MaxBy(cs.chains, func(a, b move.Chain) bool {
		return len(a) > len(b)
	}))
}

// Prepend puts jump in front of every chain of the set.
func (cs *ChainSet) Prepend(jump move.Capture) {
	cs.chains = lo.Map(cs.chains, func(ch move.Chain, _ int) move.Chain {
		extended := make(move.Chain, 0, len(ch)+1)
		extended = append(extended, jump)
		return append(extended, ch...)
	})
}

func (cs *ChainSet) Len() int {
	return len(cs.chains)
}

// Chains returns copies of the chains in the set, ordered by key.
func (cs *ChainSet) Chains() []move.Chain {
	chains := lo.Map(cs.chains, func(ch move.Chain, _ int) move.Chain {
		return ch.Copy()
	})
	sort.Slice(chains, func(i, j int) bool {
		return chains[i].Key() < chains[j].Key()
	})
	return chains
}
