package movegen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/draughts/move"
)

func TestChainSetMergeKeepsLongest(t *testing.T) {
	is := is.New(t)
	short := move.Chain{{Landing: c(3, 5), Captured: c(4, 4)}}
	long := move.Chain{{Landing: c(7, 5), Captured: c(6, 4)}, {Landing: c(5, 7), Captured: c(6, 6)}}

	cs := NewChainSet(short)
	is.Equal(cs.LongestLength(), 1)
	cs.Merge(NewChainSet(long))
	is.Equal(cs.Len(), 1)
	is.Equal(cs.LongestLength(), 2)
	is.Equal(cs.Chains(), []move.Chain{long})

	// Merging a shorter chain later doesn't bring it back.
	cs.Merge(NewChainSet(short))
	is.Equal(cs.Chains(), []move.Chain{long})
}

func TestChainSetDedupe(t *testing.T) {
	is := is.New(t)
	a := move.Chain{{Landing: c(7, 5), Captured: c(6, 4)}}
	b := move.Chain{{Landing: c(3, 5), Captured: c(4, 4)}}
	cs := MergeAll(NewChainSet(a), NewChainSet(b), NewChainSet(a), nil, NewChainSet(a.Copy()))
	is.Equal(cs.Len(), 2)
	assert.ElementsMatch(t, []move.Chain{a, b}, cs.Chains())
}

func TestChainSetEmpty(t *testing.T) {
	is := is.New(t)
	cs := MergeAll()
	is.Equal(cs.Len(), 0)
	is.Equal(cs.LongestLength(), 0)
	cs = MergeAll(nil, nil)
	is.Equal(cs.LongestLength(), 0)
	cs.Prepend(move.Capture{Landing: c(1, 1), Captured: c(2, 2)})
	is.Equal(cs.Len(), 0)
	cs.Merge(nil)
	is.Equal(cs.Len(), 0)
}

func TestChainSetPrepend(t *testing.T) {
	is := is.New(t)
	first := move.Capture{Landing: c(7, 5), Captured: c(8, 4)}
	cs := MergeAll(
		NewChainSet(move.Chain{{Landing: c(5, 3), Captured: c(6, 4)}}),
		NewChainSet(move.Chain{{Landing: c(9, 7), Captured: c(8, 6)}}),
	)
	cs.Prepend(first)
	assert.ElementsMatch(t, []move.Chain{
		{first, {Landing: c(5, 3), Captured: c(6, 4)}},
		{first, {Landing: c(9, 7), Captured: c(8, 6)}},
	}, cs.Chains())
	is.Equal(cs.LongestLength(), 2)
}

func TestChainSetsShareNoMemory(t *testing.T) {
	is := is.New(t)
	base := move.Chain{{Landing: c(5, 3), Captured: c(6, 4)}}
	cs1 := NewChainSet(base)
	cs2 := MergeAll(cs1)
	cs2.Prepend(move.Capture{Landing: c(7, 5), Captured: c(8, 4)})
	is.Equal(cs1.Chains(), []move.Chain{base})

	base[0].Landing = c(0, 0)
	is.Equal(cs1.Chains()[0][0].Landing, c(5, 3))

	out := cs1.Chains()
	out[0][0].Landing = c(0, 0)
	is.Equal(cs1.Chains()[0][0].Landing, c(5, 3))
}

func TestChainSetDeterministicOrder(t *testing.T) {
	is := is.New(t)
	a := move.Chain{{Landing: c(7, 5), Captured: c(6, 4)}}
	b := move.Chain{{Landing: c(3, 5), Captured: c(4, 4)}}
	cs1 := MergeAll(NewChainSet(a), NewChainSet(b))
	cs2 := MergeAll(NewChainSet(b), NewChainSet(a))
	is.Equal(cs1.Chains(), cs2.Chains())
}
