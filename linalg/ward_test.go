// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/stretchr/testify/require"
)

func TestESS_ByHand(t *testing.T) {
	t.Parallel()

	// mean=[2,3], diffs=[[-1,-1],[1,1]], squares sum=4, /2 = 2.
	got, err := MustMatrix(t, [][]float64{{1, 2}, {3, 4}}).ESS()
	require.NoError(t, err)
	require.Equal(t, 2.0, got)
}

func TestESS_MatchesComposition(t *testing.T) {
	t.Parallel()

	m := RandomMatrix(t, 12, 4, 99)
	mean, err := m.Mean()
	require.NoError(t, err)
	centered, err := m.Sub(mean)
	require.NoError(t, err)
	want := centered.Pow(2).Sum() / float64(m.Rows())

	got, err := m.ESS()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestESS_SingleRowIsZero(t *testing.T) {
	t.Parallel()

	got, err := MustMatrix(t, [][]float64{{7, -3, 2}}).ESS()
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestESS_Empty(t *testing.T) {
	t.Parallel()

	_, err := MustMatrix(t, nil).ESS()
	require.ErrorIs(t, err, linalg.ErrEmptyInput)
}

func TestStack(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]float64{{1, 2}})
	b := MustMatrix(t, [][]float64{{3, 4}, {5, 6}})
	ab, err := linalg.Stack(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, ab.ToRows())

	same, err := linalg.Stack(linalg.Matrix{}, b)
	require.NoError(t, err)
	require.Equal(t, b.ToRows(), same.ToRows())

	_, err = linalg.Stack(a, MustMatrix(t, [][]float64{{1}}))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestMergeCost(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]float64{{0, 0}, {0, 2}})
	b := MustMatrix(t, [][]float64{{4, 0}, {4, 2}})

	got, err := linalg.MergeCost(a, b)
	require.NoError(t, err)

	ab, err := linalg.Stack(a, b)
	require.NoError(t, err)
	essAB, err := ab.ESS()
	require.NoError(t, err)
	essA, err := a.ESS()
	require.NoError(t, err)
	essB, err := b.ESS()
	require.NoError(t, err)
	nA, nB := float64(a.Rows()), float64(b.Rows())
	require.InDelta(t, (nA+nB)*essAB-nA*essA-nB*essB, got, epsTight)

	// ESS(a)=ESS(b)=1, ESS(a∪b)=5: 4*5 - 2*1 - 2*1 = 16 = 2*2/4 * ‖(0,1)-(4,1)‖².
	require.InDelta(t, 16.0, got, epsTight)
}

func TestMergeCost_IdenticalClustersCostZero(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]float64{{0}, {1}})
	got, err := linalg.MergeCost(a, a.Clone())
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestMergeCost_NonNegativeAndMatchesUndividedSums(t *testing.T) {
	t.Parallel()

	var seed int64
	for seed = 1; seed <= 20; seed++ {
		a := RandomMatrix(t, 1+int(seed%5), 3, seed)
		b := RandomMatrix(t, 1+int(seed%3), 3, seed+100)

		got, err := linalg.MergeCost(a, b)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, 0.0, "seed %d", seed)

		ab, err := linalg.Stack(a, b)
		require.NoError(t, err)
		essAB, err := ab.ESS()
		require.NoError(t, err)
		essA, err := a.ESS()
		require.NoError(t, err)
		essB, err := b.ESS()
		require.NoError(t, err)
		nA, nB := float64(a.Rows()), float64(b.Rows())
		require.InDelta(t, (nA+nB)*essAB-nA*essA-nB*essB, got, 1e-9, "seed %d", seed)
	}
}

func TestMergeCost_GrowsWithSeparation(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]float64{{0, 0}, {0, 1}})
	near := MustMatrix(t, [][]float64{{1, 0}, {1, 1}})
	far := MustMatrix(t, [][]float64{{5, 0}, {5, 1}})

	costNear, err := linalg.MergeCost(a, near)
	require.NoError(t, err)
	costFar, err := linalg.MergeCost(a, far)
	require.NoError(t, err)
	require.Less(t, costNear, costFar)
}

func TestMergeCost_Errors(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]float64{{0, 0}})
	_, err := linalg.MergeCost(a, linalg.Matrix{})
	require.ErrorIs(t, err, linalg.ErrEmptyInput)

	_, err = linalg.MergeCost(a, MustMatrix(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}
