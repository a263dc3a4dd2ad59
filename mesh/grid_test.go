package mesh

import (
	"fmt"
	"testing"

	"github.com/notargets/collocation/transcription"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridIndexerCounts(t *testing.T) {
	for m := 1; m <= 6; m++ {
		for d := 1; d <= 6; d++ {
			t.Run(fmt.Sprintf("m=%d,d=%d", m, d), func(t *testing.T) {
				g, err := NewGridIndexer(m, d)
				require.NoError(t, err)
				assert.Equal(t, m*d+1, g.NumGridPoints())

				var boundaries int
				for igrid := 0; igrid < g.NumGridPoints(); igrid++ {
					if g.IsMeshBoundary(igrid) {
						boundaries++
					}
				}
				assert.Equal(t, m+1, boundaries)
			})
		}
	}
}

func TestGridIndexerIndexing(t *testing.T) {
	g, err := NewGridIndexer(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, g.GridIndex(0, 0))
	assert.Equal(t, 4, g.GridIndex(0, 4))
	assert.Equal(t, 4, g.GridIndex(1, 0))
	assert.Equal(t, 11, g.GridIndex(2, 3))

	start, end := g.IntervalRange(1)
	assert.Equal(t, 4, start)
	assert.Equal(t, 9, end)

	// every interior grid index is owned by exactly one interval
	owners := make(map[int]int)
	for imesh := 0; imesh < g.NumIntervals(); imesh++ {
		for node := 1; node < g.Degree(); node++ {
			owners[g.GridIndex(imesh, node)]++
		}
	}
	for igrid, n := range owners {
		assert.Equal(t, 1, n, "grid %d", igrid)
		assert.False(t, g.IsMeshBoundary(igrid))
	}

	imesh, node := g.Locate(6)
	assert.Equal(t, 1, imesh)
	assert.Equal(t, 2, node)
	imesh, node = g.Locate(8)
	assert.Equal(t, 2, imesh)
	assert.Equal(t, 0, node)
	imesh, node = g.Locate(12)
	assert.Equal(t, 2, imesh)
	assert.Equal(t, 4, node)
}

func TestGridIndexerPanics(t *testing.T) {
	g, err := NewGridIndexer(2, 3)
	require.NoError(t, err)
	assert.Panics(t, func() { g.GridIndex(2, 0) })
	assert.Panics(t, func() { g.GridIndex(0, 4) })
	assert.Panics(t, func() { g.GridIndex(-1, 0) })
	assert.Panics(t, func() { g.IsMeshBoundary(7) })
	assert.Panics(t, func() { g.Locate(-1) })
}

func TestNewGridIndexerErrors(t *testing.T) {
	_, err := NewGridIndexer(0, 3)
	assert.ErrorIs(t, err, transcription.ErrInvalidConfiguration)
	_, err = NewGridIndexer(2, 0)
	assert.ErrorIs(t, err, transcription.ErrInvalidConfiguration)
}

func TestGridTimes(t *testing.T) {
	m, err := NewMesh([]float64{0, 0.5, 1}, 0, 2)
	require.NoError(t, err)
	times := GridTimes(m, []float64{0.25, 0.5, 1})
	expected := []float64{0, 0.25, 0.5, 1, 1.25, 1.5, 2}
	assert.InDeltaSlice(t, expected, times, 1e-15)
	// shared mesh points are bit identical
	assert.Equal(t, 1.0, times[3])
	assert.Equal(t, 2.0, times[6])
}
