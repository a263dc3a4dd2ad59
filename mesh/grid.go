package mesh

import (
	"fmt"

	"github.com/notargets/collocation/transcription"
)

// GridIndexer maps (mesh interval, node) pairs to flat grid point indices for a
// uniform collocation degree:
//
//	gridIndex = meshIntervalIndex*degree + nodeIndex,  nodeIndex in [0, degree]
//
// Node 0 is the interval's left endpoint; node degree is its right endpoint,
// shared with node 0 of the next interval. Out of range arguments are
// programming errors and panic.
type GridIndexer struct {
	numIntervals int
	degree       int
}

func NewGridIndexer(numIntervals, degree int) (GridIndexer, error) {
	if numIntervals < 1 || degree < 1 {
		return GridIndexer{}, fmt.Errorf("%w: grid needs >= 1 interval and degree >= 1, got %d intervals, degree %d",
			transcription.ErrInvalidConfiguration, numIntervals, degree)
	}
	return GridIndexer{numIntervals: numIntervals, degree: degree}, nil
}

func (g GridIndexer) Degree() int       { return g.degree }
func (g GridIndexer) NumIntervals() int { return g.numIntervals }

// NumGridPoints is numIntervals*degree + 1
func (g GridIndexer) NumGridPoints() int { return g.numIntervals*g.degree + 1 }

// GridIndex returns the flat index of node within mesh interval imesh
func (g GridIndexer) GridIndex(imesh, node int) int {
	if imesh < 0 || imesh >= g.numIntervals {
		panic(fmt.Sprintf("mesh interval %d out of range [0, %d)", imesh, g.numIntervals))
	}
	if node < 0 || node > g.degree {
		panic(fmt.Sprintf("node %d out of range [0, %d]", node, g.degree))
	}
	return imesh*g.degree + node
}

// IntervalRange returns the half open grid range [start, end) of the degree+1
// points of mesh interval imesh, endpoints included
func (g GridIndexer) IntervalRange(imesh int) (start, end int) {
	start = g.GridIndex(imesh, 0)
	return start, start + g.degree + 1
}

// IsMeshBoundary reports whether grid point igrid lies on a mesh point
func (g GridIndexer) IsMeshBoundary(igrid int) bool {
	g.checkGrid(igrid)
	return igrid%g.degree == 0
}

// Locate returns the mesh interval owning igrid and its node index within it.
// Mesh points resolve to node 0 of the interval they start, except the final
// grid point which is the last node of the last interval.
func (g GridIndexer) Locate(igrid int) (imesh, node int) {
	g.checkGrid(igrid)
	if igrid == g.NumGridPoints()-1 {
		return g.numIntervals - 1, g.degree
	}
	return igrid / g.degree, igrid % g.degree
}

func (g GridIndexer) checkGrid(igrid int) {
	if igrid < 0 || igrid >= g.NumGridPoints() {
		panic(fmt.Sprintf("grid index %d out of range [0, %d)", igrid, g.NumGridPoints()))
	}
}

// GridTimes returns the absolute time of every grid point for collocation
// nodes given on the unit interval (0,1]. A node at exactly 1 coincides with
// the next mesh point and takes its time directly.
func GridTimes(m *Mesh, nodes []float64) []float64 {
	degree := len(nodes)
	numIntervals := m.NumIntervals()
	times := make([]float64, numIntervals*degree+1)
	for imesh := 0; imesh < numIntervals; imesh++ {
		left, right := m.points[imesh], m.points[imesh+1]
		igrid := imesh * degree
		times[igrid] = m.pointTime(imesh)
		for d, tau := range nodes {
			if tau == 1 {
				times[igrid+d+1] = m.pointTime(imesh + 1)
				continue
			}
			times[igrid+d+1] = m.AbsoluteTime(left + tau*(right-left))
		}
	}
	return times
}
