// Package mesh describes the partition of the time horizon into mesh intervals
// and the arithmetic that maps (interval, node) pairs onto the flat grid.
package mesh

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/collocation/transcription"
)

// Mesh is an immutable partition of [0,1] scaled onto an absolute time horizon.
// Mesh refinement builds a new Mesh rather than changing an existing one.
type Mesh struct {
	points      []float64 // Normalized, strictly increasing, points[0]=0, points[last]=1
	initialTime float64
	finalTime   float64
}

// NewMesh validates and copies the normalized mesh points.
func NewMesh(points []float64, initialTime, finalTime float64) (*Mesh, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: mesh needs at least 2 points, got %d",
			transcription.ErrInvalidConfiguration, len(points))
	}
	if !isFinite(initialTime) || !isFinite(finalTime) || finalTime <= initialTime {
		return nil, fmt.Errorf("%w: time horizon [%g, %g] must be finite with final > initial",
			transcription.ErrInvalidConfiguration, initialTime, finalTime)
	}
	for i, p := range points {
		if !isFinite(p) {
			return nil, fmt.Errorf("%w: mesh point %d is %g",
				transcription.ErrInvalidConfiguration, i, p)
		}
	}
	last := len(points) - 1
	if points[0] != 0 || points[last] != 1 {
		return nil, fmt.Errorf("%w: mesh must start at 0 and end at 1, got [%g, ..., %g]",
			transcription.ErrInvalidConfiguration, points[0], points[last])
	}
	m := &Mesh{
		points:      append([]float64(nil), points...),
		initialTime: initialTime,
		finalTime:   finalTime,
	}
	for i := 0; i < last; i++ {
		switch {
		case points[i+1] < points[i]:
			return nil, fmt.Errorf("%w: %w: mesh points are unsorted, interval %d [%g, %g] has negative duration",
				transcription.ErrInvalidMesh, transcription.ErrInvalidConfiguration, i, points[i], points[i+1])
		case points[i+1] == points[i] || m.pointTime(i+1) <= m.pointTime(i):
			// the absolute times are what defects and grid times see
			return nil, fmt.Errorf("%w: mesh interval %d [%g, %g] has non-positive duration (absolute [%g, %g])",
				transcription.ErrInvalidMesh, i, points[i], points[i+1], m.pointTime(i), m.pointTime(i+1))
		}
	}
	return m, nil
}

// NewUniformMesh builds numIntervals mesh intervals of equal duration
func NewUniformMesh(numIntervals int, initialTime, finalTime float64) (*Mesh, error) {
	if numIntervals < 1 {
		return nil, fmt.Errorf("%w: need at least 1 mesh interval, got %d",
			transcription.ErrInvalidConfiguration, numIntervals)
	}
	points := make([]float64, numIntervals+1)
	for i := range points {
		points[i] = float64(i) / float64(numIntervals)
	}
	points[numIntervals] = 1
	return NewMesh(points, initialTime, finalTime)
}

func (m *Mesh) NumPoints() int       { return len(m.points) }
func (m *Mesh) NumIntervals() int    { return len(m.points) - 1 }
func (m *Mesh) InitialTime() float64 { return m.initialTime }
func (m *Mesh) FinalTime() float64   { return m.finalTime }
func (m *Mesh) Duration() float64    { return m.finalTime - m.initialTime }

// Points returns a copy of the normalized mesh points
func (m *Mesh) Points() []float64 { return append([]float64(nil), m.points...) }

func (m *Mesh) Point(i int) float64 { return m.points[i] }

// AbsoluteTime maps a normalized time in [0,1] onto the horizon
func (m *Mesh) AbsoluteTime(tau float64) float64 {
	return m.initialTime + m.Duration()*tau
}

// IntervalDuration is the absolute duration of mesh interval i
func (m *Mesh) IntervalDuration(i int) float64 {
	return m.pointTime(i+1) - m.pointTime(i)
}

// pointTime is the absolute time of mesh point i; the last point is exactly
// the final time
func (m *Mesh) pointTime(i int) float64 {
	if i == len(m.points)-1 {
		return m.finalTime
	}
	return m.AbsoluteTime(m.points[i])
}

func (m *Mesh) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mesh: %d intervals on [%g, %g]\n",
		m.NumIntervals(), m.initialTime, m.finalTime))
	sb.WriteString(fmt.Sprintf("  Points: %v\n", m.points))
	return sb.String()
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
