package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathAddPose(t *testing.T) {
	p := NewPath()
	assert.Equal(t, 0, p.Len())

	p.AddPose(Point{0, 0, 1}, 0)
	p.AddPose(Point{1, 0, 1}, 2)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []float64{0, 2}, p.Times)
}

func TestPathLengths(t *testing.T) {
	p := NewPath()
	p.AddPose(Point{0, 0, 1}, 0)
	p.AddPose(Point{1, 0, 1}, 0)
	p.AddPose(Point{1, 2, 1}, 0)
	p.AddPose(Point{1, 2, 4}, 0)

	lengths := p.Lengths()
	assert.InDeltaSlice(t, []float64{0, 1, 3, 6}, lengths, EPS)
	assert.InDelta(t, 6.0, p.Length(), EPS)
}

func TestPathLengthEmpty(t *testing.T) {
	p := NewPath()
	assert.InDelta(t, 0.0, p.Length(), EPS)
	assert.Empty(t, p.Lengths())

	p.AddPose(Point{3, 3, 3}, 0)
	assert.InDelta(t, 0.0, p.Length(), EPS)
}
