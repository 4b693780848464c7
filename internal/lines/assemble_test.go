package lines

import (
	"math/rand/v2"
	"testing"

	"github.com/finnegancarroll/graphdrift/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleDefaultTopology(t *testing.T) {
	s, err := scene.FromTopology("default")
	require.NoError(t, err)

	out := Assemble(s.Points, s.Edges)

	assert.Len(t, out, 116)
	assert.Equal(t, FloatsPerEdge*len(s.Edges), len(out))
	assert.Equal(t, 58, Vertices(out))
}

func TestAssembleOrder(t *testing.T) {
	points := []scene.Point{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}}
	edges := []scene.Edge{{A: 2, B: 0}, {A: 0, B: 1}, {A: 1, B: 2}}

	out := Assemble(points, edges)

	assert.Equal(t, []float32{
		0.5, 0.6, 0.1, 0.2,
		0.1, 0.2, 0.3, 0.4,
		0.3, 0.4, 0.5, 0.6,
	}, out)
}

func TestAssembleIsPure(t *testing.T) {
	s, _ := scene.FromTopology("default")
	s.Randomize(rand.New(rand.NewPCG(5, 5)))
	before := s.Clone()

	first := Assemble(s.Points, s.Edges)
	second := Assemble(s.Points, s.Edges)

	assert.Equal(t, first, second)
	assert.Equal(t, before, s)
}

func TestAssembleNoEdges(t *testing.T) {
	out := Assemble([]scene.Point{{0, 0}}, nil)
	assert.Empty(t, out)
}

func TestBufferReusesStorage(t *testing.T) {
	s, _ := scene.FromTopology("default")
	buf := NewBuffer(len(s.Edges))

	first := buf.Fill(s)
	s.Points[0] = scene.Point{0.25, 0.25}
	second := buf.Fill(s)

	require.Len(t, second, 116)
	assert.Same(t, &first[0], &second[0])
	assert.Equal(t, float32(0.25), second[0])
}
