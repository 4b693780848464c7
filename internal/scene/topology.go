package scene

import (
	"fmt"
	"sort"
)

// Topology is a named, fixed vertex layout and its edges.
type Topology struct {
	Name   string
	Points []Point
	Edges  []Edge
}

// DefaultTopology is the 12-vertex, 29-edge graph drawn behind the site.
// Vertices 3 and 5 both start at the origin and separate once seeded.
var DefaultTopology = Topology{
	Name: "default",
	Points: []Point{
		{-0.85, -0.85},
		{0.85, -0.85},
		{0, 0.85},
		{0, 0},
		{0, 0.5},
		{0, 0},
		{0.5, -0.5},
		{0, -0.5},
		{-0.5, -0.5},
		{-0.2, 0.2},
		{0.2, 0.2},
		{0, -0.2},
	},
	Edges: []Edge{
		{0, 2}, {0, 3}, {0, 8}, {0, 7},
		{1, 7}, {1, 6}, {1, 5}, {1, 2},
		{2, 5}, {2, 4}, {2, 3},
		{3, 8}, {3, 9}, {3, 4},
		{4, 9}, {4, 10}, {4, 5},
		{5, 10}, {5, 6},
		{6, 7}, {6, 11}, {6, 10},
		{7, 11}, {7, 8},
		{8, 9}, {8, 11},
		{9, 10}, {9, 11},
		{10, 11},
	},
}

var topologies = map[string]Topology{
	"default": DefaultTopology,
	"triangle": {
		Name:   "triangle",
		Points: []Point{{-0.6, -0.5}, {0.6, -0.5}, {0, 0.6}},
		Edges:  []Edge{{0, 1}, {1, 2}, {2, 0}},
	},
	"lattice": latticeTopology(3, 0.6),
}

// latticeTopology builds an n×n grid spanning [-extent, extent] with
// horizontal and vertical edges.
func latticeTopology(n int, extent float32) Topology {
	t := Topology{Name: "lattice"}
	step := 2 * extent / float32(n-1)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			t.Points = append(t.Points, Point{-extent + float32(col)*step, -extent + float32(row)*step})
			idx := row*n + col
			if col+1 < n {
				t.Edges = append(t.Edges, Edge{idx, idx + 1})
			}
			if row+1 < n {
				t.Edges = append(t.Edges, Edge{idx, idx + n})
			}
		}
	}
	return t
}

func GetTopology(name string) (Topology, error) {
	t, ok := topologies[name]
	if !ok {
		return Topology{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTopology, name, ListTopologies())
	}
	return t, nil
}

func ListTopologies() []string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromTopology builds a scene with zero velocities from a registered layout.
func FromTopology(name string) (*Scene, error) {
	t, err := GetTopology(name)
	if err != nil {
		return nil, err
	}
	return New(t.Points, t.Edges)
}
