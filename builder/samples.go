// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/onepass/core"
)

// SampleID selects one of the canned graphs.
type SampleID int

// Canned graphs. Any other number selects SamplePair.
const (
	SamplePair        SampleID = 0 // two direct edges out of the source
	SampleLoop        SampleID = 1 // loop back to the source through c
	SampleWideLoop    SampleID = 2 // heavier weights, a longer loop and a side branch
	SampleEquidistant SampleID = 3 // unit weights; d has a direct edge back to a
)

var sampleEdges = map[SampleID][]core.Edge{
	SampleLoop: {
		{From: "a", To: "b", Weight: 12},
		{From: "b", To: "c", Weight: 3},
		{From: "b", To: "d", Weight: 5},
		{From: "d", To: "c", Weight: 1},
		{From: "c", To: "a", Weight: 2},
	},
	SampleWideLoop: {
		{From: "a", To: "b", Weight: 3},
		{From: "b", To: "c", Weight: 44},
		{From: "c", To: "d", Weight: 1},
		{From: "d", To: "d1", Weight: 2},
		{From: "d1", To: "d2", Weight: 15},
		{From: "d2", To: "a", Weight: 1},
		{From: "c", To: "c1", Weight: 11},
		{From: "c1", To: "c2", Weight: 2},
	},
	SampleEquidistant: {
		{From: "a", To: "b", Weight: 1},
		{From: "a", To: "c", Weight: 1},
		{From: "b", To: "d", Weight: 1},
		{From: "b", To: "e", Weight: 1},
		{From: "c", To: "f", Weight: 1},
		{From: "c", To: "g", Weight: 1},
		{From: "d", To: "h", Weight: 1},
		{From: "d", To: "i", Weight: 1},
		{From: "d", To: "a", Weight: 1},
	},
	SamplePair: {
		{From: "a", To: "b", Weight: 1},
		{From: "a", To: "c", Weight: 2},
	},
}

// sampleSizes are the vertex-count hints used for each canned graph.
var sampleSizes = map[SampleID]int{
	SamplePair:        3,
	SampleLoop:        4,
	SampleWideLoop:    8,
	SampleEquidistant: 10,
}

// Normalize maps unknown ids onto SamplePair.
func (id SampleID) Normalize() SampleID {
	if _, ok := sampleEdges[id]; ok {
		return id
	}

	return SamplePair
}

// Samples lists the canned ids in ascending order.
func Samples() []SampleID {
	return []SampleID{SamplePair, SampleLoop, SampleWideLoop, SampleEquidistant}
}

// SampleEdges returns a copy of the edge list behind id.
func SampleEdges(id SampleID) []core.Edge {
	src := sampleEdges[id.Normalize()]
	out := make([]core.Edge, len(src))
	copy(out, src)

	return out
}

// Sample builds the canned graph for id.
func Sample(id SampleID) (*core.Graph, error) {
	id = id.Normalize()

	return BuildGraph(
		[]core.GraphOption{core.WithExpectedVertices(sampleSizes[id])},
		nil,
		Edges(sampleEdges[id]...),
	)
}

// ParseSample reads a menu selector such as "2". Surrounding space is
// ignored; anything that is not an integer yields ErrUnknownSample.
func ParseSample(s string) (SampleID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSample, s)
	}

	return SampleID(n).Normalize(), nil
}
