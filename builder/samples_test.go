// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onepass/builder"
)

func TestSample_EdgeCounts(t *testing.T) {
	tests := []struct {
		id       builder.SampleID
		edges    int
		vertices int
	}{
		{builder.SamplePair, 2, 3},
		{builder.SampleLoop, 5, 4},
		{builder.SampleWideLoop, 8, 8},
		{builder.SampleEquidistant, 9, 9},
	}
	for _, tt := range tests {
		g, err := builder.Sample(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.edges, g.EdgeCount(), "sample %d", tt.id)
		assert.Equal(t, tt.vertices, g.VertexCount(), "sample %d", tt.id)

		src, err := g.Source()
		require.NoError(t, err)
		assert.Equal(t, "a", src)
	}
}

func TestSample_UnknownFallsBackToPair(t *testing.T) {
	g, err := builder.Sample(42)
	require.NoError(t, err)
	assert.Equal(t, builder.SampleEdges(builder.SamplePair), g.Edges())
}

func TestParseSample(t *testing.T) {
	id, err := builder.ParseSample(" 3\n")
	require.NoError(t, err)
	assert.Equal(t, builder.SampleEquidistant, id)

	id, err = builder.ParseSample("9")
	require.NoError(t, err)
	assert.Equal(t, builder.SamplePair, id)

	_, err = builder.ParseSample("test")
	assert.ErrorIs(t, err, builder.ErrUnknownSample)
}

func TestSampleEdges_IsCopy(t *testing.T) {
	e := builder.SampleEdges(builder.SampleLoop)
	e[0].Weight = 0
	assert.Equal(t, int64(12), builder.SampleEdges(builder.SampleLoop)[0].Weight)
}
