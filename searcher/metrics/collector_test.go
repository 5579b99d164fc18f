package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	c.Start("alphabeta")
	c.AddNode()
	c.AddNode()
	c.AddNode()
	c.SetDepth(2)
	c.SetAborted(true)
	metric := c.Complete()

	require.Equal(t, "alphabeta", metric.Method)
	require.Equal(t, 3, metric.Nodes)
	require.Equal(t, 2, metric.Depth)
	require.True(t, metric.Aborted)
	require.GreaterOrEqual(t, metric.Duration.Nanoseconds(), int64(0))
}

func TestCollectorResetsBetweenSearches(t *testing.T) {
	c := NewCollector()

	c.Start("minimax")
	c.AddNode()
	c.SetDepth(4)
	c.SetAborted(true)
	c.Complete()

	c.Start("minimax")
	metric := c.Complete()

	require.Zero(t, metric.Nodes)
	require.Zero(t, metric.Depth)
	require.False(t, metric.Aborted)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()

	c.Start("minimax")
	c.AddNode()
	c.SetDepth(3)

	require.Equal(t, SearchMetric{}, c.Complete())
}
