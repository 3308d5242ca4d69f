package report

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

func TestCollector_CountsAndFilters(t *testing.T) {
	c := NewCollector()
	c.Report(mxf.CodeUnknownLocalTag, mxf.SeverityWarning, "tag 0x8001 not in primer")
	c.Report(mxf.CodeUnexpectedFieldSize, mxf.SeverityNonFatal, "TrackID is 2 bytes")
	c.Report(mxf.CodeInvalidPrefaceCount, mxf.SeverityFatal, "found 2 preface sets")
	c.Report(mxf.CodeUnknownLocalTag, mxf.SeverityWarning, "tag 0x8002 not in primer")

	assert.Equal(t, 4, c.Count())
	assert.Len(t, c.BySeverity(mxf.SeverityWarning), 2)
	assert.Len(t, c.Filter(mxf.SeverityWarning, 1, 4), 1)
	assert.Len(t, c.Filter(mxf.SeverityWarning, -5, 100), 2, "bounds are clamped")
	assert.Empty(t, c.Filter(mxf.SeverityWarning, 3, 1))
	assert.Equal(t, 2, c.CountAtLeast(mxf.SeverityNonFatal))
	assert.True(t, c.HasFatal())

	r := c.Range(1, 3)
	require.Len(t, r, 2)
	assert.Equal(t, mxf.CodeUnexpectedFieldSize, r[0].Code)
}

func TestCollector_Err(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.Err())

	c.Report(mxf.CodeUnknownLocalTag, mxf.SeverityWarning, "ignored")
	require.NoError(t, c.Err(), "warnings do not make an error")

	c.Report(mxf.CodeUnexpectedFieldSize, mxf.SeverityNonFatal, "bad size")
	c.Report(mxf.CodeCycleDetected, mxf.SeverityFatal, "A -> B -> A")

	err := c.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, mxf.ErrUnexpectedFieldSize)
	assert.ErrorIs(t, err, mxf.ErrCycleDetected)
	assert.Contains(t, err.Error(), "A -> B -> A")
}

func TestCollector_EntriesIsACopy(t *testing.T) {
	c := NewCollector()
	c.Report(mxf.CodeIO, mxf.SeverityFatal, "short read")
	entries := c.Entries()
	entries[0].Message = "changed"
	assert.Equal(t, "short read", c.Entries()[0].Message)
}

func TestCollector_ConcurrentSafety(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Report(mxf.CodeUnknownLocalTag, mxf.SeverityWarning, "w")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, c.Count())
}

func TestRoute(t *testing.T) {
	t.Run("with sink", func(t *testing.T) {
		c := NewCollector()
		err := Route(c, mxf.CodeInvalidPartitionField, mxf.SeverityNonFatal, "ThisPartition is %d", -1)
		require.NoError(t, err)
		require.Equal(t, 1, c.Count())
		assert.Equal(t, "ThisPartition is -1", c.Entries()[0].Message)
	})

	t.Run("without sink", func(t *testing.T) {
		err := Route(nil, mxf.CodeInvalidPartitionField, mxf.SeverityNonFatal, "ThisPartition is %d", -1)
		require.Error(t, err)
		assert.ErrorIs(t, err, mxf.ErrInvalidPartitionField)
		assert.Contains(t, err.Error(), "NON_FATAL INVALID_PARTITION_FIELD")
	})

	t.Run("warning without sink is dropped", func(t *testing.T) {
		assert.NoError(t, Route(nil, mxf.CodeUnknownLocalTag, mxf.SeverityWarning, "tag"))
	})
}
