package profiler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/synscapes/logging"
)

func TestRecord(t *testing.T) {
	p := NewTimings()
	p.Record("save", 3*time.Millisecond)
	p.Record("save", 1*time.Millisecond)
	p.Record("load", 2*time.Millisecond)

	snap := p.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "load", snap[0].Name)

	save := snap[1]
	assert.Equal(t, int64(2), save.Count)
	assert.Equal(t, time.Millisecond, save.MinTime)
	assert.Equal(t, 3*time.Millisecond, save.MaxTime)
	assert.Equal(t, 2*time.Millisecond, save.Average())
	assert.Zero(t, TimeTracker{}.Average())
}

func TestStartOperationConcurrent(t *testing.T) {
	p := NewTimings()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.StartOperation("colorize")()
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(8), p.Snapshot()[0].Count)
}

func TestReport(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	p := NewTimings()
	p.Record("load", time.Millisecond)
	p.Report(logger)
	assert.Equal(t, 1, logs.FilterMessage("operation").Len())
}
