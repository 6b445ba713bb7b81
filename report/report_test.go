package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, 8, s.Count)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 4.5, s.Median, 1e-9)
	assert.InDelta(t, 2.0, s.StdDev, 1e-9)

	_, err = Summarize(nil)
	assert.Error(t, err)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, "sun_elevation", Summary{Count: 3, Min: 1, Max: 3, Mean: 2, Median: 2, StdDev: 0.816497})
	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "sun_elevation")
	assert.Contains(t, out, "0.816497")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, "fog", []int{12, 3}, []float64{0.25, 1.5}))
	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "fog")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "0.25")
	assert.Contains(t, out, "2 images")

	buf.Reset()
	require.NoError(t, WriteTable(&buf, "", []int{1}, nil))
	assert.NotContains(t, buf.String(), "0.25")

	assert.Error(t, WriteTable(&buf, "fog", []int{1, 2}, []float64{1}))
}

func TestHistogram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fog.png")
	require.NoError(t, Histogram([]float64{0.1, 0.2, 0.2, 0.9}, "fog", 4, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, Histogram(nil, "fog", 4, path))
	assert.Error(t, Histogram([]float64{1}, "fog", 0, path))
}
