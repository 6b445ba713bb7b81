// Package report summarises a scene field across a set of dataset images.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Summary holds descriptive statistics of a scene field.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	// StdDev is the population standard deviation.
	StdDev float64
}

// Summarize computes descriptive statistics of values.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, errors.New("no values to summarize")
	}
	data := stats.Float64Data(values)
	s := Summary{Count: len(values)}

	var err error
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, err
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// WriteSummary prints s as a two column table.
func WriteSummary(w io.Writer, key string, s Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(key)
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRows([]table.Row{
		{"count", s.Count},
		{"min", formatValue(s.Min)},
		{"max", formatValue(s.Max)},
		{"mean", formatValue(s.Mean)},
		{"median", formatValue(s.Median)},
		{"stddev", formatValue(s.StdDev)},
	})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}

// WriteTable prints one row per image. values may be nil when no scene field
// was selected; otherwise it must be parallel to indices.
func WriteTable(w io.Writer, key string, indices []int, values []float64) error {
	if values != nil && len(values) != len(indices) {
		return errors.Errorf("%d values for %d indices", len(values), len(indices))
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	header := table.Row{"#", "Index"}
	if values != nil {
		header = append(header, key)
	}
	t.AppendHeader(header)
	for i, idx := range indices {
		row := table.Row{strconv.Itoa(i + 1), idx}
		if values != nil {
			row = append(row, formatValue(values[i]))
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d images", len(indices))})
	t.Render()
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Histogram writes a PNG (or SVG/PDF, by extension) histogram of values.
func Histogram(values []float64, key string, bins int, path string) error {
	if len(values) == 0 {
		return errors.New("no values to plot")
	}
	if bins <= 0 {
		return errors.Errorf("histogram needs a positive bin count, got %d", bins)
	}

	p := plot.New()
	p.Title.Text = key
	p.X.Label.Text = key
	p.Y.Label.Text = "images"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return errors.Wrap(err, "build histogram")
	}
	h.FillColor = plotter.DefaultLineStyle.Color
	p.Add(h)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "save histogram %s", path)
	}
	return nil
}
