package cli

import (
	"math"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/nvr-ai/synscapes/images"
	"github.com/nvr-ai/synscapes/metadata"
	"github.com/nvr-ai/synscapes/report"
)

// ViewAction selects images by scene metadata and lists, tiles or displays them.
func ViewAction(c *cli.Context) error {
	e, err := newEnv(c, true)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck

	p := metadata.Pipeline{
		AnalyzeNum: c.Int(flagAnalyzeNum),
		DisplayNum: c.Int(flagDisplayNum),
		SortKey:    c.String(flagSort),
		FilterKey:  c.String(flagFilter),
		FilterMin:  math.Inf(-1),
		FilterMax:  math.Inf(1),
	}
	if c.IsSet(flagMin) {
		p.FilterMin = c.Float64(flagMin)
	}
	if c.IsSet(flagMax) {
		p.FilterMax = c.Float64(flagMax)
	}
	if p.FilterKey == "" && (c.IsSet(flagMin) || c.IsSet(flagMax)) {
		return errors.New("--min and --max require --filter")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	indices, err := e.indices()
	if err != nil {
		return err
	}
	if p.SortKey != "" || p.FilterKey != "" {
		e.logger.Info("reading metadata...")
	}
	res, err := p.Run(e.layout.MetaDir, indices)
	if err != nil {
		return err
	}
	if len(res.Indices) == 0 {
		return errors.New("no images matched the selection")
	}
	e.logger.Debugw("selected images", "count", len(res.Indices), "of", len(indices))

	if c.Bool(flagList) {
		return listSelection(c, p, res)
	}

	paths := e.layout.RGBPaths(res.Indices)
	if out := c.Path(flagSheet); out != "" {
		sheet, err := images.ContactSheet(paths, c.Int(flagColumns), c.Int(flagThumbWidth))
		if err != nil {
			return err
		}
		if err := images.Save(sheet, out); err != nil {
			return err
		}
		e.logger.Infow("wrote contact sheet", "path", out, "images", len(paths))
		return nil
	}

	v, err := newViewer(e.cfg.Viewer)
	if err != nil {
		return err
	}
	return v.Show(c.Context, paths...)
}

// listSelection prints the selected indices with the value that ordered or
// filtered them.
func listSelection(c *cli.Context, p metadata.Pipeline, res *metadata.Result) error {
	key := p.SortKey
	if key == "" {
		key = p.FilterKey
	}
	var values []float64
	if key != "" {
		var err error
		if values, err = metadata.Values(res.Indices, res.Records, key); err != nil {
			return err
		}
	}
	return report.WriteTable(c.App.Writer, key, res.Indices, values)
}
