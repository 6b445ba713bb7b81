package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/nvr-ai/synscapes/metadata"
	"github.com/nvr-ai/synscapes/report"
)

// StatsAction prints descriptive statistics of a scene field and optionally
// plots its histogram.
func StatsAction(c *cli.Context) error {
	key := c.String(flagKey)
	if !metadata.IsSceneKey(key) {
		return errors.Errorf("unknown scene key %q", key)
	}
	e, err := newEnv(c, true)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck

	indices, err := e.indices()
	if err != nil {
		return err
	}
	res, err := metadata.Pipeline{AnalyzeNum: c.Int(flagAnalyzeNum), ValueKey: key}.Run(e.layout.MetaDir, indices)
	if err != nil {
		return err
	}
	values, err := metadata.Values(res.Indices, res.Records, key)
	if err != nil {
		return err
	}
	s, err := report.Summarize(values)
	if err != nil {
		return err
	}
	report.WriteSummary(c.App.Writer, key, s)

	if path := c.Path(flagPlot); path != "" {
		if err := report.Histogram(values, key, c.Int(flagBins), path); err != nil {
			return err
		}
		e.logger.Infow("wrote histogram", "path", path)
	}
	return nil
}

// KeysAction lists the known scene keys.
func KeysAction(c *cli.Context) error {
	if _, err := newEnv(c, false); err != nil {
		return err
	}
	for _, k := range metadata.SceneKeys {
		fmt.Fprintln(c.App.Writer, k)
	}
	return nil
}
