package cli

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/nvr-ai/synscapes/config"
	"github.com/nvr-ai/synscapes/dataset"
	"github.com/nvr-ai/synscapes/logging"
	"github.com/nvr-ai/synscapes/viewer"
)

// newViewer is swapped out in tests so nothing is put on screen.
var newViewer = viewer.New

// env is what every action needs besides its own flags.
type env struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
	layout *dataset.Layout
}

// newEnv loads the configuration, builds the logger and, when needRoot is
// set, opens the dataset named by the first argument.
func newEnv(c *cli.Context, needRoot bool) (*env, error) {
	cfg, err := config.Load(c.Path(flagConfig))
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if c.Bool(flagDebug) {
		level = "debug"
	}
	logger, err := logging.New(level, c.App.ErrWriter)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, logger: logger}
	if !needRoot {
		return e, nil
	}

	if c.NArg() != 1 {
		return nil, errors.Errorf("expected exactly one dataset ROOT argument, got %d", c.NArg())
	}
	if e.layout, err = dataset.Open(c.Args().First()); err != nil {
		return nil, err
	}
	logger.Debugw("opened dataset", "root", e.layout.Root)
	return e, nil
}

// indices lists the dataset and rejects an empty one.
func (e *env) indices() ([]int, error) {
	indices, err := e.layout.Indices()
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return nil, errors.Errorf("no metadata documents in %s", e.layout.MetaDir)
	}
	return indices, nil
}
