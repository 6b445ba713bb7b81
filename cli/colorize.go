package cli

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/nvr-ai/synscapes/dataset"
	"github.com/nvr-ai/synscapes/images"
	"github.com/nvr-ai/synscapes/profiler"
)

// ColorizeAction converts every class map of the dataset to a palette image
// under img/class_rgb.
func ColorizeAction(c *cli.Context) error {
	e, err := newEnv(c, true)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck

	workers := e.cfg.Colorize.Workers
	if c.IsSet(flagWorkers) {
		workers = c.Int(flagWorkers)
	}
	if workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", workers)
	}

	indices, err := e.indices()
	if err != nil {
		return err
	}
	dir, err := e.layout.EnsureDir(dataset.KindClassRGB)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(indices),
		progressbar.OptionSetWriter(c.App.ErrWriter),
		progressbar.OptionSetWidth(15),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("colorize"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	timings := profiler.NewTimings()

	job := colorizeJob{
		layout:       e.layout,
		workers:      workers,
		skipExisting: c.Bool(flagSkipExisting),
		progress:     func() { bar.Add(1) }, //nolint:errcheck
		timings:      timings,
	}
	written, err := job.run(c.Context, indices)
	bar.Finish() //nolint:errcheck
	fmt.Fprintln(c.App.ErrWriter)
	if err != nil {
		return err
	}

	timings.Report(e.logger)
	e.logger.Infow("colorized class maps", "written", written, "skipped", len(indices)-written, "dir", dir)
	return nil
}

type colorizeJob struct {
	layout       *dataset.Layout
	workers      int
	skipExisting bool
	progress     func()
	timings      *profiler.Timings
}

// run converts indices with at most workers conversions in flight and
// returns how many files were written. The first failure cancels the rest.
func (j colorizeJob) run(parent context.Context, indices []int) (int, error) {
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(j.workers)

	var written atomic.Int64
	for _, idx := range indices {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			wrote, err := j.one(idx)
			if err != nil {
				return errors.Wrapf(err, "colorize index %d", idx)
			}
			if wrote {
				written.Add(1)
			}
			if j.progress != nil {
				j.progress()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(written.Load()), err
	}
	return int(written.Load()), parent.Err()
}

func (j colorizeJob) one(idx int) (bool, error) {
	dst := j.layout.ClassRGBPath(idx)
	if j.skipExisting {
		if _, err := os.Stat(dst); err == nil {
			return false, nil
		}
	}

	done := j.timings.StartOperation("load")
	src, err := images.Load(j.layout.ClassPath(idx))
	done()
	if err != nil {
		return false, err
	}

	done = j.timings.StartOperation("colorize")
	rgb := images.ColorizeClasses(src)
	done()

	done = j.timings.StartOperation("save")
	err = images.Save(rgb, dst)
	done()
	return err == nil, err
}
