package cli

import (
	"image"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/nvr-ai/synscapes/config"
	"github.com/nvr-ai/synscapes/images"
	"github.com/nvr-ai/synscapes/metadata"
	"github.com/nvr-ai/synscapes/render"
	"github.com/nvr-ai/synscapes/viewer"
)

// renderOptions applies the configured appearance to the defaults of k.
func renderOptions(cfg config.Render, k render.Kind) render.Options {
	opts := render.DefaultOptions(k)
	opts.Threshold = cfg.Threshold
	opts.ClassAlpha = cfg.ClassAlpha
	opts.InstanceAlpha = cfg.InstanceAlpha
	opts.BoxLineWidth = cfg.BoxLineWidth
	opts.AxisLineWidth = cfg.AxisLineWidth
	opts.FontSize = cfg.FontSize
	return opts
}

// VisualizeAction draws the annotations of one image and saves or shows it.
func VisualizeAction(c *cli.Context) error {
	e, err := newEnv(c, true)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck

	kind, err := render.ParseKind(c.String(flagType))
	if err != nil {
		return err
	}
	opts := renderOptions(e.cfg.Render, kind)
	if c.IsSet(flagThreshold) {
		opts.Threshold = c.Float64(flagThreshold)
	}
	if opts.Threshold < 0 || opts.Threshold > 100 {
		return errors.Errorf("threshold %g outside [0, 100]", opts.Threshold)
	}
	opts.DarkText = c.Bool(flagXKCD)
	opts.FullBox = c.Bool(flagFullBox)

	idx := c.Int(flagIndex)
	meta, err := metadata.Read(e.layout.MetaDir, idx)
	if err != nil {
		return err
	}
	base, err := images.Load(e.layout.RGBPath(idx))
	if err != nil {
		return err
	}
	var aux image.Image
	if kind.NeedsAux() {
		if aux, err = images.Load(e.layout.ImagePath(string(kind), idx)); err != nil {
			return err
		}
	}

	out, err := render.Render(base, meta, aux, opts)
	if err != nil {
		return errors.Wrapf(err, "render index %d", idx)
	}

	if path := c.Path(flagSave); path != "" {
		if err := images.Save(out, path); err != nil {
			return err
		}
		e.logger.Infow("saved visualization", "index", idx, "type", kind, "path", path)
		return nil
	}
	v, err := newViewer(e.cfg.Viewer)
	if err != nil {
		return err
	}
	return viewer.ShowImage(c.Context, v, out)
}
