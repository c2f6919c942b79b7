package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/helgeesch/captain-arro/pkg/pipeline"
	arrowrender "github.com/helgeesch/captain-arro/pkg/render/arrow"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output  string // output file path, "-" for stdout, empty for <pattern>.svg
	noCache bool   // bypass the document cache entirely
	opts    pipeline.Options
}

// generateCommand creates the generate command for rendering a single arrow.
func (c *CLI) generateCommand() *cobra.Command {
	var g generateOpts

	cmd := &cobra.Command{
		Use:   "generate <pattern>",
		Short: "Render an animated arrow SVG",
		Long: `Render one animated arrow document.

Pattern is one of: flow, spotlight-flow, spread, spotlight-spread.
Unset flags fall back to the pattern's defaults; --speed defaults to
20 px/s when neither --speed nor --duration is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g.opts.Pattern = args[0]
			setSpeedDefault(&g.opts)
			return c.runGenerate(cmd, &g)
		},
	}

	addOptionFlags(cmd, &g.opts)
	cmd.Flags().StringVarP(&g.output, "output", "o", "", "output file, or - for stdout (default <pattern>.svg)")
	cmd.Flags().BoolVar(&g.noCache, "no-cache", false, "bypass the document cache")

	return cmd
}

// addOptionFlags registers the generation option flags on cmd. Zero values
// mean "unset" and are resolved to per-pattern defaults by the pipeline.
func addOptionFlags(cmd *cobra.Command, opts *pipeline.Options) {
	f := cmd.Flags()
	f.StringVar(&opts.Color, "color", "", "stroke color (default per pattern)")
	f.IntVar(&opts.StrokeWidth, "stroke-width", 0, "stroke width in px (default per pattern)")
	f.IntVar(&opts.Width, "width", 0, "canvas width in px (default per pattern)")
	f.IntVar(&opts.Height, "height", 0, "canvas height in px (default per pattern)")
	f.IntVar(&opts.Count, "count", 0, "number of arrows (default per pattern)")
	f.StringVar(&opts.Direction, "direction", "", "flow direction: left, right, up, down")
	f.StringVar(&opts.Orientation, "orientation", "", "spread orientation: horizontal, vertical")
	f.Float64Var(&opts.SpeedPxPerSec, "speed", 0, "animation speed in px/s")
	f.Float64Var(&opts.DurationSeconds, "duration", 0, "fixed animation duration in seconds")
	f.StringVar(&opts.Easing, "easing", "", "CSS easing function (default ease-in-out)")
	f.Float64Var(&opts.SpotlightSize, "spotlight-size", 0, "spotlight size as a fraction of the span")
	f.Float64Var(&opts.PathExtension, "path-extension", 0, "spotlight sweep overshoot fraction")
	f.Float64Var(&opts.DimOpacity, "dim-opacity", 0, "opacity of arrows outside the spotlight")
	f.Float64Var(&opts.CenterGapRatio, "center-gap", 0, "center gap as a fraction of the span")
	f.StringVar(&opts.IDSuffix, "id-suffix", "", "pin the SVG id suffix for stable output")
	f.BoolVar(&opts.NoUniqueID, "no-unique-id", false, "disable the random id suffix")
	f.BoolVar(&opts.Refresh, "refresh", false, "re-render even when a cached document exists")
}

// runGenerate renders one document and writes it to the output target.
func (c *CLI) runGenerate(cmd *cobra.Command, g *generateOpts) error {
	runner, err := c.newRunner(g.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	start := time.Now()
	doc, hit, err := runner.GenerateWithCacheInfo(cmd.Context(), g.opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if g.output == "-" {
		return arrowrender.WriteSVG(doc, cmd.OutOrStdout())
	}

	path := g.output
	if path == "" {
		path = g.opts.Pattern + ".svg"
	}
	if err := arrowrender.ExportSVG(doc, path); err != nil {
		return err
	}

	printSuccess("Generated %s arrow", g.opts.Pattern)
	printFile(path)
	printStats(len(doc), elapsed, hit)
	return nil
}
