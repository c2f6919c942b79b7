package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/helgeesch/captain-arro/pkg/preset"
	arrowrender "github.com/helgeesch/captain-arro/pkg/render/arrow"
)

// batchOpts holds the command-line flags for the batch command.
type batchOpts struct {
	outDir      string // directory receiving <name>.svg files
	concurrency int    // parallel render limit
	noCache     bool   // bypass the document cache
}

// batchCommand creates the batch command for rendering a preset gallery.
func (c *CLI) batchCommand() *cobra.Command {
	opts := batchOpts{
		outDir:      ".",
		concurrency: 4,
	}

	cmd := &cobra.Command{
		Use:   "batch <preset-file>",
		Short: "Render every preset in a preset file",
		Long: `Render all presets from a TOML, YAML, or JSON preset file.

Each preset is rendered concurrently and written to <out-dir>/<name>.svg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "d", opts.outDir, "output directory")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", opts.concurrency, "parallel render limit")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the document cache")

	return cmd
}

// runBatch loads the preset file and renders every entry concurrently.
func (c *CLI) runBatch(cmd *cobra.Command, path string, opts *batchOpts) error {
	presets, err := preset.Load(path)
	if err != nil {
		return err
	}
	c.Logger.Info("loaded presets", "file", path, "count", len(presets))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)

	g, ctx := errgroup.WithContext(cmd.Context())
	if opts.concurrency > 0 {
		g.SetLimit(opts.concurrency)
	}

	var mu sync.Mutex
	var written []string
	for _, p := range presets {
		g.Go(func() error {
			doc, err := runner.Generate(ctx, p.Options)
			if err != nil {
				return fmt.Errorf("preset %q: %w", p.Name, err)
			}

			out := filepath.Join(opts.outDir, p.Name+".svg")
			if err := arrowrender.ExportSVG(doc, out); err != nil {
				return fmt.Errorf("preset %q: %w", p.Name, err)
			}

			mu.Lock()
			written = append(written, out)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d presets", len(written)))

	sort.Strings(written)
	printSuccess("Rendered %d presets", len(written))
	for _, out := range written {
		printFile(out)
	}
	printNewline()
	printNextStep("Preview a preset", appName+" preview "+path)
	return nil
}
