package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polytopia/wythoff/pkg/catalog"
	"github.com/polytopia/wythoff/pkg/errors"
	"github.com/polytopia/wythoff/pkg/pipeline"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	symbol      string // comma-separated Coxeter symbol, e.g. "4,2,3"
	distances   string // comma-separated mirror distances, e.g. "1,0,0"
	snub        bool   // use the chiral rotation-subgroup construction
	catalogFile string // custom catalog file instead of the built-in one
	output      string // output file path (stdout if empty and not derived)
	noCache     bool   // disable the artifact cache
	refresh     bool   // rebuild even when cached
	maxCosets   int    // enumeration budget
	precision   int    // coordinate decimal digits
}

// buildCommand creates the build command for constructing polytopes.
// The target is either a catalog entry name or an explicit symbol given
// via --symbol and --distances.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [name]",
		Short: "Build a polytope and export a POV-Ray include file",
		Long: `Build constructs the vertices, edges and faces of a uniform polytope
and writes them as a POV-Ray include file.

The polytope is chosen either by catalog name:

  wythoff build truncated-cube

or by an explicit Coxeter symbol and distance vector:

  wythoff build --symbol 5,2,3 --distances 1,1,1
  wythoff build --symbol 4,2,3 --snub`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return c.runBuild(cmd.Context(), name, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.symbol, "symbol", "s", "", "Coxeter symbol, comma-separated (e.g. 4,2,3)")
	cmd.Flags().StringVarP(&opts.distances, "distances", "d", "", "initial vertex distances, comma-separated (e.g. 1,0,0)")
	cmd.Flags().BoolVar(&opts.snub, "snub", false, "use the chiral snub construction")
	cmd.Flags().StringVar(&opts.catalogFile, "catalog", "", "custom catalog file (TOML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <name>.inc, or stdout for --symbol builds)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "rebuild even when a cached artifact exists")
	cmd.Flags().IntVar(&opts.maxCosets, "max-cosets", 0, "enumeration budget (default 65536)")
	cmd.Flags().IntVar(&opts.precision, "precision", 0, "coordinate decimal digits (default 8)")

	return cmd
}

// runBuild resolves the build target, runs the pipeline and writes the
// include file.
func (c *CLI) runBuild(ctx context.Context, name string, opts *buildOpts) error {
	popts, label, err := resolveTarget(name, opts)
	if err != nil {
		return err
	}
	popts.Logger = c.Logger

	if opts.output != "" {
		if err := errors.ValidateOutputPath(opts.output); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building %s...", label))
	spinner.Start()
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Build failed: %s", errors.UserMessage(err)))
		return err
	}
	spinner.Stop()

	path := opts.output
	if path == "" && name != "" {
		path = name + ".inc"
	}
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(result.Include); err != nil {
		return err
	}

	printSuccess("Built %s", StyleHighlight.Render(label))
	printStats(result.Stats, result.CacheInfo.Hit)
	if path != "" {
		printFile(path)
	}
	return nil
}

// resolveTarget turns the command arguments into pipeline options: either a
// catalog lookup by name or an explicit symbol from flags.
func resolveTarget(name string, opts *buildOpts) (pipeline.Options, string, error) {
	popts := pipeline.Options{
		MaxCosets: opts.maxCosets,
		Precision: opts.precision,
		Refresh:   opts.refresh,
	}

	if name != "" {
		if opts.symbol != "" {
			return popts, "", fmt.Errorf("give either a catalog name or --symbol, not both")
		}
		cat := catalog.Builtin()
		if opts.catalogFile != "" {
			var err error
			if cat, err = catalog.LoadFile(opts.catalogFile); err != nil {
				return popts, "", err
			}
		}
		entry, err := cat.Find(name)
		if err != nil {
			return popts, "", err
		}
		popts.Symbol = entry.Symbol
		popts.Distances = entry.Distances
		popts.Snub = entry.Snub
		popts.Header = entry.Name
		return popts, entry.Name, nil
	}

	symbol, err := parseSymbol(opts.symbol)
	if err != nil {
		return popts, "", err
	}
	if symbol == nil {
		return popts, "", fmt.Errorf("a catalog name or --symbol is required")
	}
	distances, err := parseDistances(opts.distances)
	if err != nil {
		return popts, "", err
	}
	popts.Symbol = symbol
	popts.Distances = distances
	popts.Snub = opts.snub

	label := fmt.Sprintf("(%s)", opts.symbol)
	if opts.snub {
		label = "snub " + label
	}
	popts.Header = strings.TrimSpace(label)
	return popts, label, nil
}
