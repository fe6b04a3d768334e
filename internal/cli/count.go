package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tricount/converters"
	"github.com/katalvlaran/tricount/internal/config"
	"github.com/katalvlaran/tricount/triangle"
)

type countOpts struct {
	configPath   string
	method       string
	smallThresh  int
	edgeThresh   int
	reorder      string
	noValidate   bool
	maxWorkspace int64
}

func newCountCmd() *cobra.Command {
	var opts countOpts

	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count the triangles of an edge-list graph",
		Long: `Count reads an undirected edge list ("u v" per line, '#' or '%' comments)
from file or stdin and prints the exact number of triangles.

Settings come from --config (TOML) and are overridden by explicit flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runCount(cmd, args, cfg)
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	f.StringVarP(&opts.method, "method", "m", d.Method, "auto, direct, forward-hash, forward-merge, forward-binary, oriented")
	f.IntVar(&opts.smallThresh, "small-threshold", d.SmallGraphThreshold, "vertex count below which auto uses the direct counter")
	f.IntVar(&opts.edgeThresh, "edge-threshold", d.ReorderEdgeThreshold, "directed edge count at which forward runs reorder by degree")
	f.StringVar(&opts.reorder, "reorder", d.Reorder, "auto, highest, lowest, none")
	f.BoolVar(&opts.noValidate, "no-validate", false, "skip input validation")
	f.Int64Var(&opts.maxWorkspace, "max-workspace", d.MaxWorkspaceBytes, "scratch memory limit in bytes (0 = unlimited)")

	return cmd
}

// resolve loads --config and applies the flags the user set explicitly.
func (o countOpts) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("method") {
		cfg.Method = o.method
	}
	if f.Changed("small-threshold") {
		cfg.SmallGraphThreshold = o.smallThresh
	}
	if f.Changed("edge-threshold") {
		cfg.ReorderEdgeThreshold = o.edgeThresh
	}
	if f.Changed("reorder") {
		cfg.Reorder = o.reorder
	}
	if f.Changed("no-validate") {
		cfg.Validate = !o.noValidate
	}
	if f.Changed("max-workspace") {
		cfg.MaxWorkspaceBytes = o.maxWorkspace
	}

	return cfg, cfg.Check()
}

func runCount(cmd *cobra.Command, args []string, cfg config.Config) error {
	logger := loggerFromContext(cmd.Context())

	var (
		in   io.Reader = cmd.InOrStdin()
		name           = "stdin"
	)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in, name = f, args[0]
	}

	load := newProgress(logger)
	g, err := converters.ReadEdgeList(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	load.done("Loaded "+name, "vertices", g.VertexCount(), "edges", g.EdgeCount()/2)

	topts, err := cfg.Options()
	if err != nil {
		return err
	}
	topts = append(topts, triangle.WithLogger(logger))

	res, err := triangle.Run(g, topts...)
	if err != nil {
		return err
	}
	logger.Info("Counted triangles",
		"method", res.Method, "strategy", res.Strategy,
		"reordered", res.Reordered, "elapsed", res.Elapsed)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "triangles: %d\n", res.Triangles)
	return err
}
