package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tricount/builder"
	"github.com/katalvlaran/tricount/converters"
)

type generateOpts struct {
	n          int
	rows, cols int
	p          float64
	seed       int64
	solid      string
	center     bool
}

// topologies maps generate arguments to builder constructors.
var topologies = map[string]func(o generateOpts) (builder.Constructor, error){
	"complete":  func(o generateOpts) (builder.Constructor, error) { return builder.Complete(o.n), nil },
	"cycle":     func(o generateOpts) (builder.Constructor, error) { return builder.Cycle(o.n), nil },
	"path":      func(o generateOpts) (builder.Constructor, error) { return builder.Path(o.n), nil },
	"star":      func(o generateOpts) (builder.Constructor, error) { return builder.Star(o.n), nil },
	"wheel":     func(o generateOpts) (builder.Constructor, error) { return builder.Wheel(o.n), nil },
	"bipartite": func(o generateOpts) (builder.Constructor, error) { return builder.CompleteBipartite(o.rows, o.cols), nil },
	"grid":      func(o generateOpts) (builder.Constructor, error) { return builder.Grid(o.rows, o.cols), nil },
	"random":    func(o generateOpts) (builder.Constructor, error) { return builder.RandomSparse(o.n, o.p), nil },
	"platonic": func(o generateOpts) (builder.Constructor, error) {
		name, ok := builder.ParsePlatonicName(o.solid)
		if !ok {
			return nil, fmt.Errorf("unknown solid %q", o.solid)
		}
		return builder.PlatonicSolid(name, o.center), nil
	},
}

func topologyNames() string {
	names := make([]string, 0, len(topologies))
	for k := range topologies {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <topology>",
		Short: "Write a generated graph as an edge list",
		Long: "Generate writes a fixture graph to stdout as an edge list.\n\nTopologies: " +
			topologyNames() + ".\n" +
			"bipartite and grid use --rows/--cols; random uses -n, -p and --seed; platonic uses --solid and --center.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mk, ok := topologies[args[0]]
			if !ok {
				return fmt.Errorf("unknown topology %q (want one of: %s)", args[0], topologyNames())
			}
			ctor, err := mk(opts)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(opts.seed)}, ctor)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("generated",
				"topology", args[0], "vertices", g.VertexCount(), "edges", g.EdgeCount()/2)

			return converters.WriteEdgeList(cmd.OutOrStdout(), g)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.n, "vertices", "n", 10, "vertex count")
	f.IntVar(&opts.rows, "rows", 3, "grid rows / left bipartite part")
	f.IntVar(&opts.cols, "cols", 3, "grid columns / right bipartite part")
	f.Float64VarP(&opts.p, "probability", "p", 0.1, "edge probability for random")
	f.Int64Var(&opts.seed, "seed", 1, "random seed")
	f.StringVar(&opts.solid, "solid", "Icosahedron", "platonic solid name")
	f.BoolVar(&opts.center, "center", false, "add a hub joined to every platonic vertex")

	return cmd
}
