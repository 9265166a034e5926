package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/postman/builder"
	"github.com/katalvlaran/postman/instance"
)

type generateOptions struct {
	rows, cols int
	n          int
	p          float64
	seed       int64
	required   float64
	minWeight  int
	maxWeight  int
	name       string
	comment    string
	file       string
}

func newGenerateCommand(out io.Writer) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:       "generate {grid|cycle|complete|sparse}",
		Short:     "Write a random instance in the instance file format",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"grid", "cycle", "complete", "sparse"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(args[0], out)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.rows, "rows", 4, "grid rows")
	f.IntVar(&opts.cols, "cols", 4, "grid columns")
	f.IntVarP(&opts.n, "vertices", "n", 20, "vertex count for cycle, complete and sparse")
	f.Float64VarP(&opts.p, "probability", "p", 0.1, "extra edge probability for sparse")
	f.Int64Var(&opts.seed, "seed", 1, "random seed")
	f.Float64VarP(&opts.required, "required", "r", 0.5, "probability that an edge is required")
	f.IntVar(&opts.minWeight, "min-weight", 1, "smallest edge weight")
	f.IntVar(&opts.maxWeight, "max-weight", 9, "largest edge weight")
	f.StringVar(&opts.name, "name", "", "instance name")
	f.StringVar(&opts.comment, "comment", "", "instance comment")
	f.StringVarP(&opts.file, "file", "f", "", "write to file instead of stdout")

	return cmd
}

func (o *generateOptions) run(kind string, out io.Writer) error {
	if o.required < 0 || o.required > 1 {
		return inputError(errors.Errorf("--required %g not in [0,1]", o.required))
	}
	if o.minWeight < 0 || o.maxWeight < o.minWeight {
		return inputError(errors.Errorf("weights [%d,%d] invalid", o.minWeight, o.maxWeight))
	}

	var cons builder.Constructor
	switch kind {
	case "grid":
		cons = builder.Grid(o.rows, o.cols)
	case "cycle":
		cons = builder.Cycle(o.n)
	case "complete":
		cons = builder.Complete(o.n)
	default:
		cons = builder.RandomSparse(o.n, o.p)
	}

	in, err := builder.Build(cons,
		builder.WithSeed(o.seed),
		builder.WithRequiredRatio(o.required),
		builder.WithWeightFn(builder.UniformIntWeightFn(o.minWeight, o.maxWeight)),
		builder.WithName(o.name),
		builder.WithComment(o.comment),
	)
	if err != nil {
		return inputError(err)
	}

	if o.file == "" {
		return instance.Write(out, in)
	}
	f, err := os.Create(o.file)
	if err != nil {
		return errors.Wrap(err, "create instance file")
	}
	if err = instance.Write(f, in); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "close instance file")
}
