package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/postman/config"
	"github.com/katalvlaran/postman/instance"
	"github.com/katalvlaran/postman/matching"
	"github.com/katalvlaran/postman/rpp"
)

// Exit codes by failure kind.
const (
	exitOK         = 0
	exitInput      = 2
	exitUnsolvable = 3
	exitInternal   = 4
	exitUsage      = 64
)

type rootOptions struct {
	configPath string
	envFile    string
	verbose    bool
	matcher    matcherFlag
	output     string
	logFormat  string
	start      int
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, out, errOut io.Writer) int {
	cmd := newRootCommand(out, errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(errOut, "postman:", err)
	}

	return exitCode(err)
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "postman [flags] <instance-file>",
		Short:         "Heuristic Rural Postman solver",
		Long:          "Reads a rural-postman instance and prints a closed walk that traverses every required edge, with its cost.",
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cfg, errOut)

			return runSolve(cfg, args[0], out, log)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return inputError(err) })

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&opts.envFile, "env-file", "", "path to a dotenv file with POSTMAN_* variables")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&opts.logFormat, "log-format", config.LogText, "log format: text or json")

	f := cmd.Flags()
	f.VarP(&opts.matcher, "matcher", "m", "matching heuristic: greedy or vertex-scan (required unless set by config)")
	f.StringVarP(&opts.output, "output", "o", config.OutputText, "report format: text or yaml")
	f.IntVarP(&opts.start, "start", "s", 0, "first vertex of the walk (1-based, 0 = automatic)")

	cmd.AddCommand(newGenerateCommand(out))

	return cmd
}

// resolve loads the config layers and applies explicitly set flags on top.
func (o *rootOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath, o.envFile)
	if err != nil {
		return nil, inputError(err)
	}

	flags := cmd.Flags()
	if o.matcher.set {
		cfg.Matcher = o.matcher.String()
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("start") {
		cfg.Start = o.start
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if o.verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	if err = cfg.Validate(); err != nil {
		return nil, inputError(err)
	}

	return cfg, nil
}

// runSolve parses the instance, solves it and writes the report.
func runSolve(cfg *config.Config, path string, out io.Writer, log logrus.FieldLogger) error {
	strategy, err := cfg.Strategy()
	if err != nil {
		return inputError(err)
	}

	in, err := instance.ParseFile(path)
	if err != nil {
		return inputError(err)
	}
	required, full, err := in.Graphs()
	if err != nil {
		return inputError(err)
	}
	log.WithFields(logrus.Fields{
		"instance": in.Name,
		"vertices": in.Vertices,
		"required": len(in.Required),
		"optional": len(in.Optional),
	}).Info("instance loaded")

	sopts := []rpp.Option{rpp.WithStrategy(strategy), rpp.WithLogger(log)}
	if cfg.Start > 0 {
		sopts = append(sopts, rpp.WithStart(cfg.Start-1))
	}
	res, err := rpp.NewSolver(sopts...).Solve(required, full)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"cost": res.Cost, "elapsed": res.Elapsed}).Info("solved")

	rep := newReport(in, res)
	if cfg.Output == config.OutputYAML {
		return rep.writeYAML(out)
	}

	return rep.writeText(out)
}

// matcherFlag is the --matcher value. Unlike a bare matching.Strategy it has
// no usable zero value: it prints empty and stays unset until Set succeeds.
type matcherFlag struct {
	strategy matching.Strategy
	set      bool
}

var _ pflag.Value = (*matcherFlag)(nil)

func (m *matcherFlag) String() string {
	if !m.set {
		return ""
	}

	return m.strategy.String()
}

func (m *matcherFlag) Set(name string) error {
	if err := m.strategy.Set(name); err != nil {
		return err
	}
	m.set = true

	return nil
}

func (m *matcherFlag) Type() string { return m.strategy.Type() }

// inputError classifies a failure outside the solver as an input error.
func inputError(err error) error {
	return &rpp.StageError{Stage: rpp.StateParse, Kind: rpp.ErrInput, Err: err}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, rpp.ErrInput):
		return exitInput
	case errors.Is(err, rpp.ErrUnsolvable):
		return exitUnsolvable
	case errors.Is(err, rpp.ErrInternal):
		return exitInternal
	default:
		return exitUsage
	}
}
