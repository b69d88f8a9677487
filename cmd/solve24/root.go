package main

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/solve24/report"
	"github.com/katalvlaran/solve24/solver"
	"github.com/katalvlaran/solve24/stats"
)

type options struct {
	target      int
	workers     int
	exact       bool
	firstShape  bool
	output      formatFlag
	metricsFile string
	debug       bool
}

func newRootCmd() *cobra.Command {
	o := options{output: formatFlag(report.Text)}

	cmd := &cobra.Command{
		Use:          "solve24 n0 n1 n2 n3",
		Short:        "Find every way to make 24 from four numbers",
		Long:         `Combine four integers with +, -, x, / and any grouping, and print each distinct expression that equals the target.`,
		Args:         cobra.ExactArgs(4),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetLevel(logrus.WarnLevel)
			if o.debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			logger.Debugf("log level %s", logger.Level)

			return o.run(cmd.Context(), cmd, args, logger)
		},
	}

	cmd.Flags().IntVar(&o.target, "target", solver.DefaultTarget, "value every expression must equal")
	cmd.Flags().IntVar(&o.workers, "workers", 1, "number of operand orderings searched concurrently")
	cmd.Flags().BoolVar(&o.exact, "exact", false, "evaluate with exact rational arithmetic instead of float64")
	cmd.Flags().BoolVar(&o.firstShape, "first-shape", false, "keep only the first matching tree shape per operator triple")
	cmd.Flags().VarP(&o.output, "output", "o", "output format: text, json or yaml")
	cmd.Flags().StringVar(&o.metricsFile, "metrics-file", "", "write prometheus metrics in textfile format to this path")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "use debug log level")

	return cmd
}

func (o *options) run(ctx context.Context, cmd *cobra.Command, args []string, logger *logrus.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}
	if o.workers < 1 {
		return errors.Errorf("--workers must be at least 1, got %d", o.workers)
	}

	opts := []solver.Option{
		solver.WithTarget(o.target),
		solver.WithWorkers(o.workers),
		solver.WithLogger(logger),
	}
	if o.exact {
		opts = append(opts, solver.WithExact())
	}
	if o.firstShape {
		opts = append(opts, solver.WithFirstShapeOnly())
	}

	var reg *prometheus.Registry
	if o.metricsFile != "" {
		reg = prometheus.NewRegistry()
		col, err := stats.New(reg)
		if err != nil {
			return errors.Wrap(err, "registering metrics")
		}
		opts = append(opts, solver.WithStats(col))
	}

	res, err := solver.Solve(ctx, numbers, opts...)
	if err != nil {
		return err
	}
	if err := report.Write(cmd.OutOrStdout(), res, report.Format(o.output)); err != nil {
		return errors.Wrap(err, "writing result")
	}

	if reg != nil {
		if err := stats.WriteTextfile(o.metricsFile, reg); err != nil {
			return errors.Wrapf(err, "writing metrics to %s", o.metricsFile)
		}
		logger.WithField("path", o.metricsFile).Debug("metrics written")
	}

	return nil
}

// formatFlag validates --output at parse time.
type formatFlag report.Format

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }

func (f *formatFlag) Set(s string) error {
	v, err := report.ParseFormat(s)
	if err != nil {
		return err
	}
	*f = formatFlag(v)
	return nil
}

func (f *formatFlag) Type() string { return "format" }

// parseNumbers converts the four positional arguments, in order.
func parseNumbers(args []string) ([4]int, error) {
	var out [4]int
	if len(args) != len(out) {
		return out, errors.Errorf("expected 4 numbers, got %d", len(args))
	}
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return out, errors.Wrapf(err, "argument %d (%q) is not an integer", i+1, a)
		}
		out[i] = v
	}

	return out, nil
}
