package main

import (
	"fmt"
	"os"
	"strings"

	"dollarwords/internal/adapters/sink"
	"dollarwords/internal/core/amount"
	"dollarwords/internal/core/currency"
	"dollarwords/internal/core/querylog"
	"dollarwords/internal/core/version"
	"dollarwords/internal/platform/config"
	"dollarwords/internal/platform/logger"
	currencymod "dollarwords/internal/services/api/currency/module"

	"github.com/spf13/cobra"
)

const notValid = "value is not valid!"

// app carries flag values and the collaborators built from them
type app struct {
	min       float64
	max       float64
	logFormat string
	sinkKind  string

	conv *currency.Converter
	out  sink.Sink
}

// newRootCmd builds the command tree, out overrides the sink picked by --sink
func newRootCmd(out sink.Sink) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "dollarwords",
		Short: "Write dollar amounts the way they go on a check",
		Long: `dollarwords turns numbers into check-writing English, for example
1234.38 becomes "one thousand two hundred thirty four and 38/100 dollars".

Bounds default to CORE_CURRENCY_MIN_BOUNDARY and CORE_CURRENCY_MAX_BOUNDARY
and can be overridden with --min and --max. Negative values need a "--"
separator so they are not read as flags.`,
		Version:           version.For("dollarwords").String(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.Float64Var(&a.min, "min", currency.DefaultMin, "lowest convertible amount")
	pf.Float64Var(&a.max, "max", currency.DefaultMax, "highest convertible amount")
	pf.StringVar(&a.logFormat, "log-format", "", "log format, console or json (default LOG_FORMAT)")
	pf.StringVar(&a.sinkKind, "sink", "stdout", "where results go, stdout or log")

	root.AddCommand(newConvertCmd(a), newReplCmd(a))
	return root
}

// setup initializes logging, the converter, and the output sink
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	opt.Component = "cli"
	if a.logFormat != "" {
		opt.Format = strings.ToLower(a.logFormat)
	}
	logger.Init(opt)

	p := currencymod.PolicyFromConfig(config.New())
	if cmd.Flags().Changed("min") {
		p.Min = a.min
	}
	if cmd.Flags().Changed("max") {
		p.Max = a.max
	}
	conv, err := currency.New(p)
	if err != nil {
		return fmt.Errorf("bounds: %w", err)
	}
	a.conv = conv

	if a.out != nil {
		return nil
	}
	switch a.sinkKind {
	case "stdout", "":
		a.out = sink.Writer(cmd.OutOrStdout())
	case "log":
		a.out = sink.Logger(logger.Named("queries"))
	default:
		return fmt.Errorf("unknown sink %q, want stdout or log", a.sinkKind)
	}
	return nil
}

// query records text on log and reports the outcome on the sink
// text that does not parse as a number is logged as typed and comes back invalid
func (a *app) query(log *querylog.Log, text string) {
	var in any
	if v, err := amount.Parse(text); err == nil {
		in = v
	} else {
		logger.Named("cli").Debug().Err(err).Str("input", text).Msg("not a number")
		in = amount.Normalize(text)
	}

	rec := log.Record(in)
	if !rec.Output.Valid() {
		sink.Comment(a.out, notValid)
		return
	}
	sink.Comment(a.out, "Currency Query: "+rec.String())
}

// history emits the rendered log without its trailing newline
func (a *app) history(log *querylog.Log) {
	sink.Comment(a.out, strings.TrimSuffix(log.Render(), "\n"))
}
