package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"dollarwords/internal/adapters/sink"
	"dollarwords/internal/core/querylog"
	"dollarwords/internal/platform/logger"

	"github.com/spf13/cobra"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read amounts line by line and keep a history",
		Long: `Reads one entry per line from stdin. A number is converted and recorded.
Commands:
  history  print every query so far
  clear    wipe the output when the sink supports it
  quit     leave`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.repl(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// maxLine bounds one REPL entry; no amount comes close
const maxLine = 4 << 10

func (a *app) repl(ctx context.Context, in io.Reader) error {
	log := querylog.New(a.conv)
	br := bufio.NewReader(in)
	for {
		raw, tooLong, err := nextLine(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		if tooLong {
			logger.Named("cli").Warn().Int("max", maxLine).Msg("line too long")
			sink.Comment(a.out, notValid)
			continue
		}
		line := strings.TrimSpace(raw)
		switch strings.ToLower(line) {
		case "":
		case "quit", "exit":
			return nil
		case "history":
			a.history(log)
		case "clear":
			if !sink.Clear(a.out) {
				logger.Named("cli").Debug().Msg("output cannot be cleared")
			}
		default:
			a.query(log, line)
		}
	}
}

// nextLine reads one line without its terminator; a line over maxLine is
// drained and flagged instead of returned
func nextLine(br *bufio.Reader) (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, more, err := br.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong && len(buf)+len(chunk) > maxLine {
			tooLong, buf = true, nil
		}
		if !tooLong {
			buf = append(buf, chunk...)
		}
		if !more {
			return string(buf), tooLong, nil
		}
	}
}
