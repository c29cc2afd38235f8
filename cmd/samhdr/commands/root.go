// Package commands implements the samhdr CLI commands.
package commands

//go:generate go tool errtrace -w .

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/gohts/header"
	"github.com/ghettovoice/gohts/internal/errorutil"
	"github.com/ghettovoice/gohts/internal/log"
	"github.com/ghettovoice/gohts/sam"
)

// Version information injected at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type globalFlags struct {
	logLevel string
	dev      bool
	output   string
}

// NewRootCmd creates the samhdr command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "samhdr",
		Short: "Inspect and rewrite SAM text headers",
		Long: `samhdr reads the header of a SAM text file, prints it grouped by record type
or copies the file through a header writer, optionally appending comments
and a @PG record.

Use "-" as a file name to read from stdin or write to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(flags.logLevel)
			if err != nil {
				return errtrace.Wrap(err)
			}
			// stdout may carry SAM output, logs always go to stderr
			if flags.dev {
				log.SetDefault(log.Dev(cmd.ErrOrStderr(), lvl))
			} else {
				log.SetDefault(log.Console(cmd.ErrOrStderr(), lvl))
			}
			log.Default().LogAttrs(cmd.Context(), slog.LevelDebug, "running command",
				slog.String("command", cmd.CommandPath()),
				slog.Any("args", log.FmtValue(args, false)),
			)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&flags.dev, "dev", false, "Verbose developer log output")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "table", "Output format (table|json|yaml)")

	cmd.AddCommand(
		newViewCmd(flags),
		newCopyCmd(),
		newVersionCmd(),
	)
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return errtrace.Wrap(NewRootCmd().Execute())
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == sam.Stdout {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return errtrace.Wrap2(os.Open(path))
}

func readHeader(r io.Reader) (*header.Header, *bufio.Reader, error) {
	br := bufio.NewReader(r)
	hdr, err := sam.ReadHeader(br)
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	return hdr, br, nil
}

func inputName(path string) string {
	if path == "" || path == sam.Stdout {
		return "<stdin>"
	}
	return path
}

// groupHeader parses a header read from the input at path.
// Grammar errors are prefixed with the input name to locate the reported line.
func groupHeader(hdr *header.Header, path string) (*header.Grouped, error) {
	g, err := hdr.Grouped()
	if err != nil {
		if errorutil.IsGrammarErr(err) {
			return nil, errtrace.Wrap(fmt.Errorf("%s: %w", inputName(path), err))
		}
		return nil, errtrace.Wrap(err)
	}
	return g, nil
}
