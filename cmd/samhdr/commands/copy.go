package commands

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ghettovoice/gohts/header"
	"github.com/ghettovoice/gohts/internal/errorutil"
	"github.com/ghettovoice/gohts/internal/log"
	"github.com/ghettovoice/gohts/sam"
)

const programID = "samhdr"

var clReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

type copyFlags struct {
	comments []string
	pg       bool
}

func newCopyCmd() *cobra.Command {
	flags := &copyFlags{}
	cmd := &cobra.Command{
		Use:   "copy IN OUT",
		Short: "Copy a SAM text file through the header writer",
		Long: `Copy a SAM text file, re-emitting its header followed by the alignment lines.

Comments given with --comment are appended to the header as @CO lines.
Unless --pg=false is given, a @PG record describing this run is appended,
its ID is made unique and chained to the last @PG record of the input.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errtrace.Wrap(runCopy(cmd, args, flags))
		},
	}
	cmd.Flags().StringArrayVar(&flags.comments, "comment", nil, "Append a @CO line (repeatable)")
	cmd.Flags().BoolVar(&flags.pg, "pg", true, "Append a @PG record")
	return cmd
}

func runCopy(cmd *cobra.Command, args []string, flags *copyFlags) error {
	ctx := cmd.Context()
	inPath, outPath := args[0], args[1]
	logger := log.Default().With(slog.String("in", inPath), slog.String("out", outPath))

	in, err := openInput(cmd, inPath)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer in.Close()

	hdr, body, err := readHeader(in)
	if err != nil {
		return errtrace.Wrap(err)
	}
	for _, c := range flags.comments {
		if strings.Contains(c, "\n") {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("comment %q contains a newline", c))
		}
		hdr.PushComment([]byte(c))
	}
	if flags.pg {
		g, err := groupHeader(hdr, inPath)
		if err != nil {
			return errtrace.Wrap(err)
		}
		hdr.PushRecord(programRecord(g, commandLine(cmd, args)))
	}

	opts := &sam.WriterOptions{
		Opener: &sam.FileOpener{Stdout: cmd.OutOrStdout()},
		Log:    logger,
	}
	var w *sam.Writer
	if outPath == sam.Stdout {
		w, err = sam.NewStdoutWriter(hdr, opts)
	} else {
		w, err = sam.NewWriter(outPath, hdr, opts)
	}
	if err != nil {
		return errtrace.Wrap(err)
	}

	n, err := copyRecords(ctx, w, body, logger)
	err = errorutil.Join(err, w.Close())
	if errorutil.IsBrokenPipe(err) {
		logger.LogAttrs(ctx, slog.LevelDebug, "output closed by reader", slog.Int("records", n))
		return nil
	}
	if err != nil {
		return errtrace.Wrap(err)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "copy done", slog.Int("records", n))
	return nil
}

func copyRecords(ctx context.Context, w *sam.Writer, r *bufio.Reader, logger *slog.Logger) (int, error) {
	var n int
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			line = bytes.TrimRight(line, "\r\n")
			if len(line) > 0 {
				if werr := w.Write(sam.RawRecord(line)); werr != nil {
					logger.LogAttrs(ctx, slog.LevelDebug, "record not copied",
						slog.Int("record", n+1),
						slog.Any("line", log.StringValue(line)),
					)
					return n, errtrace.Wrap(werr)
				}
				n++
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, errtrace.Wrap(err)
		}
	}
}

// commandLine reconstructs the invocation from the parsed command:
// the command path, the flags set by the user and the positional arguments.
func commandLine(cmd *cobra.Command, args []string) []string {
	argv := strings.Fields(cmd.CommandPath())
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			for _, v := range sv.GetSlice() {
				argv = append(argv, "--"+f.Name, v)
			}
			return
		}
		argv = append(argv, "--"+f.Name+"="+f.Value.String())
	})
	return append(argv, args...)
}

// programRecord builds a @PG record for this run.
// The ID is unique among the header @PG records, PP points to the last of them.
func programRecord(g *header.Grouped, argv []string) *header.Record {
	ids := make(map[string]bool)
	var prev string
	for _, tm := range g.Records(header.TypePG) {
		if id, ok := tm.Get("ID"); ok {
			ids[id] = true
			prev = id
		}
	}
	id := programID
	for i := 1; ids[id]; i++ {
		id = fmt.Sprintf("%s.%d", programID, i)
	}

	rec := header.NewRecord(header.TypePG).
		PushTag("ID", id).
		PushTag("PN", programID)
	if prev != "" {
		rec.PushTag("PP", prev)
	}
	rec.PushTag("VN", Version)
	if cl := clReplacer.Replace(strings.Join(argv, " ")); cl != "" {
		rec.PushTag("CL", cl)
	}
	return rec
}
