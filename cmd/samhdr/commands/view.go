package commands

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/gohts/header"
	"github.com/ghettovoice/gohts/internal/cli/output"
)

func newViewCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "view [FILE]",
		Short: "Print the header grouped by record type",
		Long: `Print the header of a SAM text file grouped by record type.

Records of one type keep their header order. The table output lists one
record per row, JSON and YAML output map record types to record lists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(flags.output)
			if err != nil {
				return errtrace.Wrap(err)
			}

			var path string
			if len(args) > 0 {
				path = args[0]
			}
			in, err := openInput(cmd, path)
			if err != nil {
				return errtrace.Wrap(err)
			}
			defer in.Close()

			hdr, _, err := readHeader(in)
			if err != nil {
				return errtrace.Wrap(err)
			}
			g, err := groupHeader(hdr, path)
			if err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(output.NewPrinter(cmd.OutOrStdout(), format).Print(groupedReport{g}))
		},
	}
}

// groupedReport renders a grouped header as a table,
// JSON and YAML encoding is inherited from [header.Grouped].
type groupedReport struct {
	*header.Grouped
}

func (groupedReport) Headers() []string { return []string{"TYPE", "TAGS"} }

func (r groupedReport) Rows() [][]string {
	var rows [][]string
	for typ, recs := range r.All() {
		if typ == header.TypeCO {
			for _, c := range r.Comments() {
				rows = append(rows, []string{string(typ), c})
			}
			continue
		}
		for _, tm := range recs {
			fields := make([]string, 0, len(tm))
			for name, val := range tm.All() {
				fields = append(fields, name+":"+val)
			}
			rows = append(rows, []string{string(typ), strings.Join(fields, " ")})
		}
	}
	return rows
}
