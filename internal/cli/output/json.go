package output

import (
	"encoding/json"
	"io"

	"braces.dev/errtrace"
)

// PrintJSON writes data as indented JSON.
func PrintJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errtrace.Wrap(enc.Encode(data))
}
