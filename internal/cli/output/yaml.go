package output

import (
	"io"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

// PrintYAML writes data as YAML with 2-space indentation.
func PrintYAML(w io.Writer, data any) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() {
		if cerr := enc.Close(); err == nil {
			err = cerr
		}
	}()
	return errtrace.Wrap(enc.Encode(data))
}
