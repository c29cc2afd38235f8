package sam

import (
	"bufio"
	"errors"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohts/header"
	"github.com/ghettovoice/gohts/internal/util"
)

// ReadHeader reads the text header of a SAM stream: all leading lines that start with '@'.
// The reader is left at the first alignment line.
// The header is returned as read, use [header.Header.Grouped] to validate it.
func ReadHeader(r *bufio.Reader) (*header.Header, error) {
	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)

	for {
		b, err := r.Peek(1)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errtrace.Wrap(err)
		}
		if b[0] != '@' {
			break
		}

		line, err := r.ReadBytes('\n')
		buf.Write(line)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errtrace.Wrap(err)
		}
	}
	return header.FromTemplate(header.Text(buf.Bytes())), nil
}
