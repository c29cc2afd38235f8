// Package header provides facilities for working with the textual header of
// SAM/BAM alignment files.
//
// A header is an ordered list of text lines. Every line starts with '@' and a
// two-letter record type code, followed by tab-separated TAG:VALUE fields:
//
//	@HD	VN:1.6	SO:coordinate
//	@SQ	SN:chr1	LN:248956422
//	@CO	free text comment
//
// # Building
//
// Records are assembled with [Record], a builder that keeps tags in push order
// and never deduplicates them. Records and comments are appended to a [Header]:
//
//	hdr := header.New().
//		PushRecord(header.NewRecord("HD").PushTag("VN", "1.6")).
//		PushRecord(header.NewRecord("SQ").PushTag("SN", "chr1").PushTag("LN", 248956422)).
//		PushComment([]byte("generated by samhdr"))
//
// Tag values of any scalar type are formatted with [FormatValue].
// A header can also be copied verbatim from an existing one with [FromTemplate].
//
// # Rendering
//
// [Header.Bytes] joins the lines with '\n' without a trailing newline.
// [Header.RenderTo] writes the same bytes to an [io.Writer].
//
// # Parsing
//
// [Parse] turns header text into a [Grouped] view: records grouped by type,
// every record being a [TagMap] where a repeated tag keeps its last value.
// Parsing is all-or-nothing, a single malformed line fails the whole header
// with a [*ParseError] matching [ErrMalformedHeader].
//
// # Views
//
// [View] is an immutable snapshot of header bytes, as retained by writers.
// It also exposes the reference sequence dictionary described by @SQ lines.
package header
