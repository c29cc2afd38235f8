// Package sam writes alignment files that start with a text header.
//
// A [Writer] couples one [header.Header] snapshot with one output [Stream].
// Creating a writer opens the stream and writes the header before the writer is
// returned, so no record can ever be written ahead of the header:
//
//	w, err := sam.NewWriter("out.sam", hdr, nil)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//
//	if err := w.Write(sam.RawRecord("r001\t0\tchr1\t7\t30\t8M\t*\t0\t0\tTTAGATAA\t*")); err != nil {
//		return err
//	}
//
// Streams are created by an [Opener] keyed by a path, or by [Stdout] for the
// standard output. [FileOpener] is the default opener and writes plain SAM text,
// other encodings plug in through [WriterOptions.Opener].
//
// The stream is released exactly once: by [Writer.Close], or, for a writer that
// was dropped without Close, by a cleanup attached to the writer.
package sam
