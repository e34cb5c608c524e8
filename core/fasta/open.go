// core/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

var gzipMagic = []byte{0x1f, 0x8b}

// input is an opened FASTA or motif list; closing it closes the
// decompressor before the underlying file.
type input struct {
	io.Reader
	closers []io.Closer
}

func (in *input) Close() error {
	var err error
	for _, c := range in.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open reads path, or stdin for "-". Content starting with the gzip magic
// bytes is decompressed on the fly, whatever the name; a ".gz" name that is
// not gzip is an error.
func Open(path string) (io.ReadCloser, error) {
	in := &input{}
	var src io.Reader
	if path == "-" {
		src = os.Stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
		in.closers = append(in.closers, fh)
	}

	br := bufio.NewReaderSize(src, 64<<10)
	head, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(head, gzipMagic) && !strings.HasSuffix(path, ".gz") {
		in.Reader = br
		return in, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = in.Close()
		return nil, err
	}
	in.Reader = gr
	in.closers = append([]io.Closer{gr}, in.closers...)
	return in, nil
}
