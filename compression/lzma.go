//go:build lzma || servicepointall

package compression

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

type lzmaCodec struct{}

func (lzmaCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (lzmaCodec) Decompress(data []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

func init() {
	Register(Lzma, lzmaCodec{})
}
