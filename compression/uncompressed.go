package compression

// identityCodec passes payloads through unchanged. It is always available,
// unlike the other codecs, which are gated behind build tags.
type identityCodec struct{}

func (identityCodec) Compress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (identityCodec) Decompress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func init() {
	Register(Uncompressed, identityCodec{})
}
