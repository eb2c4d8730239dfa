package protocol

import (
	"io"
)

// MaxReplySize bounds the single read issued per sent line.
const MaxReplySize = 512

// ReadReply performs one read of at most MaxReplySize bytes and returns
// the raw bytes untouched. Replies are opaque to the client: no framing,
// no decoding. A reply spanning more than one read is truncated at
// whatever the first read returned.
func ReadReply(r io.Reader) ([]byte, error) {
	buf := make([]byte, MaxReplySize)

	n, err := r.Read(buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}
