package emit

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Encoding selects the on-disk text encoding of an emitted document. The
// controller firmware reads the .xvr variable files as ISO-8859-1 while the
// ring topology document is plain UTF-8, so the choice is an explicit
// serialization parameter rather than a property of the writer.
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "iso-8859-1"
)

// Encode converts rendered UTF-8 text into the requested on-disk encoding.
func Encode(enc Encoding, text []byte) ([]byte, error) {
	switch enc {
	case EncodingUTF8, "":
		return text, nil
	case EncodingLatin1:
		out, err := charmap.ISO8859_1.NewEncoder().Bytes(text)
		if err != nil {
			return nil, fmt.Errorf("emit: encode %s: %w", enc, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("emit: unsupported encoding %q", enc)
	}
}
