package ses

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
)

// cleanString decodes a fixed-width text field: the bytes up to the first
// zero terminator (or the whole field when there is none), converted from the
// session's codepage to UTF-8.
func cleanString(dec *encoding.Decoder, field []byte) (string, error) {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	if dec == nil {
		return string(field), nil
	}
	out, err := dec.Bytes(field)
	if err != nil {
		return "", fmt.Errorf("decode text field: %w", err)
	}
	return string(out), nil
}
