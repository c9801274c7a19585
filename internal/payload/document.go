package payload

import (
	"bytes"
	"encoding/json"
	"errors"
)

// DefaultFileName is the name of the Stored File and of the route that serves it.
const DefaultFileName = "teachable_output.json"

const (
	indent          = "  "
	replacementChar = "\uFFFD"
)

var errEmptyDocument = errors.New("empty document")

// Format re-indents a client document with two spaces per level. The JSON text
// is not re-encoded: key order, number literals and string escapes stay as the
// client sent them. Exactly one JSON value is accepted. Invalid UTF-8 inside
// strings is replaced with U+FFFD so the stored text is always valid UTF-8.
func Format(raw []byte) ([]byte, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errEmptyDocument
	}
	var out bytes.Buffer
	out.Grow(len(raw) + len(raw)/4)
	if err := json.Indent(&out, raw, "", indent); err != nil {
		return nil, err
	}
	return bytes.ToValidUTF8(out.Bytes(), []byte(replacementChar)), nil
}
