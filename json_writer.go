package papertrade

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append marshals the value and appends it under the given key, preserving
// insertion order.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field %q: %w", key, err)
		return w
	}
	fmt.Fprintf(w, "%q:%s,", key, raw)
	return w
}

// Optional appends the key only if the value is not empty.
func (w *jsonObjectWriter) Optional(key, value string) *jsonObjectWriter {
	if value == "" {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON implements the json.Marshaler interface for jsonObjectWriter.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	inner := bytes.TrimSuffix(w.Bytes(), []byte(","))
	var out bytes.Buffer
	out.WriteByte('{')
	out.Write(inner)
	out.WriteByte('}')
	return out.Bytes(), nil
}
