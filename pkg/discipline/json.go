package discipline

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON decodes a discipline object. Only the known discipline keys
// are read: the type tag and any other field are dropped, and null values
// leave the key absent.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to unmarshal discipline record: %w", err)
	}

	decoded := make(Record, len(Keys))
	for _, k := range Keys {
		raw, ok := fields[string(k)]
		if !ok || bytes.Equal(raw, []byte("null")) {
			continue
		}
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("discipline %q: expected boolean: %w", string(k), err)
		}
		decoded[k] = v
	}

	*r = decoded
	return nil
}

// ParseJSON is a convenience wrapper around UnmarshalJSON for raw strings.
func ParseJSON(s string) (Record, error) {
	var r Record
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return nil, err
	}
	return r, nil
}
