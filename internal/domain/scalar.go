package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is a form value as typed by the agent. Clients may send it as a JSON
// string or a JSON number; either way the raw text is kept for the reader.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("form field must be a string or a number, got %s", data)
	}
	*f = Field(n.String())
	return nil
}

func (f Field) String() string { return string(f) }
