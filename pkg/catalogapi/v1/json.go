package catalogapiv1

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var jsonNull = []byte("null")

// UnmarshalJSON accepts both {"url": "..."} and a bare string.
func (i *Image) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*i = Image{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("image: %w", err)
		}
		*i = Image{URL: s}
		return nil
	}

	type plain Image
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("image: %w", err)
	}
	*i = Image(p)
	return nil
}

type Image struct {
	URL string `json:"url"`
}

// FlexString decodes a JSON string or number into its textual form.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("flex string: %w", err)
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}
