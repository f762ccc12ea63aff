package transport

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number decodes a JSON number or a numeric string. null and "" leave it
// unset. Anything else that is not a finite number sets Invalid.
type Number struct {
	Value   float64
	Set     bool
	Invalid bool
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}

	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			n.Set, n.Invalid = true, true
			return nil
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}
	}

	n.Set = true
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		n.Invalid = true
		return nil
	}
	n.Value = v
	return nil
}

// Ptr returns nil when the number was not supplied.
func (n Number) Ptr() *float64 {
	if !n.Set || n.Invalid {
		return nil
	}
	v := n.Value
	return &v
}
