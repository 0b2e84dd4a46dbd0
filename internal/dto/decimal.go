package dto

import (
	"bytes"
	"encoding/json"
)

// Decimal holds a number sent either as a JSON number or as a string; parsing is left to the caller.
// Any other JSON value is kept verbatim so the caller sees it as unparseable.
type Decimal string

func (d *Decimal) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		*d = Decimal(b)
		return nil
	}
	*d = Decimal(n.String())
	return nil
}
