// Package timex provides time helpers shared across the project:
// a JSON-friendly Duration type and a Clock abstraction that lets
// services be tested against a controlled logical clock.
package timex

import (
	"encoding/json"
	"errors"
	"time"
)

// Duration wraps time.Duration to support JSON unmarshalling from both
// string values such as "30m" and integer nanoseconds.
type Duration struct {
	time.Duration
}

// UnmarshalJSON parses either a duration string ("24h", "15m") or a
// numeric nanosecond value.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// MarshalJSON renders the duration as its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
