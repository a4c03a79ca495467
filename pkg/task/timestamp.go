package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layouts accepted when decoding timestamps. Servers that serialise local
// date-times omit the zone; those are read in the local zone.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTime reads an ISO-8601 timestamp with or without a zone offset.
func ParseTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("task: unrecognised timestamp %q", v)
}

// FormatTime renders t the way timestamps are sent on the wire.
func FormatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339Nano)
}

// Timestamp is a time.Time with the service's JSON encoding. A decoded value
// remembers the service's text and encodes back to it unchanged, so history
// sent back on an update is byte-for-byte what the service returned.
type Timestamp struct {
	time.Time

	raw string
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	if t.raw != "" {
		if parsed, err := ParseTime(t.raw); err == nil && parsed.Equal(t.Time) {
			return json.Marshal(t.raw)
		}
	}
	return json.Marshal(FormatTime(t.Time))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	t.raw = ""
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTime(timestamp)
	if err != nil {
		return err
	}
	t.Time, t.raw = parsed, timestamp
	return nil
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
