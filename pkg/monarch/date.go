package monarch

import (
	"fmt"
	"strings"
	"time"
)

// dateFormats are the layouts the API has been observed to emit,
// tried in order.
var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Date handles date-only JSON values alongside full timestamps.
type Date struct {
	time.Time
}

// UnmarshalJSON accepts any of the observed date layouts; null and the
// empty string decode to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)

	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, str); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("unable to parse date: %s", str)
}

// MarshalJSON emits the date-only form; the zero Date marshals as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, d.Time.Format("2006-01-02"))), nil
}

// String returns the date in YYYY-MM-DD form, or empty for the zero Date.
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}
