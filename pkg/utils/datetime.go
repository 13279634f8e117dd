package utils

import "time"

// CompactTimestamp returns the current time as yyyyMMddHHmmss, used to
// qualify export file names so concurrent exports never collide.
func CompactTimestamp() string {
	return time.Now().Format("20060102150405")
}

// FormatDateTime renders a time pointer for spreadsheet cells and JSON
// summaries. Nil renders as the empty string.
func FormatDateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

// ParseDate accepts the date layouts that appear in import sheets.
// Empty input returns nil without error.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02",
		"2006/01/02",
	}
	var lastErr error
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		} else {
			lastErr = err
		}
	}
	return nil, lastErr
}
