package cli

import "time"

// FormatDate renders t in the directory's compact dd-mm-yy form, as used on
// the comments screen. A zero time renders empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02-01-06")
}
