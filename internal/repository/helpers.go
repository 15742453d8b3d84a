package repository

import (
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	// timeLayout keeps fractional seconds fixed-width so created_at sorts as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
	listSep    = ";"
)

// joinList flattens a roll or course list into one column.
func joinList(items []string) string {
	return strings.Join(items, listSep)
}

// splitList reverses joinList. An empty column yields nil.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSep)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
