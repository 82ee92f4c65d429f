package model

import "strings"

// Record is the domain model for a todo entry.
// Only the display label is modeled.
type Record struct {
	Text string `json:"text"`
}

// Sequence is an ordered list of records. Display order is insertion order.
type Sequence = []Record

// Blank reports whether text is empty or whitespace-only.
func Blank(text string) bool {
	return strings.TrimSpace(text) == ""
}
