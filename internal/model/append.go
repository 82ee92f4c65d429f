package model

// Append returns a new sequence holding every record of existing, in order,
// followed by candidate. existing is never written to and the result never
// shares its backing array, so later appends on either side stay invisible
// to the other.
func Append(existing []Record, candidate Record) []Record {
	out := make([]Record, len(existing), len(existing)+1)
	copy(out, existing)
	return append(out, candidate)
}
