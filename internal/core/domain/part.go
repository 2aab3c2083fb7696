package domain

// OutputPart is one bounded-size chunk of rendered output.
// Concatenating a job's parts in Index order reproduces the full
// rendered output byte for byte.
type OutputPart struct {
	// Index is the zero-based position of the part.
	Index int

	// Content is the part's text.
	Content string
}

// JoinParts concatenates parts in slice order.
func JoinParts(parts []OutputPart) string {
	var total int
	for i := range parts {
		total += len(parts[i].Content)
	}
	out := make([]byte, 0, total)
	for i := range parts {
		out = append(out, parts[i].Content...)
	}
	return string(out)
}
