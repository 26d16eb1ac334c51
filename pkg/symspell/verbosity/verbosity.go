// Package verbosity defines how many results a SymSpell lookup returns.
package verbosity

// Verbosity selects how many candidates Lookup returns.
type Verbosity int

const (
	// Top returns only the single best match.
	Top Verbosity = iota
	// Closest returns every match tied at the minimum distance found.
	Closest
	// All returns every match within the requested edit distance.
	All
)

func (v Verbosity) String() string {
	switch v {
	case Top:
		return "Top"
	case Closest:
		return "Closest"
	case All:
		return "All"
	default:
		return "Unknown"
	}
}
