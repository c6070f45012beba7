package format

// Number formatting thresholds
const (
	Thousands = 1_000
	Millions  = 1_000_000
	Billions  = 1_000_000_000
	Trillions = 1_000_000_000_000
)

// Placeholder is rendered for values that were not reported. It must stay
// visually distinct from "0" and from an empty cell.
const Placeholder = "—"
