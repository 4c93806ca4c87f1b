package skill

// DataLevel is an ordered classification of a skill's data-access cost,
// from least restrictive to most restrictive. Earlier record revisions
// called this riskLevel; the ingestion pipeline accepts both keys.
type DataLevel string

// DataLevels is an ordered tier list, least restrictive first. The set
// is injected configuration, not a fixed enum; these are the defaults.
type DataLevels []DataLevel

// DefaultDataLevels is the built-in tier ordering.
var DefaultDataLevels = DataLevels{"public", "internal", "sensitive", "restricted"}

// Least returns the least-restrictive tier, used as the normalization
// default. An empty tier list yields the empty level.
func (ls DataLevels) Least() DataLevel {
	if len(ls) == 0 {
		return ""
	}
	return ls[0]
}

// Contains reports whether l is a configured tier.
func (ls DataLevels) Contains(l DataLevel) bool {
	for _, v := range ls {
		if v == l {
			return true
		}
	}
	return false
}

// Rank returns the position of l in the ordering, or -1 if l is not a
// configured tier. Lower rank means less restrictive.
func (ls DataLevels) Rank(l DataLevel) int {
	for i, v := range ls {
		if v == l {
			return i
		}
	}
	return -1
}
