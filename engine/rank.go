package engine

// Candidate is one ranked edit target surfaced to the UI.
type Candidate struct {
	Target string   `json:"target" yaml:"target"`
	Reason NodeKind `json:"reason" yaml:"reason"`
}

// Rank maps each provenance node to a candidate, deduplicating by
// (target, reason) while preserving first-seen order. Ranking is pure
// insertion order; no priority is imposed among reasons.
func Rank(nodes []ProvenanceNode) []Candidate {
	candidates := []Candidate{}
	seen := map[Candidate]bool{}
	for _, node := range nodes {
		c := Candidate{Target: node.Target, Reason: node.Kind}
		if seen[c] {
			continue
		}
		seen[c] = true
		candidates = append(candidates, c)
	}
	return candidates
}

// AppendCallsite appends the element's own callsite candidate unless an
// identical (target, callsite) entry is already present, guaranteeing every
// element at least one candidate.
func AppendCallsite(candidates []Candidate, target string) []Candidate {
	callsite := Candidate{Target: target, Reason: KindCallsite}
	for _, c := range candidates {
		if c == callsite {
			return candidates
		}
	}
	return append(candidates, callsite)
}
