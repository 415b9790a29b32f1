package filter

import "strings"

// Rules is a declarative keyword predicate over a candidate's text. All
// matching is case-insensitive substring search. Evaluation order: Deny
// rejects immediately, Accept and Allow pass immediately, then Pairs
// (both sides must match), then group scoring.
type Rules struct {
	Deny   []string // reject if any present
	Accept []string // accept if any present, checked right after Deny
	Allow  []string // accept if any present
	Pairs  []Pair   // accept if both sides of any pair are present

	// group scoring: accept when at least MinGroups of Groups match and at
	// least one of the first CoreGroups groups is among the matches
	Groups     [][]string
	MinGroups  int
	CoreGroups int
}

// Pair requires one keyword from each side to be present.
type Pair struct {
	Left  []string
	Right []string
}

// Match reports whether the text passes the rule set.
func (r Rules) Match(text string) bool {
	t := strings.ToLower(text)

	if containsAny(t, r.Deny) {
		return false
	}
	if containsAny(t, r.Accept) {
		return true
	}
	if containsAny(t, r.Allow) {
		return true
	}
	for _, p := range r.Pairs {
		if containsAny(t, p.Left) && containsAny(t, p.Right) {
			return true
		}
	}

	if r.MinGroups > 0 {
		matched, coreHit := 0, false
		for i, g := range r.Groups {
			if !containsAny(t, g) {
				continue
			}
			matched++
			if i < r.CoreGroups {
				coreHit = true
			}
		}
		if matched >= r.MinGroups && (r.CoreGroups == 0 || coreHit) {
			return true
		}
	}

	return false
}

func containsAny(t string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
