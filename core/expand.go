package core

import "github.com/mhelling/podfit/schema"

// candidate pairs a unit with one admissible anchor power: one way the unit
// could seed or join a pod. A unit with several admissible powers appears
// once per power; consuming the unit retires all of its candidates.
type candidate struct {
	unit   schema.Unit
	anchor schema.PowerValue
}

// expandCandidates emits every virtual candidate for the given units. Solo
// players expand over each admissible power; groups expand over their three
// representative anchors only (see schema.Group.Anchors).
func expandCandidates(units []schema.Unit) []candidate {
	var out []candidate
	for _, u := range units {
		for _, p := range u.Anchors() {
			out = append(out, candidate{unit: u, anchor: p})
		}
	}
	return out
}
