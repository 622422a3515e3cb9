package core

import (
	"math"

	"github.com/mhelling/podfit/schema"
)

// powerEpsilon absorbs floating error when comparing values on the 0.5 grid.
const powerEpsilon = 0.01

// withinTolerance reports whether two power values are close enough to share
// a pod under the given tolerance.
func withinTolerance(a, b schema.PowerValue, tolerance float64) bool {
	diff := math.Abs(float64(a) - float64(b))
	return diff < powerEpsilon || diff <= tolerance
}

// CommonAnchors returns the anchor powers every unit can reach within the
// tolerance, in first-seen order. Callers that reshuffle pods after
// generation use it to verify a pod still has a shared power level.
func CommonAnchors(units []schema.Unit, tolerance float64) []schema.PowerValue {
	if len(units) == 0 {
		return nil
	}

	var anchors []schema.PowerValue
	seen := make(map[schema.PowerValue]bool)
	for _, u := range units {
		for _, p := range u.Anchors() {
			if seen[p] {
				continue
			}
			seen[p] = true
			anchors = append(anchors, p)
		}
	}

	var common []schema.PowerValue
	for _, p := range anchors {
		reachable := true
		for _, u := range units {
			ok := false
			for _, q := range u.Anchors() {
				if withinTolerance(p, q, tolerance) {
					ok = true
					break
				}
			}
			if !ok {
				reachable = false
				break
			}
		}
		if reachable {
			common = append(common, p)
		}
	}
	return common
}

// flattenMembers expands every group into its individual members, leaving solo
// units as-is. Anchor counting over the result weighs each player's own
// ratings rather than a group's mean/lo/hi representatives.
func flattenMembers(units []schema.Unit) []schema.Unit {
	out := make([]schema.Unit, 0, len(units))
	for _, u := range units {
		if g, ok := u.(*schema.Group); ok {
			for _, m := range g.Members {
				out = append(out, m)
			}
			continue
		}
		out = append(out, u)
	}
	return out
}

// bestAnchor returns the power value with the highest occurrence count across
// all units' admissible powers, ties broken by first-seen order. It always
// returns a value for non-empty input and never validates that every unit
// admits it; the small-cohort path relies on that latitude.
func bestAnchor(units []schema.Unit) schema.PowerValue {
	counts := make(map[schema.PowerValue]int)
	var order []schema.PowerValue
	for _, u := range units {
		for _, p := range u.Anchors() {
			if counts[p] == 0 {
				order = append(order, p)
			}
			counts[p]++
		}
	}
	if len(order) == 0 {
		return 0
	}

	best := order[0]
	for _, p := range order[1:] {
		if counts[p] > counts[best] {
			best = p
		}
	}
	return best
}
