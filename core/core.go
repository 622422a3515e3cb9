// Package core implements the pod assignment engine: the target-size planner,
// the power compatibility model, virtual candidate expansion, and the
// backtracking search that partitions units into pods.
//
// The engine is a pure function of its inputs. It holds no state across runs,
// performs no I/O, and reports unsatisfiable input representationally (empty
// pods, long bench) rather than through errors.
package core

import (
	"math/rand"

	"github.com/mhelling/podfit/schema"
)

// Options configure a single generation run.
type Options struct {
	// Leniency controls how far a unit's power may sit from a pod's anchor.
	Leniency schema.LeniencyMode

	// Seed, when set, varies tie-breaking deterministically by shuffling the
	// anchor exploration order. A nil seed keeps the stable first-seen order.
	Seed *int64
}

// Generate partitions units into pods, maximizing the number of pods formed.
// Every input unit comes back exactly once, in a pod or on the bench. Units
// are borrowed for the duration of the call; callers must not mutate them
// while a run is outstanding.
func Generate(units []schema.Unit, opts Options) schema.AssignmentResult {
	total := schema.TotalSeats(units)
	if total < schema.MinPodSeats {
		return assembleResult(units, nil)
	}

	// Small cohorts always play: a single pod holds everyone, anchored at the
	// most common power across individual members. Groups are flattened so each
	// member's ratings carry their own weight instead of the group's three
	// representative anchors. The anchor is not re-validated against every
	// member; a 3-5 player night runs as one table regardless.
	if total <= 5 {
		pod := schema.Pod{
			Members: append([]schema.Unit(nil), units...),
			Anchor:  bestAnchor(flattenMembers(units)),
		}
		return assembleResult(units, []schema.Pod{pod})
	}

	var rng *rand.Rand
	if opts.Seed != nil {
		rng = rand.New(rand.NewSource(*opts.Seed))
	}

	pods := searchPods(units, PlanPodSizes(total), opts.Leniency.Tolerance(), rng)
	return assembleResult(units, pods)
}
