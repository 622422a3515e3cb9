package core

import (
	"math/rand"
	"sort"

	"github.com/mhelling/podfit/schema"
)

// podDraft is an in-progress pod: the candidates chosen for it and the anchor
// derived from their powers.
type podDraft struct {
	members []candidate
	anchor  schema.PowerValue
}

// searcher carries the mutable state of one backtracking run.
type searcher struct {
	tolerance  float64
	candidates []candidate
	buckets    map[schema.PowerValue][]int // candidate indices by grid anchor, exact-match fast path
	used       map[string]bool             // unit ids consumed by the current branch
	rng        *rand.Rand

	current []podDraft
	best    []podDraft
	bestSet bool
}

// searchPods runs the backtracking optimizer: one target size per recursion
// level, exploring every viable anchor at each level plus the option of
// skipping the level entirely, keeping the solution with the most pods.
func searchPods(units []schema.Unit, targets []int, tolerance float64, rng *rand.Rand) []schema.Pod {
	if len(units) == 0 || len(targets) == 0 {
		return nil
	}

	s := &searcher{
		tolerance:  tolerance,
		candidates: expandCandidates(units),
		buckets:    make(map[schema.PowerValue][]int),
		used:       make(map[string]bool),
		rng:        rng,
	}
	for i, c := range s.candidates {
		key := schema.RoundToGrid(float64(c.anchor))
		s.buckets[key] = append(s.buckets[key], i)
	}

	s.recurse(targets)

	pods := make([]schema.Pod, 0, len(s.best))
	for _, draft := range s.best {
		members := make([]schema.Unit, 0, len(draft.members))
		for _, c := range draft.members {
			members = append(members, c.unit)
		}
		pods = append(pods, schema.Pod{Members: members, Anchor: draft.anchor})
	}
	return pods
}

func (s *searcher) recurse(targets []int) {
	// This branch cannot beat the best solution even if every remaining
	// target fills.
	if s.bestSet && len(s.current)+len(targets) <= len(s.best) {
		return
	}

	if len(targets) == 0 {
		if !s.bestSet || len(s.current) > len(s.best) {
			s.best = append([]podDraft(nil), s.current...)
			s.bestSet = true
		}
		return
	}

	target := targets[0]
	for _, base := range s.openAnchors() {
		draft, ok := s.fillPod(base, target)
		if !ok {
			continue
		}

		// Consuming a unit retires every one of its virtual anchors.
		for _, c := range draft.members {
			s.used[c.unit.UnitID()] = true
		}
		s.current = append(s.current, draft)

		s.recurse(targets[1:])

		s.current = s.current[:len(s.current)-1]
		for _, c := range draft.members {
			delete(s.used, c.unit.UnitID())
		}
	}

	// Abandoning the current target size keeps the search alive when the
	// size cannot be filled.
	s.recurse(targets[1:])
}

// openAnchors returns the distinct anchor values observed among unused
// candidates, in first-seen order. With a seeded run the order is shuffled so
// ties between equally good solutions break differently.
func (s *searcher) openAnchors() []schema.PowerValue {
	var anchors []schema.PowerValue
	seen := make(map[schema.PowerValue]bool)
	for _, c := range s.candidates {
		if s.used[c.unit.UnitID()] || seen[c.anchor] {
			continue
		}
		seen[c.anchor] = true
		anchors = append(anchors, c.anchor)
	}
	if s.rng != nil {
		s.rng.Shuffle(len(anchors), func(i, j int) {
			anchors[i], anchors[j] = anchors[j], anchors[i]
		})
	}
	return anchors
}

// fillPod tries to build one pod of the target size around the base anchor.
// Membership is tested anchor-vs-base, not pairwise, so accepted members can
// span up to twice the tolerance across the pod.
func (s *searcher) fillPod(base schema.PowerValue, target int) (podDraft, bool) {
	// Gather the tolerance-compatible set, one candidate per unit.
	var pool []candidate
	taken := make(map[string]bool)
	if s.tolerance == 0 {
		for _, idx := range s.buckets[schema.RoundToGrid(float64(base))] {
			c := s.candidates[idx]
			if s.used[c.unit.UnitID()] || taken[c.unit.UnitID()] {
				continue
			}
			taken[c.unit.UnitID()] = true
			pool = append(pool, c)
		}
	} else {
		for _, c := range s.candidates {
			if s.used[c.unit.UnitID()] || taken[c.unit.UnitID()] {
				continue
			}
			if !withinTolerance(c.anchor, base, s.tolerance) {
				continue
			}
			taken[c.unit.UnitID()] = true
			pool = append(pool, c)
		}
	}

	// Larger units first: groups are harder to place later.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].unit.Size() > pool[j].unit.Size()
	})

	var members []candidate
	seats := 0
	for _, c := range pool {
		if seats+c.unit.Size() > target {
			continue
		}
		members = append(members, c)
		seats += c.unit.Size()
		if seats == target {
			break
		}
	}

	if seats < schema.MinPodSeats {
		return podDraft{}, false
	}

	var sum float64
	for _, c := range members {
		sum += float64(c.anchor)
	}
	anchor := schema.RoundToGrid(sum / float64(len(members)))

	return podDraft{members: members, anchor: anchor}, true
}
