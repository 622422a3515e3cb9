package core

import "github.com/mhelling/podfit/schema"

// assembleResult reconciles the chosen pods against the full input, computing
// the bench by unit-id identity so a group is present or absent as a whole.
// The union of pod members and bench is exactly the input unit set.
func assembleResult(units []schema.Unit, pods []schema.Pod) schema.AssignmentResult {
	seated := make(map[string]bool)
	for i := range pods {
		for _, u := range pods[i].Members {
			seated[u.UnitID()] = true
		}
	}

	unassigned := make([]schema.Unit, 0)
	for _, u := range units {
		if !seated[u.UnitID()] {
			unassigned = append(unassigned, u)
		}
	}

	return schema.AssignmentResult{Pods: pods, Unassigned: unassigned}
}
