package schema

// Pod is a set of units that play one shared session at one anchor power.
type Pod struct {
	Members []Unit
	Anchor  PowerValue
}

// Seats returns the number of players seated in the pod.
func (p *Pod) Seats() int {
	return TotalSeats(p.Members)
}

// AssignmentResult is the partition a generation run produces. Every input
// unit appears exactly once, either inside a pod or in Unassigned.
type AssignmentResult struct {
	Pods       []Pod
	Unassigned []Unit
}

// SeatedCount returns the number of players placed into pods.
func (r *AssignmentResult) SeatedCount() int {
	var total int
	for i := range r.Pods {
		total += r.Pods[i].Seats()
	}
	return total
}

// TotalCount returns the number of players across pods and the bench.
func (r *AssignmentResult) TotalCount() int {
	return r.SeatedCount() + TotalSeats(r.Unassigned)
}
