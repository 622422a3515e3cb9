package core

// PlanPodSizes derives the ordered sequence of target pod sizes for a head
// count. Every size is at least 3 and the sizes sum to total; the plan is
// empty when total is below the minimum pod size. The sequence is a target,
// not a guarantee: the search may under-fill or skip a size when no valid
// combination exists.
func PlanPodSizes(total int) []int {
	// Small totals map to fixed plans.
	switch total {
	case 0, 1, 2:
		return nil
	case 3:
		return []int{3}
	case 4:
		return []int{4}
	case 5:
		return []int{5}
	case 6:
		return []int{3, 3}
	case 7:
		return []int{4, 3}
	case 8:
		return []int{4, 4}
	case 9:
		return []int{3, 3, 3}
	case 10:
		return []int{5, 5}
	}

	// Above 10, prefer pods of 4 and absorb the remainder.
	q, r := total/4, total%4
	var sizes []int
	appendFours := func(n int) {
		for range n {
			sizes = append(sizes, 4)
		}
	}

	switch r {
	case 1:
		// Merge the shortfall into one pod of 5. total > 10 guarantees q >= 2.
		appendFours(q - 2)
		sizes = append(sizes, 5, 4)
	case 2:
		// Convert one pod of 4 into two pods of 3.
		appendFours(q - 1)
		sizes = append(sizes, 3, 3)
	case 3:
		appendFours(q)
		sizes = append(sizes, 3)
	default: // r == 0
		appendFours(q)
	}

	return sizes
}
