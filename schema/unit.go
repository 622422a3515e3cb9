package schema

// Unit is the indivisible item the search places: a solo player or an
// inseparable group. The interface is sealed so every consumer can switch
// exhaustively over *Participant and *Group.
type Unit interface {
	// UnitID returns the opaque identity used for single-use accounting.
	// For a group this is the group id, never a member id.
	UnitID() string

	// Size returns the number of seats the unit occupies.
	Size() int

	// Anchors returns the admissible anchor powers the unit could seed a
	// pod with. Never empty for a validated unit.
	Anchors() []PowerValue

	sealedUnit()
}

// Participant is a single player with the power ratings chosen on their row.
// Powers keeps the order the player picked them in; the first entry is the
// player's primary rating.
type Participant struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Powers []PowerValue `json:"powers"`
}

// UnitID implements Unit.
func (p *Participant) UnitID() string { return p.ID }

// Size implements Unit. A participant always occupies one seat.
func (p *Participant) Size() int { return 1 }

// Anchors implements Unit: every admissible power is a candidate anchor.
func (p *Participant) Anchors() []PowerValue { return p.Powers }

func (p *Participant) sealedUnit() {}

// Group is an inseparable set of players that must land in the same pod.
// Groups are formed by the caller before generation; the engine never creates
// or dissolves one.
type Group struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Members []*Participant `json:"members"`
}

// UnitID implements Unit.
func (g *Group) UnitID() string { return g.ID }

// Size implements Unit: one seat per member.
func (g *Group) Size() int { return len(g.Members) }

// Anchors implements Unit. A group is represented by three anchors: the mean
// of its members' primary ratings (snapped to the grid), the lowest power any
// member reaches, and the highest. It deliberately does not expand over every
// member's every rating; group combinatorics grow with member count.
func (g *Group) Anchors() []PowerValue {
	if len(g.Members) == 0 {
		return nil
	}

	lo := g.Members[0].Powers[0]
	hi := lo
	var sum float64
	for _, m := range g.Members {
		sum += float64(m.Powers[0])
		for _, p := range m.Powers {
			if p < lo {
				lo = p
			}
			if p > hi {
				hi = p
			}
		}
	}
	mean := RoundToGrid(sum / float64(len(g.Members)))

	anchors := []PowerValue{mean}
	if lo != mean {
		anchors = append(anchors, lo)
	}
	if hi != mean && hi != lo {
		anchors = append(anchors, hi)
	}
	return anchors
}

func (g *Group) sealedUnit() {}

// TotalSeats sums the seat count of a unit slice.
func TotalSeats(units []Unit) int {
	var total int
	for _, u := range units {
		total += u.Size()
	}
	return total
}
