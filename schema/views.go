package schema

// UnitView is a serialization-friendly projection of a Unit.
type UnitView struct {
	ID      string    `json:"id"`
	Kind    string    `json:"kind"` // "player" or "group"
	Name    string    `json:"name"`
	Seats   int       `json:"seats"`
	Powers  []float64 `json:"powers,omitempty"`  // player ratings
	Players []string  `json:"players,omitempty"` // group member names
}

// PodView is a serialization-friendly projection of a Pod.
type PodView struct {
	Anchor float64    `json:"anchor"`
	Seats  int        `json:"seats"`
	Units  []UnitView `json:"units"`
}

// ResultView is the enriched form of an AssignmentResult used by the JSON
// writer, the MCP tools and the history store.
type ResultView struct {
	Leniency   string     `json:"leniency"`
	Seated     int        `json:"seated"`
	Total      int        `json:"total"`
	Pods       []PodView  `json:"pods"`
	Unassigned []UnitView `json:"unassigned"`
}

// EnrichUnit converts a Unit into its view form.
func EnrichUnit(u Unit) UnitView {
	switch v := u.(type) {
	case *Participant:
		powers := make([]float64, len(v.Powers))
		for i, p := range v.Powers {
			powers[i] = float64(p)
		}
		return UnitView{ID: v.ID, Kind: "player", Name: v.Name, Seats: 1, Powers: powers}
	case *Group:
		players := make([]string, len(v.Members))
		for i, m := range v.Members {
			players[i] = m.Name
		}
		return UnitView{ID: v.ID, Kind: "group", Name: v.Name, Seats: v.Size(), Players: players}
	default:
		return UnitView{ID: u.UnitID(), Kind: "unknown", Seats: u.Size()}
	}
}

// EnrichResult converts an AssignmentResult into its view form.
func EnrichResult(res *AssignmentResult, mode LeniencyMode) ResultView {
	view := ResultView{
		Leniency:   string(mode),
		Seated:     res.SeatedCount(),
		Total:      res.TotalCount(),
		Pods:       make([]PodView, 0, len(res.Pods)),
		Unassigned: make([]UnitView, 0, len(res.Unassigned)),
	}
	for i := range res.Pods {
		pod := &res.Pods[i]
		pv := PodView{
			Anchor: float64(pod.Anchor),
			Seats:  pod.Seats(),
			Units:  make([]UnitView, 0, len(pod.Members)),
		}
		for _, u := range pod.Members {
			pv.Units = append(pv.Units, EnrichUnit(u))
		}
		view.Pods = append(view.Pods, pv)
	}
	for _, u := range res.Unassigned {
		view.Unassigned = append(view.Unassigned, EnrichUnit(u))
	}
	return view
}
