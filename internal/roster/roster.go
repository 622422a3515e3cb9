// Package roster loads roster files and turns them into assignable units.
// All input validation lives here; the engine assumes validated units.
package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mhelling/podfit/schema"
	"gopkg.in/yaml.v3"
)

// Load reads a roster file. The format is chosen by extension: .json decodes
// as JSON, everything else as YAML.
func Load(path string) (*schema.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var r schema.Roster
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to parse roster JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to parse roster YAML: %w", err)
		}
	}
	return &r, nil
}

// BuildUnits validates a roster and produces the unit list for a generation
// run. Grouped players are bound into a single group unit at the position of
// their first member; everyone else becomes a solo unit in roster order.
func BuildUnits(r *schema.Roster) ([]schema.Unit, error) {
	if len(r.Players) == 0 {
		return nil, fmt.Errorf("roster has no players")
	}

	players := make(map[string]*schema.Participant, len(r.Players))
	order := make([]string, 0, len(r.Players))
	for i, row := range r.Players {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("player %d has an empty name", i+1)
		}
		if _, dup := players[name]; dup {
			return nil, fmt.Errorf("duplicate player name %q", name)
		}
		if len(row.Powers) == 0 {
			return nil, fmt.Errorf("player %q has no power ratings", name)
		}

		powers := make([]schema.PowerValue, 0, len(row.Powers))
		for _, v := range row.Powers {
			p := schema.PowerValue(v)
			if !p.OnGrid() {
				return nil, fmt.Errorf("player %q has power %v outside the %s-%s half-step grid",
					name, v, schema.MinPower, schema.MaxPower)
			}
			powers = append(powers, p)
		}

		players[name] = &schema.Participant{ID: "player:" + name, Name: name, Powers: powers}
		order = append(order, name)
	}

	// Resolve groups and remember which player belongs where.
	memberOf := make(map[string]string)
	groups := make(map[string]*schema.Group, len(r.Groups))
	for i, g := range r.Groups {
		gname := strings.TrimSpace(g.Name)
		if gname == "" {
			return nil, fmt.Errorf("group %d has an empty name", i+1)
		}
		if _, dup := groups[gname]; dup {
			return nil, fmt.Errorf("duplicate group name %q", gname)
		}
		if len(g.Players) == 0 {
			return nil, fmt.Errorf("group %q has no players", gname)
		}

		grp := &schema.Group{ID: "group:" + gname, Name: gname}
		for _, member := range g.Players {
			p, ok := players[member]
			if !ok {
				return nil, fmt.Errorf("group %q lists unknown player %q", gname, member)
			}
			if prev, taken := memberOf[member]; taken {
				return nil, fmt.Errorf("player %q is in both group %q and group %q", member, prev, gname)
			}
			memberOf[member] = gname
			grp.Members = append(grp.Members, p)
		}
		groups[gname] = grp
	}

	// Emit units in roster order; a group takes the slot of its first member.
	emitted := make(map[string]bool)
	units := make([]schema.Unit, 0, len(order))
	for _, name := range order {
		gname, inGroup := memberOf[name]
		if !inGroup {
			units = append(units, players[name])
			continue
		}
		if !emitted[gname] {
			emitted[gname] = true
			units = append(units, groups[gname])
		}
	}
	return units, nil
}
