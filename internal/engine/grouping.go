package engine

import (
	"sort"

	"github.com/piwi3910/cutplanner/internal/model"
)

// MaterialGroup is the independent packing subproblem formed by all
// pieces sharing the same thickness and finish.
type MaterialGroup struct {
	Key      string
	Material model.Material
	Pieces   []model.Piece
}

// GroupByMaterial partitions pieces by exact (thickness, finish) pair.
// Pure function: no packing logic, no shared pieces across groups.
// Groups are returned in sorted key order so downstream cold starts are
// reproducible.
func GroupByMaterial(pieces []model.Piece) []MaterialGroup {
	byKey := make(map[string]*MaterialGroup)
	for _, p := range pieces {
		key := model.MaterialKey(p.Thickness, p.Finish)
		g, ok := byKey[key]
		if !ok {
			g = &MaterialGroup{
				Key: key,
				Material: model.Material{
					Thickness: p.Thickness,
					Finish:    p.Finish,
					Label:     p.Finish,
				},
			}
			byKey[key] = g
		}
		g.Pieces = append(g.Pieces, p)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]MaterialGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, *byKey[k])
	}
	return groups
}
