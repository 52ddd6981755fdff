package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cutplanner/internal/model"
)

func TestGroupByMaterial_PartitionsByThicknessAndFinish(t *testing.T) {
	pieces := []model.Piece{
		model.NewPiece("A", 800, 400, 19, "BLANC", 1),
		model.NewPiece("B", 600, 300, 19, "NOIR", 1),
		model.NewPiece("C", 500, 250, 19, "BLANC", 1),
		model.NewPiece("D", 400, 200, 16, "BLANC", 1),
	}

	groups := GroupByMaterial(pieces)

	require.Len(t, groups, 3)

	byKey := map[string]MaterialGroup{}
	for _, g := range groups {
		byKey[g.Key] = g
	}
	assert.Len(t, byKey["19|BLANC"].Pieces, 2)
	assert.Len(t, byKey["19|NOIR"].Pieces, 1)
	assert.Len(t, byKey["16|BLANC"].Pieces, 1)

	for _, g := range groups {
		for _, p := range g.Pieces {
			assert.Equal(t, g.Key, model.MaterialKey(p.Thickness, p.Finish))
		}
	}
}

func TestGroupByMaterial_DeterministicOrder(t *testing.T) {
	pieces := []model.Piece{
		model.NewPiece("A", 100, 100, 19, "NOIR", 1),
		model.NewPiece("B", 100, 100, 16, "BLANC", 1),
		model.NewPiece("C", 100, 100, 19, "BLANC", 1),
	}

	first := GroupByMaterial(pieces)
	second := GroupByMaterial(pieces)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
	}
}

func TestGroupByMaterial_Empty(t *testing.T) {
	assert.Empty(t, GroupByMaterial(nil))
}
