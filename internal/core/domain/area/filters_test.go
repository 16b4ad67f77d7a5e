package area_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodrisk/forms-data/go/internal/core/domain/area"
)

func ids(areas []area.Area) []area.ID {
	out := make([]area.ID, 0, len(areas))
	for _, a := range areas {
		out = append(out, a.ID)
	}
	return out
}

func TestByType(t *testing.T) {
	assert.Equal(t, []area.ID{1, 2}, ids(area.ByType(fixture(), area.TypeEAArea)))
	assert.Equal(t, []area.ID{100, 101, 102}, ids(area.ByType(fixture(), area.TypeRMA)))
	assert.Empty(t, area.ByType(fixture(), "County"))
	assert.NotNil(t, area.ByType(nil, area.TypeRMA))
	assert.Empty(t, area.ByType(fixture(), ""))
}

func TestByParentID_NumberAndStringMatchTheSame(t *testing.T) {
	areas := fixture()
	for _, parent := range []area.ID{1, 2, 10, 11, 100, 999} {
		fromNumber := area.ByParentID(areas, int(parent))
		fromString := area.ByParentID(areas, parent.String())
		assert.Equal(t, fromNumber, fromString, "parent %d", parent)
	}
	assert.Equal(t, []area.ID{10, 11}, ids(area.ByParentID(areas, 1)))
}

func TestByParentID_InvalidMatchesNothing(t *testing.T) {
	assert.Empty(t, area.ByParentID(fixture(), "abc"))
	assert.Empty(t, area.ByParentID(fixture(), nil))
	assert.Empty(t, area.ByParentID(nil, 1))
}

func TestByParentIDs(t *testing.T) {
	areas := []area.Area{
		{ID: 1, AreaType: area.TypeEAArea},
		{ID: 10, AreaType: area.TypePSOArea, ParentID: pid(1)},
		{ID: 11, AreaType: area.TypePSOArea, ParentID: pid(1)},
	}
	got := area.ByParentIDs(areas, []string{"1"})
	require.Len(t, got, 2)
	assert.Equal(t, []area.ID{10, 11}, ids(got))

	assert.Equal(t, []area.ID{10, 11, 20}, ids(area.ByParentIDs(fixture(), []any{"1", 2, "nope"})))
	assert.Empty(t, area.ByParentIDs(fixture(), []string{"nope"}))
	assert.Empty(t, area.ByParentIDs(fixture(), []area.ID{}))
}

func TestExcludingIDs(t *testing.T) {
	got := area.ExcludingIDs(fixture(), []string{"1", "100", "junk"})
	assert.NotContains(t, ids(got), area.ID(1))
	assert.NotContains(t, ids(got), area.ID(100))
	assert.Len(t, got, len(fixture())-2)
	assert.Len(t, area.ExcludingIDs(fixture(), []int{}), len(fixture()))
}

func TestExcludingIDs_RoundTripWithByType(t *testing.T) {
	areas := fixture()
	exclude := []area.ID{10, 20, 100}
	for _, typ := range []area.Type{area.TypeEAArea, area.TypePSOArea, area.TypeRMA} {
		got := area.ExcludingIDs(area.ByType(areas, typ), exclude)
		gotIDs := ids(got)
		for _, id := range exclude {
			assert.NotContains(t, gotIDs, id)
		}
		for _, a := range areas {
			if a.AreaType == typ && !containsID(exclude, a.ID) {
				assert.Contains(t, gotIDs, a.ID)
			}
		}
		assert.Equal(t, got, area.ByTypeExcludingIDs(areas, typ, exclude))
	}
}

func containsID(list []area.ID, id area.ID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func TestByID(t *testing.T) {
	a, ok := area.ByID(fixture(), "11")
	require.True(t, ok)
	assert.Equal(t, "Somerset", a.Name)

	_, ok = area.ByID(fixture(), 999)
	assert.False(t, ok)
	_, ok = area.ByID(fixture(), "eleven")
	assert.False(t, ok)
	_, ok = area.ByID(nil, 1)
	assert.False(t, ok)
}

func TestByTypeAndParent(t *testing.T) {
	got := area.ByTypeAndParent(fixture(), area.TypeRMA, "10")
	assert.Equal(t, []area.ID{100, 101}, ids(got))
	assert.Empty(t, area.ByTypeAndParent(fixture(), area.TypePSOArea, 10))
}

func TestGroupByParents_OrderAndOmission(t *testing.T) {
	areas := fixture()

	groups := area.GroupByParents(areas, []area.ID{2, 1})
	require.Len(t, groups, 2)
	assert.Equal(t, area.GroupParent{ID: 2, Name: "Thames"}, groups[0].Parent)
	assert.Equal(t, []area.ID{20}, ids(groups[0].Children))
	assert.Equal(t, area.GroupParent{ID: 1, Name: "Wessex"}, groups[1].Parent)
	assert.Equal(t, []area.ID{10, 11}, ids(groups[1].Children))

	// 100 is an RMA with no children; 999 does not exist.
	groups = area.GroupByParents(areas, []string{"100", "10", "999"})
	require.Len(t, groups, 1)
	assert.Equal(t, area.ID(10), groups[0].Parent.ID)
}

func TestGroupByParents_SkipsParentsWithoutChildren(t *testing.T) {
	areas := []area.Area{
		{ID: 1, Name: "P1", AreaType: area.TypeEAArea},
		{ID: 2, Name: "P2", AreaType: area.TypeEAArea},
		{ID: 10, Name: "C", AreaType: area.TypePSOArea, ParentID: pid(1)},
	}
	groups := area.GroupByParents(areas, []area.ID{2, 1})
	require.Len(t, groups, 1)
	assert.Equal(t, area.ID(1), groups[0].Parent.ID)
	assert.Empty(t, area.GroupByParents(areas, []string{}))
}
