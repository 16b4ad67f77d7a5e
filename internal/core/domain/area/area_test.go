package area_test

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodrisk/forms-data/go/internal/core/domain/area"
)

func pid(v area.ID) *area.ID { return &v }

func fixture() []area.Area {
	return []area.Area{
		{ID: 1, Name: "Wessex", AreaType: area.TypeEAArea},
		{ID: 2, Name: "Thames", AreaType: area.TypeEAArea},
		{ID: 10, Name: "Avon", AreaType: area.TypePSOArea, ParentID: pid(1)},
		{ID: 11, Name: "Somerset", AreaType: area.TypePSOArea, ParentID: pid(1)},
		{ID: 20, Name: "West Thames", AreaType: area.TypePSOArea, ParentID: pid(2)},
		{ID: 100, Name: "Bath RMA", AreaType: area.TypeRMA, ParentID: pid(10)},
		{ID: 101, Name: "Bristol RMA", AreaType: area.TypeRMA, ParentID: pid(10)},
		{ID: 102, Name: "Taunton RMA", AreaType: area.TypeRMA, ParentID: pid(11)},
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		in   any
		want area.ID
		ok   bool
	}{
		{5, 5, true},
		{"5", 5, true},
		{" 42 ", 42, true},
		{int64(7), 7, true},
		{float64(3), 3, true},
		{3.5, 0, false},
		{math.NaN(), 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{nil, 0, false},
		{json.Number("12"), 12, true},
		{json.Number("10.0"), 10, true},
		{json.Number("1e2"), 100, true},
		{json.Number("10.5"), 0, false},
		{area.ID(9), 9, true},
		{true, 0, false},
	}
	for _, tc := range cases {
		got, ok := area.ParseID(tc.in)
		assert.Equal(t, tc.ok, ok, "input %#v", tc.in)
		assert.Equal(t, tc.want, got, "input %#v", tc.in)
	}
}

func TestParseIDs_DropsInvalid(t *testing.T) {
	ids := area.ParseIDs([]string{"1", "x", "3", ""})
	require.Equal(t, []area.ID{1, 3}, ids)
}

func TestAreaUnmarshal_NormalisesStringIDs(t *testing.T) {
	var got []area.Area
	raw := `[
		{"id": "1", "name": "Wessex", "area_type": "EA Area"},
		{"id": 10, "name": "Avon", "area_type": "PSO Area", "parent_id": "1"},
		{"id": 11, "name": "Somerset", "area_type": "PSO Area", "parent_id": 1},
		{"id": 12, "name": "Orphan", "area_type": "PSO Area", "parent_id": null},
		{"id": 13, "name": "Bad parent", "area_type": "PSO Area", "parent_id": "n/a"}
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	require.Len(t, got, 5)
	assert.Equal(t, area.ID(1), got[0].ID)
	assert.Nil(t, got[0].ParentID)
	require.NotNil(t, got[1].ParentID)
	assert.Equal(t, area.ID(1), *got[1].ParentID)
	assert.Equal(t, *got[1].ParentID, *got[2].ParentID)
	assert.Nil(t, got[3].ParentID)
	assert.Nil(t, got[4].ParentID)
}

func TestDecodeList_KeepsIntegralFloatIDs(t *testing.T) {
	got, err := area.DecodeList([]byte(`[
		{"id": 10.0, "name": "Avon", "area_type": "PSO Area", "parent_id": 1.0},
		{"id": 11, "name": "Somerset", "area_type": "PSO Area", "parent_id": 1}
	]`))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, area.ID(10), got[0].ID)
	require.NotNil(t, got[0].ParentID)
	assert.Equal(t, area.ID(1), *got[0].ParentID)
}

func TestAreaUnmarshal_RejectsMissingID(t *testing.T) {
	var a area.Area
	require.Error(t, json.Unmarshal([]byte(`{"name":"x","area_type":"RMA"}`), &a))
}

func TestAreaMarshal_WritesNumericIDs(t *testing.T) {
	b, err := json.Marshal(area.Area{ID: 10, Name: "Avon", AreaType: area.TypePSOArea, ParentID: pid(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":10,"name":"Avon","area_type":"PSO Area","parent_id":1}`, string(b))
}

func TestTypeParentType(t *testing.T) {
	assert.Equal(t, area.Type(""), area.TypeEAArea.ParentType())
	assert.Equal(t, area.TypeEAArea, area.TypePSOArea.ParentType())
	assert.Equal(t, area.TypePSOArea, area.TypeRMA.ParentType())
	assert.False(t, area.Type("County").Valid())
}

func TestValidate(t *testing.T) {
	assert.Empty(t, area.Validate(fixture()))

	broken := append(fixture(),
		area.Area{ID: 30, Name: "Misplaced", AreaType: area.TypePSOArea, ParentID: pid(100)},
		area.Area{ID: 31, Name: "Lost", AreaType: area.TypeRMA, ParentID: pid(999)},
		area.Area{ID: 32, Name: "Rootless", AreaType: area.TypeRMA},
	)
	assert.Len(t, area.Validate(broken), 3)
}
