package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/floodrisk/forms-data/go/internal/application/services"
	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
	"github.com/floodrisk/forms-data/go/internal/core/domain/area"
	"github.com/floodrisk/forms-data/go/internal/core/ports"
	"github.com/floodrisk/forms-data/go/test/mocks"
)

const hierarchy = `{"success":true,"data":[
	{"id":1,"name":"Wessex","area_type":"EA Area","parent_id":null},
	{"id":2,"name":"Thames","area_type":"EA Area","parent_id":null},
	{"id":10,"name":"Bristol","area_type":"PSO Area","parent_id":1},
	{"id":11,"name":"Bath","area_type":"PSO Area","parent_id":"1"},
	{"id":20,"name":"Reading","area_type":"PSO Area","parent_id":2},
	{"id":100,"name":"Avon RMA","area_type":"RMA","parent_id":10}
]}`

func newAreaService(res api.Result) (ports.AreaService, *mocks.AreaCacheMock, *mocks.AreaFetcherMock) {
	cache := &mocks.AreaCacheMock{StateValue: ports.CacheActive}
	fetcher := &mocks.AreaFetcherMock{FetchAreasFn: func(context.Context) api.Result { return res }}
	return impl.NewAreaService(cache, fetcher, nil), cache, fetcher
}

func ids(areas []area.Area) []area.ID {
	out := make([]area.ID, 0, len(areas))
	for _, a := range areas {
		out = append(out, a.ID)
	}
	return out
}

func TestListAreas_Filters(t *testing.T) {
	svc, _, _ := newAreaService(api.Succeeded(200, []byte(hierarchy)))
	ctx := context.Background()

	assert.Len(t, svc.ListAreas(ctx, ports.AreaQuery{}), 6)
	assert.Equal(t, []area.ID{1, 2}, ids(svc.ListAreas(ctx, ports.AreaQuery{Type: area.TypeEAArea})))
	assert.Equal(t, []area.ID{10, 11}, ids(svc.ListAreas(ctx, ports.AreaQuery{
		Type: area.TypePSOArea, ParentIDs: []area.ID{1},
	})))
	assert.Equal(t, []area.ID{11, 20}, ids(svc.ListAreas(ctx, ports.AreaQuery{
		Type: area.TypePSOArea, ExcludeIDs: []area.ID{10},
	})))
}

func TestListAreas_UnavailableIsEmpty(t *testing.T) {
	svc, _, _ := newAreaService(api.NetworkError("connection refused"))
	got := svc.ListAreas(context.Background(), ports.AreaQuery{Type: area.TypeRMA})
	require.NotNil(t, got)
	assert.Empty(t, got)

	_, ok := svc.GetArea(context.Background(), 1)
	assert.False(t, ok)
	assert.Empty(t, svc.GroupChildren(context.Background(), []area.ID{1}))
}

func TestGetArea(t *testing.T) {
	svc, _, _ := newAreaService(api.Succeeded(200, []byte(hierarchy)))
	a, ok := svc.GetArea(context.Background(), 100)
	require.True(t, ok)
	assert.Equal(t, "Avon RMA", a.Name)
	require.NotNil(t, a.ParentID)
	assert.Equal(t, area.ID(10), *a.ParentID)

	_, ok = svc.GetArea(context.Background(), 999)
	assert.False(t, ok)
}

func TestGroupChildren_KeepsParentOrder(t *testing.T) {
	svc, _, _ := newAreaService(api.Succeeded(200, []byte(hierarchy)))
	groups := svc.GroupChildren(context.Background(), []area.ID{2, 1, 100})
	require.Len(t, groups, 2)
	assert.Equal(t, area.ID(2), groups[0].Parent.ID)
	assert.Equal(t, []area.ID{20}, ids(groups[0].Children))
	assert.Equal(t, "Wessex", groups[1].Parent.Name)
	assert.Equal(t, []area.ID{10, 11}, ids(groups[1].Children))
}

func TestGetCachedAreas_ReportsSource(t *testing.T) {
	svc, cache, fetcher := newAreaService(api.Succeeded(200, []byte(hierarchy)))
	cache.GetCachedFn = func(ctx context.Context, fetch ports.AreaFetchFunc) ports.AreaLookup {
		return ports.AreaLookup{Areas: []area.Area{{ID: 1}}, Source: ports.AreaSourceCached}
	}
	got := svc.GetCachedAreas(context.Background())
	assert.Equal(t, ports.AreaSourceCached, got.Source)
	assert.Zero(t, fetcher.Calls)
}

func TestRefreshAreas(t *testing.T) {
	svc, cache, fetcher := newAreaService(api.Succeeded(200, []byte(hierarchy)))
	require.NoError(t, svc.RefreshAreas(context.Background()))
	assert.Equal(t, 1, cache.Invalidated)
	assert.Equal(t, 1, fetcher.Calls)
	assert.Equal(t, ports.CacheActive, svc.CacheState())

	cache.InvalidateFn = func(context.Context) error { return errors.New("redis down") }
	assert.Error(t, svc.RefreshAreas(context.Background()))
	assert.Equal(t, 1, fetcher.Calls)
}
