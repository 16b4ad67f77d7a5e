package mocks

import (
	"context"

	"github.com/floodrisk/forms-data/go/internal/core/domain/account"
	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
	"github.com/floodrisk/forms-data/go/internal/core/domain/area"
	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

// AreaFetcherMock is a lightweight mock for AreaFetcher
type AreaFetcherMock struct {
	FetchAreasFn func(ctx context.Context) api.Result
	Calls        int
}

func (m *AreaFetcherMock) FetchAreas(ctx context.Context) api.Result {
	m.Calls++
	if m.FetchAreasFn != nil {
		return m.FetchAreasFn(ctx)
	}
	return api.Succeeded(200, []byte(`[]`))
}

// AreaCacheMock passes through to fetch unless GetCachedFn is set.
type AreaCacheMock struct {
	GetCachedFn  func(ctx context.Context, fetch ports.AreaFetchFunc) ports.AreaLookup
	InvalidateFn func(ctx context.Context) error
	StateValue   ports.CacheState
	Invalidated  int
}

func (m *AreaCacheMock) GetCached(ctx context.Context, fetch ports.AreaFetchFunc) ports.AreaLookup {
	if m.GetCachedFn != nil {
		return m.GetCachedFn(ctx, fetch)
	}
	res := fetch(ctx)
	if !res.Success {
		return ports.AreaLookup{Source: ports.AreaSourceUnavailable}
	}
	areas, err := area.DecodeList(res.Data)
	if err != nil {
		return ports.AreaLookup{Source: ports.AreaSourceUnavailable}
	}
	return ports.AreaLookup{Areas: areas, Source: ports.AreaSourceFetched}
}

func (m *AreaCacheMock) Invalidate(ctx context.Context) error {
	m.Invalidated++
	if m.InvalidateFn != nil {
		return m.InvalidateFn(ctx)
	}
	return nil
}

func (m *AreaCacheMock) State() ports.CacheState { return m.StateValue }

// AccountClientMock is a lightweight mock for AccountClient
type AccountClientMock struct {
	SubmitAccountRequestFn func(ctx context.Context, req *account.Request) api.Result
	FetchAccountsFn        func(ctx context.Context, q account.Query) api.Result
}

func (m *AccountClientMock) SubmitAccountRequest(ctx context.Context, req *account.Request) api.Result {
	if m.SubmitAccountRequestFn != nil {
		return m.SubmitAccountRequestFn(ctx, req)
	}
	return api.Succeeded(201, nil)
}

func (m *AccountClientMock) FetchAccounts(ctx context.Context, q account.Query) api.Result {
	if m.FetchAccountsFn != nil {
		return m.FetchAccountsFn(ctx, q)
	}
	return api.Succeeded(200, []byte(`{"data":[]}`))
}

// AreaServiceMock is a lightweight mock for AreaService
type AreaServiceMock struct {
	GetCachedAreasFn func(ctx context.Context) ports.AreaLookup
	ListAreasFn      func(ctx context.Context, q ports.AreaQuery) []area.Area
	GetAreaFn        func(ctx context.Context, id area.ID) (area.Area, bool)
	GroupChildrenFn  func(ctx context.Context, parentIDs []area.ID) []area.Group
	RefreshAreasFn   func(ctx context.Context) error
	State            ports.CacheState
}

func (m *AreaServiceMock) GetCachedAreas(ctx context.Context) ports.AreaLookup {
	if m.GetCachedAreasFn != nil {
		return m.GetCachedAreasFn(ctx)
	}
	return ports.AreaLookup{Source: ports.AreaSourceUnavailable}
}

func (m *AreaServiceMock) ListAreas(ctx context.Context, q ports.AreaQuery) []area.Area {
	if m.ListAreasFn != nil {
		return m.ListAreasFn(ctx, q)
	}
	return []area.Area{}
}

func (m *AreaServiceMock) GetArea(ctx context.Context, id area.ID) (area.Area, bool) {
	if m.GetAreaFn != nil {
		return m.GetAreaFn(ctx, id)
	}
	return area.Area{}, false
}

func (m *AreaServiceMock) GroupChildren(ctx context.Context, parentIDs []area.ID) []area.Group {
	if m.GroupChildrenFn != nil {
		return m.GroupChildrenFn(ctx, parentIDs)
	}
	return []area.Group{}
}

func (m *AreaServiceMock) RefreshAreas(ctx context.Context) error {
	if m.RefreshAreasFn != nil {
		return m.RefreshAreasFn(ctx)
	}
	return nil
}

func (m *AreaServiceMock) CacheState() ports.CacheState { return m.State }

// AccountServiceMock is a lightweight mock for AccountService
type AccountServiceMock struct {
	SubmitAccountRequestFn func(ctx context.Context, req *account.Request) api.Result
	ListAccountsFn         func(ctx context.Context, q account.Query) api.Result
}

func (m *AccountServiceMock) SubmitAccountRequest(ctx context.Context, req *account.Request) api.Result {
	if m.SubmitAccountRequestFn != nil {
		return m.SubmitAccountRequestFn(ctx, req)
	}
	return api.Succeeded(201, nil)
}

func (m *AccountServiceMock) ListAccounts(ctx context.Context, q account.Query) api.Result {
	if m.ListAccountsFn != nil {
		return m.ListAccountsFn(ctx, q)
	}
	return api.Succeeded(200, []byte(`{"data":[]}`))
}
