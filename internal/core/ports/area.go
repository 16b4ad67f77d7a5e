package ports

import (
	"context"

	"github.com/floodrisk/forms-data/go/internal/core/domain/account"
	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
	"github.com/floodrisk/forms-data/go/internal/core/domain/area"
)

// AreaFetchFunc produces a fresh area result, normally AreaFetcher.FetchAreas.
type AreaFetchFunc func(ctx context.Context) api.Result

// AreaSource records which path produced an AreaLookup.
type AreaSource int

const (
	// AreaSourceUnavailable means no data could be produced.
	AreaSourceUnavailable AreaSource = iota
	// AreaSourceCached means the areas came from the cache segment.
	AreaSourceCached
	// AreaSourceFetched means the areas were fetched from upstream.
	AreaSourceFetched
)

func (s AreaSource) String() string {
	switch s {
	case AreaSourceCached:
		return "cached"
	case AreaSourceFetched:
		return "fetched"
	default:
		return "unavailable"
	}
}

// AreaLookup is the outcome of a cached area read. Areas is nil when
// Source is AreaSourceUnavailable.
type AreaLookup struct {
	Areas  []area.Area
	Source AreaSource
}

// OK reports whether the lookup produced data.
func (l AreaLookup) OK() bool { return l.Source != AreaSourceUnavailable }

// CacheState is the lifecycle state of a cache segment owner.
type CacheState int

const (
	CacheUninitialized CacheState = iota
	CacheActive
	CacheDisabled
)

func (s CacheState) String() string {
	switch s {
	case CacheActive:
		return "active"
	case CacheDisabled:
		return "disabled"
	default:
		return "uninitialized"
	}
}

// AreaCache memoises the area list. GetCached never fails; a cache problem
// falls back to calling fetch directly.
type AreaCache interface {
	GetCached(ctx context.Context, fetch AreaFetchFunc) AreaLookup
	Invalidate(ctx context.Context) error
	State() CacheState
}

// AreaQuery selects a subset of areas.
type AreaQuery struct {
	Type       area.Type
	ParentIDs  []area.ID
	ExcludeIDs []area.ID
}

// AreaService is the entry point handlers use to read areas.
type AreaService interface {
	GetCachedAreas(ctx context.Context) AreaLookup
	ListAreas(ctx context.Context, q AreaQuery) []area.Area
	GetArea(ctx context.Context, id area.ID) (area.Area, bool)
	GroupChildren(ctx context.Context, parentIDs []area.ID) []area.Group
	RefreshAreas(ctx context.Context) error
	CacheState() CacheState
}

// AccountService forwards account requests upstream.
type AccountService interface {
	SubmitAccountRequest(ctx context.Context, req *account.Request) api.Result
	ListAccounts(ctx context.Context, q account.Query) api.Result
}
