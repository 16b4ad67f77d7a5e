package ports

import (
	"context"

	"github.com/floodrisk/forms-data/go/internal/core/domain/account"
	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
)

// BackendClient issues requests to the upstream API. It never returns an error:
// every outcome, including transport failures, is encoded in the Result.
type BackendClient interface {
	Request(ctx context.Context, path string, opts api.RequestOptions) api.Result
}

// AreaFetcher loads the full area list from the upstream API.
type AreaFetcher interface {
	FetchAreas(ctx context.Context) api.Result
}

// AccountClient talks to the upstream account endpoints.
type AccountClient interface {
	SubmitAccountRequest(ctx context.Context, req *account.Request) api.Result
	FetchAccounts(ctx context.Context, q account.Query) api.Result
}
