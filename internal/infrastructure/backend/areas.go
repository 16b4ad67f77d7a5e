package backend

import (
	"context"
	"net/http"

	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

// AreasPath is the upstream endpoint returning the full area list.
const AreasPath = "/api/v1/areas"

// AreaFetcher reads the area list through a BackendClient.
type AreaFetcher struct {
	client ports.BackendClient
}

func NewAreaFetcher(client ports.BackendClient) *AreaFetcher {
	return &AreaFetcher{client: client}
}

// FetchAreas returns the raw upstream result for GET /api/v1/areas.
func (f *AreaFetcher) FetchAreas(ctx context.Context) api.Result {
	return f.client.Request(ctx, AreasPath, api.RequestOptions{Method: http.MethodGet})
}
