package backend

import (
	"context"
	"net/http"

	"github.com/floodrisk/forms-data/go/internal/core/domain/account"
	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

const (
	AccountRequestPath = "/api/v1/account-request"
	AccountsPath       = "/api/v1/accounts"
)

// AccountClient wraps the account endpoints of the upstream API.
type AccountClient struct {
	client ports.BackendClient
}

func NewAccountClient(client ports.BackendClient) *AccountClient {
	return &AccountClient{client: client}
}

// SubmitAccountRequest posts a prepared account request.
func (a *AccountClient) SubmitAccountRequest(ctx context.Context, req *account.Request) api.Result {
	return a.client.Request(ctx, AccountRequestPath, api.RequestOptions{Method: http.MethodPost, Body: req})
}

// FetchAccounts lists accounts matching q.
func (a *AccountClient) FetchAccounts(ctx context.Context, q account.Query) api.Result {
	path := AccountsPath
	if enc := q.Values().Encode(); enc != "" {
		path += "?" + enc
	}
	return a.client.Request(ctx, path, api.RequestOptions{Method: http.MethodGet})
}
