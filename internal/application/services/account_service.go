package services

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/floodrisk/forms-data/go/internal/core/domain/account"
	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

type AccountService struct {
	client ports.AccountClient
	logger *logrus.Logger
}

func NewAccountService(client ports.AccountClient, logger *logrus.Logger) ports.AccountService {
	return &AccountService{client: client, logger: logger}
}

// SubmitAccountRequest forwards req upstream. A request without areas is
// rejected locally with the same error shape the upstream API uses.
func (s *AccountService) SubmitAccountRequest(ctx context.Context, req *account.Request) api.Result {
	if req == nil || len(req.Areas) == 0 {
		return api.Result{
			Status: http.StatusBadRequest,
			Errors: api.ErrorList(api.Error{ErrorCode: "AREAS_REQUIRED", Message: "At least one area must be selected", Field: "areas"}),
		}
	}
	res := s.client.SubmitAccountRequest(ctx, req)
	if s.logger != nil {
		entry := s.logger.WithFields(logrus.Fields{"status": res.Status, "areas": len(req.Areas)})
		if res.Success {
			entry.Info("account request submitted")
		} else {
			entry.Warn("account request rejected")
		}
	}
	return res
}

func (s *AccountService) ListAccounts(ctx context.Context, q account.Query) api.Result {
	res := s.client.FetchAccounts(ctx, q)
	if !res.Success && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"status": res.Status, "status_filter": q.Status}).Warn("account listing failed")
	}
	return res
}
