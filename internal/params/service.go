// Package params resolves per-client and per-deployment configuration parameters
// by hierarchical name, the way the original credential issuer resolves its
// parameter-store keys.
package params

import (
	"context"
	"fmt"

	"record-check-service/internal/params/domain"
	"record-check-service/internal/params/repository"
)

const (
	personIdentityTableParam = "/common-cri-api/PersonIdentityTableName"
	sessionTableParam        = "/common-cri-api/SessionTableName"
	issuerParam              = "/common-cri-api/verifiable-credential/issuer"
)

func otgURLParam(clientID string) string {
	return fmt.Sprintf("/check-hmrc-cri-api/OtgUrl/%s", clientID)
}

func matchingURLParam(clientID string) string {
	return fmt.Sprintf("/check-hmrc-cri-api/NinoCheckUrl/%s", clientID)
}

// Service resolves the parameter set needed for one check invocation.
type Service struct {
	repo repository.Repository
}

// NewService returns a Service backed by the given repository.
func NewService(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// Resolve fetches the per-client parameters. Partial results are tolerated:
// names without a stored value resolve to empty strings, and only store
// failures return an error.
func (s *Service) Resolve(ctx context.Context, clientID string) (domain.Parameters, error) {
	otgName := otgURLParam(clientID)
	matchingName := matchingURLParam(clientID)

	values, err := s.repo.GetValues(ctx, []string{
		otgName,
		matchingName,
		personIdentityTableParam,
		sessionTableParam,
		issuerParam,
	})
	if err != nil {
		return domain.Parameters{}, fmt.Errorf("resolve parameters for client %s: %w", clientID, err)
	}

	return domain.Parameters{
		OtgURL:                  values[otgName],
		MatchingURL:             values[matchingName],
		PersonIdentityTableName: values[personIdentityTableParam],
		SessionTableName:        values[sessionTableParam],
		Issuer:                  values[issuerParam],
	}, nil
}
