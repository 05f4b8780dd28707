package monarch

import (
	"context"

	"github.com/pkg/errors"
)

// institutionService implements the InstitutionService interface
type institutionService struct {
	client *Client
}

// List retrieves the institutions linked to the household. Monarch exposes
// institutions through credentials, so the same institution can appear once
// per credential; results are deduplicated by institution ID, keeping the
// first occurrence.
func (s *institutionService) List(ctx context.Context) ([]*Institution, error) {
	query := s.client.loadQuery("institutions/credentials.graphql")

	var result struct {
		Credentials []struct {
			ID             string `json:"id"`
			UpdateRequired bool   `json:"updateRequired"`
			DataProvider   string `json:"dataProvider"`
			Institution    *struct {
				ID                 string `json:"id"`
				PlaidInstitutionID string `json:"plaidInstitutionId"`
				Name               string `json:"name"`
				Status             string `json:"status"`
				PrimaryColor       string `json:"primaryColor"`
				URL                string `json:"url"`
			} `json:"institution"`
		} `json:"credentials"`
	}

	if err := s.client.executeGraphQL(ctx, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list institutions")
	}

	seen := make(map[string]bool, len(result.Credentials))
	institutions := make([]*Institution, 0, len(result.Credentials))
	for _, cred := range result.Credentials {
		if cred.Institution == nil || seen[cred.Institution.ID] {
			continue
		}
		seen[cred.Institution.ID] = true
		institutions = append(institutions, &Institution{
			ID:                 cred.Institution.ID,
			PlaidInstitutionID: cred.Institution.PlaidInstitutionID,
			Name:               cred.Institution.Name,
			Status:             cred.Institution.Status,
			PrimaryColor:       cred.Institution.PrimaryColor,
			URL:                cred.Institution.URL,
			UpdateRequired:     cred.UpdateRequired,
			DataProvider:       cred.DataProvider,
		})
	}

	return institutions, nil
}
