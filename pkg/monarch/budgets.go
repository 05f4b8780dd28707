package monarch

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// budgetService implements the BudgetService interface
type budgetService struct {
	client *Client
}

// List retrieves budgets for a date range
func (s *budgetService) List(ctx context.Context, startDate, endDate time.Time) ([]*Budget, error) {
	query := s.client.loadQuery("budgets/list.graphql")

	variables := map[string]interface{}{
		"startDate": startDate.Format("2006-01-02"),
		"endDate":   endDate.Format("2006-01-02"),
		"useV2":     true, // Use v2 API by default
	}

	var result struct {
		Budgets []*Budget `json:"budgets"`
	}

	if err := s.client.executeGraphQL(ctx, query, variables, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budgets")
	}

	return result.Budgets, nil
}
