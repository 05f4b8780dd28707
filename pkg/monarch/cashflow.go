package monarch

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// cashflowService implements the CashflowService interface
type cashflowService struct {
	client *Client
}

// Get retrieves cashflow data grouped by category
func (s *cashflowService) Get(ctx context.Context, params *CashflowParams) (*Cashflow, error) {
	query := s.client.loadQuery("cashflow/get.graphql")

	variables := map[string]interface{}{
		"startDate": params.StartDate.Format("2006-01-02"),
		"endDate":   params.EndDate.Format("2006-01-02"),
	}

	if params.Limit > 0 {
		variables["limit"] = params.Limit
	}

	if len(params.AccountIDs) > 0 {
		variables["accountIds"] = params.AccountIDs
	}

	var result struct {
		Cashflow *Cashflow `json:"cashflow"`
	}

	if err := s.client.executeGraphQL(ctx, query, variables, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get cashflow")
	}

	if result.Cashflow == nil {
		return &Cashflow{ByCategory: []*CashflowCategory{}}, nil
	}

	return result.Cashflow, nil
}

// GetSummary retrieves the aggregate cashflow summary. A response with no
// aggregates yields an empty summary for the requested window, not an error.
func (s *cashflowService) GetSummary(ctx context.Context, startDate, endDate time.Time) (*CashflowSummary, error) {
	query := s.client.loadQuery("cashflow/summary.graphql")

	variables := map[string]interface{}{
		"startDate": startDate.Format("2006-01-02"),
		"endDate":   endDate.Format("2006-01-02"),
	}

	var result struct {
		CashflowSummary []struct {
			Summary struct {
				SumIncome   float64 `json:"sumIncome"`
				SumExpense  float64 `json:"sumExpense"`
				Savings     float64 `json:"savings"`
				SavingsRate float64 `json:"savingsRate"`
			} `json:"summary"`
		} `json:"cashflowSummary"`
	}

	if err := s.client.executeGraphQL(ctx, query, variables, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get cashflow summary")
	}

	if len(result.CashflowSummary) == 0 {
		return &CashflowSummary{
			StartDate: startDate,
			EndDate:   endDate,
		}, nil
	}

	summary := result.CashflowSummary[0].Summary
	return &CashflowSummary{
		Income:      summary.SumIncome,
		Expense:     summary.SumExpense,
		Savings:     summary.Savings,
		SavingsRate: summary.SavingsRate,
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}
