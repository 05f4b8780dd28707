package monarch

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// accountService implements the AccountService interface
type accountService struct {
	client *Client
}

// List retrieves all accounts
func (s *accountService) List(ctx context.Context) ([]*Account, error) {
	query := s.client.loadQuery("accounts/list.graphql")

	var result struct {
		Accounts []*Account `json:"accounts"`
	}

	if err := s.client.executeGraphQL(ctx, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get accounts")
	}

	return result.Accounts, nil
}

// GetTypes returns available account types and subtypes
func (s *accountService) GetTypes(ctx context.Context) ([]*AccountType, error) {
	query := s.client.loadQuery("accounts/types.graphql")

	var result struct {
		AccountTypeOptions []*AccountType `json:"accountTypeOptions"`
	}

	if err := s.client.executeGraphQL(ctx, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get account types")
	}

	return result.AccountTypeOptions, nil
}

// GetHistory retrieves daily balance history for an account. A response
// without history decodes to an empty Balances slice.
func (s *accountService) GetHistory(ctx context.Context, accountID string) (*AccountHistory, error) {
	query := s.client.loadQuery("accounts/history.graphql")

	variables := map[string]interface{}{
		"accountId": accountID,
	}

	var result struct {
		Account struct {
			ID             string `json:"id"`
			BalanceHistory []struct {
				Date    string  `json:"date"`
				Balance float64 `json:"balance"`
			} `json:"balanceHistory"`
		} `json:"account"`
	}

	if err := s.client.executeGraphQL(ctx, query, variables, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get account history")
	}

	history := &AccountHistory{
		AccountID: accountID,
		Balances:  make([]*BalanceEntry, 0, len(result.Account.BalanceHistory)),
	}

	for _, entry := range result.Account.BalanceHistory {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			if s.client.options.Logger != nil {
				s.client.options.Logger.Warn("skipping balance entry with unparseable date",
					"accountId", accountID, "date", entry.Date)
			}
			continue
		}
		history.Balances = append(history.Balances, &BalanceEntry{
			Date:    Date{Time: date},
			Balance: entry.Balance,
		})
	}

	return history, nil
}

// GetHoldings retrieves investment holdings for an account
func (s *accountService) GetHoldings(ctx context.Context, accountID string) ([]*Holding, error) {
	query := s.client.loadQuery("accounts/holdings.graphql")

	variables := map[string]interface{}{
		"accountId": accountID,
	}

	var result struct {
		Account struct {
			ID       string `json:"id"`
			Holdings struct {
				Edges []struct {
					Node struct {
						ID        string    `json:"id"`
						Symbol    string    `json:"symbol"`
						Quantity  float64   `json:"quantity"`
						Price     float64   `json:"price"`
						Value     float64   `json:"value"`
						CostBasis float64   `json:"costBasis"`
						UpdatedAt time.Time `json:"updatedAt"`
						Holding   struct {
							Name string `json:"name"`
						} `json:"holding"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"holdings"`
		} `json:"account"`
	}

	if err := s.client.executeGraphQL(ctx, query, variables, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get account holdings")
	}

	holdings := make([]*Holding, 0, len(result.Account.Holdings.Edges))
	for _, edge := range result.Account.Holdings.Edges {
		holdings = append(holdings, &Holding{
			ID:        edge.Node.ID,
			AccountID: accountID,
			Symbol:    edge.Node.Symbol,
			Name:      edge.Node.Holding.Name,
			Quantity:  edge.Node.Quantity,
			Price:     edge.Node.Price,
			Value:     edge.Node.Value,
			CostBasis: edge.Node.CostBasis,
			UpdatedAt: edge.Node.UpdatedAt,
		})
	}

	return holdings, nil
}
