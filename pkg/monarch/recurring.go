package monarch

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// recurringService implements the RecurringService interface
type recurringService struct {
	client *Client
}

// List retrieves recurring transaction items falling inside the window.
func (s *recurringService) List(ctx context.Context, startDate, endDate time.Time) ([]*RecurringTransaction, error) {
	query := s.client.loadQuery("recurring/list.graphql")

	variables := map[string]interface{}{
		"startDate": startDate.Format("2006-01-02"),
		"endDate":   endDate.Format("2006-01-02"),
	}

	var result struct {
		RecurringTransactionItems []struct {
			Stream struct {
				ID            string  `json:"id"`
				Frequency     string  `json:"frequency"`
				IsApproximate bool    `json:"isApproximate"`
				Merchant      *struct {
					ID   string `json:"id"`
					Name string `json:"name"`
				} `json:"merchant"`
			} `json:"stream"`
			Date     Date    `json:"date"`
			Amount   float64 `json:"amount"`
			IsPast   bool    `json:"isPast"`
			Category *struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"category"`
			Account *struct {
				ID          string `json:"id"`
				DisplayName string `json:"displayName"`
			} `json:"account"`
		} `json:"recurringTransactionItems"`
	}

	if err := s.client.executeGraphQL(ctx, query, variables, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list recurring transactions")
	}

	items := make([]*RecurringTransaction, 0, len(result.RecurringTransactionItems))
	for _, item := range result.RecurringTransactionItems {
		rt := &RecurringTransaction{
			ID:            item.Stream.ID,
			Amount:        item.Amount,
			Frequency:     item.Stream.Frequency,
			NextDate:      item.Date,
			IsActive:      !item.IsPast,
			IsApproximate: item.Stream.IsApproximate,
		}
		if item.Stream.Merchant != nil {
			rt.Merchant = &Merchant{ID: item.Stream.Merchant.ID, Name: item.Stream.Merchant.Name}
		}
		if item.Category != nil {
			rt.Category = &TransactionCategory{ID: item.Category.ID, Name: item.Category.Name}
		}
		if item.Account != nil {
			rt.Account = &Account{ID: item.Account.ID, DisplayName: item.Account.DisplayName}
		}
		items = append(items, rt)
	}

	return items, nil
}
