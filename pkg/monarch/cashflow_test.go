package monarch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCashflowService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	service := &cashflowService{client: newTestClient(mockTransport)}

	mockResponse := `{
		"cashflow": {
			"startDate": "2024-03-01",
			"endDate": "2024-03-31",
			"income": 5000.00,
			"expenses": 3500.00,
			"netCashflow": 1500.00,
			"byCategory": [
				{
					"category": {"id": "cat-1", "name": "Groceries"},
					"amount": -800.00,
					"count": 12
				},
				{
					"category": {"id": "cat-2", "name": "Paycheck"},
					"amount": 5000.00,
					"count": 2
				}
			]
		}
	}`

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.MatchedBy(func(v map[string]interface{}) bool {
			return v["startDate"] == "2024-03-01" && v["endDate"] == "2024-03-31"
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	params := &CashflowParams{
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	cashflow, err := service.Get(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, 5000.00, cashflow.Income)
	assert.Equal(t, 1500.00, cashflow.NetCashflow)
	assert.Len(t, cashflow.ByCategory, 2)
	assert.Equal(t, "Groceries", cashflow.ByCategory[0].Category.Name)
	assert.Equal(t, 12, cashflow.ByCategory[0].Count)

	mockTransport.AssertExpectations(t)
}

func TestCashflowService_Get_AccountFilter(t *testing.T) {
	mockTransport := new(MockTransport)
	service := &cashflowService{client: newTestClient(mockTransport)}

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.MatchedBy(func(v map[string]interface{}) bool {
			ids, ok := v["accountIds"].([]string)
			return ok && len(ids) == 1 && ids[0] == "acc-1" && v["limit"] == 10
		}),
		mock.Anything,
	).Return(`{"cashflow": {"income": 0, "expenses": 0}}`, nil)

	params := &CashflowParams{
		StartDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Limit:      10,
		AccountIDs: []string{"acc-1"},
	}
	cashflow, err := service.Get(context.Background(), params)

	require.NoError(t, err)
	require.NotNil(t, cashflow)

	mockTransport.AssertExpectations(t)
}

func TestCashflowService_GetSummary(t *testing.T) {
	mockTransport := new(MockTransport)
	service := &cashflowService{client: newTestClient(mockTransport)}

	mockResponse := `{
		"cashflowSummary": [
			{
				"summary": {
					"sumIncome": 5000.00,
					"sumExpense": 3500.00,
					"savings": 1500.00,
					"savingsRate": 0.30
				}
			}
		]
	}`

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.MatchedBy(func(v map[string]interface{}) bool {
			return v["startDate"] == "2024-03-01" && v["endDate"] == "2024-03-31"
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	summary, err := service.GetSummary(context.Background(), start, end)

	require.NoError(t, err)
	assert.Equal(t, 5000.00, summary.Income)
	assert.Equal(t, 3500.00, summary.Expense)
	assert.Equal(t, 1500.00, summary.Savings)
	assert.Equal(t, 0.30, summary.SavingsRate)
	assert.Equal(t, start, summary.StartDate)
	assert.Equal(t, end, summary.EndDate)

	mockTransport.AssertExpectations(t)
}

func TestCashflowService_GetSummary_NoAggregates(t *testing.T) {
	mockTransport := new(MockTransport)
	service := &cashflowService{client: newTestClient(mockTransport)}

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.Anything,
		mock.Anything,
	).Return(`{"cashflowSummary": []}`, nil)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	summary, err := service.GetSummary(context.Background(), start, end)

	require.NoError(t, err)
	assert.Zero(t, summary.Income)
	assert.Zero(t, summary.Savings)
	assert.Equal(t, start, summary.StartDate)

	mockTransport.AssertExpectations(t)
}
