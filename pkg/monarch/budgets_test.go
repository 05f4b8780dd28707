package monarch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBudgetService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	service := &budgetService{client: newTestClient(mockTransport)}

	mockResponse := `{
		"budgets": [
			{
				"id": "budget-1",
				"amount": 500.00,
				"spent": 320.75,
				"remaining": 179.25,
				"startDate": "2024-03-01",
				"endDate": "2024-03-31",
				"category": {"id": "cat-1", "name": "Groceries"}
			},
			{
				"id": "budget-2",
				"amount": 200.00,
				"spent": 250.00,
				"remaining": -50.00,
				"startDate": "2024-03-01",
				"endDate": "2024-03-31",
				"category": {"id": "cat-2", "name": "Restaurants"}
			}
		]
	}`

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.MatchedBy(func(v map[string]interface{}) bool {
			return v["startDate"] == "2024-02-01" &&
				v["endDate"] == "2024-04-30" &&
				v["useV2"] == true
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	budgets, err := service.List(context.Background(), start, end)

	require.NoError(t, err)
	assert.Len(t, budgets, 2)
	assert.Equal(t, "budget-1", budgets[0].ID)
	assert.Equal(t, 500.00, budgets[0].Amount)
	assert.Equal(t, "Groceries", budgets[0].Category.Name)
	assert.Equal(t, "2024-03-01", budgets[0].StartDate.String())
	assert.Equal(t, -50.00, budgets[1].Remaining)

	mockTransport.AssertExpectations(t)
}

func TestBudgetService_List_Empty(t *testing.T) {
	mockTransport := new(MockTransport)
	service := &budgetService{client: newTestClient(mockTransport)}

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.Anything,
		mock.Anything,
	).Return(`{"budgets": []}`, nil)

	budgets, err := service.List(context.Background(), time.Now(), time.Now())

	require.NoError(t, err)
	assert.Empty(t, budgets)

	mockTransport.AssertExpectations(t)
}
