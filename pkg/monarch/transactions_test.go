package monarch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransactionService_Query(t *testing.T) {
	mockTransport := new(MockTransport)
	service := newTransactionService(newTestClient(mockTransport))

	mockResponse := `{
		"allTransactions": {
			"totalCount": 2,
			"results": [
				{
					"id": "txn-1",
					"date": "2024-03-01",
					"amount": -42.50,
					"merchant": {"id": "merch-1", "name": "Grocery Store"},
					"category": {"id": "cat-1", "name": "Groceries"}
				},
				{
					"id": "txn-2",
					"date": "2024-03-02",
					"amount": -12.00,
					"merchant": {"id": "merch-2", "name": "Coffee Shop"},
					"category": {"id": "cat-2", "name": "Restaurants"}
				}
			]
		}
	}`

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.MatchedBy(func(v map[string]interface{}) bool {
			filters, ok := v["filters"].(map[string]interface{})
			return ok &&
				filters["startDate"] == "2024-03-01" &&
				filters["endDate"] == "2024-03-31" &&
				v["limit"] == 100 &&
				v["offset"] == 0
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	list, err := service.Query().
		Between(start, end).
		Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, list.TotalCount)
	assert.Len(t, list.Transactions, 2)
	assert.Equal(t, "txn-1", list.Transactions[0].ID)
	assert.Equal(t, "Grocery Store", list.Transactions[0].Merchant.Name)
	assert.Equal(t, -42.50, list.Transactions[0].Amount)
	assert.False(t, list.HasMore)

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_Query_Pagination(t *testing.T) {
	mockTransport := new(MockTransport)
	service := newTransactionService(newTestClient(mockTransport))

	// totalCount is larger than the page, so there is another page
	mockResponse := `{
		"allTransactions": {
			"totalCount": 120,
			"results": [{"id": "txn-1", "date": "2024-03-01", "amount": -1.00}]
		}
	}`

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.MatchedBy(func(v map[string]interface{}) bool {
			return v["limit"] == 50 && v["offset"] == 50
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	list, err := service.Query().
		Limit(50).
		Offset(50).
		Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, list.HasMore)
	assert.Equal(t, 100, list.NextOffset)

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_Query_Filters(t *testing.T) {
	mockTransport := new(MockTransport)
	service := newTransactionService(newTestClient(mockTransport))

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.MatchedBy(func(v map[string]interface{}) bool {
			filters, ok := v["filters"].(map[string]interface{})
			if !ok {
				return false
			}
			accounts, _ := filters["accounts"].([]string)
			categories, _ := filters["categories"].([]string)
			return len(accounts) == 2 &&
				len(categories) == 1 &&
				filters["search"] == "coffee"
		}),
		mock.Anything,
	).Return(`{"allTransactions": {"totalCount": 0}}`, nil)

	list, err := service.Query().
		WithAccounts("acc-1", "acc-2").
		WithCategories("cat-1").
		Search("coffee").
		Execute(context.Background())

	require.NoError(t, err)
	// Absent results decode to an empty, non-nil list
	assert.NotNil(t, list.Transactions)
	assert.Empty(t, list.Transactions)
	assert.False(t, list.HasMore)

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_GetSummary(t *testing.T) {
	mockTransport := new(MockTransport)
	service := newTransactionService(newTestClient(mockTransport))

	mockResponse := `{
		"transactionsSummary": {
			"totalCount": 345,
			"totalIncome": 12000.00,
			"totalExpenses": 8500.00,
			"averageIncome": 4000.00,
			"averageExpenses": 2833.33
		}
	}`

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	summary, err := service.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 345, summary.TotalCount)
	assert.Equal(t, 12000.00, summary.TotalIncome)
	assert.Equal(t, 8500.00, summary.TotalExpenses)

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_GetSummary_Empty(t *testing.T) {
	mockTransport := new(MockTransport)
	service := newTransactionService(newTestClient(mockTransport))

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.Anything,
		mock.Anything,
	).Return(`{}`, nil)

	summary, err := service.GetSummary(context.Background())

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Zero(t, summary.TotalCount)

	mockTransport.AssertExpectations(t)
}

func TestTransactionCategoryService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	service := &transactionCategoryService{client: newTestClient(mockTransport)}

	mockResponse := `{
		"categories": [
			{
				"id": "cat-1",
				"name": "Groceries",
				"icon": "🛒",
				"group": {"id": "grp-1", "name": "Food", "type": "expense"}
			},
			{
				"id": "cat-2",
				"name": "Paycheck",
				"group": {"id": "grp-2", "name": "Income", "type": "income"}
			}
		]
	}`

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	categories, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Groceries", categories[0].Name)
	assert.Equal(t, "expense", categories[0].Group.Type)

	mockTransport.AssertExpectations(t)
}

func TestTransactionCategoryService_GetGroups(t *testing.T) {
	mockTransport := new(MockTransport)
	service := &transactionCategoryService{client: newTestClient(mockTransport)}

	mockResponse := `{
		"categoryGroups": [
			{"id": "grp-1", "name": "Food", "type": "expense", "order": 1},
			{"id": "grp-2", "name": "Income", "type": "income", "order": 0}
		]
	}`

	mockTransport.On("Execute",
		mock.Anything,
		mock.AnythingOfType("string"),
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	groups, err := service.GetGroups(context.Background())

	require.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Equal(t, "Food", groups[0].Name)

	mockTransport.AssertExpectations(t)
}
