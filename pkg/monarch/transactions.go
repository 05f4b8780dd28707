package monarch

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	client     *Client
	categories TransactionCategoryService
}

// newTransactionService creates a new transaction service
func newTransactionService(client *Client) *transactionService {
	s := &transactionService{
		client: client,
	}
	s.categories = &transactionCategoryService{client: client}
	return s
}

// Query returns a transaction query builder
func (s *transactionService) Query() TransactionQueryBuilder {
	return &transactionQueryBuilder{
		client:  s.client,
		filters: make(map[string]interface{}),
		limit:   100,
	}
}

// GetSummary retrieves transaction summary
func (s *transactionService) GetSummary(ctx context.Context) (*TransactionSummary, error) {
	query := s.client.loadQuery("transactions/summary.graphql")

	var result struct {
		TransactionsSummary *TransactionSummary `json:"transactionsSummary"`
	}

	if err := s.client.executeGraphQL(ctx, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transactions summary")
	}

	if result.TransactionsSummary == nil {
		return &TransactionSummary{}, nil
	}

	return result.TransactionsSummary, nil
}

// Categories returns the category sub-service
func (s *transactionService) Categories() TransactionCategoryService {
	return s.categories
}

// transactionQueryBuilder implements TransactionQueryBuilder
type transactionQueryBuilder struct {
	client  *Client
	filters map[string]interface{}
	limit   int
	offset  int
}

func (b *transactionQueryBuilder) Between(start, end time.Time) TransactionQueryBuilder {
	b.filters["startDate"] = start.Format("2006-01-02")
	b.filters["endDate"] = end.Format("2006-01-02")
	return b
}

func (b *transactionQueryBuilder) WithAccounts(accountIDs ...string) TransactionQueryBuilder {
	b.filters["accounts"] = accountIDs
	return b
}

func (b *transactionQueryBuilder) WithCategories(categoryIDs ...string) TransactionQueryBuilder {
	b.filters["categories"] = categoryIDs
	return b
}

func (b *transactionQueryBuilder) Search(query string) TransactionQueryBuilder {
	b.filters["search"] = query
	return b
}

func (b *transactionQueryBuilder) Limit(limit int) TransactionQueryBuilder {
	if limit > 0 {
		b.limit = limit
	}
	return b
}

func (b *transactionQueryBuilder) Offset(offset int) TransactionQueryBuilder {
	if offset >= 0 {
		b.offset = offset
	}
	return b
}

// Execute runs the query. The meaningful payload lives under
// allTransactions.results; a response without it decodes to an empty list.
func (b *transactionQueryBuilder) Execute(ctx context.Context) (*TransactionList, error) {
	query := b.client.loadQuery("transactions/list.graphql")

	variables := map[string]interface{}{
		"offset":  b.offset,
		"limit":   b.limit,
		"filters": b.filters,
		"orderBy": "date",
	}

	var result struct {
		AllTransactions struct {
			TotalCount int            `json:"totalCount"`
			Results    []*Transaction `json:"results"`
		} `json:"allTransactions"`
	}

	if err := b.client.executeGraphQL(ctx, query, variables, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transactions")
	}

	transactions := result.AllTransactions.Results
	if transactions == nil {
		transactions = []*Transaction{}
	}

	hasMore := (b.offset + b.limit) < result.AllTransactions.TotalCount

	return &TransactionList{
		Transactions: transactions,
		TotalCount:   result.AllTransactions.TotalCount,
		HasMore:      hasMore,
		NextOffset:   b.offset + b.limit,
	}, nil
}

// transactionCategoryService implements TransactionCategoryService
type transactionCategoryService struct {
	client *Client
}

// List retrieves all categories
func (s *transactionCategoryService) List(ctx context.Context) ([]*TransactionCategory, error) {
	query := s.client.loadQuery("transactions/categories.graphql")

	var result struct {
		Categories []*TransactionCategory `json:"categories"`
	}

	if err := s.client.executeGraphQL(ctx, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transaction categories")
	}

	return result.Categories, nil
}

// GetGroups retrieves category groups
func (s *transactionCategoryService) GetGroups(ctx context.Context) ([]*CategoryGroup, error) {
	query := s.client.loadQuery("transactions/category_groups.graphql")

	var result struct {
		CategoryGroups []*CategoryGroup `json:"categoryGroups"`
	}

	if err := s.client.executeGraphQL(ctx, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get category groups")
	}

	return result.CategoryGroups, nil
}
