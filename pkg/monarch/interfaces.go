package monarch

import (
	"context"
	"time"
)

// AccountService handles all account-related operations
type AccountService interface {
	// List retrieves all accounts
	List(ctx context.Context) ([]*Account, error)

	// GetTypes returns available account types and subtypes
	GetTypes(ctx context.Context) ([]*AccountType, error)

	// GetHistory retrieves daily balance history for an account
	GetHistory(ctx context.Context, accountID string) (*AccountHistory, error)

	// GetHoldings retrieves investment holdings for an account
	GetHoldings(ctx context.Context, accountID string) ([]*Holding, error)
}

// TransactionService handles all transaction-related operations
type TransactionService interface {
	// Query returns a transaction query builder
	Query() TransactionQueryBuilder

	// GetSummary retrieves transaction summary
	GetSummary(ctx context.Context) (*TransactionSummary, error)

	// Categories returns the category sub-service
	Categories() TransactionCategoryService
}

// TransactionCategoryService handles transaction categories
type TransactionCategoryService interface {
	// List retrieves all categories
	List(ctx context.Context) ([]*TransactionCategory, error)

	// GetGroups retrieves category groups
	GetGroups(ctx context.Context) ([]*CategoryGroup, error)
}

// TransactionQueryBuilder builds transaction queries
type TransactionQueryBuilder interface {
	Between(start, end time.Time) TransactionQueryBuilder
	WithAccounts(accountIDs ...string) TransactionQueryBuilder
	WithCategories(categoryIDs ...string) TransactionQueryBuilder
	Search(query string) TransactionQueryBuilder
	Limit(limit int) TransactionQueryBuilder
	Offset(offset int) TransactionQueryBuilder

	// Execute runs the query
	Execute(ctx context.Context) (*TransactionList, error)
}

// TagService handles transaction tags
type TagService interface {
	// List retrieves all tags
	List(ctx context.Context) ([]*Tag, error)
}

// BudgetService handles budget operations
type BudgetService interface {
	// List retrieves budgets for a date range
	List(ctx context.Context, startDate, endDate time.Time) ([]*Budget, error)
}

// CashflowService handles cashflow analysis
type CashflowService interface {
	// Get retrieves cashflow data grouped by category
	Get(ctx context.Context, params *CashflowParams) (*Cashflow, error)

	// GetSummary retrieves the aggregate cashflow summary
	GetSummary(ctx context.Context, startDate, endDate time.Time) (*CashflowSummary, error)
}

// RecurringService handles recurring transactions
type RecurringService interface {
	// List retrieves recurring transactions due inside the date range
	List(ctx context.Context, startDate, endDate time.Time) ([]*RecurringTransaction, error)
}

// InstitutionService handles financial institutions
type InstitutionService interface {
	// List retrieves linked institutions, one entry per institution
	List(ctx context.Context) ([]*Institution, error)
}

// SubscriptionService handles the household subscription
type SubscriptionService interface {
	// GetDetails retrieves subscription details
	GetDetails(ctx context.Context) (*SubscriptionDetails, error)
}
