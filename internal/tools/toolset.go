// Package tools exposes the Monarch Money client as MCP tools. Every
// handler runs the same sequence: validate arguments, resolve the date
// window, ensure a session, call the client, and wrap the outcome in a
// uniform result envelope. Remote and auth failures are reported
// through the envelope, never as raw handler errors.
package tools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/monarch-agent/monarch-mcp/internal/types"
	"github.com/monarch-agent/monarch-mcp/pkg/monarch"
)

// SessionSource provides an authenticated session on demand.
type SessionSource interface {
	Ensure(ctx context.Context) error
	Invalidate()
}

// Toolset holds the client and implements all tool handlers.
type Toolset struct {
	client   *monarch.Client
	sessions SessionSource
	logger   types.Logger
	now      func() time.Time
}

// New creates a toolset bound to a client and session source.
func New(client *monarch.Client, sessions SessionSource, logger types.Logger) *Toolset {
	return &Toolset{
		client:   client,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// run executes one client call behind a session check and wraps the
// outcome. A session the API rejects is dropped so the next call logs
// in again; the failed call itself is never retried.
func (t *Toolset) run(ctx context.Context, tool string, fn func(ctx context.Context) (interface{}, error)) Envelope {
	if err := t.sessions.Ensure(ctx); err != nil {
		if t.logger != nil {
			t.logger.Warn("session acquisition failed", "tool", tool, "error", err)
		}
		return classify(err)
	}

	result, err := fn(ctx)
	if err != nil {
		if isSessionRejected(err) {
			t.sessions.Invalidate()
		}
		if t.logger != nil {
			t.logger.Warn("tool call failed", "tool", tool, "error", err)
		}
		return classify(err)
	}

	return success(result)
}

// GetAccountsInput has no parameters.
type GetAccountsInput struct{}

// AccountEntry is the normalized account shape returned to clients.
type AccountEntry struct {
	ID                string  `json:"id" jsonschema:"Account ID"`
	Name              string  `json:"name" jsonschema:"Account display name"`
	Balance           float64 `json:"balance" jsonschema:"Current displayed balance"`
	Type              string  `json:"type,omitempty" jsonschema:"Account type"`
	Subtype           string  `json:"subtype,omitempty" jsonschema:"Account subtype"`
	Institution       string  `json:"institution,omitempty" jsonschema:"Financial institution name"`
	IsAsset           bool    `json:"isAsset" jsonschema:"Whether the account is an asset"`
	IsHidden          bool    `json:"isHidden" jsonschema:"Whether the account is hidden"`
	IncludeInNetWorth bool    `json:"includeInNetWorth" jsonschema:"Whether the account counts toward net worth"`
}

func (t *Toolset) GetAccounts(ctx context.Context, req *mcp.CallToolRequest, input GetAccountsInput) (*mcp.CallToolResult, Envelope, error) {
	env := t.run(ctx, "get_accounts", func(ctx context.Context) (interface{}, error) {
		accounts, err := t.client.Accounts.List(ctx)
		if err != nil {
			return nil, err
		}

		entries := make([]AccountEntry, 0, len(accounts))
		for _, acc := range accounts {
			entry := AccountEntry{
				ID:                acc.ID,
				Name:              acc.DisplayName,
				Balance:           acc.DisplayBalance,
				IsAsset:           acc.IsAsset,
				IsHidden:          acc.IsHidden,
				IncludeInNetWorth: acc.IncludeInNetWorth,
			}
			if acc.Type != nil {
				entry.Type = acc.Type.Name
			}
			if acc.Subtype != nil {
				entry.Subtype = acc.Subtype.Name
			}
			if acc.Institution != nil {
				entry.Institution = acc.Institution.Name
			}
			entries = append(entries, entry)
		}
		return entries, nil
	})
	return nil, env, nil
}

// GetAccountHistoryInput selects the account to fetch history for.
type GetAccountHistoryInput struct {
	AccountID string `json:"accountId" jsonschema:"Account ID to fetch daily balance history for"`
}

func (t *Toolset) GetAccountHistory(ctx context.Context, req *mcp.CallToolRequest, input GetAccountHistoryInput) (*mcp.CallToolResult, Envelope, error) {
	if input.AccountID == "" {
		return nil, invalidArgument("accountId is required"), nil
	}
	env := t.run(ctx, "get_account_history", func(ctx context.Context) (interface{}, error) {
		return t.client.Accounts.GetHistory(ctx, input.AccountID)
	})
	return nil, env, nil
}

// GetAccountHoldingsInput selects the account to fetch holdings for.
type GetAccountHoldingsInput struct {
	AccountID string `json:"accountId" jsonschema:"Investment account ID to fetch holdings for"`
}

func (t *Toolset) GetAccountHoldings(ctx context.Context, req *mcp.CallToolRequest, input GetAccountHoldingsInput) (*mcp.CallToolResult, Envelope, error) {
	if input.AccountID == "" {
		return nil, invalidArgument("accountId is required"), nil
	}
	env := t.run(ctx, "get_account_holdings", func(ctx context.Context) (interface{}, error) {
		return t.client.Accounts.GetHoldings(ctx, input.AccountID)
	})
	return nil, env, nil
}

// GetAccountTypeOptionsInput has no parameters.
type GetAccountTypeOptionsInput struct{}

func (t *Toolset) GetAccountTypeOptions(ctx context.Context, req *mcp.CallToolRequest, input GetAccountTypeOptionsInput) (*mcp.CallToolResult, Envelope, error) {
	env := t.run(ctx, "get_account_type_options", func(ctx context.Context) (interface{}, error) {
		return t.client.Accounts.GetTypes(ctx)
	})
	return nil, env, nil
}

// GetTransactionsInput filters the transaction query. Dates follow the
// window policy: both or neither, defaulting to the current month.
type GetTransactionsInput struct {
	StartDate string `json:"startDate,omitempty" jsonschema:"Start date in YYYY-MM-DD format; requires endDate"`
	EndDate   string `json:"endDate,omitempty" jsonschema:"End date in YYYY-MM-DD format; requires startDate"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Maximum number of transactions to return (default 100)"`
	Offset    int    `json:"offset,omitempty" jsonschema:"Number of transactions to skip, for pagination"`
	Search    string `json:"search,omitempty" jsonschema:"Free-text search over merchant and notes"`
}

// TransactionEntry is the normalized transaction shape.
type TransactionEntry struct {
	ID          string   `json:"id" jsonschema:"Transaction ID"`
	Date        string   `json:"date" jsonschema:"Transaction date, YYYY-MM-DD"`
	Amount      float64  `json:"amount" jsonschema:"Amount, negative for expenses"`
	Merchant    string   `json:"merchant,omitempty" jsonschema:"Merchant name"`
	Category    string   `json:"category,omitempty" jsonschema:"Category name"`
	Account     string   `json:"account,omitempty" jsonschema:"Account display name"`
	Notes       string   `json:"notes,omitempty" jsonschema:"Transaction notes"`
	Pending     bool     `json:"pending" jsonschema:"Whether the transaction is pending"`
	IsRecurring bool     `json:"isRecurring" jsonschema:"Whether the transaction belongs to a recurring stream"`
	Tags        []string `json:"tags,omitempty" jsonschema:"Tag names"`
}

// TransactionPage is the paged transaction result.
type TransactionPage struct {
	Transactions []TransactionEntry `json:"transactions" jsonschema:"Transactions in this page"`
	TotalCount   int                `json:"totalCount" jsonschema:"Total matching transactions"`
	HasMore      bool               `json:"hasMore" jsonschema:"Whether another page exists"`
	NextOffset   int                `json:"nextOffset" jsonschema:"Offset to request the next page"`
}

func (t *Toolset) GetTransactions(ctx context.Context, req *mcp.CallToolRequest, input GetTransactionsInput) (*mcp.CallToolResult, Envelope, error) {
	win, err := resolveWindow(input.StartDate, input.EndDate, monthWindow(t.now()))
	if err != nil {
		return nil, invalidArgument(err.Error()), nil
	}

	env := t.run(ctx, "get_transactions", func(ctx context.Context) (interface{}, error) {
		query := t.client.Transactions.Query().Between(win.start, win.end)
		if input.Limit > 0 {
			query = query.Limit(input.Limit)
		}
		if input.Offset > 0 {
			query = query.Offset(input.Offset)
		}
		if input.Search != "" {
			query = query.Search(input.Search)
		}

		list, err := query.Execute(ctx)
		if err != nil {
			return nil, err
		}

		entries := make([]TransactionEntry, 0, len(list.Transactions))
		for _, tx := range list.Transactions {
			entry := TransactionEntry{
				ID:          tx.ID,
				Date:        tx.Date.String(),
				Amount:      tx.Amount,
				Notes:       tx.Notes,
				Pending:     tx.Pending,
				IsRecurring: tx.IsRecurring,
			}
			if tx.Merchant != nil {
				entry.Merchant = tx.Merchant.Name
			}
			if tx.Category != nil {
				entry.Category = tx.Category.Name
			}
			if tx.Account != nil {
				entry.Account = tx.Account.DisplayName
			}
			for _, tag := range tx.Tags {
				entry.Tags = append(entry.Tags, tag.Name)
			}
			entries = append(entries, entry)
		}

		return TransactionPage{
			Transactions: entries,
			TotalCount:   list.TotalCount,
			HasMore:      list.HasMore,
			NextOffset:   list.NextOffset,
		}, nil
	})
	return nil, env, nil
}

// GetTransactionsSummaryInput has no parameters.
type GetTransactionsSummaryInput struct{}

func (t *Toolset) GetTransactionsSummary(ctx context.Context, req *mcp.CallToolRequest, input GetTransactionsSummaryInput) (*mcp.CallToolResult, Envelope, error) {
	env := t.run(ctx, "get_transactions_summary", func(ctx context.Context) (interface{}, error) {
		return t.client.Transactions.GetSummary(ctx)
	})
	return nil, env, nil
}

// GetTransactionCategoriesInput has no parameters.
type GetTransactionCategoriesInput struct{}

func (t *Toolset) GetTransactionCategories(ctx context.Context, req *mcp.CallToolRequest, input GetTransactionCategoriesInput) (*mcp.CallToolResult, Envelope, error) {
	env := t.run(ctx, "get_transaction_categories", func(ctx context.Context) (interface{}, error) {
		return t.client.Transactions.Categories().List(ctx)
	})
	return nil, env, nil
}

// GetTransactionCategoryGroupsInput has no parameters.
type GetTransactionCategoryGroupsInput struct{}

func (t *Toolset) GetTransactionCategoryGroups(ctx context.Context, req *mcp.CallToolRequest, input GetTransactionCategoryGroupsInput) (*mcp.CallToolResult, Envelope, error) {
	env := t.run(ctx, "get_transaction_category_groups", func(ctx context.Context) (interface{}, error) {
		return t.client.Transactions.Categories().GetGroups(ctx)
	})
	return nil, env, nil
}

// GetTransactionTagsInput has no parameters.
type GetTransactionTagsInput struct{}

func (t *Toolset) GetTransactionTags(ctx context.Context, req *mcp.CallToolRequest, input GetTransactionTagsInput) (*mcp.CallToolResult, Envelope, error) {
	env := t.run(ctx, "get_transaction_tags", func(ctx context.Context) (interface{}, error) {
		return t.client.Tags.List(ctx)
	})
	return nil, env, nil
}

// GetCashflowInput selects the cashflow window.
type GetCashflowInput struct {
	StartDate string `json:"startDate,omitempty" jsonschema:"Start date in YYYY-MM-DD format; requires endDate"`
	EndDate   string `json:"endDate,omitempty" jsonschema:"End date in YYYY-MM-DD format; requires startDate"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Maximum number of category rows (default 100)"`
}

func (t *Toolset) GetCashflow(ctx context.Context, req *mcp.CallToolRequest, input GetCashflowInput) (*mcp.CallToolResult, Envelope, error) {
	win, err := resolveWindow(input.StartDate, input.EndDate, monthWindow(t.now()))
	if err != nil {
		return nil, invalidArgument(err.Error()), nil
	}

	env := t.run(ctx, "get_cashflow", func(ctx context.Context) (interface{}, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = 100
		}
		return t.client.Cashflow.Get(ctx, &monarch.CashflowParams{
			StartDate: win.start,
			EndDate:   win.end,
			Limit:     limit,
		})
	})
	return nil, env, nil
}

// GetCashflowSummaryInput selects the summary window.
type GetCashflowSummaryInput struct {
	StartDate string `json:"startDate,omitempty" jsonschema:"Start date in YYYY-MM-DD format; requires endDate"`
	EndDate   string `json:"endDate,omitempty" jsonschema:"End date in YYYY-MM-DD format; requires startDate"`
}

func (t *Toolset) GetCashflowSummary(ctx context.Context, req *mcp.CallToolRequest, input GetCashflowSummaryInput) (*mcp.CallToolResult, Envelope, error) {
	win, err := resolveWindow(input.StartDate, input.EndDate, monthWindow(t.now()))
	if err != nil {
		return nil, invalidArgument(err.Error()), nil
	}

	env := t.run(ctx, "get_cashflow_summary", func(ctx context.Context) (interface{}, error) {
		return t.client.Cashflow.GetSummary(ctx, win.start, win.end)
	})
	return nil, env, nil
}

// GetBudgetsInput selects the budget window.
type GetBudgetsInput struct {
	StartDate string `json:"startDate,omitempty" jsonschema:"Start date in YYYY-MM-DD format; requires endDate"`
	EndDate   string `json:"endDate,omitempty" jsonschema:"End date in YYYY-MM-DD format; requires startDate"`
}

func (t *Toolset) GetBudgets(ctx context.Context, req *mcp.CallToolRequest, input GetBudgetsInput) (*mcp.CallToolResult, Envelope, error) {
	win, err := resolveWindow(input.StartDate, input.EndDate, budgetWindow(t.now()))
	if err != nil {
		return nil, invalidArgument(err.Error()), nil
	}

	env := t.run(ctx, "get_budgets", func(ctx context.Context) (interface{}, error) {
		return t.client.Budgets.List(ctx, win.start, win.end)
	})
	return nil, env, nil
}

// GetRecurringTransactionsInput selects the recurring window.
type GetRecurringTransactionsInput struct {
	StartDate string `json:"startDate,omitempty" jsonschema:"Start date in YYYY-MM-DD format; requires endDate"`
	EndDate   string `json:"endDate,omitempty" jsonschema:"End date in YYYY-MM-DD format; requires startDate"`
}

func (t *Toolset) GetRecurringTransactions(ctx context.Context, req *mcp.CallToolRequest, input GetRecurringTransactionsInput) (*mcp.CallToolResult, Envelope, error) {
	win, err := resolveWindow(input.StartDate, input.EndDate, monthWindow(t.now()))
	if err != nil {
		return nil, invalidArgument(err.Error()), nil
	}

	env := t.run(ctx, "get_recurring_transactions", func(ctx context.Context) (interface{}, error) {
		return t.client.Recurring.List(ctx, win.start, win.end)
	})
	return nil, env, nil
}

// GetInstitutionsInput has no parameters.
type GetInstitutionsInput struct{}

func (t *Toolset) GetInstitutions(ctx context.Context, req *mcp.CallToolRequest, input GetInstitutionsInput) (*mcp.CallToolResult, Envelope, error) {
	env := t.run(ctx, "get_institutions", func(ctx context.Context) (interface{}, error) {
		return t.client.Institutions.List(ctx)
	})
	return nil, env, nil
}

// GetSubscriptionDetailsInput has no parameters.
type GetSubscriptionDetailsInput struct{}

func (t *Toolset) GetSubscriptionDetails(ctx context.Context, req *mcp.CallToolRequest, input GetSubscriptionDetailsInput) (*mcp.CallToolResult, Envelope, error) {
	env := t.run(ctx, "get_subscription_details", func(ctx context.Context) (interface{}, error) {
		return t.client.Subscription.GetDetails(ctx)
	})
	return nil, env, nil
}
