package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register adds every tool to the MCP server.
func Register(server *mcp.Server, ts *Toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_accounts",
		Description: "Get all accounts with their current balances, types, and institution information.",
	}, ts.GetAccounts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_account_history",
		Description: "Get daily balance history for a single account.",
	}, ts.GetAccountHistory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_account_holdings",
		Description: "Get investment holdings for a single account, including symbol, quantity, price, and value.",
	}, ts.GetAccountHoldings)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_account_type_options",
		Description: "Get the available account types and their possible subtypes.",
	}, ts.GetAccountTypeOptions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transactions",
		Description: "Query transactions with optional date range, search text, limit, and offset. Defaults to the current month when no dates are given.",
	}, ts.GetTransactions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transactions_summary",
		Description: "Get aggregate transaction statistics: totals and averages for income and expenses.",
	}, ts.GetTransactionsSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transaction_categories",
		Description: "Get all transaction categories with their groups.",
	}, ts.GetTransactionCategories)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transaction_category_groups",
		Description: "Get the transaction category groups (income, expense, transfer).",
	}, ts.GetTransactionCategoryGroups)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transaction_tags",
		Description: "Get all transaction tags with their colors and ordering.",
	}, ts.GetTransactionTags)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_cashflow",
		Description: "Get cashflow broken down by category for a date range. Defaults to the current month when no dates are given.",
	}, ts.GetCashflow)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_cashflow_summary",
		Description: "Get the aggregate cashflow summary (income, expense, savings, savings rate) for a date range. Defaults to the current month.",
	}, ts.GetCashflowSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_budgets",
		Description: "Get budgets with budgeted, spent, and remaining amounts. Defaults to a window from the previous month through the next month.",
	}, ts.GetBudgets)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_recurring_transactions",
		Description: "Get upcoming recurring transactions (subscriptions, bills) for a date range. Defaults to the current month.",
	}, ts.GetRecurringTransactions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_institutions",
		Description: "Get the linked financial institutions with their connection status.",
	}, ts.GetInstitutions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_subscription_details",
		Description: "Get the Monarch Money subscription status for the household.",
	}, ts.GetSubscriptionDetails)
}
