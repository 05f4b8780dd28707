package monarch

import (
	"time"
)

// Account represents a financial account
type Account struct {
	ID                          string              `json:"id"`
	DisplayName                 string              `json:"displayName"`
	SyncDisabled                bool                `json:"syncDisabled"`
	DeactivatedAt               *time.Time          `json:"deactivatedAt,omitempty"`
	IsHidden                    bool                `json:"isHidden"`
	IsAsset                     bool                `json:"isAsset"`
	Mask                        string              `json:"mask"`
	CreatedAt                   time.Time           `json:"createdAt"`
	UpdatedAt                   time.Time           `json:"updatedAt"`
	DisplayLastUpdatedAt        time.Time           `json:"displayLastUpdatedAt"`
	CurrentBalance              float64             `json:"currentBalance"`
	DisplayBalance              float64             `json:"displayBalance"`
	IncludeInNetWorth           bool                `json:"includeInNetWorth"`
	HideFromList                bool                `json:"hideFromList"`
	HideTransactionsFromReports bool                `json:"hideTransactionsFromReports"`
	DataProvider                string              `json:"dataProvider"`
	IsManual                    bool                `json:"isManual"`
	TransactionsCount           int                 `json:"transactionsCount"`
	HoldingsCount               int                 `json:"holdingsCount"`
	Order                       int                 `json:"order"`
	LogoURL                     string              `json:"logoUrl"`
	Type                        *AccountTypeInfo    `json:"type"`
	Subtype                     *AccountSubtypeInfo `json:"subtype"`
	Credential                  *Credential         `json:"credential"`
	Institution                 *Institution        `json:"institution"`
}

// AccountTypeInfo represents account type information
type AccountTypeInfo struct {
	Name    string `json:"name"`
	Display string `json:"display"`
}

// AccountSubtypeInfo represents account subtype information
type AccountSubtypeInfo struct {
	Name    string `json:"name"`
	Display string `json:"display"`
}

// AccountType represents an available account type with its subtypes
type AccountType struct {
	Type             *AccountTypeInfo      `json:"type"`
	Subtype          *AccountSubtypeInfo   `json:"subtype"`
	PossibleSubtypes []*AccountSubtypeInfo `json:"possibleSubtypes"`
}

// Credential represents a data-provider connection. Several credentials
// may point at the same institution.
type Credential struct {
	ID                             string       `json:"id"`
	UpdateRequired                 bool         `json:"updateRequired"`
	DisconnectedFromDataProviderAt *time.Time   `json:"disconnectedFromDataProviderAt,omitempty"`
	DataProvider                   string       `json:"dataProvider"`
	Institution                    *Institution `json:"institution"`
}

// Institution represents a financial institution
type Institution struct {
	ID                 string `json:"id"`
	PlaidInstitutionID string `json:"plaidInstitutionId"`
	Name               string `json:"name"`
	Status             string `json:"status"`
	PrimaryColor       string `json:"primaryColor"`
	URL                string `json:"url"`
	UpdateRequired     bool   `json:"updateRequired"`
	DataProvider       string `json:"dataProvider"`
}

// Merchant represents a merchant
type Merchant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Transaction represents a financial transaction
type Transaction struct {
	ID              string               `json:"id"`
	Date            Date                 `json:"date"`
	Amount          float64              `json:"amount"`
	Pending         bool                 `json:"pending"`
	HideFromReports bool                 `json:"hideFromReports"`
	PlaidName       string               `json:"plaidName"`
	Merchant        *Merchant            `json:"merchant"`
	Notes           string               `json:"notes"`
	IsRecurring     bool                 `json:"isRecurring"`
	NeedsReview     bool                 `json:"needsReview"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
	Account         *Account             `json:"account"`
	Category        *TransactionCategory `json:"category"`
	Tags            []*Tag               `json:"tags"`
}

// TransactionCategory represents a transaction category
type TransactionCategory struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Icon             string         `json:"icon"`
	Order            int            `json:"order"`
	SystemCategory   string         `json:"systemCategory"`
	IsSystemCategory bool           `json:"isSystemCategory"`
	IsDisabled       bool           `json:"isDisabled"`
	Group            *CategoryGroup `json:"group"`
	GroupID          string         `json:"groupId"`
}

// CategoryGroup represents a category group
type CategoryGroup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Order int    `json:"order"`
}

// Tag represents a transaction tag
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// Budget represents a budget entry
type Budget struct {
	ID                 string               `json:"id"`
	CategoryID         string               `json:"categoryId"`
	Category           *TransactionCategory `json:"category"`
	Amount             float64              `json:"amount"`
	Rollover           bool                 `json:"rollover"`
	StartDate          Date                 `json:"startDate"`
	EndDate            Date                 `json:"endDate"`
	Spent              float64              `json:"spent"`
	Remaining          float64              `json:"remaining"`
	PercentageComplete float64              `json:"percentageComplete"`
}

// Cashflow represents cashflow data grouped by category
type Cashflow struct {
	StartDate   Date                `json:"startDate"`
	EndDate     Date                `json:"endDate"`
	Income      float64             `json:"income"`
	Expenses    float64             `json:"expenses"`
	NetCashflow float64             `json:"netCashflow"`
	ByCategory  []*CashflowCategory `json:"byCategory"`
}

// CashflowCategory represents cashflow by category
type CashflowCategory struct {
	Category *TransactionCategory `json:"category"`
	Amount   float64              `json:"amount"`
	Count    int                  `json:"count"`
}

// CashflowSummary represents the aggregate cashflow summary
type CashflowSummary struct {
	Income      float64   `json:"income"`
	Expense     float64   `json:"expense"`
	Savings     float64   `json:"savings"`
	SavingsRate float64   `json:"savingsRate"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// Holding represents an investment holding
type Holding struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
	Value     float64   `json:"value"`
	CostBasis float64   `json:"costBasis"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AccountHistory represents account balance history
type AccountHistory struct {
	AccountID string          `json:"accountId"`
	Balances  []*BalanceEntry `json:"balances"`
}

// BalanceEntry represents a balance at a point in time
type BalanceEntry struct {
	Date    Date    `json:"date"`
	Balance float64 `json:"balance"`
}

// RecurringTransaction represents an upcoming recurring transaction
type RecurringTransaction struct {
	ID            string               `json:"id"`
	Merchant      *Merchant            `json:"merchant"`
	Amount        float64              `json:"amount"`
	Frequency     string               `json:"frequency"`
	NextDate      Date                 `json:"nextDate"`
	Category      *TransactionCategory `json:"category"`
	Account       *Account             `json:"account"`
	IsActive      bool                 `json:"isActive"`
	IsApproximate bool                 `json:"isApproximate"`
}

// SubscriptionDetails represents the household subscription
type SubscriptionDetails struct {
	ID                    string `json:"id"`
	PaymentSource         string `json:"paymentSource"`
	ReferralCode          string `json:"referralCode"`
	IsOnFreeTrial         bool   `json:"isOnFreeTrial"`
	HasPremiumEntitlement bool   `json:"hasPremiumEntitlement"`
}

// TransactionSummary represents transaction summary
type TransactionSummary struct {
	TotalCount      int     `json:"totalCount"`
	TotalIncome     float64 `json:"totalIncome"`
	TotalExpenses   float64 `json:"totalExpenses"`
	AverageIncome   float64 `json:"averageIncome"`
	AverageExpenses float64 `json:"averageExpenses"`
}

// TransactionList represents paginated transaction results
type TransactionList struct {
	Transactions []*Transaction `json:"transactions"`
	TotalCount   int            `json:"totalCount"`
	HasMore      bool           `json:"hasMore"`
	NextOffset   int            `json:"nextOffset"`
}

// CashflowParams for cashflow queries
type CashflowParams struct {
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Limit      int       `json:"limit,omitempty"`
	AccountIDs []string  `json:"accountIds,omitempty"`
}
