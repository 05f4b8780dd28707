// Package monarch is a typed, read-oriented client for the Monarch Money
// GraphQL API. It does not authenticate by itself: a session is installed
// on the client by whoever owns the login flow.
package monarch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/monarch-agent/monarch-mcp/internal/graphql"
	"github.com/monarch-agent/monarch-mcp/internal/transport"
	internalTypes "github.com/monarch-agent/monarch-mcp/internal/types"
)

const (
	// DefaultBaseURL is the default Monarch Money API base URL
	DefaultBaseURL = internalTypes.DefaultBaseURL

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = internalTypes.DefaultTimeout
)

// Client is the Monarch Money API client
type Client struct {
	// Service interfaces
	Accounts     AccountService
	Transactions TransactionService
	Tags         TagService
	Budgets      BudgetService
	Cashflow     CashflowService
	Recurring    RecurringService
	Institutions InstitutionService
	Subscription SubscriptionService

	// Internal fields
	baseURL     string
	httpClient  *http.Client
	transport   Transport
	options     *ClientOptions
	queryLoader *graphql.QueryLoader
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger = internalTypes.Logger

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Transport handles HTTP/GraphQL communication
type Transport interface {
	Execute(ctx context.Context, query string, variables map[string]interface{}, result interface{}) error
	SetSession(session *internalTypes.Session)
	Session() *internalTypes.Session
}

// NewClient creates a new Monarch Money client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	trans := transport.NewGraphQLTransport(&transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	})

	c := &Client{
		baseURL:     opts.BaseURL,
		httpClient:  opts.HTTPClient,
		transport:   trans,
		options:     opts,
		queryLoader: graphql.NewQueryLoader(),
	}

	c.initServices()

	return c, nil
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Accounts = &accountService{client: c}
	c.Transactions = newTransactionService(c)
	c.Tags = &tagService{client: c}
	c.Budgets = &budgetService{client: c}
	c.Cashflow = &cashflowService{client: c}
	c.Recurring = &recurringService{client: c}
	c.Institutions = &institutionService{client: c}
	c.Subscription = &subscriptionService{client: c}
}

// SetSession installs an authenticated session on the transport.
func (c *Client) SetSession(session *internalTypes.Session) {
	c.transport.SetSession(session)
}

// Session returns the currently installed session, or nil.
func (c *Client) Session() *internalTypes.Session {
	return c.transport.Session()
}

// loadQuery loads a GraphQL query from the embedded filesystem
func (c *Client) loadQuery(queryPath string) string {
	query, err := c.queryLoader.Load(queryPath)
	if err != nil {
		// This should never happen in production as queries are embedded
		panic(fmt.Sprintf("failed to load query %s: %v", queryPath, err))
	}
	return query
}

// executeGraphQL executes a GraphQL query
func (c *Client) executeGraphQL(ctx context.Context, query string, variables map[string]interface{}, result interface{}) error {
	if c.options.RateLimiter != nil {
		if err := c.options.RateLimiter.Wait(ctx); err != nil {
			captureException(ctx, err)
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	start := time.Now()
	err := c.transport.Execute(ctx, query, variables, result)
	duration := time.Since(start)

	if err != nil {
		captureGraphQLError(ctx, err, query, variables, duration)
	}

	return err
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}

// captureException reports an error to Sentry, preferring the hub bound
// to the request context.
func captureException(ctx context.Context, err error) {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}

// captureGraphQLError reports a failed operation with query context.
func captureGraphQLError(ctx context.Context, err error, query string, variables map[string]interface{}, duration time.Duration) {
	configure := func(scope *sentry.Scope) {
		scope.SetTag("graphql.operation", extractOperationName(query))
		scope.SetContext("graphql", map[string]interface{}{
			"query":     query,
			"variables": variables,
			"duration":  duration.String(),
		})
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			configure(scope)
			hub.CaptureException(err)
		})
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		configure(scope)
		sentry.CaptureException(err)
	})
}

// extractOperationName extracts the GraphQL operation name from a query
func extractOperationName(query string) string {
	for _, prefix := range []string{"query ", "mutation ", "subscription "} {
		rest := query
		for {
			idx := strings.Index(rest, prefix)
			if idx == -1 {
				break
			}
			name := rest[idx+len(prefix):]
			end := strings.IndexAny(name, " ({\n\r")
			if end > 0 {
				name = name[:end]
			}
			if isOperationName(name) {
				return name
			}
			rest = rest[idx+1:]
		}
	}
	return "unknown"
}

// isOperationName reports whether s is a plausible GraphQL operation name.
func isOperationName(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
