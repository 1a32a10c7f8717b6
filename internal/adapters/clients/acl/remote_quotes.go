package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/quotegen/internal/adapters/clients"
	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/platform/logging"
)

const (
	// DefaultFetchLimit is how many remote records one fetch consumes.
	DefaultFetchLimit = 5

	// DefaultCategory is used when a remote record has an empty body.
	DefaultCategory = "Uncategorized"

	defaultPath   = "/posts"
	defaultUserID = 1
)

// QuoteClientConfig contains configuration for the remote quote adapter.
type QuoteClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should point at the remote API root.
	Client *clients.Client

	// Path is the collection endpoint, used for both GET and POST.
	Path string

	// FetchLimit truncates every fetched batch.
	FetchLimit int

	// UserID is sent as userId on submit.
	UserID int

	// Logger is the structured logger.
	Logger *slog.Logger
}

// QuoteClient implements ports.RemoteQuotes against a JSONPlaceholder-style
// posts collection. Remote records are {id, title, body, userId}:
//
//	title                       → Quote.Text
//	first word of body          → Quote.Category
//	id                          → Quote.ID
type QuoteClient struct {
	BaseAdapter

	path   string
	limit  int
	userID int
	logger *slog.Logger
}

// NewQuoteClient creates a new remote quote adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Client == nil {
		panic("QuoteClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &QuoteClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, "quote-api"),
		path:        cfg.Path,
		limit:       cfg.FetchLimit,
		userID:      cfg.UserID,
		logger:      logger,
	}

	if c.path == "" {
		c.path = defaultPath
	}

	if c.limit <= 0 {
		c.limit = DefaultFetchLimit
	}

	if c.userID <= 0 {
		c.userID = defaultUserID
	}

	return c
}

// postDTO is the external record. Never exposed outside the ACL.
type postDTO struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

type submitRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

type submitResponse struct {
	ID int `json:"id"`
}

// FetchRemoteQuotes fetches the collection and maps its first records to quotes.
// Implements ports.RemoteQuotes. Records that cannot form a valid quote are
// skipped. On failure the list is empty and non-nil.
func (c *QuoteClient) FetchRemoteQuotes(ctx context.Context) (domain.QuoteList, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", c.path))

	body, err := c.Get(ctx, c.path, "fetch quotes")
	if err != nil {
		return domain.QuoteList{}, err
	}

	posts, err := DecodeResponse[[]postDTO](body)
	if err != nil {
		return domain.QuoteList{}, domain.NewParseError(c.ServiceName(), err)
	}

	quotes, rejected := TranslateSlice(*posts, c.limit, translatePost)
	for _, r := range rejected {
		c.logger.DebugContext(ctx, "skipping remote record",
			slog.Int("index", r.Index),
			slog.Any("error", r.Err),
		)
	}

	c.logger.DebugContext(ctx, "fetched remote quotes",
		slog.Int("received", len(*posts)),
		slog.Int("accepted", len(quotes)),
	)

	return domain.QuoteList(quotes), nil
}

// SubmitQuote posts q and returns a copy carrying the server-assigned id.
// Implements ports.RemoteQuotes. On failure q is returned unchanged.
func (c *QuoteClient) SubmitQuote(ctx context.Context, q domain.Quote) (domain.Quote, error) {
	if err := q.Validate(); err != nil {
		return q, err
	}

	payload, err := json.Marshal(submitRequest{Title: q.Text, Body: q.Category, UserID: c.userID})
	if err != nil {
		return q, fmt.Errorf("encoding quote: %w", err)
	}

	c.logger.Log(ctx, logging.LevelTrace, "submitting quote", slog.String("path", c.path))

	body, err := c.Post(ctx, c.path, bytes.NewReader(payload), "submit quote")
	if err != nil {
		return q, err
	}

	created, err := DecodeResponse[submitResponse](body)
	if err != nil {
		return q, domain.NewParseError(c.ServiceName(), err)
	}

	if err := ValidatePositive(created.ID, "id"); err != nil {
		return q, domain.NewParseError(c.ServiceName(), err)
	}

	c.logger.DebugContext(ctx, "quote submitted", slog.Int("id", created.ID))

	return q.WithID(created.ID), nil
}

// translatePost converts one external record into a quote.
func translatePost(p *postDTO) (domain.Quote, error) {
	text := strings.TrimSpace(p.Title)
	if err := ValidateRequired(text, "title"); err != nil {
		return domain.Quote{}, err
	}

	if err := ValidatePositive(p.ID, "id"); err != nil {
		return domain.Quote{}, err
	}

	return domain.Quote{
		ID:       domain.IntPtr(p.ID),
		Text:     text,
		Category: categoryFromBody(p.Body),
	}, nil
}

// categoryFromBody returns the first whitespace-delimited token of body.
func categoryFromBody(body string) string {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return DefaultCategory
	}

	return fields[0]
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *QuoteClient) Name() string {
	return c.ServiceName()
}

// Check verifies the collection endpoint answers.
// Implements ports.HealthChecker.
func (c *QuoteClient) Check(ctx context.Context) error {
	body, err := c.Get(ctx, c.path, "health check")
	if err != nil {
		return err
	}

	return body.Close()
}
