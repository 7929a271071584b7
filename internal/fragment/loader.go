package fragment

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"portuguese101/internal/errors"
)

// Endpoints and element ids of the vocabulary page.
const (
	CategoriesEndpoint = "GetCategories.do"
	TableEndpoint      = "ConnectDB.do"

	SelectionInputID    = "cat"
	CategoryContainerID = "category"
	TableContainerID    = "inside"
)

// StatusError reports a response whose status was not 200.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
}

// Loader fetches fragments and writes them into a Page. It sets no
// timeout and never retries; cancellation comes only from the caller's
// context.
type Loader struct {
	client *resty.Client
	page   *Page
	logger *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for debug output on failed requests.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithHTTPClient sends requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(l *Loader) {
		if hc != nil {
			l.client = resty.NewWithClient(hc)
		}
	}
}

// NewLoader returns a Loader that resolves endpoints relative to pageURL,
// the address the page was served from, as a browser would.
func NewLoader(pageURL string, page *Page, opts ...Option) *Loader {
	l := &Loader{
		client: resty.New(),
		page:   page,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.client.SetBaseURL(directoryOf(pageURL))
	return l
}

// FetchPage downloads and parses the page at pageURL.
func FetchPage(ctx context.Context, pageURL string) (*Page, error) {
	resp, err := resty.New().R().SetContext(ctx).SetDoNotParseResponse(true).Get(pageURL)
	if err != nil {
		return nil, errors.ExternalServiceError(pageURL, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &StatusError{Endpoint: pageURL, StatusCode: resp.StatusCode()}
	}
	return ParsePage(body)
}

// directoryOf drops the last path segment, so "http://h/app/index.html"
// and "http://h/app/" both become "http://h/app/".
func directoryOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}
	return u.ResolveReference(&url.URL{Path: "./"}).String()
}

// Page returns the page the loader writes into.
func (l *Loader) Page() *Page {
	return l.page
}

// Bootstrap arranges for LoadCategories to run once the page is marked
// ready. The returned channel yields the outcome once and is closed;
// callers may ignore it. If the page is already ready the fetch never
// runs and the channel is closed without a value.
func (l *Loader) Bootstrap(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	registered := l.page.OnReady(func() {
		go func() {
			defer close(done)
			done <- l.LoadCategories(ctx)
		}()
	})
	if !registered {
		close(done)
	}
	return done
}

// LoadCategories posts an empty body to the categories endpoint and, on
// status 200, replaces the category container with the response body.
func (l *Loader) LoadCategories(ctx context.Context) error {
	markup, err := l.post(ctx, CategoriesEndpoint, nil)
	if err != nil {
		return err
	}
	return l.page.SetInnerHTML(CategoryContainerID, markup)
}

// GenerateTable reads the selected category from the page and requests its
// table. A missing selection input fails before any request is sent.
func (l *Loader) GenerateTable(ctx context.Context) error {
	category, err := l.page.Value(SelectionInputID)
	if err != nil {
		return err
	}
	return l.GenerateTableFor(ctx, category)
}

// GenerateTableFor posts category as the raw body to the table endpoint
// and, on status 200, replaces the table container with the response.
func (l *Loader) GenerateTableFor(ctx context.Context, category string) error {
	markup, err := l.post(ctx, TableEndpoint, &category)
	if err != nil {
		return err
	}
	return l.page.SetInnerHTML(TableContainerID, markup)
}

// post sends a single POST. A nil body sends no payload.
func (l *Loader) post(ctx context.Context, endpoint string, body *string) (string, error) {
	req := l.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "text/plain;charset=UTF-8").SetBody(*body)
	}

	resp, err := req.Post(endpoint)
	if err != nil {
		l.logger.Debug("fragment request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return "", errors.ExternalServiceError(endpoint, err)
	}
	if resp.StatusCode() != http.StatusOK {
		l.logger.Debug("fragment request rejected", zap.String("endpoint", endpoint), zap.Int("status", resp.StatusCode()))
		return "", &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode()}
	}

	// resty's String() trims whitespace; fragments are written verbatim.
	return string(resp.Body()), nil
}
