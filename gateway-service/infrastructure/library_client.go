package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readspace/library-system/gateway-service/domain"
)

// LibraryClient calls the library catalog service
type LibraryClient struct {
	baseClient
}

var _ domain.LibraryService = (*LibraryClient)(nil)

// NewLibraryClient creates a library catalog client
func NewLibraryClient(baseURL string, httpClient *http.Client, timeout time.Duration, log *zap.Logger) *LibraryClient {
	return &LibraryClient{
		baseClient: newBaseClient(baseURL, httpClient, timeout, log.Named("library-client")),
	}
}

// ListLibraries proxies GET /api/v1/libraries with the caller's query verbatim
func (c *LibraryClient) ListLibraries(ctx context.Context, query url.Values) (*domain.RemoteResponse, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/libraries", query, nil, nil)
}

// ListBooks proxies GET /api/v1/libraries/{libraryUid}/books verbatim
func (c *LibraryClient) ListBooks(ctx context.Context, libraryUID string, query url.Values) (*domain.RemoteResponse, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/libraries/%s/books", libraryUID), query, nil, nil)
}

// GetLibrary fetches one library's metadata
func (c *LibraryClient) GetLibrary(ctx context.Context, libraryUID string) (*domain.Library, error) {
	var library domain.Library
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/libraries/%s", libraryUID), nil, nil, &library); err != nil {
		return nil, errors.Wrap(err, "failed to fetch library")
	}
	return &library, nil
}

// GetBook fetches one book's metadata
func (c *LibraryClient) GetBook(ctx context.Context, bookUID string) (*domain.Book, error) {
	var book domain.Book
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/books/%s", bookUID), nil, nil, &book); err != nil {
		return nil, errors.Wrap(err, "failed to fetch book")
	}
	return &book, nil
}

// AdjustBookCount changes the book's available count at a library by delta
func (c *LibraryClient) AdjustBookCount(ctx context.Context, libraryUID, bookUID string, delta int) error {
	body, err := json.Marshal(map[string]int{"availableCountDelta": delta})
	if err != nil {
		return errors.Wrap(err, "failed to encode count adjustment")
	}

	resp, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/libraries/%s/books/%s", libraryUID, bookUID), nil, nil, body)
	if err != nil {
		return err
	}
	if !resp.Successful() {
		return &domain.UpstreamError{
			StatusCode:  resp.StatusCode,
			ContentType: resp.ContentType,
			Body:        resp.Body,
		}
	}
	return nil
}
