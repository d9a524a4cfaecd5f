package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readspace/library-system/gateway-service/domain"
)

// RatingClient calls the rating service
type RatingClient struct {
	baseClient
}

var _ domain.RatingService = (*RatingClient)(nil)

// NewRatingClient creates a rating service client
func NewRatingClient(baseURL string, httpClient *http.Client, timeout time.Duration, log *zap.Logger) *RatingClient {
	return &RatingClient{
		baseClient: newBaseClient(baseURL, httpClient, timeout, log.Named("rating-client")),
	}
}

// GetUserRating fetches the caller's star count
func (c *RatingClient) GetUserRating(ctx context.Context, userName string) (*domain.UserRating, error) {
	var rating domain.UserRating
	if err := c.getJSON(ctx, "/api/v1/rating", nil, identityHeader(userName), &rating); err != nil {
		return nil, errors.Wrap(err, "failed to fetch user rating")
	}
	return &rating, nil
}

// FetchUserRating proxies the caller's rating verbatim
func (c *RatingClient) FetchUserRating(ctx context.Context, userName string) (*domain.RemoteResponse, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/rating", nil, identityHeader(userName), nil)
}

// FetchBookRating proxies a book's rating verbatim
func (c *RatingClient) FetchBookRating(ctx context.Context, bookUID string) (*domain.RemoteResponse, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/ratings/%s", bookUID), nil, nil, nil)
}
