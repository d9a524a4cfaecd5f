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

// ReservationClient calls the reservation service
type ReservationClient struct {
	baseClient
}

var _ domain.ReservationService = (*ReservationClient)(nil)

// NewReservationClient creates a reservation service client
func NewReservationClient(baseURL string, httpClient *http.Client, timeout time.Duration, log *zap.Logger) *ReservationClient {
	return &ReservationClient{
		baseClient: newBaseClient(baseURL, httpClient, timeout, log.Named("reservation-client")),
	}
}

// GetRentedCount fetches the user's current number of active rentals
func (c *ReservationClient) GetRentedCount(ctx context.Context, userName string) (int, error) {
	var rented struct {
		Count int `json:"count"`
	}
	if err := c.getJSON(ctx, "/api/v1/reservations/rented", nil, identityHeader(userName), &rented); err != nil {
		return 0, errors.Wrap(err, "failed to fetch rented count")
	}
	return rented.Count, nil
}

// ListReservations proxies the user's reservation list verbatim
func (c *ReservationClient) ListReservations(ctx context.Context, userName string) (*domain.RemoteResponse, error) {
	query := url.Values{}
	query.Set("user_id", userName)
	return c.do(ctx, http.MethodGet, "/api/v1/reservations", query, identityHeader(userName), nil)
}

// CreateReservation creates a rental record. The caller's identity and the
// original Content-Type are forwarded; a non-2xx remote status aborts with
// an *UpstreamError carrying that status and body unchanged.
func (c *ReservationClient) CreateReservation(ctx context.Context, userName, contentType string, req domain.CreateReservationRequest) (*domain.Reservation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode reservation request")
	}

	header := identityHeader(userName)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/v1/reservations", nil, header, body)
	if err != nil {
		return nil, err
	}
	if !resp.Successful() {
		return nil, &domain.UpstreamError{
			StatusCode:  resp.StatusCode,
			ContentType: resp.ContentType,
			Body:        resp.Body,
		}
	}

	var reservation domain.Reservation
	if err := json.Unmarshal(resp.Body, &reservation); err != nil {
		return nil, errors.Wrapf(domain.ErrUpstreamUnavailable, "non-JSON reservation response: %v", err)
	}
	return &reservation, nil
}

// ReturnReservation marks a reservation returned and yields the remote
// status and body verbatim
func (c *ReservationClient) ReturnReservation(ctx context.Context, reservationUID, userName string, req domain.ReturnReservationRequest) (*domain.RemoteResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode return request")
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/reservations/%s/return", reservationUID), nil, identityHeader(userName), body)
}
