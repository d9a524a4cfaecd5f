package infrastructure

import (
	"context"
	stderrors "errors"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readspace/library-system/gateway-service/domain"
)

const testTimeout = 2 * time.Second

func TestLibraryClient_ListLibraries_ForwardsQueryAndPassesThrough(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/libraries", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"items":[],"page":2,"pageSize":10,"totalElements":0}`))
	}))
	defer server.Close()

	client := NewLibraryClient(server.URL, server.Client(), testTimeout, zap.NewNop())

	query := url.Values{}
	query.Set("city", "Moscow")
	query.Set("page", "2")

	resp, err := client.ListLibraries(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, "Moscow", gotQuery.Get("city"))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"items":[],"page":2,"pageSize":10,"totalElements":0}`, string(resp.Body))
}

func TestLibraryClient_ListBooks_PassesThroughUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/libraries/lib-1/books", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Library not found"}`))
	}))
	defer server.Close()

	client := NewLibraryClient(server.URL, server.Client(), testTimeout, zap.NewNop())

	resp, err := client.ListBooks(context.Background(), "lib-1", nil)
	require.NoError(t, err)

	// Proxy semantics: a remote failure is a same-status passthrough, not an error
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Library not found"}`, string(resp.Body))
}

func TestLibraryClient_GetBook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/books/book-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bookUid":"book-1","name":"Dune","author":"Frank Herbert","genre":"Science Fiction","condition":"EXCELLENT"}`))
	}))
	defer server.Close()

	client := NewLibraryClient(server.URL, server.Client(), testTimeout, zap.NewNop())

	book, err := client.GetBook(context.Background(), "book-1")
	require.NoError(t, err)

	assert.Equal(t, &domain.Book{
		BookUID:   "book-1",
		Name:      "Dune",
		Author:    "Frank Herbert",
		Genre:     "Science Fiction",
		Condition: domain.ConditionExcellent,
	}, book)
}

func TestLibraryClient_GetBook_NotFoundIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewLibraryClient(server.URL, server.Client(), testTimeout, zap.NewNop())

	book, err := client.GetBook(context.Background(), "book-1")
	assert.Nil(t, book)

	var upstream *domain.UpstreamError
	require.True(t, stderrors.As(err, &upstream))
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
}

func TestLibraryClient_AdjustBookCount(t *testing.T) {
	var gotMethod string
	var gotBody map[string]int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/libraries/lib-1/books/book-1", r.URL.Path)
		gotMethod = r.Method
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewLibraryClient(server.URL, server.Client(), testTimeout, zap.NewNop())

	err := client.AdjustBookCount(context.Background(), "lib-1", "book-1", -1)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, map[string]int{"availableCountDelta": -1}, gotBody)
}

func TestRatingClient_GetUserRating_SendsIdentityHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/rating", r.URL.Path)
		require.Equal(t, "alice", r.Header.Get(HeaderUserName))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"stars":4}`))
	}))
	defer server.Close()

	client := NewRatingClient(server.URL, server.Client(), testTimeout, zap.NewNop())

	rating, err := client.GetUserRating(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Stars)
}

func TestRatingClient_GetUserRating_NonJSONIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewRatingClient(server.URL, server.Client(), testTimeout, zap.NewNop())

	rating, err := client.GetUserRating(context.Background(), "alice")
	assert.Nil(t, rating)
	assert.True(t, stderrors.Is(err, domain.ErrUpstreamUnavailable))
}

func TestReservationClient_GetRentedCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/reservations/rented", r.URL.Path)
		require.Equal(t, "alice", r.Header.Get(HeaderUserName))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":2}`))
	}))
	defer server.Close()

	client := NewReservationClient(server.URL, server.Client(), testTimeout, zap.NewNop())

	count, err := client.GetRentedCount(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestReservationClient_CreateReservation_ForwardsHeadersAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/reservations", r.URL.Path)
		require.Equal(t, "alice", r.Header.Get(HeaderUserName))
		require.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))

		var req domain.CreateReservationRequest
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &req))
		require.Equal(t, "book-1", req.BookUID)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reservationUid":"res-1","bookUid":"book-1","libraryUid":"lib-1","status":"RENTED","startDate":"2024-01-01","tillDate":"2024-01-14"}`))
	}))
	defer server.Close()

	client := NewReservationClient(server.URL, server.Client(), testTimeout, zap.NewNop())

	reservation, err := client.CreateReservation(context.Background(), "alice", "application/json; charset=utf-8", domain.CreateReservationRequest{
		BookUID:    "book-1",
		LibraryUID: "lib-1",
		TillDate:   "2024-01-14",
	})
	require.NoError(t, err)

	assert.Equal(t, "res-1", reservation.ReservationUID)
	assert.Equal(t, domain.ReservationRented, reservation.Status)
	assert.Equal(t, "2024-01-14", reservation.TillDate)
}

func TestReservationClient_CreateReservation_RejectionCarriesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"reservation storage down"}`))
	}))
	defer server.Close()

	client := NewReservationClient(server.URL, server.Client(), testTimeout, zap.NewNop())

	reservation, err := client.CreateReservation(context.Background(), "alice", "application/json", domain.CreateReservationRequest{
		BookUID:    "book-1",
		LibraryUID: "lib-1",
		TillDate:   "2024-01-14",
	})
	assert.Nil(t, reservation)

	var upstream *domain.UpstreamError
	require.True(t, stderrors.As(err, &upstream))
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
	assert.JSONEq(t, `{"message":"reservation storage down"}`, string(upstream.Body))
}

func TestReservationClient_ReturnReservation(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/reservations/res-1/return", r.URL.Path)
		require.Equal(t, "alice", r.Header.Get(HeaderUserName))
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"RETURNED"}`))
	}))
	defer server.Close()

	client := NewReservationClient(server.URL, server.Client(), testTimeout, zap.NewNop())

	resp, err := client.ReturnReservation(context.Background(), "res-1", "alice", domain.ReturnReservationRequest{
		Condition: "GOOD",
		Date:      "2024-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"condition": "GOOD", "date": "2024-01-01"}, gotBody)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"RETURNED"}`, string(resp.Body))
}

func TestBaseClient_TimeoutIsDistinctFromUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(500 * time.Millisecond):
		}
	}))
	defer server.Close()

	client := NewRatingClient(server.URL, server.Client(), 50*time.Millisecond, zap.NewNop())

	_, err := client.GetUserRating(context.Background(), "alice")
	assert.True(t, stderrors.Is(err, domain.ErrUpstreamTimeout), "slow upstreams must classify as timeout, got %v", err)
	assert.False(t, stderrors.Is(err, domain.ErrUpstreamUnavailable))
}

func TestBaseClient_ConnectionRefusedIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := NewRatingClient(serverURL, &http.Client{}, testTimeout, zap.NewNop())

	_, err := client.GetUserRating(context.Background(), "alice")
	assert.True(t, stderrors.Is(err, domain.ErrUpstreamUnavailable), "dead upstreams must classify as unavailable, got %v", err)
	assert.False(t, stderrors.Is(err, domain.ErrUpstreamTimeout))
}
