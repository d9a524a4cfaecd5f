package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readspace/library-system/gateway-service/application"
	"github.com/readspace/library-system/gateway-service/infrastructure"
)

// downstreams stubs the three collaborator services and counts every call,
// so tests can assert which remote endpoints a gateway operation touched.
type downstreams struct {
	stars          int
	starsStatus    int
	rented         int
	rentedStatus   int
	createStatus   int
	metadataStatus int
	returnStatus   int
	returnBody     string

	ratingCalls    atomic.Int32
	rentedCalls    atomic.Int32
	createCalls    atomic.Int32
	decrementCalls atomic.Int32
	metadataCalls  atomic.Int32
	listCalls      atomic.Int32

	lastReturnBody []byte
	lastReturnUser string
}

func newDownstreams() *downstreams {
	return &downstreams{
		stars:          5,
		starsStatus:    http.StatusOK,
		rented:         0,
		rentedStatus:   http.StatusOK,
		createStatus:   http.StatusOK,
		metadataStatus: http.StatusOK,
		returnStatus:   http.StatusOK,
		returnBody:     `{"status":"RETURNED"}`,
	}
}

func newGateway(t *testing.T, d *downstreams) *chi.Mux {
	t.Helper()

	librarySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPatch:
			d.decrementCalls.Add(1)
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/api/v1/libraries":
			d.listCalls.Add(1)
			w.Write([]byte(`{"page":1,"pageSize":10,"totalElements":1,"items":[{"libraryUid":"lib-1","name":"Central Library","city":"Moscow","address":"Baumanskaya st. 5"}]}`))
		case strings.HasPrefix(r.URL.Path, "/api/v1/books/"):
			d.metadataCalls.Add(1)
			if d.metadataStatus != http.StatusOK {
				w.WriteHeader(d.metadataStatus)
				w.Write([]byte(`{"message":"not found"}`))
				return
			}
			w.Write([]byte(`{"bookUid":"book-1","name":"Dune","author":"Frank Herbert","genre":"Science Fiction","condition":"EXCELLENT"}`))
		default:
			d.metadataCalls.Add(1)
			if d.metadataStatus != http.StatusOK {
				w.WriteHeader(d.metadataStatus)
				w.Write([]byte(`{"message":"not found"}`))
				return
			}
			w.Write([]byte(`{"libraryUid":"lib-1","name":"Central Library","city":"Moscow","address":"Baumanskaya st. 5"}`))
		}
	}))
	t.Cleanup(librarySrv.Close)

	ratingSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d.ratingCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if d.starsStatus != http.StatusOK {
			w.WriteHeader(d.starsStatus)
			w.Write([]byte(`{"message":"rating unavailable"}`))
			return
		}
		resp, _ := json.Marshal(map[string]int{"stars": d.stars})
		w.Write(resp)
	}))
	t.Cleanup(ratingSrv.Close)

	reservationSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/v1/reservations/rented":
			d.rentedCalls.Add(1)
			if d.rentedStatus != http.StatusOK {
				w.WriteHeader(d.rentedStatus)
				return
			}
			resp, _ := json.Marshal(map[string]int{"count": d.rented})
			w.Write(resp)
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/reservations":
			d.createCalls.Add(1)
			if d.createStatus != http.StatusOK {
				w.WriteHeader(d.createStatus)
				w.Write([]byte(`{"message":"creation rejected"}`))
				return
			}
			var req struct {
				BookUID    string `json:"bookUid"`
				LibraryUID string `json:"libraryUid"`
				TillDate   string `json:"tillDate"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			// A fresh UID per call: creation is not deduplicated
			resp, _ := json.Marshal(map[string]string{
				"reservationUid": uuid.NewString(),
				"bookUid":        req.BookUID,
				"libraryUid":     req.LibraryUID,
				"status":         "RENTED",
				"startDate":      "2024-01-01",
				"tillDate":       req.TillDate,
			})
			w.Write(resp)
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/return"):
			d.lastReturnBody, _ = io.ReadAll(r.Body)
			d.lastReturnUser = r.Header.Get(infrastructure.HeaderUserName)
			w.WriteHeader(d.returnStatus)
			w.Write([]byte(d.returnBody))
		default:
			w.Write([]byte(`{"items":[]}`))
		}
	}))
	t.Cleanup(reservationSrv.Close)

	log := zap.NewNop()
	httpClient := &http.Client{}
	timeout := 2 * time.Second

	libraries := infrastructure.NewLibraryClient(librarySrv.URL, httpClient, timeout, log)
	ratings := infrastructure.NewRatingClient(ratingSrv.URL, httpClient, timeout, log)
	reservations := infrastructure.NewReservationClient(reservationSrv.URL, httpClient, timeout, log)

	gatewayHandlers := NewGatewayHandlers(
		application.NewCreateReservation(libraries, ratings, reservations, true, log),
		application.NewReturnReservation(reservations, log),
		libraries,
		ratings,
		reservations,
		log,
	)

	router := chi.NewRouter()
	gatewayHandlers.RegisterRoutes(router)
	return router
}

func createBody() string {
	return `{"bookUid":"book-1","libraryUid":"lib-1","tillDate":"2024-01-14"}`
}

func TestCreateReservation_MissingIdentityShortCircuits(t *testing.T) {
	d := newDownstreams()
	router := newGateway(t, d)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(createBody()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "X-User-Name")

	// No remote call may be issued on a validation failure
	assert.EqualValues(t, 0, d.ratingCalls.Load())
	assert.EqualValues(t, 0, d.rentedCalls.Load())
	assert.EqualValues(t, 0, d.createCalls.Load())
	assert.EqualValues(t, 0, d.decrementCalls.Load())
}

func TestCreateReservation_Success(t *testing.T) {
	d := newDownstreams()
	d.stars = 5
	d.rented = 1
	router := newGateway(t, d)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(createBody()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(infrastructure.HeaderUserName, "alice")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp application.CreateReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ReservationUID)
	assert.Equal(t, "RENTED", resp.Status)
	assert.Equal(t, "2024-01-14", resp.TillDate)
	assert.Equal(t, "Dune", resp.Book.Name)
	assert.Equal(t, "Frank Herbert", resp.Book.Author)
	assert.Equal(t, "Central Library", resp.Library.Name)
	assert.Equal(t, "Moscow", resp.Library.City)
	assert.Equal(t, 5, resp.Rating.Stars)

	assert.EqualValues(t, 1, d.createCalls.Load())
	assert.EqualValues(t, 1, d.decrementCalls.Load())
}

func TestCreateReservation_IsNotIdempotent(t *testing.T) {
	d := newDownstreams()
	router := newGateway(t, d)

	uids := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(createBody()))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(infrastructure.HeaderUserName, "alice")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp application.CreateReservationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		uids = append(uids, resp.ReservationUID)
	}

	// Two identical requests produce two distinct reservations
	assert.EqualValues(t, 2, d.createCalls.Load())
	assert.NotEqual(t, uids[0], uids[1])
}

func TestCreateReservation_LimitRejectionIssuesNoWrites(t *testing.T) {
	d := newDownstreams()
	d.stars = 2
	d.rented = 2
	router := newGateway(t, d)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(createBody()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(infrastructure.HeaderUserName, "alice")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "rental limit")

	assert.EqualValues(t, 0, d.createCalls.Load())
	assert.EqualValues(t, 0, d.decrementCalls.Load())
	assert.EqualValues(t, 0, d.metadataCalls.Load())
}

func TestCreateReservation_UpstreamRejectionPassesStatusThrough(t *testing.T) {
	d := newDownstreams()
	d.createStatus = http.StatusServiceUnavailable
	router := newGateway(t, d)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(createBody()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(infrastructure.HeaderUserName, "alice")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Same status as the reservation service, and no inventory decrement
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"creation rejected"}`, rec.Body.String())
	assert.EqualValues(t, 1, d.createCalls.Load())
	assert.EqualValues(t, 0, d.decrementCalls.Load())
}

func TestCreateReservation_MetadataFailureDegrades(t *testing.T) {
	d := newDownstreams()
	d.metadataStatus = http.StatusNotFound
	router := newGateway(t, d)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(createBody()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(infrastructure.HeaderUserName, "alice")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp application.CreateReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ReservationUID)
	assert.Equal(t, "book-1", resp.Book.BookUID)
	assert.Empty(t, resp.Book.Name)
	assert.Empty(t, resp.Book.Author)
	assert.Equal(t, "lib-1", resp.Library.LibraryUID)
	assert.Empty(t, resp.Library.Name)
}

func TestReturnReservation_RoundTrip(t *testing.T) {
	d := newDownstreams()
	router := newGateway(t, d)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/res-1/return", strings.NewReader(`{"condition":"GOOD","date":"2024-01-01"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(infrastructure.HeaderUserName, "alice")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"RETURNED"}`, rec.Body.String())

	// Exactly the condition/date body plus the identity header reach upstream
	assert.JSONEq(t, `{"condition":"GOOD","date":"2024-01-01"}`, string(d.lastReturnBody))
	assert.Equal(t, "alice", d.lastReturnUser)
}

func TestReturnReservation_MissingIdentity(t *testing.T) {
	d := newDownstreams()
	router := newGateway(t, d)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/res-1/return", strings.NewReader(`{"condition":"GOOD","date":"2024-01-01"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, d.lastReturnBody)
}

func TestListLibraries_ProxiesUpstream(t *testing.T) {
	d := newDownstreams()
	router := newGateway(t, d)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/libraries?city=Moscow&page=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, d.listCalls.Load())

	var body struct {
		TotalElements int `json:"totalElements"`
		Items         []struct {
			LibraryUID string `json:"libraryUid"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "lib-1", body.Items[0].LibraryUID)
}

func TestGetUserRating_RequiresIdentity(t *testing.T) {
	d := newDownstreams()
	router := newGateway(t, d)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rating", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, 0, d.ratingCalls.Load())
}

func TestGetUserRating_ProxiesUpstream(t *testing.T) {
	d := newDownstreams()
	d.stars = 3
	router := newGateway(t, d)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rating", nil)
	req.Header.Set(infrastructure.HeaderUserName, "alice")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"stars":3}`, rec.Body.String())
}
