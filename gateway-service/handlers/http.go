package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/readspace/library-system/gateway-service/application"
	"github.com/readspace/library-system/gateway-service/domain"
	"github.com/readspace/library-system/gateway-service/infrastructure"
)

// GatewayHandlers contains the gateway HTTP handlers. Orchestrated
// operations go through use cases; single-hop proxies call the service
// clients directly and pass the remote response through unchanged.
type GatewayHandlers struct {
	createReservation *application.CreateReservation
	returnReservation *application.ReturnReservation
	libraries         domain.LibraryService
	ratings           domain.RatingService
	reservations      domain.ReservationService
	log               *zap.Logger
}

// NewGatewayHandlers creates new gateway handlers
func NewGatewayHandlers(
	createReservation *application.CreateReservation,
	returnReservation *application.ReturnReservation,
	libraries domain.LibraryService,
	ratings domain.RatingService,
	reservations domain.ReservationService,
	log *zap.Logger,
) *GatewayHandlers {
	return &GatewayHandlers{
		createReservation: createReservation,
		returnReservation: returnReservation,
		libraries:         libraries,
		ratings:           ratings,
		reservations:      reservations,
		log:               log,
	}
}

// RegisterRoutes registers the gateway routes
func (h *GatewayHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/libraries", h.ListLibraries)
		r.Get("/libraries/{libraryUid}/books", h.ListBooks)
		r.Get("/books/{bookUid}/rating", h.GetBookRating)
		r.Get("/rating", h.GetUserRating)
		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", h.ListReservations)
			r.Post("/", h.CreateReservation)
			r.Post("/{reservationUid}/return", h.ReturnReservation)
		})
	})
}

// ListLibraries proxies the library list
func (h *GatewayHandlers) ListLibraries(w http.ResponseWriter, r *http.Request) {
	resp, err := h.libraries.ListLibraries(r.Context(), r.URL.Query())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeRemote(w, resp)
}

// ListBooks proxies the per-library book list
func (h *GatewayHandlers) ListBooks(w http.ResponseWriter, r *http.Request) {
	libraryUID := chi.URLParam(r, "libraryUid")
	resp, err := h.libraries.ListBooks(r.Context(), libraryUID, r.URL.Query())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeRemote(w, resp)
}

// GetBookRating proxies a book's rating
func (h *GatewayHandlers) GetBookRating(w http.ResponseWriter, r *http.Request) {
	bookUID := chi.URLParam(r, "bookUid")
	resp, err := h.ratings.FetchBookRating(r.Context(), bookUID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeRemote(w, resp)
}

// GetUserRating proxies the caller's rating, identity via header
func (h *GatewayHandlers) GetUserRating(w http.ResponseWriter, r *http.Request) {
	userName := r.Header.Get(infrastructure.HeaderUserName)
	if userName == "" {
		h.writeError(w, domain.ErrMissingIdentity)
		return
	}
	resp, err := h.ratings.FetchUserRating(r.Context(), userName)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeRemote(w, resp)
}

// ListReservations proxies the user's reservation list. The user comes from
// the user_id query parameter, falling back to the identity header.
func (h *GatewayHandlers) ListReservations(w http.ResponseWriter, r *http.Request) {
	userName := r.URL.Query().Get("user_id")
	if userName == "" {
		userName = r.Header.Get(infrastructure.HeaderUserName)
	}
	if userName == "" {
		h.writeError(w, domain.ErrMissingIdentity)
		return
	}
	resp, err := h.reservations.ListReservations(r.Context(), userName)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeRemote(w, resp)
}

// CreateReservation runs the orchestrated reservation creation
func (h *GatewayHandlers) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateReservationCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.UserName = r.Header.Get(infrastructure.HeaderUserName)
	cmd.ContentType = r.Header.Get("Content-Type")

	response, err := h.createReservation.Execute(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// ReturnReservation forwards a book return
func (h *GatewayHandlers) ReturnReservation(w http.ResponseWriter, r *http.Request) {
	var cmd application.ReturnReservationCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.ReservationUID = chi.URLParam(r, "reservationUid")
	cmd.UserName = r.Header.Get(infrastructure.HeaderUserName)

	resp, err := h.returnReservation.Execute(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeRemote(w, resp)
}

// writeError maps the error taxonomy to a status and a {"message": ...}
// body. An UpstreamError surfaces the remote status and body unchanged.
func (h *GatewayHandlers) writeError(w http.ResponseWriter, err error) {
	var upstream *domain.UpstreamError
	switch {
	case stderrors.Is(err, domain.ErrMissingIdentity),
		stderrors.Is(err, domain.ErrInvalidRequest),
		stderrors.Is(err, domain.ErrRentalLimitExceeded):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case stderrors.As(err, &upstream):
		writeRemote(w, &domain.RemoteResponse{
			StatusCode:  upstream.StatusCode,
			ContentType: upstream.ContentType,
			Body:        upstream.Body,
		})
	case stderrors.Is(err, domain.ErrUpstreamTimeout):
		writeMessage(w, http.StatusGatewayTimeout, domain.ErrUpstreamTimeout.Error())
	case stderrors.Is(err, domain.ErrUpstreamUnavailable):
		writeMessage(w, http.StatusBadGateway, domain.ErrUpstreamUnavailable.Error())
	default:
		h.log.Error("unexpected gateway error", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func writeRemote(w http.ResponseWriter, resp *domain.RemoteResponse) {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
