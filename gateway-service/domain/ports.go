package domain

import (
	"context"
	"net/http"
	"net/url"
)

// RemoteResponse carries a downstream response verbatim for passthrough
// operations: same status code, same body, same content type. The gateway
// never upgrades or downgrades a remote failure's severity on these paths.
type RemoteResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Successful reports whether the remote call returned a 2xx status
func (r *RemoteResponse) Successful() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// LibraryService performs read/write calls against the library catalog
type LibraryService interface {
	// ListLibraries proxies the library list, forwarding query parameters
	ListLibraries(ctx context.Context, query url.Values) (*RemoteResponse, error)
	// ListBooks proxies the per-library book list
	ListBooks(ctx context.Context, libraryUID string, query url.Values) (*RemoteResponse, error)
	// GetLibrary fetches one library's metadata
	GetLibrary(ctx context.Context, libraryUID string) (*Library, error)
	// GetBook fetches one book's metadata
	GetBook(ctx context.Context, bookUID string) (*Book, error)
	// AdjustBookCount changes a book's available count at a library by delta
	AdjustBookCount(ctx context.Context, libraryUID, bookUID string, delta int) error
}

// RatingService fetches user and book ratings
type RatingService interface {
	// GetUserRating fetches the caller's star count
	GetUserRating(ctx context.Context, userName string) (*UserRating, error)
	// FetchUserRating proxies the caller's rating verbatim
	FetchUserRating(ctx context.Context, userName string) (*RemoteResponse, error)
	// FetchBookRating proxies a book's rating verbatim
	FetchBookRating(ctx context.Context, bookUID string) (*RemoteResponse, error)
}

// ReservationService performs read/write calls against the reservation service
type ReservationService interface {
	// GetRentedCount fetches the user's current number of active rentals
	GetRentedCount(ctx context.Context, userName string) (int, error)
	// ListReservations proxies the user's reservation list verbatim
	ListReservations(ctx context.Context, userName string) (*RemoteResponse, error)
	// CreateReservation creates a rental record, forwarding the caller's
	// identity and original content type. A non-2xx remote status is
	// returned as an *UpstreamError carrying the status and body unchanged.
	CreateReservation(ctx context.Context, userName, contentType string, req CreateReservationRequest) (*Reservation, error)
	// ReturnReservation marks a reservation returned, forwarding the body
	// and identity, and yields the remote status/body verbatim
	ReturnReservation(ctx context.Context, reservationUID, userName string, req ReturnReservationRequest) (*RemoteResponse, error)
}
