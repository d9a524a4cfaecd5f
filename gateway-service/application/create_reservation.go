package application

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/readspace/library-system/gateway-service/domain"
	"github.com/readspace/library-system/shared/saga"
	"github.com/readspace/library-system/shared/telemetry"
)

// CreateReservationCommand represents the command to create a reservation.
// UserName and ContentType come from the request headers; the rest from the
// request body.
type CreateReservationCommand struct {
	UserName    string `json:"-"`
	ContentType string `json:"-"`
	BookUID     string `json:"bookUid"`
	LibraryUID  string `json:"libraryUid"`
	TillDate    string `json:"tillDate"`
}

// BookSummary is the book part of the composite response
type BookSummary struct {
	BookUID string `json:"bookUid"`
	Name    string `json:"name"`
	Author  string `json:"author"`
	Genre   string `json:"genre"`
}

// LibrarySummary is the library part of the composite response
type LibrarySummary struct {
	LibraryUID string `json:"libraryUid"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Address    string `json:"address"`
}

// RatingSummary is the rating part of the composite response
type RatingSummary struct {
	Stars int `json:"stars"`
}

// CreateReservationResponse is the composite object merging the created
// reservation with catalog metadata and the user's rating
type CreateReservationResponse struct {
	ReservationUID string         `json:"reservationUid"`
	Status         string         `json:"status"`
	StartDate      string         `json:"startDate"`
	TillDate       string         `json:"tillDate"`
	Book           BookSummary    `json:"book"`
	Library        LibrarySummary `json:"library"`
	Rating         RatingSummary  `json:"rating"`
}

// CreateReservation orchestrates the eligibility-check-and-create workflow
// across the rating, reservation and library services. There is no shared
// transaction: the check is best effort, the reservation create is the sole
// required write, and the inventory decrement is fire-and-forget.
type CreateReservation struct {
	libraries    domain.LibraryService
	ratings      domain.RatingService
	reservations domain.ReservationService
	failOpen     bool
	log          *zap.Logger
}

// NewCreateReservation creates a new CreateReservation use case. failOpen
// selects the fallback when the rented-count read fails: true treats the
// user as having no active rentals, false fails the request.
func NewCreateReservation(
	libraries domain.LibraryService,
	ratings domain.RatingService,
	reservations domain.ReservationService,
	failOpen bool,
	log *zap.Logger,
) *CreateReservation {
	return &CreateReservation{
		libraries:    libraries,
		ratings:      ratings,
		reservations: reservations,
		failOpen:     failOpen,
		log:          log,
	}
}

// Execute runs the orchestration. Steps are sequential except the two
// catalog metadata reads; every remote call is attempted exactly once.
func (uc *CreateReservation) Execute(ctx context.Context, cmd *CreateReservationCommand) (*CreateReservationResponse, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "create_reservation",
		trace.WithAttributes(
			attribute.String("user_name", cmd.UserName),
			attribute.String("book_uid", cmd.BookUID),
			attribute.String("library_uid", cmd.LibraryUID),
		),
	)
	defer span.End()

	exec := saga.NewExecution("create_reservation")
	defer func() {
		uc.log.Info("create reservation workflow finished",
			zap.String("execution_id", exec.ID.String()),
			zap.String("user_name", cmd.UserName),
			zap.String("summary", exec.String()),
			zap.Duration("elapsed", time.Since(start)),
		)
		telemetry.RecordHistogram(ctx, "reservation_create_duration_seconds", "Reservation creation duration", time.Since(start).Seconds(),
			attribute.String("status", string(exec.Status())),
		)
	}()

	rented, err := uc.readRentedCount(ctx, cmd, exec)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	stars := uc.readStars(ctx, cmd, exec)

	// Eligibility gate: no write is issued past this point unless the user
	// still has rental headroom. A user with zero stars can never pass; that
	// matches the rating service's contract for users with no history.
	if rented >= stars {
		exec.Record("eligibility_gate", saga.OutcomeFailed, domain.ErrRentalLimitExceeded)
		if stars == 0 {
			uc.log.Warn("user has zero stars, all rentals blocked",
				zap.String("user_name", cmd.UserName),
			)
		}
		telemetry.RecordCounter(ctx, "reservation_limit_rejections_total", "Reservations rejected by the rental limit", 1)
		return nil, domain.ErrRentalLimitExceeded
	}
	exec.Record("eligibility_gate", saga.OutcomeOK, nil)

	book, library := uc.readCatalogMetadata(ctx, cmd, exec)

	reservation, err := uc.reservations.CreateReservation(ctx, cmd.UserName, cmd.ContentType, domain.CreateReservationRequest{
		BookUID:    cmd.BookUID,
		LibraryUID: cmd.LibraryUID,
		TillDate:   cmd.TillDate,
	})
	if err != nil {
		exec.Record("create_reservation", saga.OutcomeFailed, err)
		exec.Record("decrement_inventory", saga.OutcomeSkipped, nil)
		span.RecordError(err)
		return nil, err
	}
	exec.Record("create_reservation", saga.OutcomeOK, nil)

	// The seam between "reservation created" and "inventory decremented":
	// the decrement's failure is swallowed, so the two services can drift. A
	// compensation layer would hook in here, keyed on the execution record.
	if err := uc.libraries.AdjustBookCount(ctx, cmd.LibraryUID, cmd.BookUID, -1); err != nil {
		exec.Record("decrement_inventory", saga.OutcomeDegraded, err)
		uc.log.Warn("inventory decrement failed after reservation create",
			zap.String("reservation_uid", reservation.ReservationUID),
			zap.String("library_uid", cmd.LibraryUID),
			zap.String("book_uid", cmd.BookUID),
			zap.Error(err),
		)
		telemetry.RecordCounter(ctx, "reservation_inventory_decrement_failures_total", "Unchecked inventory decrement failures", 1)
	} else {
		exec.Record("decrement_inventory", saga.OutcomeOK, nil)
	}

	return uc.composeResponse(cmd, reservation, book, library, stars), nil
}

// validateCommand checks local preconditions; no remote call is issued if
// any of them fails
func (uc *CreateReservation) validateCommand(cmd *CreateReservationCommand) error {
	if cmd.UserName == "" {
		return domain.ErrMissingIdentity
	}
	if cmd.BookUID == "" {
		return domain.NewInvalidRequest("bookUid")
	}
	if cmd.LibraryUID == "" {
		return domain.NewInvalidRequest("libraryUid")
	}
	if cmd.TillDate == "" {
		return domain.NewInvalidRequest("tillDate")
	}
	return nil
}

// readRentedCount reads the user's active rental count. The fallback on
// failure is a configuration choice, not a hidden default: fail-open treats
// an unreachable reservation service as "no prior rentals" and is counted
// so it stays observable.
func (uc *CreateReservation) readRentedCount(ctx context.Context, cmd *CreateReservationCommand, exec *saga.Execution) (int, error) {
	rented, err := uc.reservations.GetRentedCount(ctx, cmd.UserName)
	if err == nil {
		exec.Record("rented_count", saga.OutcomeOK, nil)
		return rented, nil
	}

	if !uc.failOpen {
		exec.Record("rented_count", saga.OutcomeFailed, err)
		return 0, err
	}

	exec.Record("rented_count", saga.OutcomeDegraded, err)
	uc.log.Warn("rented count unavailable, failing open to zero",
		zap.String("user_name", cmd.UserName),
		zap.Error(err),
	)
	telemetry.RecordCounter(ctx, "reservation_rented_count_fallbacks_total", "Rented-count reads that failed open", 1)
	return 0, nil
}

// readStars reads the user's star rating. On failure the rating degrades to
// zero, which blocks new rentals at the gate (fail-closed in effect).
func (uc *CreateReservation) readStars(ctx context.Context, cmd *CreateReservationCommand, exec *saga.Execution) int {
	rating, err := uc.ratings.GetUserRating(ctx, cmd.UserName)
	if err != nil {
		exec.Record("stars", saga.OutcomeDegraded, err)
		uc.log.Warn("user rating unavailable, defaulting to zero stars",
			zap.String("user_name", cmd.UserName),
			zap.Error(err),
		)
		telemetry.RecordCounter(ctx, "reservation_rating_fallbacks_total", "Rating reads that defaulted to zero stars", 1)
		return 0
	}
	exec.Record("stars", saga.OutcomeOK, nil)
	return rating.Stars
}

// readCatalogMetadata fetches book and library metadata concurrently. Both
// reads are best effort: the workflow favors completing the reservation
// over perfect metadata, so a failed read degrades to empty fields.
func (uc *CreateReservation) readCatalogMetadata(ctx context.Context, cmd *CreateReservationCommand, exec *saga.Execution) (*domain.Book, *domain.Library) {
	var (
		book    *domain.Book
		library *domain.Library
		bookErr error
		libErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		book, bookErr = uc.libraries.GetBook(gctx, cmd.BookUID)
		return nil
	})
	g.Go(func() error {
		library, libErr = uc.libraries.GetLibrary(gctx, cmd.LibraryUID)
		return nil
	})
	_ = g.Wait()

	if bookErr != nil {
		exec.Record("book_metadata", saga.OutcomeDegraded, bookErr)
	} else {
		exec.Record("book_metadata", saga.OutcomeOK, nil)
	}
	if libErr != nil {
		exec.Record("library_metadata", saga.OutcomeDegraded, libErr)
	} else {
		exec.Record("library_metadata", saga.OutcomeOK, nil)
	}

	return book, library
}

func (uc *CreateReservation) composeResponse(
	cmd *CreateReservationCommand,
	reservation *domain.Reservation,
	book *domain.Book,
	library *domain.Library,
	stars int,
) *CreateReservationResponse {
	resp := &CreateReservationResponse{
		ReservationUID: reservation.ReservationUID,
		Status:         string(reservation.Status),
		StartDate:      reservation.StartDate,
		TillDate:       reservation.TillDate,
		Book:           BookSummary{BookUID: cmd.BookUID},
		Library:        LibrarySummary{LibraryUID: cmd.LibraryUID},
		Rating:         RatingSummary{Stars: stars},
	}
	if resp.TillDate == "" {
		resp.TillDate = cmd.TillDate
	}
	if book != nil {
		resp.Book.Name = book.Name
		resp.Book.Author = book.Author
		resp.Book.Genre = book.Genre
	}
	if library != nil {
		resp.Library.Name = library.Name
		resp.Library.City = library.City
		resp.Library.Address = library.Address
	}
	return resp
}
