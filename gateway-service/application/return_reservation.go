package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/readspace/library-system/gateway-service/domain"
)

// ReturnReservationCommand represents the command to return a book
type ReturnReservationCommand struct {
	ReservationUID string `json:"-"`
	UserName       string `json:"-"`
	Condition      string `json:"condition"`
	Date           string `json:"date"`
}

// ReturnReservation forwards a book return to the reservation service. Pure
// passthrough with header/body reshaping: the remote status and body come
// back unchanged.
type ReturnReservation struct {
	reservations domain.ReservationService
	log          *zap.Logger
}

// NewReturnReservation creates a new ReturnReservation use case
func NewReturnReservation(reservations domain.ReservationService, log *zap.Logger) *ReturnReservation {
	return &ReturnReservation{
		reservations: reservations,
		log:          log,
	}
}

// Execute validates presence of the identity and path identifier, then
// forwards the return
func (uc *ReturnReservation) Execute(ctx context.Context, cmd *ReturnReservationCommand) (*domain.RemoteResponse, error) {
	if cmd.UserName == "" {
		return nil, domain.ErrMissingIdentity
	}
	if cmd.ReservationUID == "" {
		return nil, domain.NewInvalidRequest("reservationUid")
	}

	resp, err := uc.reservations.ReturnReservation(ctx, cmd.ReservationUID, cmd.UserName, domain.ReturnReservationRequest{
		Condition: cmd.Condition,
		Date:      cmd.Date,
	})
	if err != nil {
		return nil, err
	}

	if !resp.Successful() {
		uc.log.Warn("reservation return rejected upstream",
			zap.String("reservation_uid", cmd.ReservationUID),
			zap.Int("status", resp.StatusCode),
		)
	}
	return resp, nil
}
