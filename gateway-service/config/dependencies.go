package config

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/readspace/library-system/gateway-service/application"
	"github.com/readspace/library-system/gateway-service/handlers"
	"github.com/readspace/library-system/gateway-service/infrastructure"
	"github.com/readspace/library-system/shared/telemetry"
)

type Dependencies struct {
	// Service clients
	LibraryClient     *infrastructure.LibraryClient
	RatingClient      *infrastructure.RatingClient
	ReservationClient *infrastructure.ReservationClient

	// Use cases
	CreateReservation *application.CreateReservation
	ReturnReservation *application.ReturnReservation

	// HTTP handlers
	GatewayHandlers *handlers.GatewayHandlers

	// Observability
	Telemetry         *telemetry.Telemetry
	telemetryShutdown func()
}

func BuildDependencies(ctx context.Context, cfg *Config, log *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	if cfg.Telemetry.Enabled {
		tel, shutdown, err := telemetry.InitTelemetry(ctx,
			telemetry.GatewayServiceConfig.
				WithOTLPEndpoint(cfg.Telemetry.OTLPEndpoint),
		)
		if err != nil {
			return nil, err
		}
		deps.Telemetry = tel
		deps.telemetryShutdown = shutdown
	}

	// One transport shared across the clients; per-call deadlines live in
	// the clients themselves.
	httpClient := &http.Client{}
	timeout := cfg.ClientTimeout()

	deps.LibraryClient = infrastructure.NewLibraryClient(cfg.Services.LibraryURL, httpClient, timeout, log)
	deps.RatingClient = infrastructure.NewRatingClient(cfg.Services.RatingURL, httpClient, timeout, log)
	deps.ReservationClient = infrastructure.NewReservationClient(cfg.Services.ReservationURL, httpClient, timeout, log)

	deps.CreateReservation = application.NewCreateReservation(
		deps.LibraryClient,
		deps.RatingClient,
		deps.ReservationClient,
		cfg.Reservation.FailOpen,
		log.Named("create-reservation"),
	)
	deps.ReturnReservation = application.NewReturnReservation(
		deps.ReservationClient,
		log.Named("return-reservation"),
	)

	deps.GatewayHandlers = handlers.NewGatewayHandlers(
		deps.CreateReservation,
		deps.ReturnReservation,
		deps.LibraryClient,
		deps.RatingClient,
		deps.ReservationClient,
		log.Named("handlers"),
	)

	return deps, nil
}

// Close releases all dependencies
func (d *Dependencies) Close() error {
	if d.telemetryShutdown != nil {
		d.telemetryShutdown()
	}
	return nil
}
