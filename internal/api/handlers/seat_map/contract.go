package seat_map

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	seatMap "github.com/m04kA/SMC-TravelBooking/internal/usecase/seat_map"
)

type SeatMapUseCase interface {
	BusSeats(ctx context.Context, busID string) (*seatMap.SeatMap, error)
	FlightSeats(ctx context.Context, flightID string, tier domain.FareTier) (*seatMap.SeatMap, error)
	QuoteBus(ctx context.Context, req *seatMap.QuoteRequest) (*seatMap.Quote, error)
	QuoteFlight(ctx context.Context, req *seatMap.QuoteRequest) (*seatMap.Quote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
