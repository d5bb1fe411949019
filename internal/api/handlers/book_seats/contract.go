package book_seats

import (
	"context"

	bookSeats "github.com/m04kA/SMC-TravelBooking/internal/usecase/book_seats"
)

type BookSeatsUseCase interface {
	ExecuteBus(ctx context.Context, req *bookSeats.BusRequest) (*bookSeats.Response, error)
	ExecuteFlight(ctx context.Context, req *bookSeats.FlightRequest) (*bookSeats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
