package seat_map

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// TransportRepository интерфейс репозитория рейсов
type TransportRepository interface {
	GetBus(ctx context.Context, id string) (*domain.Bus, error)
	GetFlight(ctx context.Context, id string) (*domain.Flight, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
