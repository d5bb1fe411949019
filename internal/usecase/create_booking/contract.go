package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований и ключей ночей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ClaimNight(ctx context.Context, roomID string, night time.Time, bookingID string) error
	GetNight(ctx context.Context, roomID string, night time.Time) (*domain.RoomNight, error)
	TakeOverNight(ctx context.Context, roomID string, night time.Time, bookingID string) error
}

// ListingRepository интерфейс репозитория отелей и номеров
type ListingRepository interface {
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	GetHotel(ctx context.Context, id string) (*domain.Hotel, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// AvailabilityChecker проверка пересечения с подтверждёнными бронированиями
type AvailabilityChecker interface {
	CheckOverlap(ctx context.Context, roomID string, from, to time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикует события бронирований
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// Metrics счётчики бронирований
type Metrics interface {
	BookingCreated(kind string)
	BookingConflict(kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
