package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	store DocumentStore
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// NewID генерирует идентификатор бронирования заранее,
// чтобы ключи ночей можно было занять до сохранения самого документа
func NewID() string {
	return uuid.NewString()
}

// Create сохраняет новое бронирование
// Если ID не задан, генерируется новый.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.ID == "" {
		booking.ID = NewID()
	}

	fields, err := docstore.ToFields(fromDomainBooking(booking))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %v", ErrEncode, err)
	}

	if err := r.store.Create(ctx, domain.CollectionBookings, booking.ID, fields); err != nil {
		return nil, fmt.Errorf("%w: Create - id=%s: %w", ErrStore, booking.ID, err)
	}
	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	doc, err := r.store.Get(ctx, domain.CollectionBookings, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - id=%s: %w", ErrStore, id, err)
	}

	rec, err := docstore.FromDocument[bookingRecord](doc)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - id=%s: %v", ErrDecode, id, err)
	}
	return rec.toDomain(), nil
}

// GetByRoom получает бронирования номера
// Опционально фильтрует по статусу
func (r *Repository) GetByRoom(ctx context.Context, roomID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return r.query(ctx, "GetByRoom", withStatus(status, docstore.Eq("roomId", roomID)))
}

// GetByUserID получает список бронирований пользователя, новые заезды первыми
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	bookings, err := r.query(ctx, "GetByUserID", withStatus(status, docstore.Eq("userId", userID)))
	if err != nil {
		return nil, err
	}
	sortByFromDateDesc(bookings)
	return bookings, nil
}

// GetByHotelOwner получает бронирования всех отелей владельца, новые заезды первыми
func (r *Repository) GetByHotelOwner(ctx context.Context, ownerID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	bookings, err := r.query(ctx, "GetByHotelOwner", withStatus(status, docstore.Eq("hotelOwnerId", ownerID)))
	if err != nil {
		return nil, err
	}
	sortByFromDateDesc(bookings)
	return bookings, nil
}

// Cancel переводит бронирование в статус cancelled и проставляет время отмены
func (r *Repository) Cancel(ctx context.Context, id string, cancelledAt time.Time) error {
	fields := map[string]interface{}{
		"status":      string(domain.StatusCancelled),
		"cancelledAt": cancelledAt,
	}

	err := r.store.Update(ctx, domain.CollectionBookings, id, fields)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Cancel - id=%s: %w", ErrStore, id, err)
	}
	return nil
}

// ClaimNight занимает ключ ночи за бронированием
// Если ключ уже существует, возвращает ErrNightTaken.
func (r *Repository) ClaimNight(ctx context.Context, roomID string, night time.Time, bookingID string) error {
	id := domain.RoomNightID(roomID, night)

	fields, err := docstore.ToFields(nightRecord(id, roomID, night, bookingID))
	if err != nil {
		return fmt.Errorf("%w: ClaimNight - %v", ErrEncode, err)
	}

	err = r.store.Create(ctx, domain.CollectionRoomNights, id, fields)
	if errors.Is(err, docstore.ErrAlreadyExists) {
		return ErrNightTaken
	}
	if err != nil {
		return fmt.Errorf("%w: ClaimNight - id=%s: %w", ErrStore, id, err)
	}
	return nil
}

// GetNight получает ключ ночи
func (r *Repository) GetNight(ctx context.Context, roomID string, night time.Time) (*domain.RoomNight, error) {
	id := domain.RoomNightID(roomID, night)

	doc, err := r.store.Get(ctx, domain.CollectionRoomNights, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNightNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetNight - id=%s: %w", ErrStore, id, err)
	}

	rec, err := docstore.FromDocument[roomNightRecord](doc)
	if err != nil {
		return nil, fmt.Errorf("%w: GetNight - id=%s: %v", ErrDecode, id, err)
	}
	return rec.toDomain(), nil
}

// TakeOverNight перезаписывает ключ ночи на новое бронирование
// Вызывается только внутри транзакции после проверки, что прежний держатель не активен.
func (r *Repository) TakeOverNight(ctx context.Context, roomID string, night time.Time, bookingID string) error {
	id := domain.RoomNightID(roomID, night)

	fields, err := docstore.ToFields(nightRecord(id, roomID, night, bookingID))
	if err != nil {
		return fmt.Errorf("%w: TakeOverNight - %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, domain.CollectionRoomNights, id, fields); err != nil {
		return fmt.Errorf("%w: TakeOverNight - id=%s: %w", ErrStore, id, err)
	}
	return nil
}

func (r *Repository) query(ctx context.Context, op string, filters []docstore.Filter) ([]*domain.Booking, error) {
	docs, err := r.store.Query(ctx, domain.CollectionBookings, filters...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - query: %w", ErrStore, op, err)
	}

	records, err := docstore.FromDocuments[bookingRecord](docs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - %v", ErrDecode, op, err)
	}

	bookings := make([]*domain.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, rec.toDomain())
	}
	return bookings, nil
}

func withStatus(status *domain.BookingStatus, filters ...docstore.Filter) []docstore.Filter {
	if status != nil {
		filters = append(filters, docstore.Eq("status", string(*status)))
	}
	return filters
}

func nightRecord(id, roomID string, night time.Time, bookingID string) *roomNightRecord {
	return &roomNightRecord{
		ID:        id,
		RoomID:    roomID,
		Night:     domain.DayFloor(night),
		BookingID: bookingID,
	}
}

func sortByFromDateDesc(bookings []*domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].FromDate.After(bookings[j].FromDate)
	})
}
