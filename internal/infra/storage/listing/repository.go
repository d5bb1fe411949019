package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore"
)

// Repository репозиторий отелей и номеров
type Repository struct {
	store DocumentStore
}

// NewRepository создает новый экземпляр репозитория объявлений
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// CreateHotel сохраняет отель
// Если ID не задан, хранилище генерирует новый.
func (r *Repository) CreateHotel(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	fields, err := docstore.ToFields(fromDomainHotel(hotel))
	if err != nil {
		return nil, fmt.Errorf("%w: CreateHotel - %v", ErrEncode, err)
	}

	id, err := r.save(ctx, domain.CollectionHotels, hotel.ID, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateHotel: %w", ErrStore, err)
	}
	hotel.ID = id
	return hotel, nil
}

// GetHotel получает отель по ID
func (r *Repository) GetHotel(ctx context.Context, id string) (*domain.Hotel, error) {
	doc, err := r.store.Get(ctx, domain.CollectionHotels, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHotel - id=%s: %w", ErrStore, id, err)
	}

	rec, err := docstore.FromDocument[hotelRecord](doc)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHotel - id=%s: %v", ErrDecode, id, err)
	}
	return rec.toDomain(), nil
}

// ListHotels получает отели, опционально по статусу модерации и владельцу
func (r *Repository) ListHotels(ctx context.Context, status *domain.ListingStatus, ownerID *string) ([]*domain.Hotel, error) {
	filters := make([]docstore.Filter, 0, 2)
	if status != nil {
		filters = append(filters, docstore.Eq("status", string(*status)))
	}
	if ownerID != nil {
		filters = append(filters, docstore.Eq("ownerId", *ownerID))
	}

	docs, err := r.store.Query(ctx, domain.CollectionHotels, filters...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHotels: %w", ErrStore, err)
	}

	records, err := docstore.FromDocuments[hotelRecord](docs)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHotels - %v", ErrDecode, err)
	}

	hotels := make([]*domain.Hotel, 0, len(records))
	for _, rec := range records {
		hotels = append(hotels, rec.toDomain())
	}
	return hotels, nil
}

// UpdateHotelStatus меняет статус модерации отеля
func (r *Repository) UpdateHotelStatus(ctx context.Context, id string, status domain.ListingStatus) error {
	err := r.store.Update(ctx, domain.CollectionHotels, id, map[string]interface{}{"status": string(status)})
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrHotelNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateHotelStatus - id=%s: %w", ErrStore, id, err)
	}
	return nil
}

// CreateRoom сохраняет номер
// Если ID не задан, хранилище генерирует новый.
func (r *Repository) CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	fields, err := docstore.ToFields(fromDomainRoom(room))
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRoom - %v", ErrEncode, err)
	}

	id, err := r.save(ctx, domain.CollectionRooms, room.ID, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRoom: %w", ErrStore, err)
	}
	room.ID = id
	return room, nil
}

// GetRoom получает номер по ID
func (r *Repository) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	doc, err := r.store.Get(ctx, domain.CollectionRooms, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - id=%s: %w", ErrStore, id, err)
	}

	rec, err := docstore.FromDocument[roomRecord](doc)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - id=%s: %v", ErrDecode, id, err)
	}
	return rec.toDomain(), nil
}

// ListRooms получает номера отеля, опционально по статусу модерации
func (r *Repository) ListRooms(ctx context.Context, hotelID string, status *domain.ListingStatus) ([]*domain.Room, error) {
	filters := []docstore.Filter{docstore.Eq("hotelId", hotelID)}
	if status != nil {
		filters = append(filters, docstore.Eq("status", string(*status)))
	}

	docs, err := r.store.Query(ctx, domain.CollectionRooms, filters...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - hotel=%s: %w", ErrStore, hotelID, err)
	}

	records, err := docstore.FromDocuments[roomRecord](docs)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - %v", ErrDecode, err)
	}

	rooms := make([]*domain.Room, 0, len(records))
	for _, rec := range records {
		rooms = append(rooms, rec.toDomain())
	}
	return rooms, nil
}

// UpdateRoomStatus меняет статус модерации номера
func (r *Repository) UpdateRoomStatus(ctx context.Context, id string, status domain.ListingStatus) error {
	err := r.store.Update(ctx, domain.CollectionRooms, id, map[string]interface{}{"status": string(status)})
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrRoomNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateRoomStatus - id=%s: %w", ErrStore, id, err)
	}
	return nil
}

// CountHotels количество отелей (используется при начальном заполнении)
func (r *Repository) CountHotels(ctx context.Context) (int, error) {
	docs, err := r.store.Query(ctx, domain.CollectionHotels)
	if err != nil {
		return 0, fmt.Errorf("%w: CountHotels: %w", ErrStore, err)
	}
	return len(docs), nil
}

func (r *Repository) save(ctx context.Context, collection, id string, fields map[string]interface{}) (string, error) {
	if id == "" {
		return r.store.Add(ctx, collection, fields)
	}
	return id, r.store.Set(ctx, collection, id, fields)
}
