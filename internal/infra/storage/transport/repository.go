package transport

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore"
)

// Repository репозиторий автобусных рейсов и авиарейсов
type Repository struct {
	store DocumentStore
}

// NewRepository создает новый экземпляр репозитория рейсов
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// CreateBus сохраняет автобусный рейс вместе с картой мест
func (r *Repository) CreateBus(ctx context.Context, bus *domain.Bus) (*domain.Bus, error) {
	fields, err := docstore.ToFields(fromDomainBus(bus))
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBus - %v", ErrEncode, err)
	}

	id, err := r.save(ctx, domain.CollectionBuses, bus.ID, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBus: %w", ErrStore, err)
	}
	bus.ID = id
	return bus, nil
}

// GetBus получает автобусный рейс по ID
func (r *Repository) GetBus(ctx context.Context, id string) (*domain.Bus, error) {
	doc, err := r.store.Get(ctx, domain.CollectionBuses, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrBusNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBus - id=%s: %w", ErrStore, id, err)
	}

	rec, err := docstore.FromDocument[busRecord](doc)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBus - id=%s: %v", ErrDecode, id, err)
	}
	return rec.toDomain(), nil
}

// ListBuses получает все автобусные рейсы
func (r *Repository) ListBuses(ctx context.Context) ([]*domain.Bus, error) {
	docs, err := r.store.Query(ctx, domain.CollectionBuses)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBuses: %w", ErrStore, err)
	}

	records, err := docstore.FromDocuments[busRecord](docs)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBuses - %v", ErrDecode, err)
	}

	buses := make([]*domain.Bus, 0, len(records))
	for _, rec := range records {
		buses = append(buses, rec.toDomain())
	}
	return buses, nil
}

// UpdateBusSeats перезаписывает карту мест автобуса
func (r *Repository) UpdateBusSeats(ctx context.Context, id string, seats []domain.Seat) error {
	err := r.store.Update(ctx, domain.CollectionBuses, id, map[string]interface{}{"seats": fromDomainSeats(seats)})
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrBusNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateBusSeats - id=%s: %w", ErrStore, id, err)
	}
	return nil
}

// CreateFlight сохраняет авиарейс
func (r *Repository) CreateFlight(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	fields, err := docstore.ToFields(fromDomainFlight(flight))
	if err != nil {
		return nil, fmt.Errorf("%w: CreateFlight - %v", ErrEncode, err)
	}

	id, err := r.save(ctx, domain.CollectionFlights, flight.ID, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateFlight: %w", ErrStore, err)
	}
	flight.ID = id
	return flight, nil
}

// GetFlight получает авиарейс по ID
func (r *Repository) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	doc, err := r.store.Get(ctx, domain.CollectionFlights, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFlight - id=%s: %w", ErrStore, id, err)
	}

	rec, err := docstore.FromDocument[flightRecord](doc)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFlight - id=%s: %v", ErrDecode, id, err)
	}
	return rec.toDomain(), nil
}

// ListFlights получает все авиарейсы
func (r *Repository) ListFlights(ctx context.Context) ([]*domain.Flight, error) {
	docs, err := r.store.Query(ctx, domain.CollectionFlights)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFlights: %w", ErrStore, err)
	}

	records, err := docstore.FromDocuments[flightRecord](docs)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFlights - %v", ErrDecode, err)
	}

	flights := make([]*domain.Flight, 0, len(records))
	for _, rec := range records {
		flights = append(flights, rec.toDomain())
	}
	return flights, nil
}

// UpdateSoldSeats перезаписывает список проданных мест рейса
func (r *Repository) UpdateSoldSeats(ctx context.Context, id string, soldSeats []string) error {
	if soldSeats == nil {
		soldSeats = []string{}
	}

	err := r.store.Update(ctx, domain.CollectionFlights, id, map[string]interface{}{"soldSeats": soldSeats})
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrFlightNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateSoldSeats - id=%s: %w", ErrStore, id, err)
	}
	return nil
}

func (r *Repository) save(ctx context.Context, collection, id string, fields map[string]interface{}) (string, error) {
	if id == "" {
		return r.store.Add(ctx, collection, fields)
	}
	return id, r.store.Set(ctx, collection, id, fields)
}
