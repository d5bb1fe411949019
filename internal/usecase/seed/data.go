package seed

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/service/pricing"
)

// Пользователи демо-данных
const (
	UserGuestID = "demo-user"
	UserOwnerID = "demo-owner"
	UserAdminID = "demo-admin"
)

func users() []*domain.User {
	return []*domain.User{
		{ID: UserGuestID, Name: "Demo Guest", Email: "guest@example.com", Role: domain.RoleUser},
		{ID: UserOwnerID, Name: "Demo Owner", Email: "owner@example.com", Role: domain.RoleOwner},
		{ID: UserAdminID, Name: "Demo Admin", Email: "admin@example.com", Role: domain.RoleAdmin},
	}
}

type hotelSeed struct {
	hotel *domain.Hotel
	rooms []*domain.Room
}

func hotels() []hotelSeed {
	return []hotelSeed{
		{
			hotel: &domain.Hotel{
				ID:       "hotel-grand-lisbon",
				OwnerID:  UserOwnerID,
				Name:     "Grand Lisbon",
				Location: "Lisbon",
				Images:   []string{"/images/grand-lisbon.jpg"},
				Status:   domain.ListingApproved,
			},
			rooms: []*domain.Room{
				{ID: "room-grand-sea-view", Title: "Sea View Double", Price: 100, Capacity: 2,
					Images: []string{"/images/sea-view.jpg"}, Status: domain.ListingApproved},
				{ID: "room-grand-suite", Title: "Presidential Suite", Price: 320, Capacity: 4,
					Status: domain.ListingApproved},
			},
		},
		{
			hotel: &domain.Hotel{
				ID:       "hotel-douro-inn",
				OwnerID:  UserOwnerID,
				Name:     "Douro Inn",
				Location: "Porto",
				Images:   []string{"/images/douro-inn.jpg"},
				Status:   domain.ListingApproved,
			},
			rooms: []*domain.Room{
				{ID: "room-douro-single", Title: "Single", Price: 55, Capacity: 1, Status: domain.ListingApproved},
				{ID: "room-douro-family", Title: "Family Room", Price: 140, Capacity: 4, Status: domain.ListingPending},
			},
		},
		{
			hotel: &domain.Hotel{
				ID:       "hotel-algarve-cliffs",
				OwnerID:  UserOwnerID,
				Name:     "Algarve Cliffs",
				Location: "Lagos",
				Status:   domain.ListingPending,
			},
			rooms: []*domain.Room{
				{ID: "room-cliffs-terrace", Title: "Terrace Room", Price: 180, Capacity: 2, Status: domain.ListingPending},
			},
		},
	}
}

// buses рейсы отправляются через несколько дней после now
func buses(now time.Time) []*domain.Bus {
	day := domain.DayFloor(now)
	return []*domain.Bus{
		newBus("bus-porto-lisbon", "Night Express", "Porto", "Lisbon", day.AddDate(0, 0, 3).Add(22*time.Hour), 25, 2, 10, 4),
		newBus("bus-lisbon-faro", "Coast Line", "Lisbon", "Faro", day.AddDate(0, 0, 5).Add(9*time.Hour), 18, 1, 12, 4),
	}
}

func newBus(id, name, from, to string, departure time.Time, fare float64, decks, rows, columns int) *domain.Bus {
	return &domain.Bus{
		ID:          id,
		Name:        name,
		From:        from,
		To:          to,
		DepartureAt: departure,
		Fare:        fare,
		Decks:       decks,
		Rows:        rows,
		Columns:     columns,
		Seats:       pricing.BuildBusSeats(fare, decks, rows, columns),
	}
}

func flights(now time.Time) []*domain.Flight {
	day := domain.DayFloor(now)
	return []*domain.Flight{
		{
			ID:           "flight-tp1940",
			FlightNumber: "TP1940",
			From:         "LIS",
			To:           "OPO",
			DepartureAt:  day.AddDate(0, 0, 2).Add(7*time.Hour + 30*time.Minute),
			Rows:         30,
			Columns:      6,
			SoldSeats:    []string{"1A", "1B", "14C"},
		},
		{
			ID:           "flight-tp1700",
			FlightNumber: "TP1700",
			From:         "LIS",
			To:           "FNC",
			DepartureAt:  day.AddDate(0, 0, 6).Add(13 * time.Hour),
			Rows:         25,
			Columns:      6,
			SoldSeats:    []string{},
		},
	}
}
