package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Коллекции документного хранилища
const (
	CollectionBookings   = "bookings"
	CollectionRoomNights = "room_nights"
	CollectionHotels     = "hotels"
	CollectionRooms      = "rooms"
	CollectionUsers      = "users"
	CollectionBuses      = "buses"
	CollectionFlights    = "flights"
)

// Business validation constants
const (
	MaxStayNights   = 90
	MaxSeatsPerTrip = 10
	MaxBusDecks     = 2
	MaxSeatRows     = 60
	MaxSeatColumns  = 10
)

// Ценовая сетка рейса по умолчанию
const (
	DefaultPremiumRowThreshold = 4
	DefaultPremiumPrice        = 45
	DefaultWindowPrice         = 25
	DefaultAislePrice          = 20
	DefaultMiddlePrice         = 15
	DefaultPlusFreeFromRow     = 10
)
