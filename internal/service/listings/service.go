package listings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	listingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/listing"
	userRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-TravelBooking/internal/service/listings/models"
	"github.com/m04kA/SMC-TravelBooking/internal/service/pricing"
	"github.com/m04kA/SMC-TravelBooking/pkg/ptr"
)

// Service сервис каталога: отели, номера, автобусные рейсы и авиарейсы
type Service struct {
	listingRepo   ListingRepository
	transportRepo TransportRepository
	userRepo      UserRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	listingRepo ListingRepository,
	transportRepo TransportRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		listingRepo:   listingRepo,
		transportRepo: transportRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// CreateHotel создаёт отель владельца в статусе pending
func (s *Service) CreateHotel(ctx context.Context, req *models.CreateHotelRequest) (*models.HotelResponse, error) {
	s.logger.Info("CreateHotel: user=%s, name=%s", req.UserID, req.Name)

	if err := validateHotel(req); err != nil {
		s.logger.Warn("CreateHotel: validation failed: %v", err)
		return nil, err
	}

	user, err := s.getUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !user.CanManageListings() {
		s.logger.Warn("CreateHotel: user=%s cannot manage listings", req.UserID)
		return nil, ErrAccessDenied
	}

	hotel, err := s.listingRepo.CreateHotel(ctx, &domain.Hotel{
		OwnerID:  user.ID,
		Name:     req.Name,
		Location: req.Location,
		Images:   req.Images,
		Status:   domain.ListingPending,
	})
	if err != nil {
		s.logger.Error("CreateHotel: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateHotel - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateHotel: successfully created hotel id=%s", hotel.ID)
	return ptr.Ptr(models.FromDomainHotel(hotel)), nil
}

// GetHotel получает отель по ID
func (s *Service) GetHotel(ctx context.Context, id string) (*models.HotelResponse, error) {
	hotel, err := s.getHotel(ctx, "GetHotel", id)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(models.FromDomainHotel(hotel)), nil
}

// ListHotels возвращает отели по фильтрам
// Без фильтров возвращаются только одобренные отели.
func (s *Service) ListHotels(ctx context.Context, req *models.ListHotelsRequest) ([]models.HotelResponse, error) {
	status, err := parseListingStatus(req.Status)
	if err != nil {
		s.logger.Warn("ListHotels: %v", err)
		return nil, err
	}
	if status == nil && req.OwnerID == nil {
		status = ptr.Ptr(domain.ListingApproved)
	}

	hotels, err := s.listingRepo.ListHotels(ctx, status, req.OwnerID)
	if err != nil {
		s.logger.Error("ListHotels: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHotels - repository error: %w", ErrInternal, err)
	}

	resp := make([]models.HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		resp = append(resp, models.FromDomainHotel(h))
	}
	return resp, nil
}

// SetHotelStatus меняет статус модерации отеля, доступно администратору
func (s *Service) SetHotelStatus(ctx context.Context, req *models.SetStatusRequest) error {
	s.logger.Info("SetHotelStatus: hotel=%s, status=%s by user=%s", req.ID, req.Status, req.UserID)

	status, err := s.checkModeration(ctx, req)
	if err != nil {
		return err
	}

	if err := s.listingRepo.UpdateHotelStatus(ctx, req.ID, status); err != nil {
		if errors.Is(err, listingRepo.ErrHotelNotFound) {
			s.logger.Warn("SetHotelStatus: hotel id=%s not found", req.ID)
			return ErrHotelNotFound
		}
		s.logger.Error("SetHotelStatus: repository error for hotel id=%s: %v", req.ID, err)
		return fmt.Errorf("%w: SetHotelStatus - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("SetHotelStatus: hotel id=%s is now %s", req.ID, status)
	return nil
}

// CreateRoom создаёт номер в отеле в статусе pending
// Доступно владельцу отеля и администратору
func (s *Service) CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("CreateRoom: user=%s, hotel=%s, title=%s", req.UserID, req.HotelID, req.Title)

	if err := validateRoom(req); err != nil {
		s.logger.Warn("CreateRoom: validation failed: %v", err)
		return nil, err
	}

	hotel, err := s.getHotel(ctx, "CreateRoom", req.HotelID)
	if err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if hotel.OwnerID != req.UserID && !user.IsAdmin() {
		s.logger.Warn("CreateRoom: user=%s does not own hotel id=%s", req.UserID, hotel.ID)
		return nil, ErrAccessDenied
	}

	room, err := s.listingRepo.CreateRoom(ctx, &domain.Room{
		HotelID:  hotel.ID,
		Title:    req.Title,
		Price:    req.Price,
		Capacity: req.Capacity,
		Images:   req.Images,
		Status:   domain.ListingPending,
	})
	if err != nil {
		s.logger.Error("CreateRoom: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRoom - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateRoom: successfully created room id=%s", room.ID)
	return ptr.Ptr(models.FromDomainRoom(room)), nil
}

// ListRooms возвращает номера отеля, опционально по статусу
func (s *Service) ListRooms(ctx context.Context, hotelID string, rawStatus *string) ([]models.RoomResponse, error) {
	status, err := parseListingStatus(rawStatus)
	if err != nil {
		s.logger.Warn("ListRooms: %v", err)
		return nil, err
	}

	if _, err := s.getHotel(ctx, "ListRooms", hotelID); err != nil {
		return nil, err
	}

	rooms, err := s.listingRepo.ListRooms(ctx, hotelID, status)
	if err != nil {
		s.logger.Error("ListRooms: repository error for hotel id=%s: %v", hotelID, err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %w", ErrInternal, err)
	}

	resp := make([]models.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, models.FromDomainRoom(r))
	}
	return resp, nil
}

// SetRoomStatus меняет статус модерации номера, доступно администратору
func (s *Service) SetRoomStatus(ctx context.Context, req *models.SetStatusRequest) error {
	s.logger.Info("SetRoomStatus: room=%s, status=%s by user=%s", req.ID, req.Status, req.UserID)

	status, err := s.checkModeration(ctx, req)
	if err != nil {
		return err
	}

	if err := s.listingRepo.UpdateRoomStatus(ctx, req.ID, status); err != nil {
		if errors.Is(err, listingRepo.ErrRoomNotFound) {
			s.logger.Warn("SetRoomStatus: room id=%s not found", req.ID)
			return ErrRoomNotFound
		}
		s.logger.Error("SetRoomStatus: repository error for room id=%s: %v", req.ID, err)
		return fmt.Errorf("%w: SetRoomStatus - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("SetRoomStatus: room id=%s is now %s", req.ID, status)
	return nil
}

// CreateBus создаёт автобусный рейс; карта мест генерируется один раз по тарифу
func (s *Service) CreateBus(ctx context.Context, req *models.CreateBusRequest) (*models.TripResponse, error) {
	s.logger.Info("CreateBus: user=%s, name=%s, %s -> %s", req.UserID, req.Name, req.From, req.To)

	if err := validateBus(req); err != nil {
		s.logger.Warn("CreateBus: validation failed: %v", err)
		return nil, err
	}
	if err := s.requireAdmin(ctx, "CreateBus", req.UserID); err != nil {
		return nil, err
	}

	bus, err := s.transportRepo.CreateBus(ctx, &domain.Bus{
		Name:        req.Name,
		From:        req.From,
		To:          req.To,
		DepartureAt: req.DepartureAt.UTC(),
		Fare:        req.Fare,
		Decks:       req.Decks,
		Rows:        req.Rows,
		Columns:     req.Columns,
		Seats:       pricing.BuildBusSeats(req.Fare, req.Decks, req.Rows, req.Columns),
	})
	if err != nil {
		s.logger.Error("CreateBus: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBus - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateBus: successfully created bus id=%s with %d seats", bus.ID, len(bus.Seats))
	return ptr.Ptr(models.FromDomainBus(bus)), nil
}

// ListBuses возвращает все автобусные рейсы
func (s *Service) ListBuses(ctx context.Context) ([]models.TripResponse, error) {
	buses, err := s.transportRepo.ListBuses(ctx)
	if err != nil {
		s.logger.Error("ListBuses: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBuses - repository error: %w", ErrInternal, err)
	}

	resp := make([]models.TripResponse, 0, len(buses))
	for _, b := range buses {
		resp = append(resp, models.FromDomainBus(b))
	}
	return resp, nil
}

// CreateFlight создаёт авиарейс, доступно администратору
func (s *Service) CreateFlight(ctx context.Context, req *models.CreateFlightRequest) (*models.TripResponse, error) {
	s.logger.Info("CreateFlight: user=%s, flight=%s, %s -> %s", req.UserID, req.FlightNumber, req.From, req.To)

	if err := validateFlight(req); err != nil {
		s.logger.Warn("CreateFlight: validation failed: %v", err)
		return nil, err
	}
	if err := s.requireAdmin(ctx, "CreateFlight", req.UserID); err != nil {
		return nil, err
	}

	flight, err := s.transportRepo.CreateFlight(ctx, &domain.Flight{
		FlightNumber: req.FlightNumber,
		From:         req.From,
		To:           req.To,
		DepartureAt:  req.DepartureAt.UTC(),
		Rows:         req.Rows,
		Columns:      req.Columns,
		SoldSeats:    []string{},
	})
	if err != nil {
		s.logger.Error("CreateFlight: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateFlight - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateFlight: successfully created flight id=%s", flight.ID)
	return ptr.Ptr(models.FromDomainFlight(flight)), nil
}

// ListFlights возвращает все авиарейсы
func (s *Service) ListFlights(ctx context.Context) ([]models.TripResponse, error) {
	flights, err := s.transportRepo.ListFlights(ctx)
	if err != nil {
		s.logger.Error("ListFlights: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListFlights - repository error: %w", ErrInternal, err)
	}

	resp := make([]models.TripResponse, 0, len(flights))
	for _, f := range flights {
		resp = append(resp, models.FromDomainFlight(f))
	}
	return resp, nil
}

// Вспомогательные методы

func (s *Service) getHotel(ctx context.Context, op, id string) (*domain.Hotel, error) {
	hotel, err := s.listingRepo.GetHotel(ctx, id)
	if err != nil {
		if errors.Is(err, listingRepo.ErrHotelNotFound) {
			s.logger.Warn("%s: hotel id=%s not found", op, id)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("%s: repository error for hotel id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return hotel, nil
}

// getUser возвращает ErrAccessDenied для неизвестного пользователя
func (s *Service) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("getUser: user id=%s not found", userID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("getUser: failed to get user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: getUser - repository error: %w", ErrInternal, err)
	}
	return user, nil
}

func (s *Service) requireAdmin(ctx context.Context, op, userID string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		s.logger.Warn("%s: user=%s is not an admin", op, userID)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) checkModeration(ctx context.Context, req *models.SetStatusRequest) (domain.ListingStatus, error) {
	status, ok := domain.ParseListingStatus(req.Status)
	if !ok {
		return "", fmt.Errorf("%w: unknown status %s", ErrInvalidInput, req.Status)
	}
	if err := s.requireAdmin(ctx, "Moderation", req.UserID); err != nil {
		return "", err
	}
	return status, nil
}
