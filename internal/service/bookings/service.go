package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/events"
	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
// Доступно автору бронирования, владельцу отеля и администратору
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", req.UserID)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid status filter: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: found %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetOwnerBookings получает бронирования отелей владельца
func (s *Service) GetOwnerBookings(ctx context.Context, req *models.GetOwnerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: fetching bookings for owner=%s", req.UserID)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		s.logger.Warn("GetOwnerBookings: invalid status filter: %v", err)
		return nil, err
	}

	user, err := s.getUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CanManageListings() {
		s.logger.Warn("GetOwnerBookings: user=%s is not a hotel owner", req.UserID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByHotelOwner(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: found %d bookings for owner=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Порядок проверок: существование, права, дата заезда, текущий статус.
// Освобождение номера или мест не требуется: учитываются только подтверждённые бронирования.
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.UserID)

	if bookingID == "" || req.UserID == "" {
		return fmt.Errorf("%w: bookingId and userId are required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	var cancelled *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Cancel", bookingID)
		if err != nil {
			return err
		}

		if err := s.checkAccess(txCtx, booking, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%s", req.UserID, bookingID)
			return err
		}

		if booking.HasCheckInPassed(now) {
			s.logger.Warn("Cancel: booking id=%s check-in %s has passed",
				bookingID, booking.FromDate.Format(domain.DateFormat))
			return ErrPastCheckIn
		}

		if booking.IsCancelled() {
			s.logger.Warn("Cancel: booking id=%s is already cancelled", bookingID)
			return ErrAlreadyCancelled
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID, now); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%s not found during cancellation", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %w", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		booking.CancelledAt = &now
		cancelled = booking
		return nil
	})
	if err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.BookingCancelled(string(cancelled.Kind))
	}
	if s.publisher != nil {
		event := events.NewBookingCancelled(cancelled, req.UserID, now)
		if err := s.publisher.Publish(ctx, events.TopicBookingCancelled, event); err != nil {
			s.logger.Warn("Cancel: failed to publish %s for booking id=%s: %v",
				events.TopicBookingCancelled, bookingID, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return booking, nil
}

// getUser возвращает nil без ошибки, если пользователь не найден
func (s *Service) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, nil
		}
		s.logger.Error("getUser: failed to get user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: getUser - repository error: %w", ErrInternal, err)
	}
	return user, nil
}

// checkAccess проверяет, что пользователь автор бронирования, владелец отеля или администратор
func (s *Service) checkAccess(ctx context.Context, booking *domain.Booking, userID string) error {
	if booking.UserID == userID {
		return nil
	}
	if booking.HotelOwnerID != "" && booking.HotelOwnerID == userID {
		return nil
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return nil
	}

	return ErrAccessDenied
}

func parseStatus(raw *string) (*domain.BookingStatus, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	status, err := models.ToDomainBookingStatus(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &status, nil
}
