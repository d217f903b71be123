package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"roomstay/internal/domain"
	"roomstay/internal/pkg/idgen"
	"roomstay/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings   BookingRepository
	rooms      RoomRepository
	customers  CustomerStore
	guard      MaintenanceGuard
	properties PropertyDirectory
	ledger     RevenueLedger
	checker    *AvailabilityChecker
	invoices   InvoiceSender
	notifs     NotificationSender
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	customers CustomerStore,
	guard MaintenanceGuard,
	properties PropertyDirectory,
	ledger RevenueLedger,
	invoices InvoiceSender,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings:   bookings,
		rooms:      rooms,
		customers:  customers,
		guard:      guard,
		properties: properties,
		ledger:     ledger,
		checker:    NewAvailabilityChecker(bookings, guard),
		invoices:   invoices,
		notifs:     notifs,
	}
}

func (s *Service) Checker() *AvailabilityChecker { return s.checker }

func validateStay(checkIn, checkOut time.Time, now time.Time) error {
	if checkIn.Before(now) {
		return ErrInvalidDateRange
	}
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}
	if domain.Nights(checkIn, checkOut) < 1 {
		return ErrInvalidDateRange
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, checkOut, err := parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if err := validateStay(checkIn, checkOut, time.Now().UTC()); err != nil {
		return nil, err
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if req.Capacity > room.RoomType.Capacity {
		return nil, ErrCapacityExceeded
	}

	conflict, err := s.guard.HasConflict(ctx, room.RoomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrMaintenanceConflict
	}

	available, err := s.checker.IsAvailable(ctx, room, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrBookingConflict
	}

	quote, err := PriceFor(room.RoomType, checkIn, checkOut, req.AddOnBreakfast)
	if err != nil {
		return nil, err
	}

	if err := s.customers.Upsert(ctx, &domain.Customer{
		CustomerID: customerID,
		Name:       req.CustomerName,
		Email:      req.CustomerEmail,
		Phone:      req.CustomerPhone,
	}); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		BookingID:     idgen.BookingID(room.RoomID, time.Now()),
		RoomID:        room.RoomID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		TotalDays:     quote.Nights,
		TotalPrice:    quote.Total,
		Status:        domain.BookingWaiting,
		Capacity:      req.Capacity,
		IsBreakfast:   req.AddOnBreakfast,
		CustomerID:    customerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ActiveStatus:  domain.Active,
	}

	if err := s.bookings.CreateWithRoomHold(ctx, b); err != nil {
		return nil, mapConflictErr(err)
	}

	if s.invoices != nil {
		s.invoices.Send(Invoice{
			CustomerID:  customerID,
			BookingID:   b.BookingID,
			Description: "Accommodation Bill",
			Amount:      b.TotalPrice,
		})
	}

	if s.notifs != nil {
		if _, ownerID, err := s.properties.PropertyForRoom(ctx, room.RoomID); err == nil {
			_ = s.notifs.NotifyBookingCreated(ctx, ownerID, b.BookingID, room.RoomID, checkIn)
		}
	}

	return b, nil
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, bookingID string, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.getScoped(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}

	if b.Status == domain.BookingCancelled {
		return nil, ErrBookingCancelled
	}

	checkIn, checkOut, err := parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if err := validateStay(checkIn, checkOut, time.Now().UTC()); err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		return nil, err
	}
	if req.Capacity > room.RoomType.Capacity {
		return nil, ErrCapacityExceeded
	}

	conflict, err := s.guard.HasConflict(ctx, room.RoomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrMaintenanceConflict
	}

	available, err := s.checker.IsAvailableForUpdate(ctx, room, checkIn, checkOut, b.BookingID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrBookingConflict
	}

	quote, err := PriceFor(room.RoomType, checkIn, checkOut, req.AddOnBreakfast)
	if err != nil {
		return nil, err
	}

	// Price is locked once payment is confirmed. An update that keeps the
	// total unchanged (same nights and add-on cost) is still allowed.
	if b.Status == domain.BookingConfirmed && quote.Total != b.TotalPrice {
		return nil, ErrPriceLocked
	}

	if err := s.customers.Upsert(ctx, &domain.Customer{
		CustomerID: b.CustomerID,
		Name:       req.CustomerName,
		Email:      req.CustomerEmail,
		Phone:      req.CustomerPhone,
	}); err != nil {
		return nil, err
	}

	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	b.TotalDays = quote.Nights
	b.TotalPrice = quote.Total
	b.Capacity = req.Capacity
	b.IsBreakfast = req.AddOnBreakfast
	b.CustomerName = req.CustomerName
	b.CustomerEmail = req.CustomerEmail
	b.CustomerPhone = req.CustomerPhone

	if err := s.bookings.SaveWithRoomHold(ctx, b); err != nil {
		return nil, mapConflictErr(err)
	}
	return b, nil
}

// Pay confirms a waiting booking and credits the property income with the
// booking total.
func (s *Service) Pay(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	b, err := s.getScoped(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingWaiting, domain.BookingConfirmed); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrNotPayable
		}
		return nil, err
	}
	b.Status = domain.BookingConfirmed

	propertyID, ownerID, err := s.properties.PropertyForRoom(ctx, b.RoomID)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Credit(ctx, propertyID, b.TotalPrice); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingPaid(ctx, ownerID, b.BookingID, b.TotalPrice)
	}

	return b, nil
}

// Cancel moves a waiting or confirmed booking to Cancelled and releases the
// room. Income is reversed only when the booking had been confirmed.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	b, err := s.getScoped(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}

	if b.Status == domain.BookingCancelled {
		return nil, ErrNotCancellable
	}
	wasConfirmed := b.Status == domain.BookingConfirmed

	if err := s.bookings.CancelAndRelease(ctx, b.BookingID, b.RoomID, b.Status); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrNotCancellable
		}
		return nil, err
	}
	b.Status = domain.BookingCancelled

	propertyID, ownerID, err := s.properties.PropertyForRoom(ctx, b.RoomID)
	if err != nil {
		return nil, err
	}
	if wasConfirmed {
		if err := s.ledger.Debit(ctx, propertyID, b.TotalPrice); err != nil {
			return nil, err
		}
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, ownerID, b.BookingID)
	}

	return b, nil
}

// AutoCheckIn sweeps confirmed bookings whose checkout has passed, credits
// their revenue and releases their rooms. Each booking is finalized in its
// own transaction, so a crash mid-sweep loses nothing and a replay credits
// nothing twice. Returns the number of bookings processed.
func (s *Service) AutoCheckIn(ctx context.Context, now time.Time) (int, error) {
	due, err := s.bookings.ListForAutoCheckout(ctx, now)
	if err != nil {
		return 0, err
	}

	processed := 0
	for i := range due {
		b := &due[i]
		propertyID, _, err := s.properties.PropertyForRoom(ctx, b.RoomID)
		if err != nil {
			log.Printf("auto_checkin booking=%s resolve property failed: %v", b.BookingID, err)
			continue
		}
		done, err := s.bookings.FinalizeCheckout(ctx, b.BookingID, b.RoomID, propertyID, b.TotalPrice, now)
		if err != nil {
			log.Printf("auto_checkin booking=%s finalize failed: %v", b.BookingID, err)
			continue
		}
		if done {
			processed++
		}
	}
	return processed, nil
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	return s.getScoped(ctx, actor, bookingID)
}

// List returns the bookings visible to the actor: customers see their own,
// owners see bookings on their properties, superadmin sees everything.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.Booking, error) {
	switch {
	case actor.IsCustomer():
		return s.bookings.ListByCustomer(ctx, actor.UserID)
	case actor.IsOwner():
		return s.bookings.ListByOwner(ctx, actor.UserID)
	case actor.IsSuperadmin():
		return s.bookings.ListActive(ctx)
	default:
		return nil, ErrForbidden
	}
}

func (s *Service) getScoped(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actor.IsCustomer() && b.CustomerID != actor.UserID {
		return nil, ErrForbidden
	}
	return b, nil
}

// mapConflictErr folds the two ways a double booking can surface, the
// in-transaction recheck and the database exclusion constraint, into one
// sentinel.
func mapConflictErr(err error) error {
	if errors.Is(err, repository.ErrOverlappingBooking) {
		return ErrBookingConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23P01" && pgErr.ConstraintName == "idx_no_double_booking" {
			return ErrBookingConflict
		}
	}
	return fmt.Errorf("persist booking: %w", err)
}
