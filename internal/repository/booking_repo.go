package repository

import (
	"context"
	"time"

	"roomstay/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	BookingID           string     `gorm:"column:booking_id;primaryKey"`
	RoomID              string     `gorm:"column:room_id;index"`
	CheckInDate         time.Time  `gorm:"column:check_in_date"`
	CheckOutDate        time.Time  `gorm:"column:check_out_date"`
	TotalDays           int        `gorm:"column:total_days"`
	TotalPrice          int        `gorm:"column:total_price"`
	Status              int        `gorm:"column:status"`
	Capacity            int        `gorm:"column:capacity"`
	IsBreakfast         bool       `gorm:"column:is_breakfast"`
	Refund              int        `gorm:"column:refund"`
	ExtraPay            int        `gorm:"column:extra_pay"`
	CustomerID          string     `gorm:"column:customer_id;index"`
	CustomerName        string     `gorm:"column:customer_name"`
	CustomerEmail       string     `gorm:"column:customer_email"`
	CustomerPhone       string     `gorm:"column:customer_phone"`
	ActiveStatus        int        `gorm:"column:active_status"`
	RevenueRecognizedAt *time.Time `gorm:"column:revenue_recognized_at"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	cid, _ := uuid.Parse(m.CustomerID)

	return &domain.Booking{
		BookingID:           m.BookingID,
		RoomID:              m.RoomID,
		CheckInDate:         m.CheckInDate,
		CheckOutDate:        m.CheckOutDate,
		TotalDays:           m.TotalDays,
		TotalPrice:          m.TotalPrice,
		Status:              m.Status,
		Capacity:            m.Capacity,
		IsBreakfast:         m.IsBreakfast,
		Refund:              m.Refund,
		ExtraPay:            m.ExtraPay,
		CustomerID:          cid,
		CustomerName:        m.CustomerName,
		CustomerEmail:       m.CustomerEmail,
		CustomerPhone:       m.CustomerPhone,
		ActiveStatus:        m.ActiveStatus,
		RevenueRecognizedAt: m.RevenueRecognizedAt,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		BookingID:           b.BookingID,
		RoomID:              b.RoomID,
		CheckInDate:         b.CheckInDate,
		CheckOutDate:        b.CheckOutDate,
		TotalDays:           b.TotalDays,
		TotalPrice:          b.TotalPrice,
		Status:              b.Status,
		Capacity:            b.Capacity,
		IsBreakfast:         b.IsBreakfast,
		Refund:              b.Refund,
		ExtraPay:            b.ExtraPay,
		CustomerID:          b.CustomerID.String(),
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		ActiveStatus:        b.ActiveStatus,
		RevenueRecognizedAt: b.RevenueRecognizedAt,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// liveOverlap narrows a bookings query to rows that still claim the room
// and intersect the half-open [checkIn, checkOut) window.
func liveOverlap(q *gorm.DB, roomID string, checkIn, checkOut time.Time) *gorm.DB {
	return q.
		Where("room_id = ?", roomID).
		Where("active_status = ?", domain.Active).
		Where("status <> ?", domain.BookingCancelled).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
}

// CreateWithRoomHold inserts the booking and flips the room to unavailable
// in one transaction. The room row is locked first and the overlap check is
// repeated under that lock, so two concurrent requests for intersecting
// windows cannot both commit.
func (r *BookingRepository) CreateWithRoomHold(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rm roomModel
		if err := lockForUpdate(tx).First(&rm, "room_id = ?", b.RoomID).Error; err != nil {
			return err
		}

		var cnt int64
		if err := liveOverlap(tx.Model(&bookingModel{}), b.RoomID, b.CheckInDate, b.CheckOutDate).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlappingBooking
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		if err := tx.Model(&roomModel{}).
			Where("room_id = ?", b.RoomID).
			Updates(map[string]any{
				"availability_status": domain.RoomUnavailable,
				"updated_at":          time.Now(),
			}).Error; err != nil {
			return err
		}

		*b = *toDomainBooking(m)
		return nil
	})
}

// SaveWithRoomHold persists changed dates on an existing booking under the
// same room lock and overlap re-check as CreateWithRoomHold, ignoring the
// booking's own row.
func (r *BookingRepository) SaveWithRoomHold(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rm roomModel
		if err := lockForUpdate(tx).First(&rm, "room_id = ?", b.RoomID).Error; err != nil {
			return err
		}

		var cnt int64
		if err := liveOverlap(tx.Model(&bookingModel{}), b.RoomID, b.CheckInDate, b.CheckOutDate).
			Where("booking_id <> ?", b.BookingID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlappingBooking
		}

		m := toBookingModel(b)
		m.UpdatedAt = time.Now()
		if err := tx.Save(&m).Error; err != nil {
			return err
		}

		*b = *toDomainBooking(m)
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, "booking_id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListActive(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	if err := r.db.WithContext(ctx).
		Where("active_status = ?", domain.Active).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return mapBookings(ms), nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	var ms []bookingModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND active_status = ?", customerID.String(), domain.Active).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return mapBookings(ms), nil
}

// ListByOwner returns active bookings on rooms belonging to the owner's
// properties.
func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error) {
	var ms []bookingModel
	q := `
SELECT b.*
FROM bookings b
JOIN rooms r ON r.room_id = b.room_id
JOIN room_types rt ON rt.room_type_id = r.room_type_id
JOIN properties p ON p.property_id = rt.property_id
WHERE p.owner_id = ? AND b.active_status = ?
ORDER BY b.created_at DESC
`
	if err := r.db.WithContext(ctx).Raw(q, ownerID.String(), domain.Active).Scan(&ms).Error; err != nil {
		return nil, err
	}
	return mapBookings(ms), nil
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Booking, error) {
	var ms []bookingModel
	if err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return mapBookings(ms), nil
}

// ExistsLiveOverlap reports whether any live booking on the room intersects
// [start, end). Used by maintenance scheduling.
func (r *BookingRepository) ExistsLiveOverlap(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	var cnt int64
	if err := liveOverlap(r.db.WithContext(ctx).Model(&bookingModel{}), roomID, start, end).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// UpdateStatus performs a guarded transition: the row is only touched if it
// is still in the expected status.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to int) error {
	res := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("booking_id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

// CancelAndRelease sets the booking to Cancelled and the room back to
// available in one transaction. The transition is guarded on the status the
// caller observed; a concurrent transition yields ErrStaleStatus.
func (r *BookingRepository) CancelAndRelease(ctx context.Context, bookingID, roomID string, fromStatus int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&bookingModel{}).
			Where("booking_id = ? AND status = ?", bookingID, fromStatus).
			Updates(map[string]any{"status": domain.BookingCancelled, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleStatus
		}
		return tx.Model(&roomModel{}).
			Where("room_id = ?", roomID).
			Updates(map[string]any{"availability_status": domain.RoomAvailable, "updated_at": now}).Error
	})
}

// ListForAutoCheckout returns confirmed, active bookings whose checkout has
// passed and whose revenue has not been recognized yet.
func (r *BookingRepository) ListForAutoCheckout(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND active_status = ?", domain.BookingConfirmed, domain.Active).
		Where("check_out_date <= ?", now).
		Where("revenue_recognized_at IS NULL").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return mapBookings(ms), nil
}

// FinalizeCheckout stamps the revenue marker, releases the room and credits
// the property income in one transaction. Returns false without touching
// anything when the marker was already set, which makes sweep replays
// harmless.
func (r *BookingRepository) FinalizeCheckout(ctx context.Context, bookingID, roomID, propertyID string, amount int, now time.Time) (bool, error) {
	done := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&bookingModel{}).
			Where("booking_id = ? AND status = ? AND active_status = ?", bookingID, domain.BookingConfirmed, domain.Active).
			Where("revenue_recognized_at IS NULL").
			Updates(map[string]any{"revenue_recognized_at": now, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		if err := tx.Model(&roomModel{}).
			Where("room_id = ?", roomID).
			Updates(map[string]any{"availability_status": domain.RoomAvailable, "updated_at": now}).Error; err != nil {
			return err
		}

		if err := tx.Model(&propertyModel{}).
			Where("property_id = ?", propertyID).
			Updates(map[string]any{
				"income":     gorm.Expr("income + ?", amount),
				"updated_at": now,
			}).Error; err != nil {
			return err
		}

		done = true
		return nil
	})
	return done, err
}

func mapBookings(ms []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
