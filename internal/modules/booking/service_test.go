package booking

import (
	"context"
	"testing"
	"time"

	"roomstay/internal/domain"
	"roomstay/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateWithRoomHold(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) SaveWithRoomHold(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListActive(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Booking, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, from, to int) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelAndRelease(ctx context.Context, bookingID, roomID string, fromStatus int) error {
	args := m.Called(ctx, bookingID, roomID, fromStatus)
	return args.Error(0)
}

func (m *MockBookingRepository) ListForAutoCheckout(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FinalizeCheckout(ctx context.Context, bookingID, roomID, propertyID string, amount int, now time.Time) (bool, error) {
	args := m.Called(ctx, bookingID, roomID, propertyID, amount, now)
	return args.Bool(0), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockCustomerStore struct {
	mock.Mock
}

func (m *MockCustomerStore) Upsert(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockMaintenanceGuard struct {
	mock.Mock
}

func (m *MockMaintenanceGuard) HasConflict(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut)
	return args.Bool(0), args.Error(1)
}

type MockPropertyDirectory struct {
	mock.Mock
}

func (m *MockPropertyDirectory) PropertyForRoom(ctx context.Context, roomID string) (string, uuid.UUID, error) {
	args := m.Called(ctx, roomID)
	return args.String(0), args.Get(1).(uuid.UUID), args.Error(2)
}

// fakeLedger tracks a running balance so income round trips are observable.
type fakeLedger struct {
	income map[string]int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{income: make(map[string]int)}
}

func (f *fakeLedger) Credit(ctx context.Context, propertyID string, amount int) error {
	f.income[propertyID] += amount
	return nil
}

func (f *fakeLedger) Debit(ctx context.Context, propertyID string, amount int) error {
	f.income[propertyID] -= amount
	return nil
}

type fakeInvoiceSender struct {
	sent []Invoice
}

func (f *fakeInvoiceSender) Send(inv Invoice) {
	f.sent = append(f.sent, inv)
}

// Helpers

const testPropertyID = "APT-5566-004"
const testRoomID = "APT-5566-004-101"

func testRoom() *domain.Room {
	return &domain.Room{
		RoomID:             testRoomID,
		Name:               "101",
		AvailabilityStatus: domain.RoomAvailable,
		ActiveRoom:         domain.Active,
		RoomTypeID:         "004-Single Room-1",
		RoomType: &domain.RoomType{
			RoomTypeID: "004-Single Room-1",
			Name:       "Single Room",
			Price:      100000,
			Capacity:   2,
			Floor:      1,
			PropertyID: testPropertyID,
		},
	}
}

func futureDate(daysAhead int) string {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Format(dateLayout)
}

func futureTime(daysAhead int) time.Time {
	t, _ := time.Parse(dateLayout, futureDate(daysAhead))
	return t.UTC()
}

type serviceFixture struct {
	bookings *MockBookingRepository
	rooms    *MockRoomRepository
	cust     *MockCustomerStore
	guard    *MockMaintenanceGuard
	props    *MockPropertyDirectory
	ledger   *fakeLedger
	invoices *fakeInvoiceSender
	svc      *Service
}

func newFixture() *serviceFixture {
	f := &serviceFixture{
		bookings: new(MockBookingRepository),
		rooms:    new(MockRoomRepository),
		cust:     new(MockCustomerStore),
		guard:    new(MockMaintenanceGuard),
		props:    new(MockPropertyDirectory),
		ledger:   newFakeLedger(),
		invoices: &fakeInvoiceSender{},
	}
	f.svc = NewService(f.bookings, f.rooms, f.cust, f.guard, f.props, f.ledger, f.invoices, nil)
	return f
}

func createRequest() CreateBookingRequest {
	return CreateBookingRequest{
		RoomID:         testRoomID,
		CustomerID:     uuid.New().String(),
		CustomerName:   "Ayu Lestari",
		CustomerEmail:  "ayu@example.com",
		CustomerPhone:  "+62811111111",
		CheckInDate:    futureDate(1),
		CheckOutDate:   futureDate(3),
		Capacity:       2,
		AddOnBreakfast: false,
	}
}

// Tests

func TestService_Create_Success(t *testing.T) {
	f := newFixture()
	req := createRequest()

	f.rooms.On("GetByID", mock.Anything, testRoomID).Return(testRoom(), nil)
	f.guard.On("HasConflict", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	f.bookings.On("ListByRoom", mock.Anything, testRoomID).Return([]domain.Booking{}, nil)
	f.cust.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.bookings.On("CreateWithRoomHold", mock.Anything, mock.Anything).Return(nil)
	f.props.On("PropertyForRoom", mock.Anything, testRoomID).Return(testPropertyID, uuid.New(), nil)

	b, err := f.svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingWaiting, b.Status)
	assert.Equal(t, domain.Active, b.ActiveStatus)
	assert.Equal(t, 2, b.TotalDays)
	assert.Equal(t, 200000, b.TotalPrice)
	assert.Contains(t, b.BookingID, "BOOK-101-")
	f.bookings.AssertCalled(t, "CreateWithRoomHold", mock.Anything, mock.Anything)

	// invoice is fire-and-forget but must carry the booking total
	assert.Len(t, f.invoices.sent, 1)
	assert.Equal(t, 200000, f.invoices.sent[0].Amount)
	assert.Equal(t, b.BookingID, f.invoices.sent[0].BookingID)
}

func TestService_Create_WithBreakfast(t *testing.T) {
	f := newFixture()
	req := createRequest()
	req.AddOnBreakfast = true

	f.rooms.On("GetByID", mock.Anything, testRoomID).Return(testRoom(), nil)
	f.guard.On("HasConflict", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	f.bookings.On("ListByRoom", mock.Anything, testRoomID).Return([]domain.Booking{}, nil)
	f.cust.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.bookings.On("CreateWithRoomHold", mock.Anything, mock.Anything).Return(nil)
	f.props.On("PropertyForRoom", mock.Anything, testRoomID).Return(testPropertyID, uuid.New(), nil)

	b, err := f.svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 200000+2*BreakfastRatePerNight, b.TotalPrice)
}

func TestService_Create_InvalidDateRange(t *testing.T) {
	f := newFixture()

	req := createRequest()
	req.CheckInDate = futureDate(3)
	req.CheckOutDate = futureDate(1)
	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	req = createRequest()
	req.CheckOutDate = req.CheckInDate
	_, err = f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	req = createRequest()
	req.CheckInDate = time.Now().UTC().AddDate(0, 0, -1).Format(dateLayout)
	req.CheckOutDate = futureDate(2)
	_, err = f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	f.bookings.AssertNotCalled(t, "CreateWithRoomHold", mock.Anything, mock.Anything)
}

func TestService_Create_CapacityExceeded(t *testing.T) {
	f := newFixture()
	req := createRequest()
	req.Capacity = 5

	f.rooms.On("GetByID", mock.Anything, testRoomID).Return(testRoom(), nil)

	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestService_Create_MaintenanceConflict(t *testing.T) {
	f := newFixture()
	req := createRequest()

	f.rooms.On("GetByID", mock.Anything, testRoomID).Return(testRoom(), nil)
	f.guard.On("HasConflict", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(true, nil)

	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrMaintenanceConflict)
	f.bookings.AssertNotCalled(t, "CreateWithRoomHold", mock.Anything, mock.Anything)
}

func TestService_Create_BookingConflict(t *testing.T) {
	f := newFixture()
	req := createRequest()

	blocking := domain.Booking{
		BookingID:    "BOOK-101-260101-0900-00.00",
		RoomID:       testRoomID,
		CheckInDate:  futureTime(2),
		CheckOutDate: futureTime(4),
		Status:       domain.BookingConfirmed,
		ActiveStatus: domain.Active,
	}

	f.rooms.On("GetByID", mock.Anything, testRoomID).Return(testRoom(), nil)
	f.guard.On("HasConflict", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	f.bookings.On("ListByRoom", mock.Anything, testRoomID).Return([]domain.Booking{blocking}, nil)

	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestService_Create_CancelledBookingDoesNotBlock(t *testing.T) {
	f := newFixture()
	req := createRequest()

	cancelled := domain.Booking{
		BookingID:    "BOOK-101-260101-0900-00.00",
		RoomID:       testRoomID,
		CheckInDate:  futureTime(1),
		CheckOutDate: futureTime(3),
		Status:       domain.BookingCancelled,
		ActiveStatus: domain.Active,
	}

	f.rooms.On("GetByID", mock.Anything, testRoomID).Return(testRoom(), nil)
	f.guard.On("HasConflict", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	f.bookings.On("ListByRoom", mock.Anything, testRoomID).Return([]domain.Booking{cancelled}, nil)
	f.cust.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.bookings.On("CreateWithRoomHold", mock.Anything, mock.Anything).Return(nil)
	f.props.On("PropertyForRoom", mock.Anything, testRoomID).Return(testPropertyID, uuid.New(), nil)

	_, err := f.svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestService_Create_OverlapLostRace(t *testing.T) {
	f := newFixture()
	req := createRequest()

	f.rooms.On("GetByID", mock.Anything, testRoomID).Return(testRoom(), nil)
	f.guard.On("HasConflict", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	f.bookings.On("ListByRoom", mock.Anything, testRoomID).Return([]domain.Booking{}, nil)
	f.cust.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.bookings.On("CreateWithRoomHold", mock.Anything, mock.Anything).Return(repository.ErrOverlappingBooking)

	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.Empty(t, f.invoices.sent)
}

func TestService_Pay_CreditsIncome(t *testing.T) {
	f := newFixture()
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleSuperadmin}

	b := &domain.Booking{
		BookingID:    "BOOK-101-260101-0900-00.00",
		RoomID:       testRoomID,
		Status:       domain.BookingWaiting,
		TotalPrice:   200000,
		ActiveStatus: domain.Active,
		CustomerID:   uuid.New(),
	}

	f.bookings.On("GetByID", mock.Anything, b.BookingID).Return(b, nil)
	f.bookings.On("UpdateStatus", mock.Anything, b.BookingID, domain.BookingWaiting, domain.BookingConfirmed).Return(nil)
	f.props.On("PropertyForRoom", mock.Anything, testRoomID).Return(testPropertyID, uuid.New(), nil)

	paid, err := f.svc.Pay(context.Background(), actor, b.BookingID)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, paid.Status)
	assert.Equal(t, 200000, f.ledger.income[testPropertyID])
}

func TestService_Pay_NotWaiting(t *testing.T) {
	f := newFixture()
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleSuperadmin}

	b := &domain.Booking{
		BookingID:    "BOOK-101-260101-0900-00.00",
		RoomID:       testRoomID,
		Status:       domain.BookingConfirmed,
		TotalPrice:   200000,
		ActiveStatus: domain.Active,
		CustomerID:   uuid.New(),
	}

	f.bookings.On("GetByID", mock.Anything, b.BookingID).Return(b, nil)
	f.bookings.On("UpdateStatus", mock.Anything, b.BookingID, domain.BookingConfirmed, domain.BookingConfirmed).Return(repository.ErrStaleStatus).Maybe()
	f.bookings.On("UpdateStatus", mock.Anything, b.BookingID, domain.BookingWaiting, domain.BookingConfirmed).Return(repository.ErrStaleStatus)

	_, err := f.svc.Pay(context.Background(), actor, b.BookingID)
	assert.ErrorIs(t, err, ErrNotPayable)
	assert.Equal(t, 0, f.ledger.income[testPropertyID])
}

func TestService_Cancel_WaitingHasNoRevenueEffect(t *testing.T) {
	f := newFixture()
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleSuperadmin}

	b := &domain.Booking{
		BookingID:    "BOOK-101-260101-0900-00.00",
		RoomID:       testRoomID,
		Status:       domain.BookingWaiting,
		TotalPrice:   200000,
		ActiveStatus: domain.Active,
		CustomerID:   uuid.New(),
	}

	f.bookings.On("GetByID", mock.Anything, b.BookingID).Return(b, nil)
	f.bookings.On("CancelAndRelease", mock.Anything, b.BookingID, testRoomID, domain.BookingWaiting).Return(nil)
	f.props.On("PropertyForRoom", mock.Anything, testRoomID).Return(testPropertyID, uuid.New(), nil)

	cancelled, err := f.svc.Cancel(context.Background(), actor, b.BookingID)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, cancelled.Status)
	assert.Equal(t, 0, f.ledger.income[testPropertyID])
}

func TestService_PayThenCancel_RestoresIncome(t *testing.T) {
	f := newFixture()
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleSuperadmin}

	b := &domain.Booking{
		BookingID:    "BOOK-101-260101-0900-00.00",
		RoomID:       testRoomID,
		Status:       domain.BookingWaiting,
		TotalPrice:   200000,
		ActiveStatus: domain.Active,
		CustomerID:   uuid.New(),
	}

	f.bookings.On("GetByID", mock.Anything, b.BookingID).Return(b, nil)
	f.bookings.On("UpdateStatus", mock.Anything, b.BookingID, domain.BookingWaiting, domain.BookingConfirmed).Return(nil)
	f.bookings.On("CancelAndRelease", mock.Anything, b.BookingID, testRoomID, domain.BookingConfirmed).Return(nil)
	f.props.On("PropertyForRoom", mock.Anything, testRoomID).Return(testPropertyID, uuid.New(), nil)

	_, err := f.svc.Pay(context.Background(), actor, b.BookingID)
	assert.NoError(t, err)
	assert.Equal(t, 200000, f.ledger.income[testPropertyID])

	_, err = f.svc.Cancel(context.Background(), actor, b.BookingID)
	assert.NoError(t, err)
	assert.Equal(t, 0, f.ledger.income[testPropertyID])
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	f := newFixture()
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleSuperadmin}

	b := &domain.Booking{
		BookingID:    "BOOK-101-260101-0900-00.00",
		RoomID:       testRoomID,
		Status:       domain.BookingCancelled,
		ActiveStatus: domain.Active,
		CustomerID:   uuid.New(),
	}

	f.bookings.On("GetByID", mock.Anything, b.BookingID).Return(b, nil)

	_, err := f.svc.Cancel(context.Background(), actor, b.BookingID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestService_Update_CancelledRejected(t *testing.T) {
	f := newFixture()
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleSuperadmin}

	b := &domain.Booking{
		BookingID:    "BOOK-101-260101-0900-00.00",
		RoomID:       testRoomID,
		Status:       domain.BookingCancelled,
		ActiveStatus: domain.Active,
		CustomerID:   uuid.New(),
	}
	f.bookings.On("GetByID", mock.Anything, b.BookingID).Return(b, nil)

	req := UpdateBookingRequest{
		CustomerName:  "Ayu Lestari",
		CustomerEmail: "ayu@example.com",
		CustomerPhone: "+62811111111",
		CheckInDate:   futureDate(1),
		CheckOutDate:  futureDate(3),
		Capacity:      2,
	}
	_, err := f.svc.Update(context.Background(), actor, b.BookingID, req)
	assert.ErrorIs(t, err, ErrBookingCancelled)
}

func TestService_Update_PriceLockedWhenConfirmed(t *testing.T) {
	f := newFixture()
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleSuperadmin}

	// 2 nights at 100000, confirmed
	b := &domain.Booking{
		BookingID:    "BOOK-101-260101-0900-00.00",
		RoomID:       testRoomID,
		CheckInDate:  futureTime(1),
		CheckOutDate: futureTime(3),
		TotalDays:    2,
		TotalPrice:   200000,
		Status:       domain.BookingConfirmed,
		ActiveStatus: domain.Active,
		CustomerID:   uuid.New(),
	}

	f.bookings.On("GetByID", mock.Anything, b.BookingID).Return(b, nil)
	f.rooms.On("GetByID", mock.Anything, testRoomID).Return(testRoom(), nil)
	f.guard.On("HasConflict", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	f.bookings.On("ListByRoom", mock.Anything, testRoomID).Return([]domain.Booking{}, nil)

	// 3 nights would change the total
	req := UpdateBookingRequest{
		CustomerName:  "Ayu Lestari",
		CustomerEmail: "ayu@example.com",
		CustomerPhone: "+62811111111",
		CheckInDate:   futureDate(1),
		CheckOutDate:  futureDate(4),
		Capacity:      2,
	}
	_, err := f.svc.Update(context.Background(), actor, b.BookingID, req)
	assert.ErrorIs(t, err, ErrPriceLocked)
	f.bookings.AssertNotCalled(t, "SaveWithRoomHold", mock.Anything, mock.Anything)
}

func TestService_Update_ConfirmedSamePriceAllowed(t *testing.T) {
	f := newFixture()
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleSuperadmin}

	b := &domain.Booking{
		BookingID:    "BOOK-101-260101-0900-00.00",
		RoomID:       testRoomID,
		CheckInDate:  futureTime(1),
		CheckOutDate: futureTime(3),
		TotalDays:    2,
		TotalPrice:   200000,
		Status:       domain.BookingConfirmed,
		Capacity:     1,
		ActiveStatus: domain.Active,
		CustomerID:   uuid.New(),
	}

	f.bookings.On("GetByID", mock.Anything, b.BookingID).Return(b, nil)
	f.rooms.On("GetByID", mock.Anything, testRoomID).Return(testRoom(), nil)
	f.guard.On("HasConflict", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	f.bookings.On("ListByRoom", mock.Anything, testRoomID).Return([]domain.Booking{}, nil)
	f.cust.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.bookings.On("SaveWithRoomHold", mock.Anything, mock.Anything).Return(nil)

	// same window, capacity bumped within the room type limit
	req := UpdateBookingRequest{
		CustomerName:  "Ayu Lestari",
		CustomerEmail: "ayu@example.com",
		CustomerPhone: "+62811111111",
		CheckInDate:   futureDate(1),
		CheckOutDate:  futureDate(3),
		Capacity:      2,
	}
	updated, err := f.svc.Update(context.Background(), actor, b.BookingID, req)
	assert.NoError(t, err)
	assert.Equal(t, 2, updated.Capacity)
	assert.Equal(t, 200000, updated.TotalPrice)
}

func TestService_Update_ForbiddenForOtherCustomer(t *testing.T) {
	f := newFixture()
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleCustomer}

	b := &domain.Booking{
		BookingID:    "BOOK-101-260101-0900-00.00",
		RoomID:       testRoomID,
		Status:       domain.BookingWaiting,
		ActiveStatus: domain.Active,
		CustomerID:   uuid.New(), // someone else
	}
	f.bookings.On("GetByID", mock.Anything, b.BookingID).Return(b, nil)

	_, err := f.svc.Update(context.Background(), actor, b.BookingID, UpdateBookingRequest{
		CustomerName:  "x",
		CustomerEmail: "x@example.com",
		CustomerPhone: "1",
		CheckInDate:   futureDate(1),
		CheckOutDate:  futureDate(2),
		Capacity:      1,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_AutoCheckIn_ProcessesDueBookings(t *testing.T) {
	f := newFixture()
	now := time.Now().UTC()

	due := []domain.Booking{
		{BookingID: "BOOK-101-260101-0900-00.00", RoomID: testRoomID, TotalPrice: 200000},
		{BookingID: "BOOK-102-260101-0900-00.00", RoomID: "APT-5566-004-102", TotalPrice: 350000},
	}

	f.bookings.On("ListForAutoCheckout", mock.Anything, now).Return(due, nil)
	f.props.On("PropertyForRoom", mock.Anything, mock.Anything).Return(testPropertyID, uuid.New(), nil)
	f.bookings.On("FinalizeCheckout", mock.Anything, due[0].BookingID, due[0].RoomID, testPropertyID, 200000, now).Return(true, nil)
	f.bookings.On("FinalizeCheckout", mock.Anything, due[1].BookingID, due[1].RoomID, testPropertyID, 350000, now).Return(true, nil)

	processed, err := f.svc.AutoCheckIn(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, 2, processed)
}

func TestService_AutoCheckIn_ReplayIsIdempotent(t *testing.T) {
	f := newFixture()
	now := time.Now().UTC()

	due := []domain.Booking{
		{BookingID: "BOOK-101-260101-0900-00.00", RoomID: testRoomID, TotalPrice: 200000},
	}

	f.bookings.On("ListForAutoCheckout", mock.Anything, now).Return(due, nil)
	f.props.On("PropertyForRoom", mock.Anything, testRoomID).Return(testPropertyID, uuid.New(), nil)
	// marker already stamped by a previous run
	f.bookings.On("FinalizeCheckout", mock.Anything, due[0].BookingID, testRoomID, testPropertyID, 200000, now).Return(false, nil)

	processed, err := f.svc.AutoCheckIn(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, 0, processed)
}

func TestService_List_ScopedByRole(t *testing.T) {
	f := newFixture()
	customerID := uuid.New()
	ownerID := uuid.New()

	f.bookings.On("ListByCustomer", mock.Anything, customerID).Return([]domain.Booking{{BookingID: "a"}}, nil)
	f.bookings.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Booking{{BookingID: "b"}, {BookingID: "c"}}, nil)
	f.bookings.On("ListActive", mock.Anything).Return([]domain.Booking{{BookingID: "d"}, {BookingID: "e"}, {BookingID: "f"}}, nil)

	asCustomer, err := f.svc.List(context.Background(), domain.Actor{UserID: customerID, Role: domain.RoleCustomer})
	assert.NoError(t, err)
	assert.Len(t, asCustomer, 1)

	asOwner, err := f.svc.List(context.Background(), domain.Actor{UserID: ownerID, Role: domain.RoleOwner})
	assert.NoError(t, err)
	assert.Len(t, asOwner, 2)

	asAdmin, err := f.svc.List(context.Background(), domain.Actor{UserID: uuid.New(), Role: domain.RoleSuperadmin})
	assert.NoError(t, err)
	assert.Len(t, asAdmin, 3)
}
