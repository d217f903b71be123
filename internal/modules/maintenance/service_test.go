package maintenance

import (
	"context"
	"testing"
	"time"

	"roomstay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) Schedule(ctx context.Context, mt *domain.Maintenance) error {
	args := m.Called(ctx, mt)
	if mt != nil {
		mt.ID = 1
	}
	return args.Error(0)
}

func (m *MockMaintenanceRepository) ExistsOverlapping(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	args := m.Called(ctx, roomID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockMaintenanceRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Maintenance, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}

func (m *MockMaintenanceRepository) ListAll(ctx context.Context) ([]domain.Maintenance, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}

type MockBookingConflicts struct {
	mock.Mock
}

func (m *MockBookingConflicts) ExistsLiveOverlap(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	args := m.Called(ctx, roomID, start, end)
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

const testRoomID = "APT-5566-004-101"

func scheduleRequest() ScheduleMaintenanceRequest {
	return ScheduleMaintenanceRequest{
		RoomID:    testRoomID,
		StartDate: "2026-10-10",
		StartTime: "08:00",
		EndDate:   "2026-10-12",
		EndTime:   "18:00",
	}
}

func TestService_Schedule_Success(t *testing.T) {
	maints := new(MockMaintenanceRepository)
	bookings := new(MockBookingConflicts)
	rooms := new(MockRoomRepository)
	svc := NewService(maints, bookings, rooms)

	rooms.On("GetByID", mock.Anything, testRoomID).Return(&domain.Room{RoomID: testRoomID}, nil)
	maints.On("ExistsOverlapping", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	bookings.On("ExistsLiveOverlap", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	maints.On("Schedule", mock.Anything, mock.Anything).Return(nil)

	m, err := svc.Schedule(context.Background(), scheduleRequest())

	assert.NoError(t, err)
	assert.Equal(t, testRoomID, m.RoomID)
	assert.Equal(t, time.Date(2026, 10, 10, 8, 0, 0, 0, time.UTC), m.StartAt)
	assert.Equal(t, time.Date(2026, 10, 12, 18, 0, 0, 0, time.UTC), m.EndAt)
}

func TestService_Schedule_EndBeforeStart(t *testing.T) {
	svc := NewService(new(MockMaintenanceRepository), new(MockBookingConflicts), new(MockRoomRepository))

	req := scheduleRequest()
	req.EndDate = "2026-10-09"
	_, err := svc.Schedule(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestService_Schedule_SameDayEndTimeBeforeStartTime(t *testing.T) {
	svc := NewService(new(MockMaintenanceRepository), new(MockBookingConflicts), new(MockRoomRepository))

	req := scheduleRequest()
	req.EndDate = req.StartDate
	req.StartTime = "14:00"
	req.EndTime = "09:00"
	_, err := svc.Schedule(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestService_Schedule_OverlappingMaintenance(t *testing.T) {
	maints := new(MockMaintenanceRepository)
	bookings := new(MockBookingConflicts)
	rooms := new(MockRoomRepository)
	svc := NewService(maints, bookings, rooms)

	rooms.On("GetByID", mock.Anything, testRoomID).Return(&domain.Room{RoomID: testRoomID}, nil)
	maints.On("ExistsOverlapping", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(true, nil)

	_, err := svc.Schedule(context.Background(), scheduleRequest())
	assert.ErrorIs(t, err, ErrOverlappingMaintenance)
	maints.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
}

func TestService_Schedule_BookingConflict(t *testing.T) {
	maints := new(MockMaintenanceRepository)
	bookings := new(MockBookingConflicts)
	rooms := new(MockRoomRepository)
	svc := NewService(maints, bookings, rooms)

	rooms.On("GetByID", mock.Anything, testRoomID).Return(&domain.Room{RoomID: testRoomID}, nil)
	maints.On("ExistsOverlapping", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	bookings.On("ExistsLiveOverlap", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(true, nil)

	_, err := svc.Schedule(context.Background(), scheduleRequest())
	assert.ErrorIs(t, err, ErrBookingConflict)
	maints.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
}

func TestService_Schedule_AcceptsSeconds(t *testing.T) {
	maints := new(MockMaintenanceRepository)
	bookings := new(MockBookingConflicts)
	rooms := new(MockRoomRepository)
	svc := NewService(maints, bookings, rooms)

	rooms.On("GetByID", mock.Anything, testRoomID).Return(&domain.Room{RoomID: testRoomID}, nil)
	maints.On("ExistsOverlapping", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	bookings.On("ExistsLiveOverlap", mock.Anything, testRoomID, mock.Anything, mock.Anything).Return(false, nil)
	maints.On("Schedule", mock.Anything, mock.Anything).Return(nil)

	req := scheduleRequest()
	req.StartTime = "08:30:15"
	m, err := svc.Schedule(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 15, m.StartAt.Second())
}
