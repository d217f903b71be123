package maintenance

import (
	"time"

	"roomstay/internal/domain"
)

const dateLayout = "2006-01-02"

type ScheduleMaintenanceRequest struct {
	RoomID    string `json:"room_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// window validates the raw date/time parts and combines them into UTC
// instants. The date-level checks run before the instants are compared, so
// "end date before start date" and "end time before start time on the same
// day" report as schedule errors rather than generic parse failures.
func (r ScheduleMaintenanceRequest) window() (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	endDate, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	startTime, err := parseClock(r.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	endTime, err := parseClock(r.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}

	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, ErrInvalidSchedule
	}
	if endDate.Equal(startDate) && endTime.Before(startTime) {
		return time.Time{}, time.Time{}, ErrInvalidSchedule
	}

	start := at(startDate, startTime)
	end := at(endDate, endTime)
	return start, end, nil
}

// parseClock accepts HH:mm and HH:mm:ss.
func parseClock(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}

func at(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
}

type MaintenanceResponse struct {
	ID        int64     `json:"id"`
	RoomID    string    `json:"room_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(m *domain.Maintenance) MaintenanceResponse {
	return MaintenanceResponse{
		ID:        m.ID,
		RoomID:    m.RoomID,
		StartAt:   m.StartAt,
		EndAt:     m.EndAt,
		CreatedAt: m.CreatedAt,
	}
}

func toResponses(ms []domain.Maintenance) []MaintenanceResponse {
	out := make([]MaintenanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, toResponse(&ms[i]))
	}
	return out
}
