package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/tapagenda/booking-api/internal/domain/appointment"
	"github.com/tapagenda/booking-api/internal/httperr"
	"github.com/tapagenda/booking-api/internal/models"
)

// 2024-03-10 is a Sunday.
const sunday = "2024-03-10"

func sundayHours(open, close string) []models.WeeklyHour {
	return []models.WeeklyHour{
		{BusinessID: 1, DayOfWeek: 0, IsActive: true, OpenTime: open, CloseTime: close},
	}
}

func TestGetAvailableSlots_OpenDay(t *testing.T) {
	repo := &MockRepository{}
	uc := NewGetAvailableSlots(repo, nil)

	repo.On("ListWeeklyHours", mock.Anything, uint(1)).
		Return(sundayHours("09:00", "17:00"), nil)
	repo.On("ListBlockingAppointments", mock.Anything, uint(1), sunday).
		Return([]models.Appointment{}, nil)

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		Date:       sunday,
	})

	require.NoError(t, err)
	assert.False(t, out.Closed)
	require.NotNil(t, out.Window)
	assert.Equal(t, "09:00", out.Window.Open)
	require.Len(t, out.Slots, 16)
	assert.Equal(t, "09:00", out.Slots[0].Time)
	assert.Equal(t, "16:30", out.Slots[15].Time)

	repo.AssertExpectations(t)
}

func TestGetAvailableSlots_ClosedDay(t *testing.T) {
	repo := &MockRepository{}
	uc := NewGetAvailableSlots(repo, nil)

	// only Monday is configured
	repo.On("ListWeeklyHours", mock.Anything, uint(1)).
		Return([]models.WeeklyHour{
			{BusinessID: 1, DayOfWeek: 1, IsActive: true, OpenTime: "09:00", CloseTime: "17:00"},
		}, nil)

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		Date:       sunday,
	})

	require.NoError(t, err)
	assert.True(t, out.Closed)
	assert.Empty(t, out.Slots)
	assert.Nil(t, out.Window)

	// no appointment lookup on a closed day
	repo.AssertNotCalled(t, "ListBlockingAppointments", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAvailableSlots_BookedSlotFlagged(t *testing.T) {
	repo := &MockRepository{}
	uc := NewGetAvailableSlots(repo, nil)

	repo.On("ListWeeklyHours", mock.Anything, uint(1)).
		Return(sundayHours("09:00", "17:00"), nil)
	repo.On("ListBlockingAppointments", mock.Anything, uint(1), sunday).
		Return([]models.Appointment{
			{AppointmentTime: "10:00", Status: string(domain.StatusConfirmed)},
		}, nil)

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		Date:       sunday,
	})

	require.NoError(t, err)
	for _, s := range out.Slots {
		if s.Time == "10:00" {
			assert.False(t, s.Available)
		} else {
			assert.True(t, s.Available, s.Time)
		}
	}
}

func TestGetAvailableSlots_InvalidDate(t *testing.T) {
	repo := &MockRepository{}
	uc := NewGetAvailableSlots(repo, nil)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		Date:       "10/03/2024",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	repo.AssertNotCalled(t, "ListWeeklyHours", mock.Anything, mock.Anything)
}
