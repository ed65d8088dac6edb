package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/tapagenda/booking-api/internal/domain/appointment"
	"github.com/tapagenda/booking-api/internal/httperr"
	"github.com/tapagenda/booking-api/internal/models"
)

func allWeekHours() []models.WeeklyHour {
	hours := make([]models.WeeklyHour, 0, 7)
	for d := 0; d < 7; d++ {
		hours = append(hours, models.WeeklyHour{
			BusinessID: 1,
			DayOfWeek:  d,
			IsActive:   true,
			OpenTime:   "09:00",
			CloseTime:  "17:00",
		})
	}
	return hours
}

// nextWeek keeps the booking comfortably past any minimum-advance rule.
func nextWeek() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func testBusiness() *models.Business {
	return &models.Business{ID: 1, Name: "Studio One", Slug: "studio-one", Timezone: "UTC", MinAdvanceMinutes: 60}
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateAppointment(repo, nil, nil)

	date := nextWeek()

	repo.On("GetBusinessByID", mock.Anything, uint(1)).Return(testBusiness(), nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, BusinessID: 1, Name: "Consultation", Active: true}, nil)
	repo.On("ListWeeklyHours", mock.Anything, uint(1)).Return(allWeekHours(), nil)
	repo.On("GetOrCreateClient", mock.Anything, uint(1), "Ana", "+5511999", "").
		Return(&models.Client{ID: 7, BusinessID: 1, Name: "Ana"}, nil)
	repo.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(ap *models.Appointment) bool {
		return ap.BusinessID == 1 &&
			ap.ClientID == 7 &&
			ap.AppointmentDate == date &&
			ap.AppointmentTime == "10:00" &&
			ap.Status == string(domain.StatusPending) &&
			ap.Reference != ""
	})).Return(nil)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:  1,
		ServiceID:   3,
		ClientName:  "Ana",
		ClientPhone: "+5511999",
		Date:        date,
		Time:        "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.NotEmpty(t, ap.Reference)

	repo.AssertExpectations(t)
}

func TestCreateAppointment_SlotTaken(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateAppointment(repo, nil, nil)

	date := nextWeek()

	repo.On("GetBusinessByID", mock.Anything, uint(1)).Return(testBusiness(), nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, BusinessID: 1, Active: true}, nil)
	repo.On("ListWeeklyHours", mock.Anything, uint(1)).Return(allWeekHours(), nil)
	repo.On("GetOrCreateClient", mock.Anything, uint(1), "Ana", "+5511999", "").
		Return(&models.Client{ID: 7, BusinessID: 1}, nil)
	repo.On("CreateAppointment", mock.Anything, mock.Anything).
		Return(httperr.ErrBusiness("slot_taken"))

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:  1,
		ServiceID:   3,
		ClientName:  "Ana",
		ClientPhone: "+5511999",
		Date:        date,
		Time:        "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestCreateAppointment_ClosedDay(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateAppointment(repo, nil, nil)

	repo.On("GetBusinessByID", mock.Anything, uint(1)).Return(testBusiness(), nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, BusinessID: 1, Active: true}, nil)
	repo.On("ListWeeklyHours", mock.Anything, uint(1)).Return([]models.WeeklyHour{}, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:  1,
		ServiceID:   3,
		ClientName:  "Ana",
		ClientPhone: "+5511999",
		Date:        nextWeek(),
		Time:        "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "closed_day"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_OutsideWindow(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateAppointment(repo, nil, nil)

	repo.On("GetBusinessByID", mock.Anything, uint(1)).Return(testBusiness(), nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, BusinessID: 1, Active: true}, nil)
	repo.On("ListWeeklyHours", mock.Anything, uint(1)).Return(allWeekHours(), nil)

	for _, badTime := range []string{"20:00", "08:30", "10:15", "17:00"} {
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BusinessID:  1,
			ServiceID:   3,
			ClientName:  "Ana",
			ClientPhone: "+5511999",
			Date:        nextWeek(),
			Time:        badTime,
		})

		assert.True(t, httperr.IsBusiness(err, "outside_working_hours"), badTime)
	}

	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_TooSoon(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateAppointment(repo, nil, nil)

	repo.On("GetBusinessByID", mock.Anything, uint(1)).Return(testBusiness(), nil)

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:  1,
		ServiceID:   3,
		ClientName:  "Ana",
		ClientPhone: "+5511999",
		Date:        yesterday,
		Time:        "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreateAppointment_InactiveService(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateAppointment(repo, nil, nil)

	repo.On("GetBusinessByID", mock.Anything, uint(1)).Return(testBusiness(), nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, BusinessID: 1, Active: false}, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:  1,
		ServiceID:   3,
		ClientName:  "Ana",
		ClientPhone: "+5511999",
		Date:        nextWeek(),
		Time:        "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointment_ExistingClientByID(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateAppointment(repo, nil, nil)

	date := nextWeek()

	repo.On("GetBusinessByID", mock.Anything, uint(1)).Return(testBusiness(), nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, BusinessID: 1, Active: true}, nil)
	repo.On("ListWeeklyHours", mock.Anything, uint(1)).Return(allWeekHours(), nil)
	repo.On("GetClient", mock.Anything, uint(1), uint(42)).
		Return(&models.Client{ID: 42, BusinessID: 1}, nil)
	repo.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(ap *models.Appointment) bool {
		return ap.ClientID == 42
	})).Return(nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID: 1,
		ServiceID:  3,
		ClientID:   42,
		Date:       date,
		Time:       "09:30",
	})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "GetOrCreateClient", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAppointment_ClientRequired(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateAppointment(repo, nil, nil)

	repo.On("GetBusinessByID", mock.Anything, uint(1)).Return(testBusiness(), nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, BusinessID: 1, Active: true}, nil)
	repo.On("ListWeeklyHours", mock.Anything, uint(1)).Return(allWeekHours(), nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID: 1,
		ServiceID:  3,
		Date:       nextWeek(),
		Time:       "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "client_required"))
}
