package appointment

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/tapagenda/booking-api/internal/domain/appointment"
	"github.com/tapagenda/booking-api/internal/models"
)

type MockRepository struct {
	mock.Mock
}

var _ domain.Repository = (*MockRepository)(nil)

func (m *MockRepository) GetBusinessByID(ctx context.Context, id uint) (*models.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Business), args.Error(1)
}

func (m *MockRepository) GetBusinessBySlug(ctx context.Context, slug string) (*models.Business, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Business), args.Error(1)
}

func (m *MockRepository) GetService(ctx context.Context, businessID uint, serviceID uint) (*models.Service, error) {
	args := m.Called(ctx, businessID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockRepository) GetClient(ctx context.Context, businessID uint, clientID uint) (*models.Client, error) {
	args := m.Called(ctx, businessID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockRepository) GetOrCreateClient(ctx context.Context, businessID uint, name, phone, email string) (*models.Client, error) {
	args := m.Called(ctx, businessID, name, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockRepository) ListWeeklyHours(ctx context.Context, businessID uint) ([]models.WeeklyHour, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeeklyHour), args.Error(1)
}

func (m *MockRepository) ListBlockingAppointments(ctx context.Context, businessID uint, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, businessID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) ListAppointmentsByDate(ctx context.Context, businessID uint, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, businessID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) ListAppointmentsBetween(ctx context.Context, businessID uint, from, to string) ([]models.Appointment, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) GetAppointmentForBusiness(ctx context.Context, appointmentID uint, businessID uint) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}
