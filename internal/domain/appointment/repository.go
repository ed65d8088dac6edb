package appointment

import (
	"context"

	"github.com/tapagenda/booking-api/internal/models"
)

type Repository interface {
	// -------- Business --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	GetBusinessBySlug(
		ctx context.Context,
		slug string,
	) (*models.Business, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	GetClient(
		ctx context.Context,
		businessID uint,
		clientID uint,
	) (*models.Client, error)

	GetOrCreateClient(
		ctx context.Context,
		businessID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Weekly hours --------
	ListWeeklyHours(
		ctx context.Context,
		businessID uint,
	) ([]models.WeeklyHour, error)

	// -------- Appointments (read) --------
	ListBlockingAppointments(
		ctx context.Context,
		businessID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsByDate(
		ctx context.Context,
		businessID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsBetween(
		ctx context.Context,
		businessID uint,
		from string,
		to string,
	) ([]models.Appointment, error)

	// -------- Appointments (create / conflict) --------
	// CreateAppointment re-checks the slot inside the same transaction
	// as the insert and returns the slot_taken business error when a
	// blocking appointment already holds it. The partial unique index
	// on (business_id, appointment_date, appointment_time) remains the
	// authoritative guard when two inserts race past the check.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointments (state change) --------
	GetAppointmentForBusiness(
		ctx context.Context,
		appointmentID uint,
		businessID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
