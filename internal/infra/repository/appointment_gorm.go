package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/tapagenda/booking-api/internal/domain/appointment"
	"github.com/tapagenda/booking-api/internal/httperr"
	"github.com/tapagenda/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).First(&biz, id).Error; err != nil {
		return nil, err
	}
	return &biz, nil
}

func (r *AppointmentGormRepository) GetBusinessBySlug(
	ctx context.Context,
	slug string,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&biz).Error; err != nil {
		return nil, err
	}
	return &biz, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	businessID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", clientID, businessID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	businessID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND phone = ?", businessID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		BusinessID: businessID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Weekly hours
// --------------------------------------------------

func (r *AppointmentGormRepository) ListWeeklyHours(
	ctx context.Context,
	businessID uint,
) ([]models.WeeklyHour, error) {

	var hours []models.WeeklyHour
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}

	return hours, nil
}

// --------------------------------------------------
// Appointments (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBlockingAppointments(
	ctx context.Context,
	businessID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("appointment_date", "appointment_time", "status").
		Where(
			"business_id = ? AND appointment_date = ? AND status IN ?",
			businessID, date, []string{
				string(domain.StatusPending),
				string(domain.StatusConfirmed),
			},
		).
		Order("appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	businessID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"business_id = ? AND appointment_date = ?",
			businessID, date,
		).
		Order("appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	businessID uint,
	from string,
	to string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"business_id = ? AND appointment_date >= ? AND appointment_date < ?",
			businessID, from, to,
		).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointments (create / conflict)
// --------------------------------------------------

// activeSlotQuery selects the pending/confirmed appointments holding
// the exact slot ap wants. Kept lock-free: Postgres refuses FOR UPDATE
// on aggregate queries, and the partial unique index is the
// authoritative guard either way.
func activeSlotQuery(tx *gorm.DB, ap *models.Appointment) *gorm.DB {
	return tx.
		Model(&models.Appointment{}).
		Where(
			"business_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
			ap.BusinessID,
			ap.AppointmentDate,
			ap.AppointmentTime,
			[]string{
				string(domain.StatusPending),
				string(domain.StatusConfirmed),
			},
		)
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := activeSlotQuery(tx, ap).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})

	// Two bookings that both passed the pre-check land on the partial
	// unique index; report the loser the same way as the pre-check.
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// --------------------------------------------------
// Appointments (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForBusiness(
	ctx context.Context,
	appointmentID uint,
	businessID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", appointmentID, businessID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
