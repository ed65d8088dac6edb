package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tapagenda/booking-api/internal/audit"
	"github.com/tapagenda/booking-api/internal/cache"
	domain "github.com/tapagenda/booking-api/internal/domain/appointment"
	"github.com/tapagenda/booking-api/internal/httperr"
	"github.com/tapagenda/booking-api/internal/models"
	"github.com/tapagenda/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BusinessID uint
	ServiceID  uint

	// Either an existing client...
	ClientID uint

	// ...or enough to get-or-create one by phone (public booking).
	ClientName  string
	ClientPhone string
	ClientEmail string

	Date  string // "YYYY-MM-DD"
	Time  string // "HH:MM"
	Notes string

	// ActorID is the authenticated user for business-side bookings,
	// nil for public ones.
	ActorID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(biz.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	minAdvance := biz.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 60
	}

	now := timezone.NowIn(biz.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	svc, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil || !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	hours, err := uc.repo.ListWeeklyHours(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	window, open := domain.ResolveWindow(date, hours)
	if !open {
		return nil, httperr.ErrBusiness("closed_day")
	}

	if !domain.IsBookableTime(window, in.Time) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	client, err := uc.resolveClient(ctx, in)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BusinessID:      in.BusinessID,
		ServiceID:       svc.ID,
		ClientID:        client.ID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		Reference:       uuid.NewString(),
		Notes:           in.Notes,
	}

	// The repository re-checks the slot inside the insert transaction;
	// slot_taken comes back whether the pre-check or the unique index
	// caught the collision.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				BusinessID: in.BusinessID,
				UserID:     in.ActorID,
				Action:     "appointment_conflict",
				Entity:     "appointment",
				Metadata: map[string]any{
					"date": in.Date,
					"time": in.Time,
				},
			})
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.BusinessID, in.Date)

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     in.ActorID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) resolveClient(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Client, error) {

	if in.ClientID != 0 {
		client, err := uc.repo.GetClient(ctx, in.BusinessID, in.ClientID)
		if err != nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return client, nil
	}

	if in.ClientPhone == "" {
		return nil, httperr.ErrBusiness("client_required")
	}

	return uc.repo.GetOrCreateClient(
		ctx,
		in.BusinessID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
}
