package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/tapagenda/booking-api/internal/domain/appointment"
	"github.com/tapagenda/booking-api/internal/httperr"
	"github.com/tapagenda/booking-api/internal/models"
)

// slotGuardRepo behaves like the real repository backed by the partial
// unique index: the first insert for a slot key wins, every other
// concurrent insert gets slot_taken.
type slotGuardRepo struct {
	mu    sync.Mutex
	slots map[string]bool
}

func newSlotGuardRepo() *slotGuardRepo {
	return &slotGuardRepo{slots: map[string]bool{}}
}

func (r *slotGuardRepo) GetBusinessByID(_ context.Context, id uint) (*models.Business, error) {
	return testBusiness(), nil
}

func (r *slotGuardRepo) GetBusinessBySlug(_ context.Context, _ string) (*models.Business, error) {
	return testBusiness(), nil
}

func (r *slotGuardRepo) GetService(_ context.Context, _, serviceID uint) (*models.Service, error) {
	return &models.Service{ID: serviceID, BusinessID: 1, Active: true}, nil
}

func (r *slotGuardRepo) GetClient(_ context.Context, _, clientID uint) (*models.Client, error) {
	return &models.Client{ID: clientID, BusinessID: 1}, nil
}

func (r *slotGuardRepo) GetOrCreateClient(_ context.Context, _ uint, name, phone, _ string) (*models.Client, error) {
	return &models.Client{ID: 7, BusinessID: 1, Name: name, Phone: phone}, nil
}

func (r *slotGuardRepo) ListWeeklyHours(_ context.Context, _ uint) ([]models.WeeklyHour, error) {
	return allWeekHours(), nil
}

func (r *slotGuardRepo) ListBlockingAppointments(_ context.Context, _ uint, _ string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *slotGuardRepo) ListAppointmentsByDate(_ context.Context, _ uint, _ string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *slotGuardRepo) ListAppointmentsBetween(_ context.Context, _ uint, _, _ string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *slotGuardRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ap.AppointmentDate + " " + ap.AppointmentTime
	if r.slots[key] {
		return httperr.ErrBusiness("slot_taken")
	}
	r.slots[key] = true
	return nil
}

func (r *slotGuardRepo) GetAppointmentForBusiness(_ context.Context, _, _ uint) (*models.Appointment, error) {
	return nil, assert.AnError
}

func (r *slotGuardRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

var _ domain.Repository = (*slotGuardRepo)(nil)

func TestCreateAppointment_ConcurrentBookingsOneWins(t *testing.T) {
	repo := newSlotGuardRepo()
	uc := NewCreateAppointment(repo, nil, nil)

	date := nextWeek()

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreateAppointmentInput{
				BusinessID:  1,
				ServiceID:   3,
				ClientName:  "Ana",
				ClientPhone: "+5511999",
				Date:        date,
				Time:        "10:00",
			})
			errs[i] = err
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			require.True(t, httperr.IsBusiness(err, "slot_taken"))
		}
	}

	assert.Equal(t, 1, won)
}
