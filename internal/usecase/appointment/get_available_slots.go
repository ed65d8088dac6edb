package appointment

import (
	"context"

	"github.com/tapagenda/booking-api/internal/cache"
	domain "github.com/tapagenda/booking-api/internal/domain/appointment"
	"github.com/tapagenda/booking-api/internal/httperr"
)

type GetAvailableSlots struct {
	repo  domain.Repository
	cache *cache.Availability
}

// NewGetAvailableSlots builds the slot-listing use case. cache may be
// nil; the listing is then computed from the database on every call.
func NewGetAvailableSlots(
	repo domain.Repository,
	cache *cache.Availability,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		cache: cache,
	}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var cached domain.Availability
	if uc.cache.Get(ctx, in.BusinessID, in.Date, &cached) {
		return &cached, nil
	}

	hours, err := uc.repo.ListWeeklyHours(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	window, open := domain.ResolveWindow(date, hours)
	if !open {
		return &domain.Availability{
			Date:   in.Date,
			Closed: true,
			Slots:  []domain.Slot{},
		}, nil
	}

	existing, err := uc.repo.ListBlockingAppointments(ctx, in.BusinessID, in.Date)
	if err != nil {
		return nil, err
	}

	out := &domain.Availability{
		Date:   in.Date,
		Window: &window,
		Slots:  domain.BuildSlots(in.Date, window, existing),
	}

	uc.cache.Set(ctx, in.BusinessID, in.Date, out)

	return out, nil
}
