package appointment

import (
	"context"

	domain "github.com/tapagenda/booking-api/internal/domain/appointment"
	"github.com/tapagenda/booking-api/internal/dto"
	"github.com/tapagenda/booking-api/internal/httperr"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	businessID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := domain.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	appointments, err := uc.repo.ListAppointmentsByDate(ctx, businessID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			AppointmentDate: ap.AppointmentDate,
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
			Reference:       ap.Reference,
			ClientName:      ap.Client.Name,
			ServiceName:     ap.Service.Name,
			Notes:           ap.Notes,
			CreatedAt:       ap.CreatedAt,
			CancelledAt:     ap.CancelledAt,
		})
	}

	return out, nil
}
