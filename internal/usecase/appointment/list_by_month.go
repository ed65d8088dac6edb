package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/tapagenda/booking-api/internal/domain/appointment"
	"github.com/tapagenda/booking-api/internal/dto"
	"github.com/tapagenda/booking-api/internal/httperr"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	businessID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	from := fmt.Sprintf("%04d-%02d-01", year, month)
	if _, err := domain.ParseDate(from); err != nil {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	next := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	to := fmt.Sprintf("%04d-%02d-01", next.Year(), int(next.Month()))

	appointments, err := uc.repo.ListAppointmentsBetween(ctx, businessID, from, to)
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
