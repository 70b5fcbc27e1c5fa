package schedule

import (
	"context"
	"time"

	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
	"github.com/bodyharmony/salon-scheduler/internal/dto"
	"github.com/bodyharmony/salon-scheduler/internal/models"
	"github.com/bodyharmony/salon-scheduler/internal/timezone"
)

type ListAppointments struct {
	repo domain.Repository

	now func() time.Time
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		now:  timezone.Now,
	}
}

// Execute lists appointments with client/employee/service details resolved.
// Status is reported as a derived value: an active appointment whose end has
// passed reads as completed even before the sweep persists it. Reads never
// write.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.AppointmentFilter,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := uc.now()

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, toListDTO(&appointments[i], now))
	}

	return out, nil
}

func toListDTO(ap *models.Appointment, now time.Time) dto.AppointmentListDTO {
	clientName := ap.ExternalName
	clientPhone := ap.ExternalPhone
	if ap.Client != nil {
		clientName = ap.Client.FullName
		clientPhone = ap.Client.Phone
	}

	services := make([]dto.AppointmentServiceDTO, 0, len(ap.Services))
	for _, s := range ap.Services {
		services = append(services, dto.AppointmentServiceDTO{
			ServiceID:   s.ServiceID,
			Name:        s.Service.Name,
			DurationMin: s.DurationMin,
			Price:       s.Price,
		})
	}

	return dto.AppointmentListDTO{
		ID:            ap.ID,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
		Status:        string(domain.EffectiveStatus(ap, now)),
		ClientName:    clientName,
		ClientPhone:   clientPhone,
		EmployeeName:  ap.Employee.FullName,
		Services:      services,
		TotalDuration: ap.TotalDuration,
		TotalPrice:    ap.TotalPrice,
	}
}
