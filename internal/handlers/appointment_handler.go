package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
	"github.com/bodyharmony/salon-scheduler/internal/httperr"
	"github.com/bodyharmony/salon-scheduler/internal/httpresp"
	"github.com/bodyharmony/salon-scheduler/internal/middleware"
	"github.com/bodyharmony/salon-scheduler/internal/timezone"
	ucSchedule "github.com/bodyharmony/salon-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC         *ucSchedule.Book
	cancelUC       *ucSchedule.Cancel
	rescheduleUC   *ucSchedule.Reschedule
	listUC         *ucSchedule.ListAppointments
	availabilityUC *ucSchedule.Availability

	tz string
}

func NewAppointmentHandler(
	bookUC *ucSchedule.Book,
	cancelUC *ucSchedule.Cancel,
	rescheduleUC *ucSchedule.Reschedule,
	listUC *ucSchedule.ListAppointments,
	availabilityUC *ucSchedule.Availability,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:         bookUC,
		cancelUC:       cancelUC,
		rescheduleUC:   rescheduleUC,
		listUC:         listUC,
		availabilityUC: availabilityUC,
		tz:             tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required"`
	Date       string `json:"date" binding:"required"` // "2025-06-01"
	Time       string `json:"time" binding:"required"` // "14:00"

	// Walk-in booking made on a client's behalf (employee/admin only).
	ExternalName  string `json:"external_name"`
	ExternalPhone string `json:"external_phone"`
}

type UpdateAppointmentRequest struct {
	ServiceIDs []uint  `json:"service_ids,omitempty"`
	Date       *string `json:"date,omitempty"`
	Time       *string `json:"time,omitempty"`
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) parseStart(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Location(h.tz),
	)
}

func parseOptionalID(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	id := uint(v)
	return &id, true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Данные запроса неверны.")
		return
	}

	start, err := h.parseStart(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Дата или время неверны.")
		return
	}

	in := ucSchedule.BookInput{
		EmployeeID: req.EmployeeID,
		ServiceIDs: req.ServiceIDs,
		Start:      start,
	}

	if req.ExternalName != "" {
		if !middleware.HasRole(c, "employee") && !middleware.HasRole(c, "admin") {
			httperr.Forbidden(c, "forbidden", "Недостаточно прав для записи внешнего клиента.")
			return
		}
		in.ExternalName = req.ExternalName
		in.ExternalPhone = req.ExternalPhone
	} else {
		in.ClientID = &userID
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), in)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_service_selection"):
			httperr.BadRequest(c, "invalid_service_selection", "Нужно указать хотя бы одну существующую услугу.")
		case httperr.IsBusiness(err, "slot_conflict"):
			httperr.BadRequest(c, "slot_conflict", "Слот уже занят другим клиентом.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Ошибка при создании записи.")
		}
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	clientID, ok := parseOptionalID(c, "clientId")
	if !ok {
		httperr.BadRequest(c, "invalid_client_id", "Неверный clientId.")
		return
	}
	employeeID, ok := parseOptionalID(c, "employeeId")
	if !ok {
		httperr.BadRequest(c, "invalid_employee_id", "Неверный employeeId.")
		return
	}

	// Admins see everything, employees see their own schedule,
	// clients see their own bookings.
	switch {
	case middleware.HasRole(c, "admin"):
	case middleware.HasRole(c, "employee"):
		employeeID = &userID
	default:
		clientID = &userID
		employeeID = nil
	}

	out, err := h.listUC.Execute(c.Request.Context(), domain.AppointmentFilter{
		ClientID:   clientID,
		EmployeeID: employeeID,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Ошибка при получении записей.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	employeeID, ok := parseOptionalID(c, "employeeId")
	if !ok || employeeID == nil {
		httperr.BadRequest(c, "missing_employee_id", "Необходим employeeId.")
		return
	}

	var serviceIDs []uint
	for _, raw := range c.QueryArray("serviceId") {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Неверный serviceId.")
			return
		}
		serviceIDs = append(serviceIDs, uint(v))
	}

	fs, err := h.availabilityUC.Execute(c.Request.Context(), *employeeID, serviceIDs)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_service_selection") {
			httperr.BadRequest(c, "invalid_service_selection", "Нужно указать хотя бы одну существующую услугу.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Ошибка получения доступных слотов.")
		return
	}

	c.JSON(200, fs)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Неверный идентификатор записи.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Данные запроса неверны.")
		return
	}

	in := ucSchedule.RescheduleInput{
		AppointmentID: uint(id),
		ServiceIDs:    req.ServiceIDs,
	}

	if req.Date != nil && req.Time != nil {
		start, err := h.parseStart(*req.Date, *req.Time)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Дата или время неверны.")
			return
		}
		in.Start = &start
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), in)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Запись не найдена.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Запись нельзя перенести.")
		case httperr.IsBusiness(err, "invalid_service_selection"):
			httperr.BadRequest(c, "invalid_service_selection", "Нужно указать хотя бы одну существующую услугу.")
		case httperr.IsBusiness(err, "slot_conflict"):
			httperr.BadRequest(c, "slot_conflict", "Слот уже занят другим клиентом.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Ошибка при обновлении записи.")
		}
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Неверный идентификатор записи.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Запись не найдена.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Ошибка при отмене записи.")
		return
	}

	c.JSON(200, ap)
}
