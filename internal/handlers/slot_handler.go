package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bodyharmony/salon-scheduler/internal/httperr"
	"github.com/bodyharmony/salon-scheduler/internal/middleware"
	ucSchedule "github.com/bodyharmony/salon-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	generateUC *ucSchedule.GenerateSlots
	listFreeUC *ucSchedule.ListFreeSlots
	deleteUC   *ucSchedule.DeleteSlots
}

func NewSlotHandler(
	generateUC *ucSchedule.GenerateSlots,
	listFreeUC *ucSchedule.ListFreeSlots,
	deleteUC *ucSchedule.DeleteSlots,
) *SlotHandler {
	return &SlotHandler{
		generateUC: generateUC,
		listFreeUC: listFreeUC,
		deleteUC:   deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GenerateSlotsRequest struct {
	EmployeeID uint `json:"employee_id"`
	DaysAhead  int  `json:"days_ahead"`
	StartHour  int  `json:"start_hour"`
	EndHour    int  `json:"end_hour"`
}

type DeleteSlotsRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
}

// ======================================================
// GENERATE
// ======================================================

func (h *SlotHandler) Generate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if !middleware.HasRole(c, "employee") && !middleware.HasRole(c, "admin") {
		httperr.Forbidden(c, "forbidden", "Недостаточно прав для генерации слотов.")
		return
	}

	var req GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Данные запроса неверны.")
		return
	}

	// Employees generate their own grid; admins may target anyone.
	employeeID := req.EmployeeID
	if employeeID == 0 || !middleware.HasRole(c, "admin") {
		employeeID = userID
	}

	created, err := h.generateUC.Execute(c.Request.Context(), ucSchedule.GenerateSlotsInput{
		EmployeeID: employeeID,
		DaysAhead:  req.DaysAhead,
		StartHour:  req.StartHour,
		EndHour:    req.EndHour,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_slot_window") {
			httperr.BadRequest(c, "invalid_slot_window", "Неверное окно рабочего дня.")
			return
		}
		httperr.Internal(c, "failed_to_generate_slots", "Ошибка генерации слотов.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Слоты успешно сгенерированы",
		"slots":   created,
	})
}

// ======================================================
// FREE SLOTS
// ======================================================

func (h *SlotHandler) FreeSlots(c *gin.Context) {
	employeeIDStr := c.Query("employeeId")
	if employeeIDStr == "" {
		httperr.BadRequest(c, "missing_employee_id", "Не передан employeeId.")
		return
	}

	employeeID, err := strconv.ParseUint(employeeIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_employee_id", "Неверный employeeId.")
		return
	}

	fs, err := h.listFreeUC.Execute(c.Request.Context(), uint(employeeID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_slots", "Ошибка получения доступных слотов.")
		return
	}

	c.JSON(http.StatusOK, fs)
}

// ======================================================
// DELETE
// ======================================================

func (h *SlotHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if !middleware.HasRole(c, "employee") && !middleware.HasRole(c, "admin") {
		httperr.Forbidden(c, "forbidden", "Недостаточно прав для удаления слотов.")
		return
	}

	var req DeleteSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Данные запроса неверны.")
		return
	}

	employeeID := req.EmployeeID
	if employeeID == 0 || !middleware.HasRole(c, "admin") {
		employeeID = userID
	}

	if err := h.deleteUC.Execute(c.Request.Context(), employeeID, req.Date); err != nil {
		httperr.Internal(c, "failed_to_delete_slots", "Ошибка удаления слотов.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
