package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bodyharmony/salon-scheduler/internal/httpresp"
	"github.com/bodyharmony/salon-scheduler/internal/middleware"
	"github.com/bodyharmony/salon-scheduler/internal/models"
	"github.com/bodyharmony/salon-scheduler/internal/validators"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	FullName   *string  `json:"full_name,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Roles      []string `json:"roles,omitempty"`
	ServiceIDs []uint   `json:"service_ids,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Preload("Services").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"full_name": user.FullName,
		"phone":     user.Phone,
		"roles":     user.RoleList(),
		"services":  user.Services,
	})
}

func (h *UserHandler) List(c *gin.Context) {
	role := strings.TrimSpace(c.Query("role"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Preload("Services")

	if role != "" {
		like := "%" + role + "%"
		q = q.Where("roles LIKE ?", like)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR phone LIKE ?", like, like)
	}

	var users []models.User
	if err := q.
		Order("id ASC").
		Find(&users).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_users"})
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.Preload("Services").First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_user"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		if !validators.IsPhoneValid(*req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
			return
		}
		user.Phone = validators.NormalizePhone(*req.Phone)
	}
	if req.Roles != nil {
		user.Roles = models.JoinRoles(req.Roles)
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	// Replace the employee's qualification set when provided.
	if req.ServiceIDs != nil {
		var services []models.Service
		if len(req.ServiceIDs) > 0 {
			if err := h.db.Where("id IN ?", req.ServiceIDs).Find(&services).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_resolve_services"})
				return
			}
			if len(services) != len(req.ServiceIDs) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_service_selection"})
				return
			}
		}

		if err := h.db.Model(&user).Association("Services").Replace(services); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_services"})
			return
		}
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_user"})
		return
	}

	if err := h.db.Select("Services").Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
