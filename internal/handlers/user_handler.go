package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-portal/internal/audit"
	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/middleware"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
	"github.com/BruksfildServices01/clinic-portal/internal/validators"
)

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: audit}
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	c.JSON(http.StatusOK, users)
}

// Promote grants the admin role to a user. The route itself sits behind the
// admin gate; the capability check there is what authorizes this.
func (h *UserHandler) Promote(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Could not load user.")
		return
	}

	user.Role = string(domain.RoleAdmin)
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_promote_user", "Could not promote user.")
		return
	}

	actor := c.MustGet(middleware.ContextEmail).(string)
	h.audit.Dispatch(audit.Event{
		ActorEmail: actor,
		Action:     "user_promoted",
		Entity:     "user",
		EntityID:   &user.ID,
	})

	c.JSON(http.StatusOK, user)
}

// IsAdmin is a public role probe used by the frontend to decide whether to
// show admin navigation. An unknown email is simply not an admin.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	email := validators.Normalize(c.Param("email"))

	var user models.User
	err := h.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"is_admin": false})
		return
	}

	role := domain.ParseRole(user.Role)
	c.JSON(http.StatusOK, gin.H{"is_admin": role.CanManageRoster()})
}
