package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/httpresp"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

type TreatmentHandler struct {
	db *gorm.DB
}

func NewTreatmentHandler(db *gorm.DB) *TreatmentHandler {
	return &TreatmentHandler{db: db}
}

// --------- Requests ---------

type CreateTreatmentRequest struct {
	Name  string   `json:"name" binding:"required"`
	Slots []string `json:"slots" binding:"required,min=1"`
	Price float64  `json:"price" binding:"required"`
}

type UpdateTreatmentRequest struct {
	Name   *string   `json:"name,omitempty"`
	Slots  *[]string `json:"slots,omitempty"`
	Price  *float64  `json:"price,omitempty"`
	Active *bool     `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *TreatmentHandler) List(c *gin.Context) {
	var treatments []models.Treatment
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&treatments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_treatments", "Could not list treatments.")
		return
	}

	c.JSON(http.StatusOK, treatments)
}

// Specialties projects just the treatment names, used to populate the
// specialty dropdown when adding a doctor.
func (h *TreatmentHandler) Specialties(c *gin.Context) {
	var specialties []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	if err := h.db.
		Model(&models.Treatment{}).
		Select("id", "name").
		Where("active = true").
		Order("id ASC").
		Find(&specialties).Error; err != nil {

		httperr.Internal(c, "failed_to_list_specialties", "Could not list specialties.")
		return
	}

	c.JSON(http.StatusOK, specialties)
}

func (h *TreatmentHandler) Create(c *gin.Context) {
	var req CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.Treatment{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "treatment_already_exists"})
		return
	}

	treatment := models.Treatment{
		Name:   name,
		Slots:  models.StringList(req.Slots),
		Price:  req.Price,
		Active: true,
	}

	if err := h.db.Create(&treatment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_treatment", "Could not create treatment.")
		return
	}

	httpresp.Created(c, treatment)
}

func (h *TreatmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var treatment models.Treatment
	if err := h.db.First(&treatment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "treatment_not_found", "Treatment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_treatment", "Could not load treatment.")
		return
	}

	var req UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		treatment.Name = strings.TrimSpace(*req.Name)
	}
	if req.Slots != nil {
		treatment.Slots = models.StringList(*req.Slots)
	}
	if req.Price != nil {
		treatment.Price = *req.Price
	}
	if req.Active != nil {
		treatment.Active = *req.Active
	}

	if err := h.db.Save(&treatment).Error; err != nil {
		httperr.Internal(c, "failed_to_update_treatment", "Could not update treatment.")
		return
	}

	httpresp.OK(c, treatment)
}
