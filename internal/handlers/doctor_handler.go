package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-portal/internal/audit"
	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/middleware"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
	"github.com/BruksfildServices01/clinic-portal/internal/storage"
	"github.com/BruksfildServices01/clinic-portal/internal/validators"
)

const maxPhotoSize = 5 << 20 // 5 MiB

type DoctorHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
	audit  *audit.Dispatcher
}

func NewDoctorHandler(
	db *gorm.DB,
	photos *storage.PhotoStore,
	audit *audit.Dispatcher,
) *DoctorHandler {
	return &DoctorHandler{
		db:     db,
		photos: photos,
		audit:  audit,
	}
}

// --------- Handlers ---------

func (h *DoctorHandler) List(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.Order("id ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not list doctors.")
		return
	}

	c.JSON(http.StatusOK, doctors)
}

// Create takes a multipart form (name, email, specialty, photo). The photo
// is normalized to WebP and stored in the bucket before the record exists,
// so a failed upload never leaves a doctor without an image.
func (h *DoctorHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := validators.Normalize(c.PostForm("email"))
	specialty := strings.TrimSpace(c.PostForm("specialty"))

	if name == "" || email == "" || specialty == "" {
		httperr.BadRequest(c, "invalid_request", "Name, email and specialty are required.")
		return
	}

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not resolve.")
		return
	}

	var count int64
	h.db.Model(&models.Treatment{}).
		Where("name = ? AND active = true", specialty).
		Count(&count)
	if count == 0 {
		httperr.BadRequest(c, "unknown_specialty", "Specialty must match an offered treatment.")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo is required.")
		return
	}
	if fileHeader.Size > maxPhotoSize {
		httperr.BadRequest(c, "photo_too_large", "Photo exceeds the 5MB limit.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read photo.")
		return
	}
	defer file.Close()

	imageURL, err := h.photos.UploadDoctorPhoto(
		c.Request.Context(),
		uuid.NewString(),
		file,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_store_photo", "Could not store photo.")
		return
	}

	doctor := models.Doctor{
		Name:      name,
		Email:     email,
		Specialty: specialty,
		ImageURL:  imageURL,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		if httperr.IsUniqueViolation(err) || err == gorm.ErrDuplicatedKey {
			httperr.BadRequest(c, "doctor_already_exists", "A doctor with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_doctor", "Could not create doctor.")
		return
	}

	actor := c.MustGet(middleware.ContextEmail).(string)
	h.audit.Dispatch(audit.Event{
		ActorEmail: actor,
		Action:     "doctor_added",
		Entity:     "doctor",
		EntityID:   &doctor.ID,
	})

	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var doctor models.Doctor
	if err := h.db.First(&doctor, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_doctor", "Could not load doctor.")
		return
	}

	if err := h.db.Delete(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_doctor", "Could not delete doctor.")
		return
	}

	actor := c.MustGet(middleware.ContextEmail).(string)
	h.audit.Dispatch(audit.Event{
		ActorEmail: actor,
		Action:     "doctor_removed",
		Entity:     "doctor",
		EntityID:   &doctor.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
