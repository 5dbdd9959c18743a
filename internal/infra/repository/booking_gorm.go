package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) ListTreatments(
	ctx context.Context,
) ([]models.Treatment, error) {

	var treatments []models.Treatment
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("id ASC").
		Find(&treatments).Error; err != nil {
		return nil, err
	}

	return treatments, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPatient(
	ctx context.Context,
	patient string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("patient = ?", patient).
		Order("date ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, bool, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).First(&b, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &b, true, nil
}

// --------------------------------------------------
// Booking (admission)
// --------------------------------------------------

func (r *BookingGormRepository) FindConflictingBooking(
	ctx context.Context,
	date string,
	patient string,
	treatment string,
) (*models.Booking, bool, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where(
			"date = ? AND patient = ? AND treatment = ?",
			date, patient, treatment,
		).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &b, true, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if b.Reference == "" {
		b.Reference = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Create(b).Error
	if err == nil {
		return nil
	}

	// Loser of a concurrent insert race on the (date, patient, treatment)
	// unique index. Expected outcome, surfaced as domain feedback.
	if httperr.IsUniqueViolation(err) ||
		httperr.IsExclusionConflict(err) ||
		errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("duplicate_booking")
	}

	return err
}

// --------------------------------------------------
// Booking (payment)
// --------------------------------------------------

func (r *BookingGormRepository) UpdateBookingPayment(
	ctx context.Context,
	b *models.Booking,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"paid":           b.Paid,
			"transaction_id": b.TransactionID,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("booking_not_found")
	}

	return nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, bool, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &user, true, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
