package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

// fakeRepo mimics the storage contract, including the unique constraint on
// (date, patient, treatment) that CreateBooking relies on under races.
type fakeRepo struct {
	mu sync.Mutex

	treatments []models.Treatment
	bookings   map[uint]*models.Booking
	users      map[string]*models.User

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: make(map[uint]*models.Booking),
		users:    make(map[string]*models.User),
	}
}

func tripleKey(date, patient, treatment string) string {
	return fmt.Sprintf("%s|%s|%s", date, patient, treatment)
}

func (r *fakeRepo) ListTreatments(ctx context.Context) ([]models.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Treatment(nil), r.treatments...), nil
}

func (r *fakeRepo) ListBookingsForDate(ctx context.Context, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.Patient == patient {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetBookingByID(ctx context.Context, id uint) (*models.Booking, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, false, nil
	}
	copied := *b
	return &copied, true, nil
}

func (r *fakeRepo) FindConflictingBooking(
	ctx context.Context,
	date, patient, treatment string,
) (*models.Booking, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := tripleKey(date, patient, treatment)
	for _, b := range r.bookings {
		if tripleKey(b.Date, b.Patient, b.Treatment) == key {
			copied := *b
			return &copied, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := tripleKey(b.Date, b.Patient, b.Treatment)
	for _, existing := range r.bookings {
		if tripleKey(existing.Date, existing.Patient, existing.Treatment) == key {
			return httperr.ErrBusiness("duplicate_booking")
		}
	}

	r.nextID++
	b.ID = r.nextID
	if b.Reference == "" {
		b.Reference = uuid.NewString()
	}

	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeRepo) UpdateBookingPayment(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookings[b.ID]
	if !ok {
		return httperr.ErrBusiness("booking_not_found")
	}

	stored.Paid = b.Paid
	stored.TransactionID = b.TransactionID
	return nil
}

func (r *fakeRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[email]
	if !ok {
		return nil, false, nil
	}
	copied := *u
	return &copied, true, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
