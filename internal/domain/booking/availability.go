package booking

import "github.com/BruksfildServices01/clinic-portal/internal/models"

type TreatmentAvailability struct {
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	RemainingSlots []string `json:"remaining_slots"`
}

// ComputeAvailability merges the treatment catalog with the bookings already
// made for one date and returns, per treatment, the slots still open.
//
// The catalog is never filtered by date: every treatment is offered every day.
// A slot is taken as soon as any booking holds its exact (treatment, slot)
// pair for the date; booked labels are deduped first so a stray duplicate
// booking cannot subtract twice. Original slot order is preserved.
func ComputeAvailability(
	catalog []models.Treatment,
	bookingsOnDate []models.Booking,
) []TreatmentAvailability {

	bookedByTreatment := make(map[string]map[string]struct{})
	for _, b := range bookingsOnDate {
		slots, ok := bookedByTreatment[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			bookedByTreatment[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]TreatmentAvailability, 0, len(catalog))
	for _, t := range catalog {
		booked := bookedByTreatment[t.Name]

		remaining := make([]string, 0, len(t.Slots))
		for _, slot := range t.Slots {
			if _, taken := booked[slot]; taken {
				continue
			}
			remaining = append(remaining, slot)
		}

		out = append(out, TreatmentAvailability{
			Name:           t.Name,
			Price:          t.Price,
			RemainingSlots: remaining,
		})
	}

	return out
}
