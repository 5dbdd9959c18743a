package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

// Intent is what the frontend needs to start checkout for a booking.
type Intent struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

// Gateway wraps the Mercado Pago preference API. The portal only creates the
// payment intent here; the resulting transaction id comes back through the
// payment confirmation endpoint.
type Gateway struct {
	prefs preference.Client
}

func NewGateway(accessToken string) (*Gateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Gateway{prefs: preference.NewClient(cfg)}, nil
}

// CreateIntent opens a checkout preference priced at the treatment's cost.
// The booking reference travels as the external reference so the gateway's
// callbacks can be correlated back to the booking.
func (g *Gateway) CreateIntent(
	ctx context.Context,
	b *models.Booking,
	price float64,
) (*Intent, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       b.Treatment,
				Description: fmt.Sprintf("%s on %s (%s)", b.Treatment, b.Date, b.Slot),
				Quantity:    1,
				UnitPrice:   price,
			},
		},
		ExternalReference: b.Reference,
	}

	resource, err := g.prefs.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &Intent{
		PreferenceID: resource.ID,
		InitPoint:    resource.InitPoint,
	}, nil
}
