package interfaces

import (
	"context"
	"encoding/json"

	"ringbuilder/internal/domain/entities"
)

// ICartGateway abstracts the shop-side cart integration (Shopify cart
// endpoint). The raw response body is returned for traceability; the
// redirect URL points the shopper at the cart page.
type ICartGateway interface {
	AddToCart(ctx context.Context, cfg entities.RingConfiguration) (cartData json.RawMessage, redirectURL string, err error)
}
