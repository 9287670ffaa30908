package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase/interfaces"
)

var (
	ErrMissingCartProductVariant = errors.New("missing RING_BUILDER_VARIANT_ID")
	ErrCartRequestRejected       = errors.New("shop cart rejected the configuration")
)

// CartGateway pushes a submitted ring configuration onto the shop's Shopify
// cart via the storefront cart endpoint (/cart/add.js). The configuration
// details travel as line item properties on a merchant-configured custom
// product variant.
//
// Env vars:
//   - RING_BUILDER_VARIANT_ID: variant the custom ring is added as
//   - CART_ENDPOINT_OVERRIDE: full endpoint URL, for local testing
//   - CART_GATEWAY_MOCK: skip the HTTP call and fabricate a cart response

type CartGateway struct {
	httpClient *http.Client
	variantID  string
	override   string
	mockMode   bool
}

var _ interfaces.ICartGateway = (*CartGateway)(nil)

func NewCartGateway() (*CartGateway, error) {
	if isCartGatewayMockEnabled() {
		log.Printf("[cart][gateway] mock mode enabled")
		return &CartGateway{mockMode: true}, nil
	}

	variantID := strings.TrimSpace(os.Getenv("RING_BUILDER_VARIANT_ID"))
	if variantID == "" {
		log.Printf("[cart][gateway] missing RING_BUILDER_VARIANT_ID")
		return nil, ErrMissingCartProductVariant
	}

	return &CartGateway{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		variantID:  variantID,
		override:   strings.TrimSpace(os.Getenv("CART_ENDPOINT_OVERRIDE")),
	}, nil
}

func (g *CartGateway) AddToCart(ctx context.Context, cfg entities.RingConfiguration) (json.RawMessage, string, error) {
	redirectURL := fmt.Sprintf("https://%s/cart", cfg.Shop)

	if g.mockMode {
		log.Printf("[cart][gateway] mock add shop=%s configuration_id=%s", cfg.Shop, cfg.ID)
		resp := map[string]any{
			"id":         strconv.FormatInt(time.Now().UTC().UnixNano(), 10),
			"quantity":   1,
			"properties": cartProperties(cfg),
			"price":      cfg.TotalPrice,
		}
		b, err := json.Marshal(resp)
		if err != nil {
			return nil, "", err
		}
		return b, redirectURL, nil
	}

	form := url.Values{}
	form.Set("id", g.variantID)
	form.Set("quantity", "1")
	for k, v := range cartProperties(cfg) {
		form.Set(fmt.Sprintf("properties[%s]", k), v)
	}

	endpoint := g.override
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s/cart/add.js", cfg.Shop)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	log.Printf("[cart][gateway] add start shop=%s configuration_id=%s", cfg.Shop, cfg.ID)
	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[cart][gateway] request failed shop=%s err=%v", cfg.Shop, err)
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[cart][gateway] add rejected shop=%s status=%d body=%s", cfg.Shop, resp.StatusCode, body)
		return nil, "", fmt.Errorf("%w: status=%d", ErrCartRequestRejected, resp.StatusCode)
	}

	log.Printf("[cart][gateway] add success shop=%s configuration_id=%s", cfg.Shop, cfg.ID)
	return body, redirectURL, nil
}

// cartProperties flattens the configuration into the line item properties
// shown on the cart and order pages.
func cartProperties(cfg entities.RingConfiguration) map[string]string {
	props := map[string]string{
		"_configuration_id": cfg.ID,
		"Setting":           cfg.SettingID,
		"Stone":             cfg.StoneID,
		"Metal":             string(cfg.MetalType),
		"Ring Size":         cfg.RingSize,
	}
	if cfg.SideStones != nil && cfg.SideStones.Quantity > 0 {
		props["Side Stones"] = fmt.Sprintf("%d x %s", cfg.SideStones.Quantity, cfg.SideStones.Quality)
	}
	if cfg.Engraving != nil && cfg.Engraving.Enabled {
		props["Engraving"] = cfg.Engraving.Text
	}
	return props
}

func isCartGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CART_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
