package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/domain/pricing"
	"ringbuilder/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrConfigurationIncomplete = errors.New("ring configuration incomplete")
	ErrAlreadySubmitted        = errors.New("session already submitted to cart")
	ErrConfigurationNotFound   = errors.New("ring configuration not found")
	ErrCartGatewayUnavailable  = errors.New("cart gateway not configured")
	ErrPriceChanged            = errors.New("configuration price changed since last display")
)

// priceTolerance absorbs float formatting drift between the storefront echo
// and the recomputed total. Anything beyond it means the shopper saw a
// different price.
const priceTolerance = 0.01

// SubmitCartCommand carries the storefront cart form. Setting/stone/price
// fields are echoes of what the shopper saw; the stored session remains the
// source of truth and the price is always recomputed server-side.
type SubmitCartCommand struct {
	Shop       string
	SessionID  string
	SettingID  string
	StoneID    string
	MetalType  entities.MetalType
	RingSize   string
	TotalPrice float64
}

// CartSubmission is the successful outcome handed back to the storefront.
type CartSubmission struct {
	Configuration entities.RingConfiguration
	RedirectURL   string
}

// ICartUseCase submits a completed builder session to the shop's cart and
// records the configuration snapshot.

type ICartUseCase interface {
	Submit(ctx context.Context, cmd SubmitCartCommand) (CartSubmission, error)
	GetConfiguration(ctx context.Context, id string) (entities.RingConfiguration, error)
	ListConfigurations(ctx context.Context, shop string) ([]entities.RingConfiguration, error)
}

type CartUseCase struct {
	sessions interfaces.IBuilderSessionRepository
	configs  interfaces.IConfigurationRepository
	settings interfaces.IShopSettingsRepository
	gateway  interfaces.ICartGateway
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(
	sessions interfaces.IBuilderSessionRepository,
	configs interfaces.IConfigurationRepository,
	settings interfaces.IShopSettingsRepository,
	gateway interfaces.ICartGateway,
) *CartUseCase {
	return &CartUseCase{sessions: sessions, configs: configs, settings: settings, gateway: gateway}
}

// Submit validates the session, locks it against double submission, hands
// the configuration to the shop cart, and persists the snapshot. A gateway
// failure reactivates the session so the shopper can retry without losing
// selections.
func (u *CartUseCase) Submit(ctx context.Context, cmd SubmitCartCommand) (CartSubmission, error) {
	shop := strings.TrimSpace(cmd.Shop)
	if shop == "" {
		return CartSubmission{}, ErrInvalidShop
	}
	sessionID := strings.TrimSpace(cmd.SessionID)
	if sessionID == "" {
		return CartSubmission{}, ErrInvalidSessionID
	}
	if u.gateway == nil {
		log.Printf("[cart][usecase] gateway not configured shop=%s", shop)
		return CartSubmission{}, ErrCartGatewayUnavailable
	}

	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return CartSubmission{}, err
	}
	if s.ID == "" || s.Shop != shop {
		return CartSubmission{}, ErrSessionNotFound
	}
	if !s.IsComplete() {
		log.Printf("[cart][usecase] incomplete session session_id=%s", sessionID)
		return CartSubmission{}, ErrConfigurationIncomplete
	}

	cfg := u.loadSettings(ctx, shop)
	breakdown := pricing.Compute(s, cfg.MarkupPercent)
	if cmd.TotalPrice > 0 && math.Abs(cmd.TotalPrice-breakdown.Total) > priceTolerance {
		log.Printf("[cart][usecase] client total mismatch session_id=%s client=%.2f server=%.2f", sessionID, cmd.TotalPrice, breakdown.Total)
		return CartSubmission{}, ErrPriceChanged
	}

	locked, err := u.sessions.MarkSubmitted(ctx, sessionID)
	if err != nil {
		return CartSubmission{}, err
	}
	if locked.ID == "" {
		return CartSubmission{}, ErrAlreadySubmitted
	}

	configuration := entities.RingConfiguration{
		ID:         uuid.NewString(),
		Shop:       shop,
		SessionID:  sessionID,
		SettingID:  s.SelectedSetting.ID,
		StoneID:    s.SelectedStone.ID,
		MetalType:  s.SelectedMetalType,
		RingSize:   s.RingSize,
		SideStones: s.SideStones,
		Engraving:  s.Engraving,
		TotalPrice: breakdown.Total,
		CreatedAt:  time.Now().UTC(),
	}

	cartData, redirectURL, err := u.gateway.AddToCart(ctx, configuration)
	if err != nil {
		log.Printf("[cart][usecase] cart gateway failed session_id=%s err=%v", sessionID, err)
		if _, rerr := u.sessions.Reactivate(ctx, sessionID); rerr != nil {
			log.Printf("[cart][usecase] reactivate failed session_id=%s err=%v", sessionID, rerr)
		}
		return CartSubmission{}, err
	}

	configuration.CartDataRaw = cartData
	var parsed map[string]interface{}
	if err := json.Unmarshal(cartData, &parsed); err != nil {
		log.Printf("[cart][usecase] cart response unmarshal failed session_id=%s err=%v", sessionID, err)
	}
	configuration.CartData = parsed

	created, err := u.configs.Create(ctx, configuration)
	if err != nil {
		log.Printf("[cart][usecase] configuration create failed session_id=%s configuration_id=%s err=%v", sessionID, configuration.ID, err)
		return CartSubmission{}, err
	}

	log.Printf("[cart][usecase] submit success session_id=%s configuration_id=%s total=%.2f", sessionID, created.ID, created.TotalPrice)
	return CartSubmission{Configuration: created, RedirectURL: redirectURL}, nil
}

func (u *CartUseCase) GetConfiguration(ctx context.Context, id string) (entities.RingConfiguration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RingConfiguration{}, ErrConfigurationNotFound
	}
	c, err := u.configs.GetByID(ctx, id)
	if err != nil {
		return entities.RingConfiguration{}, err
	}
	if c.ID == "" {
		return entities.RingConfiguration{}, ErrConfigurationNotFound
	}
	return c, nil
}

func (u *CartUseCase) ListConfigurations(ctx context.Context, shop string) ([]entities.RingConfiguration, error) {
	shop = strings.TrimSpace(shop)
	if shop == "" {
		return nil, ErrInvalidShop
	}
	return u.configs.ListByShop(ctx, shop)
}

func (u *CartUseCase) loadSettings(ctx context.Context, shop string) entities.ShopSettings {
	cfg, err := u.settings.Get(ctx, shop)
	if err != nil || cfg.Shop == "" {
		if err != nil {
			log.Printf("[cart][usecase] shop settings unavailable shop=%s err=%v", shop, err)
		}
		return entities.DefaultShopSettings(shop)
	}
	return cfg
}
