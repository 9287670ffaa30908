package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/domain/pricing"
	"ringbuilder/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidShop             = errors.New("invalid shop")
	ErrInvalidSessionID        = errors.New("invalid session id")
	ErrSessionNotFound         = errors.New("builder session not found")
	ErrSessionSubmitted        = errors.New("builder session already submitted")
	ErrSettingNotFound         = errors.New("setting not found")
	ErrStoneNotFound           = errors.New("stone not found")
	ErrInvalidMetalType        = errors.New("invalid metal type")
	ErrIncompatibleStoneShape  = errors.New("stone shape not compatible with selected setting")
	ErrInvalidRingSize         = errors.New("invalid ring size")
	ErrInvalidSideStoneQuality = errors.New("invalid side stone quality")
	ErrInvalidSideStoneQty     = errors.New("invalid side stone quantity")
	ErrEngravingTooLong        = errors.New("engraving text too long")
	ErrGiftMessageTooLong      = errors.New("gift message too long")
	ErrInvalidStep             = errors.New("invalid builder step")
)

// SessionResult pairs a session with its freshly derived price breakdown
// and step-indicator states. Every mutator returns one, so callers always
// observe price and gating consistent with the mutation they just made.
type SessionResult struct {
	Session entities.BuilderSession
	Price   pricing.Breakdown
	Steps   []entities.StepState
}

// IBuilderUseCase exposes the builder session operations backing the
// storefront wizard: narrow mutators instead of a generic setter, so each
// mutation enforces its own invariants and step side effects.

type IBuilderUseCase interface {
	ResumeSession(ctx context.Context, shop, sessionID string) (SessionResult, error)
	GetSession(ctx context.Context, sessionID, shop string) (SessionResult, error)
	SelectSetting(ctx context.Context, sessionID, shop, settingID string, metal entities.MetalType) (SessionResult, error)
	SelectStone(ctx context.Context, sessionID, shop, stoneID string) (SessionResult, error)
	UpdateMetalType(ctx context.Context, sessionID, shop string, metal entities.MetalType) (SessionResult, error)
	UpdateRingSize(ctx context.Context, sessionID, shop, size string) (SessionResult, error)
	UpdateSideStones(ctx context.Context, sessionID, shop, quality string, quantity int) (SessionResult, error)
	UpdateEngraving(ctx context.Context, sessionID, shop string, enabled bool, text, font, position string) (SessionResult, error)
	UpdateGiftMessage(ctx context.Context, sessionID, shop string, enabled bool, message string) (SessionResult, error)
	GoToStep(ctx context.Context, sessionID, shop string, step entities.BuilderStep) (SessionResult, error)
	ResetSession(ctx context.Context, sessionID, shop string) (SessionResult, error)
}

type BuilderUseCase struct {
	sessions interfaces.IBuilderSessionRepository
	catalog  interfaces.ICatalogRepository
	settings interfaces.IShopSettingsRepository
}

var _ IBuilderUseCase = (*BuilderUseCase)(nil)

func NewBuilderUseCase(
	sessions interfaces.IBuilderSessionRepository,
	catalog interfaces.ICatalogRepository,
	settings interfaces.IShopSettingsRepository,
) *BuilderUseCase {
	return &BuilderUseCase{sessions: sessions, catalog: catalog, settings: settings}
}

// ResumeSession restores a stored session or starts a fresh one. A stored
// session is applied only when its shop matches the requesting shop
// context; anything else (missing, mismatched, unreadable) is treated as
// "no saved state" and produces a new empty session.
func (u *BuilderUseCase) ResumeSession(ctx context.Context, shop, sessionID string) (SessionResult, error) {
	shop = strings.TrimSpace(shop)
	if shop == "" {
		return SessionResult{}, ErrInvalidShop
	}

	if sessionID = strings.TrimSpace(sessionID); sessionID != "" {
		stored, err := u.sessions.GetByID(ctx, sessionID)
		if err != nil {
			log.Printf("[builder][usecase] restore failed session_id=%s err=%v", sessionID, err)
		} else if stored.ID != "" && stored.Shop == shop {
			return u.result(ctx, stored), nil
		}
	}

	now := time.Now().UTC()
	created, err := u.sessions.Create(ctx, entities.NewBuilderSession(uuid.NewString(), shop, now))
	if err != nil {
		return SessionResult{}, err
	}
	return u.result(ctx, created), nil
}

func (u *BuilderUseCase) GetSession(ctx context.Context, sessionID, shop string) (SessionResult, error) {
	s, err := u.load(ctx, sessionID, shop)
	if err != nil {
		return SessionResult{}, err
	}
	return u.result(ctx, s), nil
}

// SelectSetting sets the setting and metal and advances to the stone step.
// It always succeeds for a valid setting/metal pair, regardless of prior
// state.
func (u *BuilderUseCase) SelectSetting(ctx context.Context, sessionID, shop, settingID string, metal entities.MetalType) (SessionResult, error) {
	settingID = strings.TrimSpace(settingID)
	if settingID == "" {
		return SessionResult{}, ErrSettingNotFound
	}
	if !metal.IsValid() {
		return SessionResult{}, ErrInvalidMetalType
	}

	return u.mutate(ctx, sessionID, shop, func(s *entities.BuilderSession) error {
		setting, err := u.catalog.GetSettingByID(ctx, settingID)
		if err != nil {
			return err
		}
		if setting.ID == "" || setting.Shop != s.Shop {
			return ErrSettingNotFound
		}
		s.SelectedSetting = &setting
		s.SelectedMetalType = metal
		s.CurrentStep = entities.StepStone
		return nil
	})
}

// SelectStone sets the stone and advances to the customize step. A stone
// whose shape the selected setting cannot hold is rejected.
func (u *BuilderUseCase) SelectStone(ctx context.Context, sessionID, shop, stoneID string) (SessionResult, error) {
	stoneID = strings.TrimSpace(stoneID)
	if stoneID == "" {
		return SessionResult{}, ErrStoneNotFound
	}

	return u.mutate(ctx, sessionID, shop, func(s *entities.BuilderSession) error {
		stone, err := u.catalog.GetStoneByID(ctx, stoneID)
		if err != nil {
			return err
		}
		if stone.ID == "" || stone.Shop != s.Shop {
			return ErrStoneNotFound
		}
		if s.SelectedSetting != nil && !s.SelectedSetting.SupportsShape(stone.Shape) {
			return ErrIncompatibleStoneShape
		}
		s.SelectedStone = &stone
		s.CurrentStep = entities.StepCustomize
		return nil
	})
}

func (u *BuilderUseCase) UpdateMetalType(ctx context.Context, sessionID, shop string, metal entities.MetalType) (SessionResult, error) {
	if !metal.IsValid() {
		return SessionResult{}, ErrInvalidMetalType
	}
	return u.mutate(ctx, sessionID, shop, func(s *entities.BuilderSession) error {
		s.SelectedMetalType = metal
		return nil
	})
}

func (u *BuilderUseCase) UpdateRingSize(ctx context.Context, sessionID, shop, size string) (SessionResult, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		return SessionResult{}, ErrInvalidRingSize
	}
	return u.mutate(ctx, sessionID, shop, func(s *entities.BuilderSession) error {
		cfg := u.shopSettings(ctx, s.Shop)
		if !cfg.AllowsRingSize(size) {
			return ErrInvalidRingSize
		}
		s.RingSize = size
		return nil
	})
}

// UpdateSideStones applies a side-stone tier. The price is resolved from
// merchant settings (tier price x quantity); quantity 0 clears the add-on.
func (u *BuilderUseCase) UpdateSideStones(ctx context.Context, sessionID, shop, quality string, quantity int) (SessionResult, error) {
	if quantity < 0 {
		return SessionResult{}, ErrInvalidSideStoneQty
	}
	return u.mutate(ctx, sessionID, shop, func(s *entities.BuilderSession) error {
		if quantity == 0 {
			s.SideStones = nil
			return nil
		}
		cfg := u.shopSettings(ctx, s.Shop)
		tier, ok := cfg.TierFor(strings.TrimSpace(quality))
		if !ok {
			return ErrInvalidSideStoneQuality
		}
		s.SideStones = &entities.SideStonesConfig{
			Quality:  tier.Quality,
			Quantity: quantity,
			Price:    tier.PricePerStone * float64(quantity),
		}
		return nil
	})
}

// UpdateEngraving toggles engraving. The fee is the merchant's flat
// engraving fee, not per character.
func (u *BuilderUseCase) UpdateEngraving(ctx context.Context, sessionID, shop string, enabled bool, text, font, position string) (SessionResult, error) {
	if utf8.RuneCountInString(text) > entities.MaxEngravingLen {
		return SessionResult{}, ErrEngravingTooLong
	}
	return u.mutate(ctx, sessionID, shop, func(s *entities.BuilderSession) error {
		if !enabled {
			s.Engraving = nil
			return nil
		}
		cfg := u.shopSettings(ctx, s.Shop)
		s.Engraving = &entities.EngravingConfig{
			Enabled:  true,
			Text:     text,
			Font:     font,
			Position: position,
			Price:    cfg.EngravingFee,
		}
		return nil
	})
}

func (u *BuilderUseCase) UpdateGiftMessage(ctx context.Context, sessionID, shop string, enabled bool, message string) (SessionResult, error) {
	if utf8.RuneCountInString(message) > entities.MaxGiftMessageLen {
		return SessionResult{}, ErrGiftMessageTooLong
	}
	return u.mutate(ctx, sessionID, shop, func(s *entities.BuilderSession) error {
		if !enabled {
			s.GiftMessage = nil
			return nil
		}
		s.GiftMessage = &entities.GiftMessageConfig{Enabled: true, Message: message}
		return nil
	})
}

// GoToStep moves the wizard to a step the gate allows. A gated target is a
// silent no-op: the session is returned unchanged, matching the storefront
// step tabs which give no feedback for a disabled click.
func (u *BuilderUseCase) GoToStep(ctx context.Context, sessionID, shop string, step entities.BuilderStep) (SessionResult, error) {
	if !step.IsValid() {
		return SessionResult{}, ErrInvalidStep
	}
	return u.mutate(ctx, sessionID, shop, func(s *entities.BuilderSession) error {
		if !s.CanNavigateTo(step) {
			return nil
		}
		s.CurrentStep = step
		return nil
	})
}

// ResetSession clears every selection back to the initial defaults. The
// fresh session is saved over the stored one in a single write so the id
// can never be left without a session if the write fails.
func (u *BuilderUseCase) ResetSession(ctx context.Context, sessionID, shop string) (SessionResult, error) {
	s, err := u.load(ctx, sessionID, shop)
	if err != nil {
		return SessionResult{}, err
	}

	saved, err := u.sessions.Save(ctx, entities.NewBuilderSession(s.ID, s.Shop, time.Now().UTC()))
	if err != nil {
		return SessionResult{}, err
	}
	return u.result(ctx, saved), nil
}

func (u *BuilderUseCase) load(ctx context.Context, sessionID, shop string) (entities.BuilderSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.BuilderSession{}, ErrInvalidSessionID
	}
	shop = strings.TrimSpace(shop)
	if shop == "" {
		return entities.BuilderSession{}, ErrInvalidShop
	}

	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.BuilderSession{}, err
	}
	// A session stored for another shop is treated as absent, never leaked.
	if s.ID == "" || s.Shop != shop {
		return entities.BuilderSession{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *BuilderUseCase) mutate(ctx context.Context, sessionID, shop string, apply func(*entities.BuilderSession) error) (SessionResult, error) {
	s, err := u.load(ctx, sessionID, shop)
	if err != nil {
		return SessionResult{}, err
	}
	if s.Status == entities.SessionStatusSubmitted {
		return SessionResult{}, ErrSessionSubmitted
	}

	if err := apply(&s); err != nil {
		return SessionResult{}, err
	}
	s.Touch(time.Now().UTC())

	saved, err := u.sessions.Save(ctx, s)
	if err != nil {
		return SessionResult{}, err
	}
	return u.result(ctx, saved), nil
}

// result derives the price breakdown and step states for a session. The
// markup percent comes from merchant settings; when settings cannot be
// loaded the breakdown falls back to markup 0.
func (u *BuilderUseCase) result(ctx context.Context, s entities.BuilderSession) SessionResult {
	cfg := u.shopSettings(ctx, s.Shop)
	return SessionResult{
		Session: s,
		Price:   pricing.Compute(s, cfg.MarkupPercent),
		Steps:   s.StepStates(),
	}
}

func (u *BuilderUseCase) shopSettings(ctx context.Context, shop string) entities.ShopSettings {
	cfg, err := u.settings.Get(ctx, shop)
	if err != nil {
		log.Printf("[builder][usecase] shop settings unavailable shop=%s err=%v", shop, err)
		return entities.DefaultShopSettings(shop)
	}
	if cfg.Shop == "" {
		return entities.DefaultShopSettings(shop)
	}
	return cfg
}
