package entities

import "time"

// BuilderStep enumerates the screens of the ring builder wizard.

type BuilderStep int

const (
	StepSetting   BuilderStep = 1
	StepStone     BuilderStep = 2
	StepCustomize BuilderStep = 3
	StepReview    BuilderStep = 4
)

// BuilderStepLabels returns the labels shown in the step indicator.
func BuilderStepLabels() []string {
	return []string{"Setting", "Stone", "Customize", "Review"}
}

func (s BuilderStep) IsValid() bool {
	return s >= StepSetting && s <= StepReview
}

// SessionStatus tracks whether a session is still editable or has already
// been pushed to the shop's cart.

type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusSubmitted SessionStatus = "submitted"
)

// Input limits enforced on customization fields.
const (
	MaxEngravingLen   = 25
	MaxGiftMessageLen = 250
)

// SideStonesConfig is the accent-stone add-on: a quality tier applied
// Quantity times, priced as a whole.
type SideStonesConfig struct {
	Quality  string  `json:"quality"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// EngravingConfig is the inside-band engraving add-on. Price is a flat fee,
// not per character.
type EngravingConfig struct {
	Enabled  bool    `json:"enabled"`
	Text     string  `json:"text"`
	Font     string  `json:"font,omitempty"`
	Position string  `json:"position,omitempty"`
	Price    float64 `json:"price"`
}

// GiftMessageConfig is a free-text note included with the order. It never
// affects price.
type GiftMessageConfig struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

// BuilderSession is the in-progress ring configuration for one shopper.
// It is the single source of truth the storefront renders from; every
// mutation goes through a narrow use-case operation so step advancement and
// price derivation stay consistent.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The stored shop is the restore guard: a session loaded under a different
// shop context is treated as absent.

type BuilderSession struct {
	ID                string             `json:"id"`
	Shop              string             `json:"shop"`
	CurrentStep       BuilderStep        `json:"current_step"`
	SelectedSetting   *Setting           `json:"selected_setting,omitempty"`
	SelectedMetalType MetalType          `json:"selected_metal_type,omitempty"`
	SelectedStone     *Stone             `json:"selected_stone,omitempty"`
	RingSize          string             `json:"ring_size,omitempty"`
	SideStones        *SideStonesConfig  `json:"side_stones,omitempty"`
	Engraving         *EngravingConfig   `json:"engraving,omitempty"`
	GiftMessage       *GiftMessageConfig `json:"gift_message,omitempty"`
	Status            SessionStatus      `json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// NewBuilderSession returns an empty session positioned on the first step.
func NewBuilderSession(id, shop string, now time.Time) BuilderSession {
	return BuilderSession{
		ID:          id,
		Shop:        shop,
		CurrentStep: StepSetting,
		Status:      SessionStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CanAdvanceToStone reports whether the stone step is reachable.
func (s BuilderSession) CanAdvanceToStone() bool {
	return s.SelectedSetting != nil
}

// CanAdvanceToCustomize reports whether the customize step is reachable.
func (s BuilderSession) CanAdvanceToCustomize() bool {
	return s.CanAdvanceToStone() && s.SelectedStone != nil
}

// CanAdvanceToReview reports whether the review step is reachable.
func (s BuilderSession) CanAdvanceToReview() bool {
	return s.CanAdvanceToCustomize() && s.RingSize != ""
}

// CanNavigateTo is the gate for direct step navigation. A blocked target is
// a silent no-op at the API layer, mirroring the storefront tabs.
func (s BuilderSession) CanNavigateTo(step BuilderStep) bool {
	switch step {
	case StepSetting:
		return true
	case StepStone:
		return s.CanAdvanceToStone()
	case StepCustomize:
		return s.CanAdvanceToCustomize()
	case StepReview:
		return s.CanAdvanceToReview()
	default:
		return false
	}
}

// StepState is the visual state of one step-indicator tab.
type StepState struct {
	Step      BuilderStep `json:"step"`
	Label     string      `json:"label"`
	Completed bool        `json:"completed"`
	Disabled  bool        `json:"disabled"`
}

// StepStates computes the indicator state for every step.
func (s BuilderSession) StepStates() []StepState {
	labels := BuilderStepLabels()
	states := make([]StepState, 0, len(labels))
	for i, label := range labels {
		step := BuilderStep(i + 1)
		states = append(states, StepState{
			Step:      step,
			Label:     label,
			Completed: s.stepCompleted(step),
			Disabled:  !s.CanNavigateTo(step),
		})
	}
	return states
}

func (s BuilderSession) stepCompleted(step BuilderStep) bool {
	switch step {
	case StepSetting:
		return s.SelectedSetting != nil
	case StepStone:
		return s.SelectedStone != nil
	case StepCustomize:
		return s.RingSize != ""
	case StepReview:
		return s.SelectedSetting != nil && s.SelectedStone != nil
	default:
		return false
	}
}

// IsComplete reports whether the configuration can be submitted to the cart.
func (s BuilderSession) IsComplete() bool {
	return s.CanAdvanceToReview() && s.SelectedMetalType != ""
}

// Touch bumps the modification timestamp after a mutation.
func (s *BuilderSession) Touch(now time.Time) {
	s.UpdatedAt = now
}
