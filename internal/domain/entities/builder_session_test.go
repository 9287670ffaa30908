package entities

import (
	"testing"
	"time"
)

func TestNewBuilderSession(t *testing.T) {
	now := time.Now().UTC()
	s := NewBuilderSession("sess-1", "gems.myshopify.com", now)

	if s.CurrentStep != StepSetting {
		t.Fatalf("expected new session on step %d, got %d", StepSetting, s.CurrentStep)
	}
	if s.Status != SessionStatusActive {
		t.Fatalf("expected active status, got %q", s.Status)
	}
	if s.SelectedSetting != nil || s.SelectedStone != nil || s.RingSize != "" {
		t.Fatalf("expected empty selections, got %+v", s)
	}
	if !s.CreatedAt.Equal(now) || !s.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps %v, got created=%v updated=%v", now, s.CreatedAt, s.UpdatedAt)
	}
}

func TestBuilderSession_CanNavigateTo(t *testing.T) {
	setting := &Setting{ID: "set-1"}
	stone := &Stone{ID: "sto-1"}

	t.Run("empty session can only reach the setting step", func(t *testing.T) {
		s := NewBuilderSession("sess-1", "shop", time.Now())
		if !s.CanNavigateTo(StepSetting) {
			t.Fatalf("setting step must always be reachable")
		}
		for _, step := range []BuilderStep{StepStone, StepCustomize, StepReview} {
			if s.CanNavigateTo(step) {
				t.Fatalf("expected step %d to be gated on an empty session", step)
			}
		}
	})

	t.Run("setting unlocks the stone step only", func(t *testing.T) {
		s := NewBuilderSession("sess-1", "shop", time.Now())
		s.SelectedSetting = setting
		if !s.CanNavigateTo(StepStone) {
			t.Fatalf("expected stone step reachable after selecting a setting")
		}
		if s.CanNavigateTo(StepCustomize) || s.CanNavigateTo(StepReview) {
			t.Fatalf("expected customize and review still gated")
		}
	})

	t.Run("stone unlocks customize", func(t *testing.T) {
		s := NewBuilderSession("sess-1", "shop", time.Now())
		s.SelectedSetting = setting
		s.SelectedStone = stone
		if !s.CanNavigateTo(StepCustomize) {
			t.Fatalf("expected customize step reachable after selecting a stone")
		}
		if s.CanNavigateTo(StepReview) {
			t.Fatalf("expected review gated without a ring size")
		}
	})

	t.Run("ring size unlocks review", func(t *testing.T) {
		s := NewBuilderSession("sess-1", "shop", time.Now())
		s.SelectedSetting = setting
		s.SelectedStone = stone
		s.RingSize = "6.5"
		if !s.CanNavigateTo(StepReview) {
			t.Fatalf("expected review reachable with setting, stone and ring size")
		}
	})

	t.Run("invalid step", func(t *testing.T) {
		s := NewBuilderSession("sess-1", "shop", time.Now())
		if s.CanNavigateTo(0) || s.CanNavigateTo(5) {
			t.Fatalf("expected out-of-range steps to be unreachable")
		}
	})
}

func TestBuilderSession_StepStates(t *testing.T) {
	s := NewBuilderSession("sess-1", "shop", time.Now())
	s.SelectedSetting = &Setting{ID: "set-1"}
	s.SelectedStone = &Stone{ID: "sto-1"}

	states := s.StepStates()
	if len(states) != 4 {
		t.Fatalf("expected 4 step states, got %d", len(states))
	}

	labels := BuilderStepLabels()
	for i, st := range states {
		if st.Step != BuilderStep(i+1) {
			t.Fatalf("expected step %d at position %d, got %d", i+1, i, st.Step)
		}
		if st.Label != labels[i] {
			t.Fatalf("expected label %q, got %q", labels[i], st.Label)
		}
	}

	if !states[0].Completed || !states[1].Completed {
		t.Fatalf("expected setting and stone steps completed, got %+v", states)
	}
	if states[2].Completed {
		t.Fatalf("expected customize incomplete without a ring size")
	}
	if states[2].Disabled {
		t.Fatalf("expected customize enabled once a stone is selected")
	}
	if !states[3].Disabled {
		t.Fatalf("expected review disabled without a ring size")
	}
	if !states[3].Completed {
		t.Fatalf("expected review marked completed when setting and stone are chosen")
	}
}

func TestBuilderSession_IsComplete(t *testing.T) {
	s := NewBuilderSession("sess-1", "shop", time.Now())
	s.SelectedSetting = &Setting{ID: "set-1"}
	s.SelectedStone = &Stone{ID: "sto-1"}
	s.RingSize = "7"

	if s.IsComplete() {
		t.Fatalf("expected incomplete without a metal type")
	}
	s.SelectedMetalType = Metal14KWhiteGold
	if !s.IsComplete() {
		t.Fatalf("expected complete with setting, stone, ring size and metal")
	}
}

func TestBuilderSession_Touch(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewBuilderSession("sess-1", "shop", created)

	later := created.Add(time.Hour)
	s.Touch(later)
	if !s.UpdatedAt.Equal(later) {
		t.Fatalf("expected UpdatedAt %v, got %v", later, s.UpdatedAt)
	}
	if !s.CreatedAt.Equal(created) {
		t.Fatalf("expected CreatedAt untouched, got %v", s.CreatedAt)
	}
}
