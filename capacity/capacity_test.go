package capacity

import (
	"math"
	"testing"
)

func TestEstimate(t *testing.T) {
	s, err := Estimate(100, 1500, 5)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}

	if s.InputTokens != 100 {
		t.Errorf("InputTokens = %v, expected 100", s.InputTokens)
	}
	if s.OutputTokens != 400 {
		t.Errorf("OutputTokens = %v, expected 400", s.OutputTokens)
	}
	// (100*100 + 400*400) / 1000 = 170.
	if s.CUSeconds != 170 {
		t.Errorf("CUSeconds = %v, expected 170", s.CUSeconds)
	}
	if s.CUMinutes != 170.0/60 {
		t.Errorf("CUMinutes = %v, expected %v", s.CUMinutes, 170.0/60)
	}
	if s.CUHours != 170.0/3600 {
		t.Errorf("CUHours = %v, expected %v", s.CUHours, 170.0/3600)
	}
	if s.RequestsPerDay != 7500 {
		t.Errorf("RequestsPerDay = %v, expected 7500", s.RequestsPerDay)
	}
	expectedNeed := (7500 * (170.0 / 3600)) / 24
	if s.CapacityNeed != expectedNeed {
		t.Errorf("CapacityNeed = %v, expected %v", s.CapacityNeed, expectedNeed)
	}
	if math.Abs(s.CapacityNeed-14.76) > 0.01 {
		t.Errorf("CapacityNeed = %v, expected about 14.76", s.CapacityNeed)
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	first, err := Estimate(2.5, 1500, 5)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	second, err := Estimate(2.5, 1500, 5)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}

	// Bit-identical across calls: pure float64 arithmetic, no state.
	if *first != *second {
		t.Errorf("repeated estimates differ: %+v vs %+v", first, second)
	}
}

func TestEstimate_ZeroDemand(t *testing.T) {
	s, err := Estimate(100, 0, 5)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}

	if s.RequestsPerDay != 0 {
		t.Errorf("RequestsPerDay = %v, expected 0", s.RequestsPerDay)
	}
	if s.CapacityNeed != 0 {
		t.Errorf("CapacityNeed = %v, expected 0", s.CapacityNeed)
	}
	// Per-request cost is still reported.
	if s.CUSeconds != 170 {
		t.Errorf("CUSeconds = %v, expected 170", s.CUSeconds)
	}
}

func TestEstimate_ZeroTokens(t *testing.T) {
	s, err := Estimate(0, 1500, 5)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}

	if s.CUSeconds != 0 || s.CapacityNeed != 0 {
		t.Errorf("expected zero cost for zero tokens, got %+v", s)
	}
	if s.RequestsPerDay != 7500 {
		t.Errorf("RequestsPerDay = %v, expected 7500", s.RequestsPerDay)
	}
}

func TestEstimate_RejectsNegatives(t *testing.T) {
	tests := []struct {
		name                            string
		tokens, users, questionsPerUser float64
	}{
		{"negative tokens", -1, 1500, 5},
		{"negative users", 100, -1, 5},
		{"negative questions", 100, 1500, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Estimate(tt.tokens, tt.users, tt.questionsPerUser)
			if err == nil {
				t.Fatalf("expected error, got scenario %+v", s)
			}
			if !IsValidation(err) {
				t.Errorf("expected ValidationError, got %T: %v", err, err)
			}
			if s != nil {
				t.Errorf("expected nil scenario on error, got %+v", s)
			}
		})
	}
}

func TestEstimate_FractionalTokens(t *testing.T) {
	// Mean token counts are rarely whole numbers; the formula must not
	// round them.
	s, err := Estimate(2.5, 10, 2)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}

	if s.OutputTokens != 10 {
		t.Errorf("OutputTokens = %v, expected 10", s.OutputTokens)
	}
	// (2.5*100 + 10*400) / 1000 = 4.25.
	if s.CUSeconds != 4.25 {
		t.Errorf("CUSeconds = %v, expected 4.25", s.CUSeconds)
	}
}
