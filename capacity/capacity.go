package capacity

import (
	"errors"
	"fmt"
)

// OutputFactor is the fixed output-to-input token ratio.
const OutputFactor = 4

// CU weighting of the platform formula:
// cu_seconds = (input*inputWeight + output*outputWeight) / 1000.
const (
	inputWeight  = 100
	outputWeight = 400
)

// Scenario is one capacity projection. It is derived on demand from a
// completed analysis plus demand parameters, never cached, and never
// mutated after construction.
type Scenario struct {
	InputTokens      float64 `json:"input_tokens" yaml:"input_tokens"`
	OutputTokens     float64 `json:"output_tokens" yaml:"output_tokens"`
	CUSeconds        float64 `json:"cu_seconds" yaml:"cu_seconds"`
	CUMinutes        float64 `json:"cu_minutes" yaml:"cu_minutes"`
	CUHours          float64 `json:"cu_hours" yaml:"cu_hours"`
	UsersPerDay      float64 `json:"users_per_day" yaml:"users_per_day"`
	QuestionsPerUser float64 `json:"questions_per_user_per_day" yaml:"questions_per_user_per_day"`
	RequestsPerDay   float64 `json:"requests_per_day" yaml:"requests_per_day"`

	// CapacityNeed is the projected average CU/day requirement.
	CapacityNeed float64 `json:"capacity_need" yaml:"capacity_need"`
}

// ValidationError reports a negative demand parameter. Negative inputs
// are rejected, not clamped; zero is allowed and yields zero need.
type ValidationError struct {
	Param string
	Value float64
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be >= 0, got %v", e.Param, e.Value)
}

// IsValidation checks if an error is a demand validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Estimate projects daily CU demand from the mean input token count and
// the demand parameters. All arithmetic is float64 division per the
// formula; no rounding is applied.
func Estimate(meanInputTokens, usersPerDay, questionsPerUser float64) (*Scenario, error) {
	if meanInputTokens < 0 {
		return nil, &ValidationError{Param: "mean input tokens", Value: meanInputTokens}
	}
	if usersPerDay < 0 {
		return nil, &ValidationError{Param: "users per day", Value: usersPerDay}
	}
	if questionsPerUser < 0 {
		return nil, &ValidationError{Param: "questions per user per day", Value: questionsPerUser}
	}

	outputTokens := meanInputTokens * OutputFactor
	cuSeconds := (meanInputTokens*inputWeight + outputTokens*outputWeight) / 1000
	cuHours := cuSeconds / 3600
	requestsPerDay := usersPerDay * questionsPerUser

	return &Scenario{
		InputTokens:      meanInputTokens,
		OutputTokens:     outputTokens,
		CUSeconds:        cuSeconds,
		CUMinutes:        cuSeconds / 60,
		CUHours:          cuHours,
		UsersPerDay:      usersPerDay,
		QuestionsPerUser: questionsPerUser,
		RequestsPerDay:   requestsPerDay,
		CapacityNeed:     (requestsPerDay * cuHours) / 24,
	}, nil
}
