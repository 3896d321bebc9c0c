// Package capacity projects daily Capacity-Unit (CU) demand from token
// statistics.
//
// The projection is the platform's closed-form formula:
//
//	output_tokens    = input_tokens * 4
//	cu_seconds       = (input_tokens*100 + output_tokens*400) / 1000
//	cu_hours         = cu_seconds / 3600
//	requests_per_day = users_per_day * questions_per_user_per_day
//	capacity_need    = (requests_per_day * cu_hours) / 24
//
// Estimate is pure: the same inputs always produce bit-identical outputs,
// and no rounding is applied anywhere. Formatting is a caller concern.
package capacity
