// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotAYear is returned for year input that is not all digits.
var ErrNotAYear = errors.New("not a year")

// YearInputHint is the field error shown beside rejected year input.
const YearInputHint = "Needs to be a year"

var yearPattern = regexp.MustCompile(`^\d+$`)

// ParseYearInput validates a year field. Empty input clears the bound
// (nil, nil). Digits-only input sets it. Anything else, including
// signs and surrounding spaces, is ErrNotAYear.
func ParseYearInput(text string) (*int, error) {
	if text == "" {
		return nil, nil
	}
	if !yearPattern.MatchString(text) {
		return nil, ErrNotAYear
	}
	year, err := strconv.Atoi(text)
	if err != nil {
		// Digits only, so the only failure is overflow.
		return nil, ErrNotAYear
	}
	return &year, nil
}

// ErrNotACost is returned for cost input that is not a number.
var ErrNotACost = errors.New("not a number")

// CostInputHint is the field error shown beside rejected cost input.
const CostInputHint = "Needs to be a number"

// ParseCostInput parses a cost field. Blank input yields fallback, the
// dataset bound for that end. Text that is not a number, or is NaN, is
// ErrNotACost. Out-of-range numbers are returned as typed; callers
// clamp them.
func ParseCostInput(text string, fallback float64) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) {
		return 0, ErrNotACost
	}
	return value, nil
}

// ClampCost limits value to [low, high].
func ClampCost(value, low, high float64) float64 {
	return max(low, min(value, high))
}

// WithMin sets the lower bound to value clamped into bounds, raising
// the upper bound if it would fall below the new lower one.
func (r CostRange) WithMin(value float64, bounds CostRange) CostRange {
	value = ClampCost(value, bounds.Min, bounds.Max)
	return CostRange{Min: value, Max: max(value, r.Max)}
}

// WithMax sets the upper bound to value clamped into bounds, lowering
// the lower bound if it would rise above the new upper one.
func (r CostRange) WithMax(value float64, bounds CostRange) CostRange {
	value = ClampCost(value, bounds.Min, bounds.Max)
	return CostRange{Min: min(value, r.Min), Max: value}
}

// Clamp limits both ends to bounds and orders them.
func (r CostRange) Clamp(bounds CostRange) CostRange {
	low := ClampCost(r.Min, bounds.Min, bounds.Max)
	high := ClampCost(r.Max, bounds.Min, bounds.Max)
	if low > high {
		low, high = high, low
	}
	return CostRange{Min: low, Max: high}
}
