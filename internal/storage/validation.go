// Package storage exports the withholding reference data to SQLite.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrEmptySlice      = errors.New("slice cannot be empty")
	ErrDuplicateCode   = errors.New("duplicate code")
	ErrUnknownCode     = errors.New("unknown income code")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateSnapshot checks that every row has a key, that keys are unique
// within their table and that detailed items point at known income codes.
func validateSnapshot(snap Snapshot) error {
	if len(snap.Income) == 0 {
		return fmt.Errorf("%w: %w: income", ErrInvalidSnapshot, ErrEmptySlice)
	}
	if len(snap.Occupations) == 0 {
		return fmt.Errorf("%w: %w: occupations", ErrInvalidSnapshot, ErrEmptySlice)
	}

	income := make(map[string]bool, len(snap.Income))
	for i, c := range snap.Income {
		if err := validateString(c.Code, "income code"); err != nil {
			return fmt.Errorf("%w: income at index %d: %w", ErrInvalidSnapshot, i, err)
		}
		if income[c.Code] {
			return fmt.Errorf("%w: %w: income %s", ErrInvalidSnapshot, ErrDuplicateCode, c.Code)
		}
		income[c.Code] = true
	}

	occupations := make(map[string]bool, len(snap.Occupations))
	for i, c := range snap.Occupations {
		if err := validateString(c.Code, "occupation code"); err != nil {
			return fmt.Errorf("%w: occupation at index %d: %w", ErrInvalidSnapshot, i, err)
		}
		if occupations[c.Code] {
			return fmt.Errorf("%w: %w: occupation %s", ErrInvalidSnapshot, ErrDuplicateCode, c.Code)
		}
		occupations[c.Code] = true
	}

	fees := make(map[string]bool, len(snap.Fees))
	for i, f := range snap.Fees {
		if err := validateString(f.Code, "fee code"); err != nil {
			return fmt.Errorf("%w: fee at index %d: %w", ErrInvalidSnapshot, i, err)
		}
		if fees[f.Code] {
			return fmt.Errorf("%w: %w: fee %s", ErrInvalidSnapshot, ErrDuplicateCode, f.Code)
		}
		fees[f.Code] = true
	}

	ids := make(map[int]bool, len(snap.Items))
	for _, item := range snap.Items {
		if ids[item.ID] {
			return fmt.Errorf("%w: %w: item %d", ErrInvalidSnapshot, ErrDuplicateCode, item.ID)
		}
		ids[item.ID] = true
		if !income[item.Code] {
			return fmt.Errorf("%w: %w: item %d refers to %q", ErrInvalidSnapshot, ErrUnknownCode, item.ID, item.Code)
		}
	}
	return nil
}
