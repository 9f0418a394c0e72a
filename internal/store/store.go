// Package store persists per-respondent test state. Every field is an
// independent key so a failed write never corrupts the rest of the
// state; values are JSON encoded through the helpers below.
package store

import (
	"context"
	"encoding/json"
	"log"
)

// Field names under which respondent state is kept
const (
	FieldStep     = "step"
	FieldIdentity = "identity"
	FieldRole     = "role"
	FieldSection  = "section"
	FieldAnswers  = "answers"
	FieldStats    = "stats"
	FieldMatch    = "match"
)

// AllFields lists every respondent field, used by restart
var AllFields = []string{
	FieldStep, FieldIdentity, FieldRole,
	FieldSection, FieldAnswers, FieldStats, FieldMatch,
}

// StateStore is the byte-level persistence adapter. Get returns
// (nil, nil) when the field is absent.
type StateStore interface {
	Get(ctx context.Context, respondentID, field string) ([]byte, error)
	Set(ctx context.Context, respondentID, field string, data []byte) error
	Delete(ctx context.Context, respondentID string, fields ...string) error
}

// GetJSON reads and decodes one field. A missing field returns
// (false, nil). A value that no longer decodes is treated the same way
// so a respondent with damaged state starts fresh instead of erroring;
// the damage is logged and left for the next write to replace.
func GetJSON(ctx context.Context, s StateStore, respondentID, field string, v any) (bool, error) {
	data, err := s.Get(ctx, respondentID, field)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("store: discarding corrupt %s for respondent %s: %v", field, respondentID, err)
		return false, nil
	}
	return true, nil
}

// SetJSON encodes and writes one field
func SetJSON(ctx context.Context, s StateStore, respondentID, field string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, respondentID, field, data)
}
