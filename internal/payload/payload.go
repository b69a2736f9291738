// Package payload defines the canonical export-request envelope callers
// serialize into the scheduler's opaque job payload, and its validation.
// The scheduler core never looks inside a payload; validation happens once
// at the submission boundary.
package payload

import (
	"encoding/json"
	"fmt"

	"github.com/calebmartins/exportq/constants"
	"github.com/calebmartins/exportq/internal/common"
)

// Request describes one export: which document, which selection of it, the
// target formats, and free-form per-job options for the export engine.
type Request struct {
	DocumentID string          `json:"document_id"`
	Selection  json.RawMessage `json:"selection,omitempty"`
	Formats    []string        `json:"formats"`
	Options    json.RawMessage `json:"options,omitempty"`
}

// Marshal encodes the request for submission.
func (r Request) Marshal() (json.RawMessage, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode export request: %w", err)
	}
	return b, nil
}

// Validate checks the envelope fields.
func (r Request) Validate() error {
	v := common.NewValidator()
	v.Field("document_id", r.DocumentID, common.Required, common.UUID)
	if len(r.Formats) == 0 {
		v.Field("formats", r.Formats, func(field string, value interface{}) *common.ValidationError {
			return &common.ValidationError{Field: field, Value: value, Message: "at least one target format is required"}
		})
	}
	for _, f := range r.Formats {
		if !constants.IsExportFormat(f) {
			v.Field("formats", f, func(field string, value interface{}) *common.ValidationError {
				return &common.ValidationError{Field: field, Value: value, Message: "unsupported export format"}
			})
		}
	}
	if v.HasErrors() {
		return fmt.Errorf("%s: %w", v.ErrorMessage(), common.ErrValidation)
	}
	return nil
}
