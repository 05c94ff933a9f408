package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var matchStateValidator = validator.New()

// Validate checks the snapshot's field-level constraints: populated
// selections, distinct teams, non-negative scores and in-range overs and
// wickets. Chase-level rules (exhausted innings, score past target) belong
// to the feature deriver, which also re-checks the wicket invariant for
// callers that skip this step.
func (s MatchState) Validate() error {
	err := matchStateValidator.Struct(s)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return fmt.Errorf("invalid match state: %s failed on '%s'", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("invalid match state: %w", err)
}
