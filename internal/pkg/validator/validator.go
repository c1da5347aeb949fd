package validator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const maxCodeLength = 512

var nameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.-]{0,63}$`)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateOAuthCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("code is required")
	}

	if len(code) > maxCodeLength {
		return fmt.Errorf("code exceeds maximum length of %d characters", maxCodeLength)
	}

	return nil
}

func (v *Validator) ValidateBusRequest(receiver, action string, payload json.RawMessage) error {
	if !nameRe.MatchString(receiver) {
		return fmt.Errorf("receiver '%s' is not a valid connector name", receiver)
	}

	if !nameRe.MatchString(action) {
		return fmt.Errorf("action '%s' is not a valid action name", action)
	}

	if len(payload) > 0 && !json.Valid(payload) {
		return fmt.Errorf("payload must be valid JSON")
	}

	return nil
}
