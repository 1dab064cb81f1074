// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/uhctl/uhctl/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	valid := false
	for _, v := range output.Formats {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// SessionValidator rejects blank session names.
func SessionValidator(value any) error {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return fmt.Errorf("session name must not be empty")
	}
	return nil
}
