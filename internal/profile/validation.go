package profile

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

var sheetURLRegexp = regexp.MustCompile(SheetURLPattern)

// characterInput carries the user-supplied fields of a new character
type characterInput struct {
	Name     string `validate:"required,max=100"`
	Title    string `validate:"max=200"`
	SheetURL string `validate:"required,max=500,sheeturl"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(sheetURLTag, func(fl validator.FieldLevel) bool {
		return IsValidSheetURL(fl.Field().String())
	})
	return v
}

// IsValidSheetURL reports whether s has the minimal link shape for a character sheet
func IsValidSheetURL(s string) bool {
	return sheetURLRegexp.MatchString(strings.TrimSpace(s))
}

// validationError converts validator output into a domain.ErrValidation naming the bad field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%w: %s failed %s", domain.ErrValidation, strings.ToLower(fe.Field()), fe.Tag())
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
