package validatorx

import (
	"regexp"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	phonePattern = regexp.MustCompile(`^\+7\s?\(?\d{3}\)?\s?\d{3}-?\d{2}-?\d{2}$`)
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	// phone accepts numbers shaped like +7 (XXX) XXX-XX-XX
	_ = v.RegisterValidation("phone", func(fl gpvalidator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}
