package validation

import (
	"sync"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	conformOnce sync.Once
	conform     *mold.Transformer
)

func Validate() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

func Conform() *mold.Transformer {
	conformOnce.Do(func() {
		conform = modifiers.New()
	})

	return conform
}
