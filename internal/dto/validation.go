package dto

import (
	"fmt"
	"sync"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidations adds the custom binding tags used by the DTOs to gin's validator.
// It is safe to call more than once; every call reports the outcome of the first.
func RegisterValidations() error {
	registerOnce.Do(func() {
		registerErr = registerValidations(binding.Validator.Engine())
	})
	return registerErr
}

func registerValidations(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return fmt.Errorf("unsupported validator engine %T", engine)
	}
	return v.RegisterValidation("supported_currency", supportedCurrency)
}

// supportedCurrency accepts USD, GBP and EUR in any letter case.
func supportedCurrency(fl validator.FieldLevel) bool {
	return domain.NormalizeCurrencyCode(fl.Field().String()).IsSupported()
}
