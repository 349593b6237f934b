package services

import (
	"github.com/SscSPs/currency_converter/internal/core/ports/providers"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(p providers.ProviderSet) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Converter: NewConverterService(p.Rates),
	}
}
