// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wealthcast/internal/projection"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_kind", validateAssetKind)
		_ = v.RegisterValidation("compounding_method", validateCompoundingMethod)
	}
}

func validateAssetKind(fl validator.FieldLevel) bool {
	return projection.AssetKind(fl.Field().String()).Valid()
}

func validateCompoundingMethod(fl validator.FieldLevel) bool {
	switch projection.CompoundingMethod(fl.Field().String()) {
	case projection.CompoundingSimple, projection.CompoundingAnnual:
		return true
	}
	return false
}
