package api

import (
	"sync"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerValidators adds the custom tags used by request bindings to gin's validator
func registerValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
				_, err := civil.ParseDate(fl.Field().String())
				return err == nil
			})
		}
	})
}
