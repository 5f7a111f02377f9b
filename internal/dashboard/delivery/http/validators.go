package http

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules used by request DTOs
// on gin's default validator.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not validator/v10")
			return
		}
		err = v.RegisterValidation("notblank", validators.NotBlank)
	})
	return err
}
