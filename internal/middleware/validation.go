package middleware

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yraj/offerdesk/internal/pkg/studentid"
)

// RegisterValidators installs custom binding validators on Gin's
// validator engine. Called once at startup.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// studentid validates the INT/INT-KV/{YYYY}-{YY}/{SEQ} shape.
		// Casing is normalized later in the service, so the uppercased
		// form is what gets parsed here.
		_ = v.RegisterValidation("studentid", func(fl validator.FieldLevel) bool {
			_, err := studentid.Parse(strings.ToUpper(fl.Field().String()))
			return err == nil
		})
	}
}
