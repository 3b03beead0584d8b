package config

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/palantir-ui/palantir/pkg/graphics"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used by the
// config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("color_value", func(fl validator.FieldLevel) bool {
			_, err := graphics.ParseColor(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// validationMessages flattens validator errors into readable messages.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return nil
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "color_value":
			msgs = append(msgs, fmt.Sprintf("%s: %q is not a color", fe.Namespace(), fe.Value()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: must be one of [%s]", fe.Namespace(), fe.Param()))
		case "min", "max", "gte":
			msgs = append(msgs, fmt.Sprintf("%s: violates %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return msgs
}
