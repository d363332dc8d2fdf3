package api

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var mobilePhoneRe = regexp.MustCompile(`^\d{10}$`)

// validateMaxBytes unlike the max tag, which counts runes, checks the byte length of the field.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param()
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

func validateMobile10(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return mobilePhoneRe.MatchString(str)
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validator registration: unexpected validator engine")
	}
	// Field errors carry the json name so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("max_bytes", validateMaxBytes); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	if err := v.RegisterValidation("mobile10", validateMobile10); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}

// bindErrorMessage turns the first field error into a message for the client.
func bindErrorMessage(err error) string {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) || len(valErrs) == 0 {
		return "invalid request body"
	}
	fe := valErrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "max_bytes":
		return fmt.Sprintf("%s must be at most %s bytes", fe.Field(), fe.Param())
	case "mobile10":
		return "Mobile number must be exactly 10 digits"
	default:
		return fe.Field() + " is invalid"
	}
}
