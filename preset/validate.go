// SPDX-License-Identifier: Unlicense OR MIT

package preset

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"gioui.org/spinner"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("kind", func(fl validator.FieldLevel) bool {
			k, err := spinner.ParseKind(fl.Field().String())
			return err == nil && k.Valid()
		})
		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := ParseColor(fl.Field().String())
			return err == nil
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks f against the preset schema.
func Validate(f *File) error {
	if f == nil {
		return &ValidationError{Field: "file", Tag: "required"}
	}
	if err := validatorInstance().Struct(f); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &ValidationError{Field: "file", Tag: "invalid", Err: err}
	}
	fe := ves[0]
	return &ValidationError{Field: fieldPath(fe), Tag: fe.Tag(), Err: fmt.Errorf("invalid value %v", fe.Value())}
}

// fieldPath formats the namespace of fe without the root type, for
// example spinners[2].radius.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
