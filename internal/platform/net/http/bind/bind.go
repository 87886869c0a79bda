// Package bind decodes and validates JSON request bodies into project errors
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "dollarwords/internal/platform/errors"
	"dollarwords/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// MaxBody is the largest request body ParseJSON reads
const MaxBody = 1 << 20

type checker struct {
	v     *validator.Validate
	trans ut.Translator
}

// checks is built once: english messages, fields named by their json tag
var checks = sync.OnceValue(func() checker {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		logger.Named("bind").Error().Err(err).Msg("validator translations not registered")
	}
	return checker{v: v, trans: trans}
})

// ParseJSON decodes exactly one JSON object of type T from the body, rejecting
// unknown fields and trailing data, then runs its validate tags
func ParseJSON[T any](r *http.Request) (T, error) {
	var dst T
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		var zero T
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		var zero T
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(dst); err != nil {
		var zero T
		return zero, err
	}
	return dst, nil
}

// Validate runs v's validate tags; the first failure becomes a validation
// error naming its json field
func Validate(v any) error {
	c := checks()
	err := c.v.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		logger.Named("bind").Error().Err(err).Msg("validator misuse")
		return perr.Newf(perr.ErrorCodeValidation, "validation error")
	}
	fe := verrs[0]
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", fe.Translate(c.trans)), fe.Field())
}
