// Package bind decodes request bodies and validates them with go-playground
// validator, turning failures into perr errors that name the offending field
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "housepricing/internal/platform/errors"
	"housepricing/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type engine struct {
	v     *validator.Validate
	trans ut.Translator

	mu    sync.RWMutex
	codes map[string]perr.ErrorCode
}

var get = sync.OnceValue(func() *engine {
	enLoc := en.New()
	trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	e := &engine{v: v, trans: trans, codes: map[string]perr.ErrorCode{}}
	e.message("min", "{0} must be at least {1}")
	e.message("max", "{0} must be at most {1}")
	return e
})

// jsonName reports fields by their json key so messages match the payload
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func (e *engine) message(tag, text string) {
	_ = e.v.RegisterTranslation(tag, e.trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

func (e *engine) code(tag string) perr.ErrorCode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if c, ok := e.codes[tag]; ok {
		return c
	}
	return perr.ErrorCodeValidation
}

// RegisterTag adds a validation tag for string fields (and string slices
// with dive). A failure reports code and message, where {0} is the field.
// Registering the same tag again replaces it
func RegisterTag(tag string, code perr.ErrorCode, message string, ok func(string) bool) error {
	e := get()
	err := e.v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		f := fl.Field()
		return f.Kind() == reflect.String && ok(f.String())
	})
	if err != nil {
		return err
	}
	e.message(tag, message)

	e.mu.Lock()
	e.codes[tag] = code
	e.mu.Unlock()
	return nil
}

// Validate checks v's validate tags and returns the first failure as a
// perr error with the top level json field set
func Validate(v any) error {
	e := get()
	err := e.v.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		logger.Get().Error().Err(err).Type("type", v).Msg("validator misuse")
		return perr.JSONErrf("validation error")
	}
	fe := verrs[0]
	out := perr.New(e.code(fe.Tag()), fe.Translate(e.trans))
	return perr.WithField(out, topField(fe.Namespace()))
}

// topField turns "Selection.houseTypes[1]" into "houseTypes"
func topField(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	if i := strings.IndexAny(ns, ".["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}

type options struct {
	maxBytes     int64
	allowUnknown bool
	allowEmpty   bool
}

// Option tunes ParseJSON
type Option func(*options)

// MaxBytes caps the body size; n <= 0 means no cap. Default 1 MiB
func MaxBytes(n int64) Option { return func(o *options) { o.maxBytes = n } }

// AllowUnknownFields accepts keys the target type does not declare
func AllowUnknownFields() Option { return func(o *options) { o.allowUnknown = true } }

// AllowEmptyBody returns the zero T for an empty body instead of failing
func AllowEmptyBody() Option { return func(o *options) { o.allowEmpty = true } }

// ParseJSON decodes exactly one JSON value from r's body into T and validates
// it. Decode problems are ErrorCodeJSON; validation failures carry the code
// registered for the failing tag
func ParseJSON[T any](r *http.Request, opts ...Option) (T, error) {
	var dst, zero T
	o := options{maxBytes: 1 << 20}
	for _, fn := range opts {
		fn(&o)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("request body close")
		}
	}()

	var body io.Reader = r.Body
	if o.maxBytes > 0 {
		body = io.LimitReader(body, o.maxBytes)
	}
	dec := json.NewDecoder(body)
	if !o.allowUnknown {
		dec.DisallowUnknownFields()
	}

	switch err := dec.Decode(&dst); {
	case errors.Is(err, io.EOF):
		if o.allowEmpty {
			return dst, nil
		}
		return zero, perr.JSONErrf("empty body")
	case err != nil:
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}
