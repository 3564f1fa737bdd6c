// Package bind provides query bind and validation helpers for handlers
package bind

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "commlog/internal/platform/errors"
	"commlog/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton validator with english translations and query tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer query tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("query")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerShortMax(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc { return Init() }

// ParseQuery fills the string fields of T tagged `query:"name"` from the url query,
// validates the result, and maps failures to project errors
// values are trimmed; repeated keys keep the first value
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return dst, perr.Internalf("bind: %T is not a struct", dst)
	}

	q := r.URL.Query()
	rt := rv.Type()
	for i := range rt.NumField() {
		f := rt.Field(i)
		name := f.Tag.Get("query")
		if name == "" || name == "-" || !f.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.Kind() != reflect.String {
			return dst, perr.Internalf("bind: field %s must be a string", f.Name)
		}
		fv.SetString(strings.TrimSpace(q.Get(name)))
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return dst, perr.Internalf("validation error")
		}
		return dst, toProjectError(err)
	}
	return dst, nil
}

// toProjectError maps the first failing field to a coded error
func toProjectError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return perr.Validationf("%s", err.Error())
	}
	fe := verrs[0]
	var out error
	switch fe.Tag() {
	case "datetime":
		return perr.InvalidDate(fe.Field())
	case "required":
		out = perr.MissingParamf("%s", fe.Translate(Get().Translator))
	default:
		out = perr.Validationf("%s", fe.Translate(Get().Translator))
	}
	return perr.WithField(out, fe.Field())
}

// custom translations

func registerShortMax(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("max", trans,
		func(ut ut.Translator) error {
			return ut.Add("max", "{0} must be at most {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("max", fe.Field(), fe.Param())
			return msg
		},
	)
}
