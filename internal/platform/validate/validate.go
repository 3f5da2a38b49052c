// Package validate provides the shared struct validator used on service
// input DTOs, with english messages and domain tags
package validate

import (
	"reflect"
	"strings"
	"sync"

	perr "guidecheck/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// Svc holds a singleton validator and translator
type Svc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once sync.Once
	svc  *Svc
)

// Init initializes the singleton validator with english translations,
// json tag names, and the dnaseq domain tag
func Init() *Svc {
	once.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = entrans.RegisterDefaultTranslations(v, trans)

		registerDNASeq(v, trans)

		svc = &Svc{Validator: v, Translator: trans}
	})
	return svc
}

// Get returns the validator singleton, initializing on first use
func Get() *Svc {
	if svc == nil {
		return Init()
	}
	return svc
}

// Struct validates s and converts the first field error to a project
// validation error with the offending field attached
func Struct(s any) error {
	sv := Get()
	err := sv.Validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
		fe := verrs[0]
		return perr.WithField(
			perr.New(perr.ErrorCodeValidation, fe.Translate(sv.Translator)),
			fe.Field(),
		)
	}
	return perr.Wrap(err, perr.ErrorCodeValidation, "input validation failed")
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	v, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = v
	return true
}

// registerDNASeq adds the dnaseq tag: uppercase alphabet {A,T,C,G,-}.
// Length is checked separately via len=23 so the two failures read differently
func registerDNASeq(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("dnaseq", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case 'A', 'T', 'C', 'G', '-':
			default:
				return false
			}
		}
		return true
	})
	_ = v.RegisterTranslation("dnaseq", trans,
		func(ut ut.Translator) error {
			return ut.Add("dnaseq", "{0} may only contain A, T, C, G or -", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("dnaseq", fe.Field())
			return t
		},
	)
}
