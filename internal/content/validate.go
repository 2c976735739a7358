package content

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validatorOnce sync.Once
	validate      *govalidator.Validate
	trans         ut.Translator
)

// structValidator returns the shared validator with English messages and
// JSON field names.
func structValidator() (*govalidator.Validate, ut.Translator) {
	validatorOnce.Do(func() {
		validate = govalidator.New(govalidator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(validate, trans)
	})
	return validate, trans
}

// validateDocument runs struct-tag validation and returns readable problems.
func validateDocument(doc *document) []string {
	v, tr := structValidator()
	err := v.Struct(doc)
	if err == nil {
		return nil
	}

	var ve govalidator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	problems := make([]string, 0, len(ve))
	for _, fe := range ve {
		problems = append(problems, fe.Namespace()+": "+fe.Translate(tr))
	}
	return problems
}
