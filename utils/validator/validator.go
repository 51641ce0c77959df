package validatorx

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/shop-console/model"
)

const defaultFieldMessage = "Valeur invalide"

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// ValidateFields validates s and maps every failing field, by json name, to
// messages["<field>.<tag>"]. Fields that pass are absent from the result.
func ValidateFields(s interface{}, messages map[string]string) model.FieldErrors {
	out := model.FieldErrors{}

	err := ValidateStruct(s)
	if err == nil {
		return out
	}

	var ve gpvalidator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = defaultFieldMessage
		return out
	}
	for _, fe := range ve {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = defaultFieldMessage
		}
		out[fe.Field()] = msg
	}
	return out
}
