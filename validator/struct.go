package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)
}

// jsonTagName reports fields by their JSON name.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// errorMessages is a nested map of languages to validation tags to custom error messages.
var errorMessages = map[string]map[string]string{
	"en": {
		"required": "The field '%s' is required.",
		"email":    "The field '%s' must be a valid email address.",
		"min":      "The field '%s' must be at least %s characters long.",
		"max":      "The field '%s' must be no longer than %s characters.",
		"lte":      "The field '%s' must be less than or equal to %s.",
		"gte":      "The field '%s' must be greater than or equal to %s.",
		"unique":   "The field '%s' must be unique.",
		"gt":       "The field '%s' must be greater than %s.",
		"lt":       "The field '%s' must be less than %s.",
		"oneof":    "The field '%s' must be one of %s.",
	},
	"zh": {
		"required": "字段 '%s' 为必填项。",
		"email":    "字段 '%s' 必须是有效的电子邮箱地址。",
		"min":      "字段 '%s' 的长度不能少于 %s 个字符。",
		"max":      "字段 '%s' 的长度不能超过 %s 个字符。",
		"lte":      "字段 '%s' 的值必须小于或等于 %s。",
		"gte":      "字段 '%s' 的值必须大于或等于 %s。",
		"unique":   "字段 '%s' 的值必须唯一。",
		"gt":       "字段 '%s' 的值必须大于 %s。",
		"lt":       "字段 '%s' 的值必须小于 %s。",
		"oneof":    "字段 '%s' 的值必须是 %s 之一。",
	},
}

// parseMessage constructs a friendly error message based on the validation tag and custom messages.
func parseMessage(field string, e validator.FieldError, lang ...string) string {
	msgLang := "en"
	if len(lang) > 0 && lang[0] != "" {
		msgLang = lang[0]
	}
	if msgs, exists := errorMessages[msgLang]; exists {
		if msg, exists := msgs[e.Tag()]; exists {
			switch strings.Count(msg, "%s") {
			case 1:
				return fmt.Sprintf(msg, field)
			case 2:
				return fmt.Sprintf(msg, field, e.Param())
			}
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", field, e.Tag())
}

// fieldPath returns the JSON path of a failed field without the root struct name.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// ValidateStruct validates s and collects one message per failed field, in
// struct field order. The error is non-nil only when s cannot be validated.
func ValidateStruct(s any, lang ...string) (*Result, error) {
	result := NewResult()

	err := validate.Struct(s)
	if err == nil {
		return result, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, fmt.Errorf("failed to validate: %w", err)
	}
	for _, e := range validationErrs {
		field := fieldPath(e)
		result.Add(field, parseMessage(field, e, lang...))
	}
	return result, nil
}
