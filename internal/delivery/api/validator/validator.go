// Package validator adapts go-playground/validator to echo and renders
// field errors as human readable messages.
package validator

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"time"

	domainerrors "arcade/internal/domain/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

// labelTag names a field in messages, e.g. `label:"Game name"`.
const labelTag = "label"

// requiredMsgTag replaces the generated "is required" message of a field,
// e.g. `required_msg:"Game modes are required"`.
const requiredMsgTag = "required_msg"

//nolint:gochecknoglobals
var (
	timeType    = reflect.TypeOf(time.Time{})
	dateLayouts = []string{time.RFC3339Nano, time.DateOnly}
)

// bodyField is reported when an error cannot be attributed to a single field.
const bodyField = "body"

// Message keys registered on top of the stock English translations.
const (
	keyRequired    = "required"
	keyMinEmpty    = "arcade-min-empty"
	keyMinString   = "arcade-min-string"
	keyMinNumber   = "arcade-min-number"
	keyMaxString   = "arcade-max-string"
	keyMaxNumber   = "arcade-max-number"
	keyTypeNumber  = "arcade-type-number"
	keyTypeInteger = "arcade-type-integer"
	keyTypeString  = "arcade-type-string"
	keyTypeDate    = "arcade-type-date"
	keyTypeInvalid = "arcade-type-invalid"
	keyBodyJSON    = "arcade-body-json"
	keyBodyObject  = "arcade-body-object"
)

var messages = map[string]string{
	keyRequired:    "{0} is required",
	keyMinEmpty:    "{0} cannot be empty",
	keyMinString:   "{0} must be at least {1} characters long",
	keyMinNumber:   "{0} must be {1} or more",
	keyMaxString:   "{0} must be at most {1} characters long",
	keyMaxNumber:   "{0} must be {1} or less",
	keyTypeNumber:  "{0} must be a number",
	keyTypeInteger: "{0} must be an integer",
	keyTypeString:  "{0} must be a string",
	keyTypeDate:    "{0} must be a valid date",
	keyTypeInvalid: "{0} is invalid",
	keyBodyJSON:    "Request body must be valid JSON",
	keyBodyObject:  "Request body must be a JSON object",
}

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
	trans    ut.Translator
	fields   sync.Map // reflect.Type -> []fieldInfo in declaration order
}

type fieldInfo struct {
	index       int
	goName      string
	json        string
	label       string
	requiredMsg string
	kind        reflect.Type
}

// New builds the validator with English messages
func New() *CustomValidator {
	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator(locale.Locale())

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return labelOf(field)
	})

	// Stock messages for every tag, then our wording for the ones the API uses
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(err)
	}
	for key, text := range messages {
		if err := trans.Add(key, text, true); err != nil {
			panic(err)
		}
	}
	mustRegister(validate, trans, "required", translateRequired)
	mustRegister(validate, trans, "min", translateBound(keyMinEmpty, keyMinString, keyMinNumber))
	mustRegister(validate, trans, "max", translateBound("", keyMaxString, keyMaxNumber))

	return &CustomValidator{validate: validate, trans: trans}
}

// Validate checks the struct and reports every failing field as one validation error
func (cv *CustomValidator) Validate(i any) error {
	details, err := cv.ruleErrors(i)
	if err != nil {
		return err
	}
	if len(details) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(details)
}

// BindBody decodes the JSON object in body into the struct i one declared field at a time,
// then validates the result. Decode failures and rule failures are merged into one
// validation error in field order, with at most one message per field.
// An empty body binds nothing. Keys that match no field are ignored.
func (cv *CustomValidator) BindBody(i any, body []byte) error {
	target := reflect.ValueOf(i)
	if target.Kind() != reflect.Pointer || target.Elem().Kind() != reflect.Struct {
		return errors.Errorf("bind target must be a pointer to a struct, got %T", i)
	}

	decodeFailures, err := cv.decodeFields(target.Elem(), body)
	if err != nil {
		return err
	}

	ruleFailures, err := cv.ruleErrors(i)
	if err != nil {
		return err
	}

	byField := make(map[string]string, len(decodeFailures)+len(ruleFailures))
	for _, failure := range ruleFailures {
		if _, seen := byField[failure.Field]; !seen {
			byField[failure.Field] = failure.Message
		}
	}
	// A value that could not be decoded is the more precise complaint
	for field, message := range decodeFailures {
		byField[field] = message
	}
	if len(byField) == 0 {
		return nil
	}

	details := make([]domainerrors.FieldError, 0, len(byField))
	for _, info := range cv.fieldsOf(target.Elem().Type()) {
		if message, ok := byField[info.json]; ok {
			details = append(details, domainerrors.FieldError{Field: info.json, Message: message})
		}
	}

	return domainerrors.NewValidationError(details)
}

// decodeFields fills the declared fields of v from body and returns a message per field
// whose JSON value has the wrong type. Bodies that are not a JSON object fail as a whole.
func (cv *CustomValidator) decodeFields(v reflect.Value, body []byte) (map[string]string, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, cv.bodyError(keyBodyJSON)
	}

	var raw map[string]json.RawMessage
	if body[0] != '{' || json.Unmarshal(body, &raw) != nil {
		return nil, cv.bodyError(keyBodyObject)
	}

	failures := make(map[string]string)
	for _, info := range cv.fieldsOf(v.Type()) {
		value, ok := raw[info.json]
		if !ok {
			continue
		}
		if key := decodeField(v.Field(info.index), info.kind, value); key != "" {
			failures[info.json] = cv.message(key, info.label)
		}
	}

	return failures, nil
}

// ruleErrors runs the validate tags of i and translates each failure.
func (cv *CustomValidator) ruleErrors(i any) ([]domainerrors.FieldError, error) {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, errors.WithStack(err)
	}

	byGoName := make(map[string]fieldInfo)
	for _, info := range cv.fieldsOf(reflect.TypeOf(i)) {
		byGoName[info.goName] = info
	}

	details := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		message := fe.Translate(cv.trans)
		if info, ok := byGoName[fe.StructField()]; ok {
			name = info.json
			if fe.Tag() == "required" && info.requiredMsg != "" {
				message = info.requiredMsg
			}
		}
		details = append(details, domainerrors.FieldError{Field: name, Message: message})
	}

	return details, nil
}

func (cv *CustomValidator) message(key, label string) string {
	message, err := cv.trans.T(key, label)
	if err != nil {
		return label + " is invalid"
	}

	return message
}

func (cv *CustomValidator) bodyError(key string) error {
	return domainerrors.NewValidationError([]domainerrors.FieldError{
		{Field: bodyField, Message: cv.message(key, "Request body")},
	})
}

// fieldsOf returns the JSON-visible fields of struct type t (or a pointer to it) in declaration order
func (cv *CustomValidator) fieldsOf(t reflect.Type) []fieldInfo {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	if cached, ok := cv.fields.Load(t); ok {
		return cached.([]fieldInfo)
	}

	fields := make([]fieldInfo, 0, t.NumField())
	for idx := range t.NumField() {
		field := t.Field(idx)
		name := jsonName(field)
		if name == "" || !field.IsExported() {
			continue
		}

		kind := field.Type
		for kind.Kind() == reflect.Pointer {
			kind = kind.Elem()
		}

		fields = append(fields, fieldInfo{
			index:       idx,
			goName:      field.Name,
			json:        name,
			label:       labelOf(field),
			requiredMsg: field.Tag.Get(requiredMsgTag),
			kind:        kind,
		})
	}
	cv.fields.Store(t, fields)

	return fields
}

// decodeField stores value into field and returns the message key of a type mismatch, or "".
// JSON null is a mismatch for every field type.
func decodeField(field reflect.Value, kind reflect.Type, value json.RawMessage) string {
	if bytes.Equal(value, []byte("null")) {
		return kindKey(kind, "null")
	}

	if kind == timeType {
		parsed, ok := parseDate(value)
		if !ok {
			return keyTypeDate
		}
		setValue(field, reflect.ValueOf(parsed))

		return ""
	}

	decoded := reflect.New(field.Type())
	if err := json.Unmarshal(value, decoded.Interface()); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Type != nil {
			return kindKey(typeErr.Type, typeErr.Value)
		}

		return keyTypeInvalid
	}
	field.Set(decoded.Elem())

	return ""
}

// setValue assigns v to field, allocating when field is a pointer.
func setValue(field reflect.Value, v reflect.Value) {
	if field.Kind() != reflect.Pointer {
		field.Set(v)

		return
	}

	ptr := reflect.New(field.Type().Elem())
	ptr.Elem().Set(v)
	field.Set(ptr)
}

// parseDate accepts a JSON string holding an RFC 3339 timestamp or a calendar date.
func parseDate(value json.RawMessage) (time.Time, bool) {
	var text string
	if err := json.Unmarshal(value, &text); err != nil {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

func labelOf(field reflect.StructField) string {
	if label := field.Tag.Get(labelTag); label != "" {
		return label
	}
	if name := jsonName(field); name != "" {
		return name
	}

	return field.Name
}

// kindKey picks the type message for a value of JSON kind got that did not fit t.
// A fractional number offered to an integer field is worded differently.
func kindKey(t reflect.Type, got string) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if strings.HasPrefix(got, "number") {
			return keyTypeInteger
		}

		return keyTypeNumber
	case reflect.Float32, reflect.Float64:
		return keyTypeNumber
	case reflect.String:
		return keyTypeString
	}
	if t == timeType {
		return keyTypeDate
	}

	return keyTypeInvalid
}

func mustRegister(v *validator.Validate, trans ut.Translator, tag string, fn validator.TranslationFunc) {
	// Messages are already added above, so registration has nothing left to do
	noop := func(ut.Translator) error { return nil }
	if err := v.RegisterTranslation(tag, trans, noop, fn); err != nil {
		panic(err)
	}
}

func translateRequired(trans ut.Translator, fe validator.FieldError) string {
	message, err := trans.T(keyRequired, fe.Field())
	if err != nil {
		return fe.Error()
	}

	return message
}

// translateBound words min/max for strings ("cannot be empty" when the bound is 1) and numbers.
func translateBound(emptyKey, stringKey, numberKey string) validator.TranslationFunc {
	return func(trans ut.Translator, fe validator.FieldError) string {
		key := numberKey
		if fe.Kind() == reflect.String {
			key = stringKey
			if emptyKey != "" && fe.Param() == "1" {
				key = emptyKey
			}
		}

		message, err := trans.T(key, fe.Field(), fe.Param())
		if err != nil {
			return fe.Error()
		}

		return message
	}
}
