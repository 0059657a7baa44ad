package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"frontdesk/shared/base64"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const (
	megabyte = 1 << 20

	// documentTag accepts a stored http(s) document url or an inline png, jpeg or pdf
	// data URL of at most 5MB.
	documentTag = "http_url|mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"
)

var (
	validate = newValidate()

	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 -]{5,18}[0-9]$`)
)

type validity interface {
	Valid() bool
}

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == constant.Empty {
			return field.Name
		}

		return name
	})

	custom := map[string]val.Func{
		"valid":       isValid,
		"phone":       isPhone,
		"mimetypes":   hasMimetype,
		"maxfilesize": withinFileSize,
	}

	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %q validation: %v", tag, err))
		}
	}

	v.RegisterAlias("document", documentTag)

	return v
}

// isValid accepts values whose type reports its own validity, such as enumerated
// statuses.
func isValid(field val.FieldLevel) bool {
	if !field.Field().CanInterface() {
		return false
	}

	v, ok := field.Field().Interface().(validity)

	return ok && v.Valid()
}

func isPhone(field val.FieldLevel) bool {
	return phonePattern.MatchString(field.Field().String())
}

// hasMimetype checks an uploaded file header or a base64 data URL against a space
// separated list of content types.
func hasMimetype(field val.FieldLevel) bool {
	var contentType string

	switch v := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = v.Header.Get(constant.RequestHeaderContentType)
	case string:
		contentType = base64.GetContentType(v)
	}

	if contentType == constant.Empty {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

// withinFileSize limits an upload to the parameter in megabytes. Strings are measured
// by their encoded length.
func withinFileSize(field val.FieldLevel) bool {
	limit, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	var size int64

	switch v := field.Field().Interface().(type) {
	case multipart.FileHeader:
		size = v.Size
	case string:
		size = int64(len(v))
	}

	return float64(size) <= limit*megabyte
}

// Validate decodes a JSON body into data and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	return asBadRequest(validate.Struct(data))
}

func ValidateVar(field any, tag string) error {
	return asBadRequest(validate.Var(field, tag))
}

func asBadRequest(err error) error {
	if err == nil {
		return nil
	}

	return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
}
