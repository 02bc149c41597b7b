package utils

import (
	"errors"
	"fmt"
	"medbook-service/internal/pkg/constvars"
	"mime/multipart"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate *validator.Validate

var (
	hasSpecialChar   = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>\-_]`)
	hasUppercaseChar = regexp.MustCompile(`[A-Z]`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("hhmm", validateClock)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	return len(password) >= 8 && hasSpecialChar.MatchString(password) && hasUppercaseChar.MatchString(password)
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayout, fl.Field().String())
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := ParseClock(fl.Field().String())
	return err == nil
}

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	_, err := uuid.Parse(param)
	return err
}

// ValidateImageFile checks extension and size of an uploaded image and
// returns its normalised extension.
func ValidateImageFile(fileHeader *multipart.FileHeader, allowedFormats []string, maxSizeInMB int64) (string, error) {
	if fileHeader == nil {
		return "", errors.New("file is required")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if err := ValidateImageFormat(ext, allowedFormats); err != nil {
		return "", err
	}
	if err := ValidateImageSize(fileHeader.Size, maxSizeInMB); err != nil {
		return "", err
	}
	return ext, nil
}

func ValidateImageFormat(ext string, allowedFormats []string) error {
	for _, format := range allowedFormats {
		if ext == format {
			return nil
		}
	}
	return fmt.Errorf("invalid image format. Allowed formats are: %s", strings.Join(allowedFormats, ", "))
}

func ValidateImageContentType(contentType string, allowedContentTypes []string) error {
	for _, allowed := range allowedContentTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("file content %q is not an allowed image. Allowed types are: %s", contentType, strings.Join(allowedContentTypes, ", "))
}

func ValidateImageSize(size int64, maxSizeInMB int64) error {
	if size > maxSizeInMB*1024*1024 {
		return fmt.Errorf("image exceeds maximum allowed size of %dMB", maxSizeInMB)
	}
	return nil
}
