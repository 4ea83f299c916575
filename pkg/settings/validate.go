package settings

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// ValidationError lists the invalid settings keyed by storage name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "settings: invalid settings"
	}
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+" "+e.Fields[key])
	}
	return "settings: invalid " + strings.Join(parts, "; ")
}

// Validate checks s the way a settings form would before saving. Rendering
// never requires valid settings; Build falls back to defaults instead.
func Validate(s Settings) error {
	fields := make(map[string]string)

	if err := validatorInstance().Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("settings: validate: %w", err)
		}
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}

	if s.IncludeStaticMap {
		if _, exists := fields["iframe_width"]; !exists && mapdisplay.PixelSize(s.IframeWidth) == 0 {
			fields["iframe_width"] = "must be a pixel size when the static map is included"
		}
		if _, exists := fields["iframe_height"]; !exists && mapdisplay.PixelSize(s.IframeHeight) == 0 {
			fields["iframe_height"] = "must be a pixel size when the static map is included"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "max":
		return fmt.Sprintf("must be between %d and %d", mapdisplay.MinZoomLevel, mapdisplay.MaxZoomLevel)
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "langcode":
		return fmt.Sprintf("must be a language code or %q", mapdisplay.FollowContentSentinel)
	default:
		return "failed " + fe.Tag()
	}
}

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("langcode", validateLangcode)
		validate = v
	})
	return validate
}

func validateLangcode(fl validator.FieldLevel) bool {
	code := strings.TrimSpace(fl.Field().String())
	if code == "" || code == mapdisplay.FollowContentSentinel {
		return true
	}
	_, err := language.Parse(code)
	return err == nil
}
