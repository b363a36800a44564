package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks value ranges and enumerations.
func Validate(cfg Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return fmt.Errorf("invalid config: %s = %v fails %s", settingName(fe), fe.Value(), constraint(fe))
	}
	return fmt.Errorf("invalid config: %w", err)
}

var settingNames = map[string]string{
	"Config.LogLevel":               "log_level",
	"Config.StartPanel":             "start_panel",
	"Config.DragSettle":             "drag_settle_ms",
	"Config.FrameRate":              "frame_rate",
	"Config.Globe.RotationPerFrame": "globe.rotation_per_frame",
	"Config.Globe.MaxSize":          "globe.max_size",
}

func settingName(fe validator.FieldError) string {
	if name, ok := settingNames[fe.StructNamespace()]; ok {
		return name
	}
	return strings.ToLower(fe.Field())
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
