package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Default returns the embedded site.
func Default() (Site, error) {
	return Parse(defaultSite)
}

// Load reads a site document from path. An empty path yields the embedded site.
func Load(path string) (Site, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Site{}, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Site{}, fmt.Errorf("read content: %w", err)
	}
	site, err := Parse(data)
	if err != nil {
		return Site{}, fmt.Errorf("%s: %w", resolved, err)
	}
	return site, nil
}

// Parse decodes and validates a YAML site document.
func Parse(data []byte) (Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("parse content: %w", err)
	}
	if err := Validate(site); err != nil {
		return Site{}, err
	}
	return site, nil
}

// Validate checks the structural rules of a site: required text, positive
// unique image ids, URI sources and non-empty categories.
func Validate(site Site) error {
	err := validatorInstance().Struct(site)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return fmt.Errorf("invalid content: %s failed %q", fieldPath(fe), fe.Tag())
	}
	return fmt.Errorf("invalid content: %w", err)
}

// fieldPath turns "Site.Gallery.Images[2].Source" into "gallery.images[2].source".
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
