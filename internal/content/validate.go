package content

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/safebite/internal/domain"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

func init() {
	// Report fields by their JSON names so errors read like the content keys.
	validatorInstance.RegisterTagNameFunc(func(f reflect.StructField) string {
		return jsonName(f)
	})
}

// Validate runs the struct-tag checks on a single locale tree.
func (c *LocaleContent) Validate() error {
	if err := validatorInstance.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}
	return nil
}

// CompareShape reports the first field whose presence differs between two
// locale trees. Strings must be empty or non-empty in both, lists must be
// empty or non-empty in both. List lengths may differ.
func CompareShape(ref, other *LocaleContent) error {
	if ref == nil || other == nil {
		return fmt.Errorf("%w: nil locale tree", domain.ErrShapeMismatch)
	}
	return compareValue("", reflect.ValueOf(*ref), reflect.ValueOf(*other))
}

func compareValue(path string, ref, other reflect.Value) error {
	switch ref.Kind() {
	case reflect.Struct:
		t := ref.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if err := compareValue(joinPath(path, jsonName(field)), ref.Field(i), other.Field(i)); err != nil {
				return err
			}
		}
	case reflect.String, reflect.Slice:
		if (ref.Len() == 0) != (other.Len() == 0) {
			return fmt.Errorf("%w: %s", domain.ErrShapeMismatch, path)
		}
	}
	return nil
}

// Sections returns the top-level keys of LocaleContent in render order.
func Sections() []string {
	t := reflect.TypeOf(LocaleContent{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, jsonName(t.Field(i)))
	}
	return keys
}

// Keys returns the top-level keys that carry content in c, in render order.
func Keys(c *LocaleContent) []string {
	v := reflect.ValueOf(*c)
	t := v.Type()
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if !v.Field(i).IsZero() {
			keys = append(keys, jsonName(t.Field(i)))
		}
	}
	return keys
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
