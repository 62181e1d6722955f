package validation

import (
	"reflect"
	"strings"
)

// jsonName reports fields by their JSON key so clients see the same names
// they sent.
func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
