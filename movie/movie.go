package movie

import "fmt"

// errorField is the key the provider sets instead of metadata when a lookup fails.
const errorField = "Error"

// Record is the provider's metadata for one title. It has no fixed schema
// and is handed to the view as is.
type Record map[string]any

// ProviderError reports whether the provider answered with an error and
// returns its text. A present key is an error even when its value is empty.
func (r Record) ProviderError() (string, bool) {
	v, ok := r[errorField]
	if !ok {
		return "", false
	}
	switch msg := v.(type) {
	case string:
		return msg, true
	case nil:
		return "", true
	default:
		return fmt.Sprint(msg), true
	}
}
