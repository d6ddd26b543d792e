// Package output serializes build results.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"github.com/zeebo/xxh3"
)

// ToJSON serializes a spec.
func ToJSON(spec *models.Spec, pretty bool) ([]byte, error) {
	return marshal(spec, pretty)
}

// ModelToJSON serializes an intermediate model. The dataset is omitted.
func ModelToJSON(m *models.Model, pretty bool) ([]byte, error) {
	return marshal(m, pretty)
}

// Fingerprint returns the xxh3 hash of the spec's compact JSON form. Equal
// specs have equal fingerprints.
func Fingerprint(spec *models.Spec) (uint64, error) {
	data, err := json.Marshal(spec)
	if err != nil {
		return 0, fmt.Errorf("fingerprint: %w", err)
	}
	return xxh3.Hash(data), nil
}

// FormatFingerprint renders a fingerprint as fixed-width hex.
func FormatFingerprint(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
