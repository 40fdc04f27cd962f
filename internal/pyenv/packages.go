package pyenv

import (
	"encoding/json"
	"fmt"
)

// Package is one installed distribution as reported by pip.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ParsePackageList decodes `pip list --format json` output.
func ParsePackageList(data []byte) ([]Package, error) {
	var packages []Package
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("parsing pip package list: %w", err)
	}
	return packages, nil
}
