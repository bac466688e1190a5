// Package iotemplates loads LaTeX template overrides from YAML.
package iotemplates

import (
	"os"

	"github.com/gnames/gnsyn/pkg/render"
	"gopkg.in/yaml.v3"
)

// Load returns default templates overridden by values from a YAML file.
// Keys missing in the file keep their defaults. Placeholders of all
// templates are validated. An empty path returns the defaults.
func Load(path string) (render.Templates, error) {
	res := render.Default()
	if path == "" {
		return res, nil
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		return res, ReadFileError(path, err)
	}

	if err = yaml.Unmarshal(bs, &res); err != nil {
		return res, DecodeError(path, err)
	}

	if err = res.Validate(); err != nil {
		return res, err
	}
	return res, nil
}

// Marshal returns templates as YAML. The result can be edited and loaded
// back with Load.
func Marshal(t render.Templates) ([]byte, error) {
	return yaml.Marshal(t)
}
