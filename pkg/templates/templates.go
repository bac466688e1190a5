// Package templates keeps files embedded into the gnsyn binary.
package templates

import _ "embed"

// ConfigYAML is the documented default config.yaml. It is copied to
// the config directory on the first run.
//
//go:embed config.yaml
var ConfigYAML string
