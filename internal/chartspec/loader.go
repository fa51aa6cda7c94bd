package chartspec

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Spec defaults, matching the option store defaults.
const (
	defaultWidth   = 640
	defaultHeight  = 400
	defaultPadding = 5
	defaultTheme   = "light"
)

// envPrefix scopes environment overrides, e.g. D3BY5_THEME=dark.
const envPrefix = "D3BY5"

// Load reads a chart spec file, applies defaults and environment
// overrides, and validates the result.
func Load(path string) (*Spec, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := v.ReadInConfig()
	if readErr != nil {
		return nil, fmt.Errorf("failed to read chart spec: %w", readErr)
	}

	var spec Spec

	unmarshalErr := v.Unmarshal(&spec)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal chart spec: %w", unmarshalErr)
	}

	validateErr := spec.validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid chart spec: %w", validateErr)
	}

	return &spec, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", defaultWidth)
	v.SetDefault("height", defaultHeight)
	v.SetDefault("padding", defaultPadding)
	v.SetDefault("theme", defaultTheme)
}
