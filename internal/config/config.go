package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config file names looked up in the project root.
const (
	YAMLFile = ".luadoc.yaml"
	TOMLFile = "luadoc.toml"
)

// OutputConfig controls where and how the document is written.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format" validate:"oneof=json yaml msgpack"`
	Path   string `yaml:"path" toml:"path" validate:"required"`
}

// LogConfig controls the logger built by the CLI.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" toml:"format" validate:"oneof=text json"`
}

// Config is the merged result of the defaults and the project's config file.
type Config struct {
	// Include and Exclude are globs relative to the project root. `**`
	// matches any number of directories.
	Include []string `yaml:"include" toml:"include" validate:"min=1,dive,required"`
	Exclude []string `yaml:"exclude" toml:"exclude" validate:"dive,required"`
	// Within is the scope given to functions and types that neither carry
	// a @within tag nor are declared inside a table.
	Within string `yaml:"within" toml:"within"`
	// Workers bounds the number of files read in parallel. Zero means one
	// per CPU.
	Workers int          `yaml:"workers" toml:"workers" validate:"gte=0,lte=256"`
	Output  OutputConfig `yaml:"output" toml:"output"`
	Log     LogConfig    `yaml:"log" toml:"log"`

	// File is the config file that was read, empty when only defaults apply.
	File string `yaml:"-" toml:"-"`
}

// Default returns the configuration used when a project has no config file.
func Default() *Config {
	return &Config{
		Include: []string{"**/*.lua", "**/*.luau"},
		Exclude: []string{},
		Output: OutputConfig{
			Format: "json",
			Path:   "docs.json",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads .luadoc.yaml or luadoc.toml from projectPath over the defaults.
// A missing file is not an error; having both is.
func Load(projectPath string) (*Config, error) {
	cfg := Default()

	yamlPath := filepath.Join(projectPath, YAMLFile)
	tomlPath := filepath.Join(projectPath, TOMLFile)

	yamlData, yamlErr := readOptional(yamlPath)
	if yamlErr != nil {
		return nil, yamlErr
	}
	tomlData, tomlErr := readOptional(tomlPath)
	if tomlErr != nil {
		return nil, tomlErr
	}

	switch {
	case yamlData != nil && tomlData != nil:
		return nil, fmt.Errorf("found both %s and %s in %s, keep only one", YAMLFile, TOMLFile, projectPath)
	case yamlData != nil:
		if err := yaml.Unmarshal(yamlData, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", yamlPath, err)
		}
		cfg.File = yamlPath
	case tomlData != nil:
		if _, err := toml.Decode(string(tomlData), cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", tomlPath, err)
		}
		cfg.File = tomlPath
	}

	if err := cfg.Validate(); err != nil {
		if cfg.File != "" {
			return nil, fmt.Errorf("%s: %w", cfg.File, err)
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks the field constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}

	problems := make([]error, 0, len(invalid))
	for _, fe := range invalid {
		problems = append(problems, fmt.Errorf("invalid %s: %q does not satisfy %s", fe.Namespace(), fmt.Sprint(fe.Value()), constraint(fe)))
	}
	return errors.Join(problems...)
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

func readOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
