package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is looked up in the working directory when no path is given.
const FileName = "pulstruct.yml"

type Config struct {
	// Output is the directory generated files are written to. Empty means
	// next to each input file.
	Output string `yaml:"output"`
	// Suffix replaces the extension of expanded files.
	Suffix  string  `yaml:"suffix"`
	Jobs    int     `yaml:"jobs"`
	Log     Log     `yaml:"log"`
	Tracing Tracing `yaml:"tracing"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Tracing struct {
	// Exporter is one of none, stdout or otlp.
	Exporter string `yaml:"exporter"`
	Endpoint string `yaml:"endpoint"`
	Service  string `yaml:"service"`
}

func Default() *Config {
	return &Config{
		Suffix: "_pulstruct.rs",
		Jobs:   4,
		Log:    Log{Level: "info"},
		Tracing: Tracing{
			Exporter: "none",
			Endpoint: "localhost:4318",
			Service:  "pulstructgen",
		},
	}
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error when path is empty.
func Load(path string) (*Config, error) {
	config := Default()

	explicit := path != ""
	if !explicit {
		path = FileName
	}

	bytes, err := os.ReadFile(filepath.Clean(path))
	if os.IsNotExist(err) && !explicit {
		return config, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	if err := yaml.Unmarshal(Template(bytes), config); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}
	return config, nil
}

var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

// Template replaces `{{ env.NAME || fallback }}` with the first non-empty
// alternative. Alternatives other than env lookups are used literally.
func Template(bytes []byte) []byte {
	return templateRegex.ReplaceAllFunc(bytes, func(match []byte) []byte {
		content := strings.TrimSpace(string(match[2 : len(match)-2]))
		for _, part := range strings.Split(content, "||") {
			part = strings.TrimSpace(part)
			if key, ok := strings.CutPrefix(part, "env."); ok {
				if value := os.Getenv(key); value != "" {
					return []byte(value)
				}
				continue
			}
			if part != "" {
				return []byte(part)
			}
		}
		return []byte("")
	})
}
