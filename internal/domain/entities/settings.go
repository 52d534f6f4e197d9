package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/hashicorp/go-multierror"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFirstLabel   = "Node1"
	DefaultSecondLabel  = "Node2"
	DefaultReportOutput = "package_comparison_report.html"
	DefaultReportFormat = "html"
)

// Settings is the top-level configuration for pkgcompare.
type Settings struct {
	Nodes  NodeSettings   `yaml:"nodes"`
	Report ReportSettings `yaml:"report"`
}

// NodeSettings names the two compared nodes in reports.
type NodeSettings struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// ReportSettings controls where and how the report is written.
type ReportSettings struct {
	Output string `yaml:"output"`
	Format string `yaml:"format"` // "html", "table", "json"
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Nodes: NodeSettings{
			First:  DefaultFirstLabel,
			Second: DefaultSecondLabel,
		},
		Report: ReportSettings{
			Output: DefaultReportOutput,
			Format: DefaultReportFormat,
		},
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and filling unset values with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes YAML settings content.
func ParseSettings(data []byte) (*Settings, error) {
	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Nodes.First = expandEnv(settings.Nodes.First)
	settings.Nodes.Second = expandEnv(settings.Nodes.Second)
	settings.Report.Output = expandEnv(settings.Report.Output)
	settings.Report.Format = expandEnv(settings.Report.Format)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".pkgcompare.yaml",
		".pkgcompare.yml",
		"pkgcompare.yaml",
		"pkgcompare.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate reports every missing or conflicting value at once.
func (s *Settings) Validate() error {
	var result *multierror.Error

	if s.Nodes.First == "" {
		result = multierror.Append(result, errors.New("nodes.first must not be empty"))
	}
	if s.Nodes.Second == "" {
		result = multierror.Append(result, errors.New("nodes.second must not be empty"))
	}
	if s.Nodes.First != "" && s.Nodes.First == s.Nodes.Second {
		result = multierror.Append(result, fmt.Errorf("nodes.first and nodes.second are both %q", s.Nodes.First))
	}
	if s.Report.Output == "" {
		result = multierror.Append(result, errors.New("report.output must not be empty"))
	}
	if s.Report.Format == "" {
		result = multierror.Append(result, errors.New("report.format must not be empty"))
	}

	return result.ErrorOrNil()
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
