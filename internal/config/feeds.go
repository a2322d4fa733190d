package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Eatkin/reddit-cli/internal/feed"
	"github.com/Eatkin/reddit-cli/internal/logging"
	"github.com/Eatkin/reddit-cli/internal/logging/events"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	appDirName       = "reddit-cli"
	configFileName   = "config.yaml"
	sampleConfigName = "config.sample.yaml"
)

// ErrNoConfig is wrapped by ConfigError when no candidate file exists.
var ErrNoConfig = errors.New("no config file found")

// File is the on-disk YAML shape.
type File struct {
	Theme string      `yaml:"theme"`
	Feeds []feed.Feed `yaml:"feeds"`
}

// ConfigError reports a missing or malformed config file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Diagnostic describes a feed entry that was skipped.
type Diagnostic struct {
	Index   int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("feed %d: %s", d.Index+1, d.Message)
}

// ResolvePath picks the first existing config file: explicit, then the XDG
// config dir, then config.yaml and config.sample.yaml in the working dir.
func ResolvePath(explicit string, env map[string]string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", &ConfigError{Path: explicit, Err: err}
		}
		return explicit, nil
	}
	for _, candidate := range candidatePaths(env) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", &ConfigError{Err: ErrNoConfig}
}

func candidatePaths(env map[string]string) []string {
	paths := make([]string, 0, 3)
	if dir := env["XDG_CONFIG_HOME"]; dir != "" {
		paths = append(paths, filepath.Join(dir, appDirName, configFileName))
	} else if home := env["HOME"]; home != "" {
		paths = append(paths, filepath.Join(home, ".config", appDirName, configFileName))
	}
	return append(paths, configFileName, sampleConfigName)
}

// LoadFile reads and normalises the config file at path.
func LoadFile(path string) (File, []Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, nil, &ConfigError{Path: path, Err: err}
	}
	file, diags, err := Parse(data)
	if err != nil {
		return File{}, nil, &ConfigError{Path: path, Err: err}
	}
	for _, d := range diags {
		events.Config.Diagnostic(path, d.Index, d.Message)
		logging.Warn("feed skipped", zap.String("path", path), zap.Int("index", d.Index), zap.String("reason", d.Message))
	}
	return file, diags, nil
}

// Parse decodes YAML and keeps only usable feeds. RSS URLs are rewritten to
// their JSON listing so pagination works.
func Parse(data []byte) (File, []Diagnostic, error) {
	var raw File
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return File{}, nil, fmt.Errorf("parse yaml: %w", err)
	}
	out := File{Theme: strings.TrimSpace(raw.Theme)}
	var diags []Diagnostic
	for i, entry := range raw.Feeds {
		url := strings.TrimSpace(entry.URL)
		if url == "" {
			diags = append(diags, Diagnostic{Index: i, Message: "missing url"})
			continue
		}
		url = strings.ReplaceAll(url, ".rss", ".json")
		if !strings.Contains(url, ".json") {
			diags = append(diags, Diagnostic{Index: i, Message: fmt.Sprintf("not a recognised rss/json feed: %s", url)})
			continue
		}
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			name = url
		}
		out.Feeds = append(out.Feeds, feed.Feed{Name: name, URL: url})
	}
	return out, diags, nil
}
