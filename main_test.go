package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Eatkin/reddit-cli/internal/app"
	"github.com/Eatkin/reddit-cli/internal/config"
	"github.com/Eatkin/reddit-cli/internal/logging"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Checks) != 3 {
		t.Fatalf("expected 3 tty check entries, got %d", len(info.Checks))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Checks[i].Name != name {
			t.Fatalf("expected check %d name %q, got %q", i, name, info.Checks[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			ConfigPath:  "config.yaml",
			Width:       80,
			Height:      24,
			Diagnostics: []string{"feed 3: missing url"},
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"config": "config.yaml",
			"width":  "80",
			"height": "24",
			"theme":  "dracula",
		},
		Args: []string{"--config", "config.yaml"},
	}

	logPath := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(logPath)
	t.Cleanup(func() { logging.SetLogger(nil) })

	payload := startupTracePayload(cfg)
	if payload["logPath"] != logPath {
		t.Fatalf("expected active log path in payload, got %v", payload["logPath"])
	}

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["config"] != "config.yaml" {
		t.Fatalf("expected config flag, got %v", flagsValue["config"])
	}
	if flagsValue["width"] != "80" || flagsValue["height"] != "24" {
		t.Fatalf("expected size flags, got %v", flagsValue)
	}
	if flagsValue["theme"] != "dracula" {
		t.Fatalf("expected theme flag, got %v", flagsValue["theme"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["configPath"] != "config.yaml" {
		t.Fatalf("expected config path in payload, got %v", payload["configPath"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
}

func TestRootCommandMissingConfigExitsWithCodeTwo(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	cmd := newRootCommand(nil)
	cmd.SetArgs([]string{"--config", missing})
	err := cmd.Execute()
	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.code != 2 {
		t.Fatalf("expected exit code 2, got %d", exitErr.code)
	}
	var cfgErr *config.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected wrapped ConfigError, got %v", err)
	}
}

func TestRootCommandRejectsPositionalArgs(t *testing.T) {
	cmd := newRootCommand(nil)
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected positional arguments to be rejected")
	}
}
