package cmd

import (
	"fmt"
	"io"

	"tracelog/config"
	"tracelog/session"
	"tracelog/store"

	"gopkg.in/yaml.v3"
)

// ShowSettings loads application settings and prints the effective YAML to stdout.
func ShowSettings(cli *CLI) error {
	// Use shared loader without validation. It errors only when a custom --config is invalid.
	cfg, err := config.LoadConfigNoValidate(cli.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	cli.applyPaths(cfg)

	return writeEffectiveConfigYAML(stdout, cfg)
}

// writeEffectiveConfigYAML writes cfg as YAML with unset paths replaced by
// the locations actually in use.
func writeEffectiveConfigYAML(w io.Writer, cfg *config.Config) error {
	safe := struct {
		TraceFile    string `yaml:"trace_file"`
		ASCII        bool   `yaml:"ascii"`
		DatabasePath string `yaml:"database_path"`
		SessionPath  string `yaml:"session_path"`
		Follow       struct {
			Color        bool   `yaml:"color"`
			PollInterval string `yaml:"poll_interval"`
		} `yaml:"follow"`
	}{
		TraceFile:    orDefault(cfg.TraceFile, "(stderr)"),
		ASCII:        cfg.ASCII,
		DatabasePath: store.Path(),
		SessionPath:  session.Path(),
	}
	safe.Follow.Color = cfg.Follow.Color
	safe.Follow.PollInterval = cfg.Follow.PollInterval.String()

	b, err := yaml.Marshal(&safe)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(b)
	return err
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
