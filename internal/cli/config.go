package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/colfmt"
)

// fileConfig mirrors the flags that can be preset from a YAML file given
// with --config. Flags set explicitly on the command line win over file
// values.
type fileConfig struct {
	Delimiter *string `yaml:"delimiter"`
	Spacer    *string `yaml:"spacer"`
	Align     *string `yaml:"align"`
	Header    *bool   `yaml:"header"`
	NoSep     *bool   `yaml:"no-sep"`
	Columns   *bool   `yaml:"columns"`
}

func applyConfig(cmd *cobra.Command, opts *rootOptions) error {
	data, err := os.ReadFile(opts.Config)
	if err != nil {
		return err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", colfmt.ErrConfig, opts.Config, err)
	}

	flags := cmd.Flags()
	if cfg.Delimiter != nil && !flags.Changed("delimiter") {
		opts.Delimiter = *cfg.Delimiter
	}
	if cfg.Spacer != nil && !flags.Changed("spacer") {
		opts.Spacer = *cfg.Spacer
	}
	if cfg.Align != nil && !flags.Changed("align") {
		opts.Align = *cfg.Align
	}
	if cfg.Header != nil && !flags.Changed("header") {
		opts.Header = *cfg.Header
	}
	if cfg.NoSep != nil && !flags.Changed("no-sep") {
		opts.NoSep = *cfg.NoSep
	}
	if cfg.Columns != nil && !flags.Changed("columns") {
		opts.Columns = *cfg.Columns
	}
	return nil
}
