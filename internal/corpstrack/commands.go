/*
 * Copyright (c) 2026. AXIOM STUDIO AI Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package corpstrack

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"corpstrack/onboarding"
	"corpstrack/sessionid"
)

// Errors returned for flag values that are not in the option catalog.
var (
	ErrUnknownStage = errors.New("unknown stage")
	ErrUnknownState = errors.New("unknown state")
	ErrUnknownBatch = errors.New("unknown batch")
)

// initSubcommands registers all CLI subcommands on the root command.
func initSubcommands(root *cobra.Command) {
	root.AddCommand(onboardCmd())
	root.AddCommand(catalogCmd())
	root.AddCommand(configCmd())
}

// --- onboard ---

// headlessProfile carries the raw flag values of the onboard subcommand.
type headlessProfile struct {
	Stage string
	State string
	Batch string
}

func onboardCmd() *cobra.Command {
	var in headlessProfile
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Run onboarding without the TUI",
		Example: `  corpstrack onboard --stage camp --state Lagos --batch "2024 Batch A"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if delay <= 0 {
				delay = cfg.FinishDelay()
			}
			logger := newLogger(cfg)
			defer logger.Close()

			return runHeadless(cmd, in, delay, logger)
		},
	}
	cmd.Flags().StringVar(&in.Stage, "stage", "", "Stage ID or label (see: corpstrack catalog stages)")
	cmd.Flags().StringVar(&in.State, "state", "", "Deployment state (see: corpstrack catalog states)")
	cmd.Flags().StringVar(&in.Batch, "batch", "", "Batch (see: corpstrack catalog batches)")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Finishing delay (default from config)")
	_ = cmd.MarkFlagRequired("stage")
	_ = cmd.MarkFlagRequired("state")
	_ = cmd.MarkFlagRequired("batch")
	return cmd
}

// runHeadless drives a session through the same guarded transitions as the
// TUI, then waits for the finishing delay before handing off.
func runHeadless(cmd *cobra.Command, in headlessProfile, delay time.Duration, logger *Logger) error {
	out := cmd.OutOrStdout()

	stage, err := parseStage(in.Stage)
	if err != nil {
		return err
	}
	state, err := parseState(in.State)
	if err != nil {
		return err
	}
	batch, err := parseBatch(in.Batch)
	if err != nil {
		return err
	}

	id := sessionid.Generate("headless")
	logger.Info("headless onboarding started (wizard=%s)", id)

	s := onboarding.NewSession()
	s.SelectStage(stage)
	s.Next()
	s.SelectState(state)
	s.Next()
	s.SelectBatch(batch)
	if !s.Complete() {
		// Unreachable with catalog values.
		return fmt.Errorf("onboarding did not complete at step %d", s.Step())
	}

	label, _ := onboarding.LookupStage(stage)
	fmt.Fprintf(out, "Stage:  %s\n", label.Label)
	fmt.Fprintf(out, "State:  %s\n", state)
	fmt.Fprintf(out, "Batch:  %s\n", batch)
	fmt.Fprintln(out, "Setting up your profile...")

	h := onboarding.NewHandoff(onboarding.NavigatorFunc(func() {
		logger.Info("handoff fired (wizard=%s)", id)
		fmt.Fprintln(out, "Proceeding to main application.")
	}), delay)
	if err := h.Wait(cmd.Context()); err != nil {
		logger.Warn("headless onboarding interrupted (wizard=%s): %v", id, err)
		return fmt.Errorf("onboarding interrupted: %w", err)
	}
	return nil
}

// parseStage accepts a stage ID or label, case-insensitively.
func parseStage(v string) (onboarding.StageID, error) {
	v = strings.TrimSpace(v)
	for _, s := range onboarding.Stages() {
		if strings.EqualFold(v, string(s.ID)) || strings.EqualFold(v, s.Label) {
			return s.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStage, v)
}

// parseState accepts a catalog state, case-insensitively.
func parseState(v string) (onboarding.State, error) {
	v = strings.TrimSpace(v)
	for _, s := range onboarding.States() {
		if strings.EqualFold(v, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownState, v)
}

// parseBatch accepts a catalog batch, case-insensitively.
func parseBatch(v string) (onboarding.Batch, error) {
	v = strings.TrimSpace(v)
	for _, b := range onboarding.Batches() {
		if strings.EqualFold(v, string(b)) {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBatch, v)
}

// --- catalog ---

func catalogCmd() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:       "catalog <stages|states|batches>",
		Short:     "List onboarding options",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"stages", "states", "batches"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCatalog(cmd.OutOrStdout(), args[0], filter)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Case-insensitive substring filter")
	return cmd
}

func printCatalog(w io.Writer, kind, query string) error {
	switch kind {
	case "stages":
		stages := onboarding.Stages()
		labels := make([]string, len(stages))
		byLabel := make(map[string]onboarding.Stage, len(stages))
		for i, s := range stages {
			labels[i] = s.Label
			byLabel[s.Label] = s
		}
		for _, l := range onboarding.Filter(query, labels) {
			s := byLabel[l]
			fmt.Fprintf(w, "%-14s %-26s %s\n", s.ID, s.Label, s.Description)
		}
	case "states":
		for _, s := range onboarding.Filter(query, onboarding.States()) {
			fmt.Fprintln(w, s)
		}
	case "batches":
		for _, b := range onboarding.Filter(query, onboarding.Batches()) {
			fmt.Fprintln(w, b)
		}
	default:
		return fmt.Errorf("unknown catalog %q (want stages, states or batches)", kind)
	}
	return nil
}

// --- config ---

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialise the config file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file if none exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flagConfigPath
			if path == "" {
				path = ConfigPath()
			}
			return initConfigFile(cmd.OutOrStdout(), path)
		},
	})
	return cmd
}

func initConfigFile(w io.Writer, path string) error {
	if ConfigFileExists(path) {
		fmt.Fprintf(w, "Config already exists at %s\n", path)
		return nil
	}
	if err := SaveConfig(DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintf(w, "Config written to %s\n", path)
	return nil
}
