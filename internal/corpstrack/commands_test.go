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
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpstrack/onboarding"
)

func TestParseStage(t *testing.T) {
	tests := []struct {
		in   string
		want onboarding.StageID
	}{
		{"camp", onboarding.StageCamp},
		{"CDS", onboarding.StageCDS},
		{"Orientation Camp", onboarding.StageCamp},
		{"  passed out ", onboarding.StageCompleted},
	}
	for _, tt := range tests {
		got, err := parseStage(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseStage("bootcamp")
	assert.ErrorIs(t, err, ErrUnknownStage)
	assert.Contains(t, err.Error(), "bootcamp")
}

func TestParseState(t *testing.T) {
	got, err := parseState("lagos")
	require.NoError(t, err)
	assert.Equal(t, onboarding.State("Lagos"), got)

	got, err = parseState("fct (abuja)")
	require.NoError(t, err)
	assert.Equal(t, onboarding.State("FCT (Abuja)"), got)

	got, err = parseState("not yet assigned")
	require.NoError(t, err)
	assert.Equal(t, onboarding.StateUnassigned, got)

	_, err = parseState("Abuja")
	assert.True(t, errors.Is(err, ErrUnknownState))
}

func TestParseBatch(t *testing.T) {
	got, err := parseBatch("2024 batch a")
	require.NoError(t, err)
	assert.Equal(t, onboarding.Batch("2024 Batch A"), got)

	_, err = parseBatch("2019 Batch A")
	assert.ErrorIs(t, err, ErrUnknownBatch)
}

func TestPrintCatalog(t *testing.T) {
	t.Run("states filtered", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printCatalog(&buf, "states", "abuja"))
		assert.Equal(t, "FCT (Abuja)\n", buf.String())
	})

	t.Run("states unfiltered", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printCatalog(&buf, "states", ""))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, len(onboarding.States()))
		assert.Equal(t, "Abia", lines[0])
		assert.Equal(t, "Not yet assigned", lines[len(lines)-1])
	})

	t.Run("stages filter on label", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printCatalog(&buf, "stages", "camp"))
		out := buf.String()
		assert.Equal(t, 1, strings.Count(out, "\n"))
		assert.True(t, strings.HasPrefix(out, "camp "))
		assert.Contains(t, out, "Orientation Camp")
	})

	t.Run("batches", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printCatalog(&buf, "batches", "2025"))
		assert.Equal(t, "2025 Batch A\n2025 Batch B\n2025 Batch C\n", buf.String())
	})

	t.Run("no matches", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printCatalog(&buf, "states", "zzz"))
		assert.Empty(t, buf.String())
	})

	t.Run("unknown kind", func(t *testing.T) {
		var buf bytes.Buffer
		err := printCatalog(&buf, "lgas", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "lgas")
	})
}

func newTestCommand(ctx context.Context) (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(ctx)
	return cmd, &buf
}

func TestRunHeadless(t *testing.T) {
	cmd, buf := newTestCommand(context.Background())
	in := headlessProfile{Stage: "camp", State: "lagos", Batch: "2024 Batch A"}

	err := runHeadless(cmd, in, testDelay, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Stage:  Orientation Camp\n")
	assert.Contains(t, out, "State:  Lagos\n")
	assert.Contains(t, out, "Batch:  2024 Batch A\n")
	assert.Equal(t, 1, strings.Count(out, "Proceeding to main application."))
	assert.Less(t, strings.Index(out, "Setting up your profile..."), strings.Index(out, "Proceeding"))
}

func TestRunHeadless_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd, buf := newTestCommand(ctx)
	in := headlessProfile{Stage: "cds", State: "Kano", Batch: "Not yet assigned"}

	err := runHeadless(cmd, in, testDelay, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, buf.String(), "Proceeding")
}

func TestRunHeadless_InvalidInput(t *testing.T) {
	cmd, buf := newTestCommand(context.Background())

	err := runHeadless(cmd, headlessProfile{Stage: "camp", State: "Atlantis", Batch: "2024 Batch A"}, testDelay, nil)
	assert.ErrorIs(t, err, ErrUnknownState)
	assert.Empty(t, buf.String(), "nothing printed before validation succeeds")
}

func TestInitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	var buf bytes.Buffer
	require.NoError(t, initConfigFile(&buf, path))
	assert.Contains(t, buf.String(), "Config written to")
	assert.True(t, ConfigFileExists(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().FinishDelayMS, cfg.FinishDelayMS)

	buf.Reset()
	require.NoError(t, initConfigFile(&buf, path))
	assert.Contains(t, buf.String(), "Config already exists")
}
