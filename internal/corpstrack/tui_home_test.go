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
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpstrack/onboarding"
)

func TestHomeModel_View(t *testing.T) {
	sel := onboarding.Selection{
		Stage: onboarding.StageCamp,
		State: "FCT (Abuja)",
		Batch: "2025 Batch B",
	}
	h := NewHomeModel(sel, newStyles(ThemeConfig{}), defaultKeyMap()).resize(80)
	assert.Equal(t, sel, h.Selection())

	view := ansi.Strip(h.View())
	assert.Contains(t, view, "FCT (Abuja)")
	assert.Contains(t, view, "2025 Batch B")
	assert.Contains(t, view, "✓ Prospective Corps Member")
	assert.Contains(t, view, "✓ Registration")
	assert.Contains(t, view, "● Orientation Camp")
	assert.Contains(t, view, "○ Passed Out")
}

func TestHomeModel_RestartKey(t *testing.T) {
	h := NewHomeModel(onboarding.Selection{}, newStyles(ThemeConfig{}), defaultKeyMap())

	_, cmd := h.Update(keyPress("j"))
	assert.Nil(t, cmd)

	_, cmd = h.Update(keyPress("r"))
	require.NotNil(t, cmd)
	assert.IsType(t, restartOnboardingMsg{}, cmd())
}
