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

package sessionid

import (
	"regexp"
	"strings"
	"testing"
)

var idRe = regexp.MustCompile(`^[a-z]+-\d{8}-\d{6}-[0-9a-f]{8}$`)

func TestGenerate_DefaultPrefix(t *testing.T) {
	id := Generate("")
	if !strings.HasPrefix(id, "onboard-") {
		t.Errorf("expected prefix 'onboard-', got %q", id)
	}
}

func TestGenerate_CustomPrefix(t *testing.T) {
	id := Generate("headless")
	if !strings.HasPrefix(id, "headless-") {
		t.Errorf("expected prefix 'headless-', got %q", id)
	}
}

func TestGenerate_Format(t *testing.T) {
	id := Generate("onboard")
	// Expected format: onboard-YYYYMMDD-HHMMSS-XXXXXXXX
	if !idRe.MatchString(id) {
		t.Errorf("ID %q does not match expected format onboard-YYYYMMDD-HHMMSS-XXXXXXXX", id)
	}
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := Generate("onboard")
		if seen[id] {
			t.Fatalf("duplicate ID generated: %q (iteration %d)", id, i)
		}
		seen[id] = true
	}
}

func TestGenerate_HexSuffix(t *testing.T) {
	id := Generate("")
	suffix := id[len(id)-8:]
	if !regexp.MustCompile(`^[0-9a-f]{8}$`).MatchString(suffix) {
		t.Errorf("hex suffix %q is not 8 hex characters", suffix)
	}
}
