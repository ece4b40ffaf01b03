package sessionid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Generate returns a fresh ID in the format PREFIX-YYYYMMDD-HHMMSS-XXXXXXXX.
// Every onboarding mount gets its own ID so one wizard run can be followed
// through the log file. An empty prefix defaults to "onboard".
func Generate(prefix string) string {
	if prefix == "" {
		prefix = "onboard"
	}
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("20060102-150405"), hex.EncodeToString(b))
}
