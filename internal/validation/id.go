package validation

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns an identifier made of a base36 timestamp and a random
// suffix. Consecutive calls never collide within a process.
func GenerateID() string {
	ts := strconv.FormatInt(now().UnixNano(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return ts + "-" + suffix
}
