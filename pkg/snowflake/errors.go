package snowflake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/snowflakedb/gosnowflake"
)

// Snowflake error numbers for missing or unauthorized objects.
// 2003 is the compilation error "does not exist or not authorized";
// 2043 is "Object does not exist, or operation cannot be performed".
const (
	errNumObjectNotExistOrAuthorized = 2003
	errNumObjectNotExist             = 2043
)

// ConfigError reports an invalid profile or model configuration value.
// It is surfaced to the user at the point of use and never retried.
type ConfigError struct {
	Setting string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %q: %s", e.Setting, e.Reason)
}

// isObjectNotExist reports whether err is Snowflake telling us a
// referenced object (schema, table, view) is missing or invisible to
// the session's role. The driver's structured error number is checked
// first; the message-substring fallback covers surfaces that flatten
// the error to text before it reaches us. The substring match is a
// known fragility inherited from the warehouse's error reporting, kept
// only as a fallback.
func isObjectNotExist(err error) bool {
	var sfErr *gosnowflake.SnowflakeError
	if errors.As(err, &sfErr) {
		return sfErr.Number == errNumObjectNotExistOrAuthorized ||
			sfErr.Number == errNumObjectNotExist
	}
	msg := err.Error()
	return strings.Contains(msg, "does not exist or not authorized") ||
		strings.Contains(msg, "Object does not exist")
}
