// Package dirs builds the list of configuration directories from the
// environment, JSONC config files and command-line overrides.
//
// The list is always a [nonempty.Slice]: its head is the directory handed to
// the cache initializer.
package dirs

import (
	"strings"

	"github.com/calvinalkan/configdirs/pkg/nonempty"
)

// EnvVar names the environment variable holding the comma-separated
// directory list.
const EnvVar = "CONFIG_DIRS"

// Split splits raw on ",". An empty raw value yields one empty element, so
// the result is never empty.
func Split(raw string) []string {
	return strings.Split(raw, ",")
}

// FromEnv builds the directory list from [EnvVar]. An unset variable is read
// as "", which yields a single empty directory rather than an error.
func FromEnv(env map[string]string) (nonempty.Slice[string], error) {
	return nonempty.TryFrom(Split(env[EnvVar]))
}
