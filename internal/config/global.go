// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects ConfigDir in tests. os.UserHomeDir does not
// honor HOME on every platform.
var configDirOverride string

// Reset clears test overrides.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride points ConfigDir at dir until Reset is called.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
