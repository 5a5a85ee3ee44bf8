package internal

import (
	"path/filepath"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// GetConfigDir returns the configuration directory for appName inside the
// user config path of env.
//
// Behavior:
//   - XDG_CONFIG_HOME, when set, wins: XDG_CONFIG_HOME/<appName>.
//   - Otherwise APPDATA (Windows): APPDATA/<appName>.
//   - Otherwise $HOME/.config/<appName>.
//
// The returned path is not created.
func GetConfigDir(env toolkit.Env, appName string) (string, error) {
	base, err := toolkit.UserConfigPath(env)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// FindConfigFile returns the first existing regular file among names inside
// dir. ok is false when none exists.
func FindConfigFile(fs toolkit.FileSystem, dir string, names ...string) (path string, ok bool) {
	for _, name := range names {
		p := filepath.Join(dir, name)
		if fi, err := fs.Stat(p, true); err == nil && !fi.IsDir() {
			return p, true
		}
	}
	return "", false
}

// HostPath maps the runtime path p onto the real filesystem. Code that
// bypasses the runtime (fsnotify, rotated log files) needs this when rt is
// jailed.
func HostPath(rt *toolkit.Runtime, p string) (string, error) {
	abs, err := rt.ResolvePath(p, false)
	if err != nil {
		return "", err
	}
	if jail := rt.GetJail(); jail != "" {
		return filepath.Join(jail, abs), nil
	}
	return abs, nil
}
