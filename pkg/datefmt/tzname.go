package datefmt

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LocalZoneName returns the local IANA zone name (for example
// "America/New_York"). It is resolved on first use and then reused for the
// life of the process, so a zone change on the machine while the process runs
// is not observed.
var LocalZoneName = sync.OnceValue(func() string {
	return resolveZoneName(os.Getenv("TZ"), "/etc/localtime", time.Local)
})

// resolveZoneName prefers the TZ variable, then the target of the localtime
// symlink, then the name Go assigned to the local location.
func resolveZoneName(tz, localtime string, local *time.Location) string {
	if tz = strings.TrimPrefix(tz, ":"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}
	if target, err := filepath.EvalSymlinks(localtime); err == nil {
		if _, name, ok := strings.Cut(filepath.ToSlash(target), "zoneinfo/"); ok && name != "" {
			return name
		}
	}
	if local != nil && local.String() != "Local" {
		return local.String()
	}
	return "UTC"
}
