package tjdate

const (
	// ConfigAppName is the base directory name used for tjdate configuration,
	// e.g. $XDG_CONFIG_HOME/tjdate (or ~/.config/tjdate) on Unix-like systems
	// and %APPDATA%\tjdate on Windows.
	ConfigAppName = "tjdate"
)

// ConfigFileNames are searched in order inside the config directory.
var ConfigFileNames = []string{"config.yaml", "config.yml", "config.toml"}
