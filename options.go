package screenlens

// DefaultAppName is the host application whose screens are being
// classified. Heuristics use it to exclude shell lines that echo the
// command under test, and to recognize help screens.
const DefaultAppName = "gwm"

type config struct {
	appName string
}

// Option configures a single Classify call.
type Option func(*config)

// WithAppName sets the host application name used by the shell-echo
// exclusion and help-screen heuristics. The empty string is ignored.
func WithAppName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.appName = name
		}
	}
}

func defaultConfig() config {
	return config{
		appName: DefaultAppName,
	}
}
