package config

const (
	defaultOBSAddress            = "ws://127.0.0.1:4455"
	defaultConnectTimeoutSeconds = 10
	defaultCallTimeoutSeconds    = 15
	defaultPollIntervalMillis    = 1500
	defaultDirectorBaseURL       = "https://openrouter.ai/api/v1/chat/completions"
	defaultDirectorModel         = "google/gemini-3-flash-preview"
	defaultDirectorTitle         = "Scenedeck Director"
	defaultDirectorTimeout       = 30
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
	defaultLogDir                = "~/.local/share/scenedeck/logs"
	defaultRuntimeDir            = "~/.local/share/scenedeck/run"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		OBS: OBS{
			Address:               defaultOBSAddress,
			ConnectTimeoutSeconds: defaultConnectTimeoutSeconds,
			CallTimeoutSeconds:    defaultCallTimeoutSeconds,
		},
		Workflow: Workflow{
			PollIntervalMillis: defaultPollIntervalMillis,
		},
		Director: Director{
			BaseURL:        defaultDirectorBaseURL,
			Model:          defaultDirectorModel,
			Title:          defaultDirectorTitle,
			TimeoutSeconds: defaultDirectorTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Paths: Paths{
			LogDir:     defaultLogDir,
			RuntimeDir: defaultRuntimeDir,
		},
	}
}
