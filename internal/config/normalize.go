package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOBS()
	c.normalizeDirector()
	c.normalizeWorkflow()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.RuntimeDir) == "" {
		c.Paths.RuntimeDir = defaultRuntimeDir
	}
	if c.Paths.RuntimeDir, err = expandPath(c.Paths.RuntimeDir); err != nil {
		return fmt.Errorf("paths.runtime_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOBS() {
	c.OBS.Address = strings.TrimSpace(c.OBS.Address)
	if c.OBS.Address == "" {
		c.OBS.Address = defaultOBSAddress
	}
	if c.OBS.Password == "" {
		if value, ok := os.LookupEnv("SCENEDECK_OBS_PASSWORD"); ok {
			c.OBS.Password = value
		}
	}
	if c.OBS.ConnectTimeoutSeconds <= 0 {
		c.OBS.ConnectTimeoutSeconds = defaultConnectTimeoutSeconds
	}
	if c.OBS.CallTimeoutSeconds <= 0 {
		c.OBS.CallTimeoutSeconds = defaultCallTimeoutSeconds
	}
}

func (c *Config) normalizeDirector() {
	if c.Director.APIKey == "" {
		if value, ok := os.LookupEnv("SCENEDECK_DIRECTOR_API_KEY"); ok {
			c.Director.APIKey = value
		}
	}
	c.Director.BaseURL = strings.TrimSpace(c.Director.BaseURL)
	if c.Director.BaseURL == "" {
		c.Director.BaseURL = defaultDirectorBaseURL
	}
	c.Director.Model = strings.TrimSpace(c.Director.Model)
	if c.Director.Model == "" {
		c.Director.Model = defaultDirectorModel
	}
	if c.Director.TimeoutSeconds <= 0 {
		c.Director.TimeoutSeconds = defaultDirectorTimeout
	}
}

func (c *Config) normalizeWorkflow() {
	if c.Workflow.PollIntervalMillis <= 0 {
		c.Workflow.PollIntervalMillis = defaultPollIntervalMillis
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
