package impl

import "go.uber.org/zap"

type Option func(*config)

// WithAppName tags every entry with an app field.
func WithAppName(name string) Option {
	return func(c *config) {
		c.appName = name
	}
}

// WithRegionId tags every entry with a region field.
func WithRegionId(id int32) Option {
	return func(c *config) {
		c.regionId = id
	}
}

// WithLevel sets the minimum level.
func WithLevel(l Level) Option {
	return func(c *config) {
		c.Level = zap.NewAtomicLevelAt(l)
	}
}

// WithStdout toggles console output; typ is "console" or "json".
func WithStdout(enable bool, typ string) Option {
	return func(c *config) {
		c.stdout = enable
		if typ != "" {
			c.stdoutType = typ
		}
	}
}

// WithFileOut toggles per-level JSON files under dir.
func WithFileOut(enable bool, dir string) Option {
	return func(c *config) {
		c.toFile = enable
		c.fileDir = dir
	}
}

// WithFileAsync buffers file writes, flushing once a second.
func WithFileAsync(async bool) Option {
	return func(c *config) {
		c.fileAsync = async
	}
}
