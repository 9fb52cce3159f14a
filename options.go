package renderdoc

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LibraryPathEnv names the environment variable read by OptionsFromEnv.
const LibraryPathEnv = "RENDERDOC_LIBRARY"

// Options configures OpenWithOptions.
type Options struct {
	// LibraryPath overrides the platform-conventional library name
	// (librenderdoc.so, librenderdoc.dylib, renderdoc.dll).
	LibraryPath string

	// Logger receives handshake and call tracing. Defaults to the logrus
	// standard logger.
	Logger *logrus.Logger
}

// NewOptions returns the default options: conventional library search and
// the standard logger.
func NewOptions() *Options {
	return &Options{
		LibraryPath: "",
		Logger:      logrus.StandardLogger(),
	}
}

// OptionsFromEnv returns NewOptions with LibraryPath taken from
// RENDERDOC_LIBRARY when it is set.
func OptionsFromEnv() *Options {
	opts := NewOptions()
	if path, ok := os.LookupEnv(LibraryPathEnv); ok {
		opts.LibraryPath = path
	}
	return opts
}

func (o *Options) logger() *logrus.Logger {
	if o == nil || o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}
