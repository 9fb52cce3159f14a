package renderdoc

import (
	"github.com/sirupsen/logrus"
)

// loggerHelper builds the standard field set attached to every log line
// of this package.
type loggerHelper struct {
	function string
	logger   *logrus.Logger
	fields   logrus.Fields
}

func newLogger(logger *logrus.Logger, function string) *loggerHelper {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &loggerHelper{
		function: function,
		logger:   logger,
		fields: logrus.Fields{
			"function": function,
			"package":  "renderdoc",
		},
	}
}

// WithField adds a custom field to the logger
func (l *loggerHelper) WithField(key string, value interface{}) *loggerHelper {
	l.fields[key] = value
	return l
}

// WithError adds error information to the logger
func (l *loggerHelper) WithError(err error, operation string) *loggerHelper {
	l.fields["error"] = err.Error()
	l.fields["operation"] = operation
	return l
}

func (l *loggerHelper) entry() *logrus.Entry {
	return l.logger.WithFields(l.fields)
}

// Entry logs function entry
func (l *loggerHelper) Entry() {
	l.entry().Debugf("Function entry: %s", l.function)
}

func (l *loggerHelper) Debug(message string) {
	l.entry().Debug(message)
}

func (l *loggerHelper) Warn(message string) {
	l.entry().Warn(message)
}

func (l *loggerHelper) Error(message string) {
	l.entry().Error(message)
}
