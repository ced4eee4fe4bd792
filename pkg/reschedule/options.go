// Package reschedule moves deliveries off a holiday column of a logistics
// calendar workbook onto the previous delivery day.
package reschedule

import "github.com/ukaji3/reschedule-go/pkg/reschedule/models"

// Logger receives diagnostic events. It is separate from the report log,
// which is meant for the end user.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Options configures a rescheduling run.
type Options struct {
	// Layout locates the calendar grid inside the workbook.
	Layout models.Layout
	// Lang is the BCP 47 tag of the report language (e.g. "en", "es").
	// Unsupported languages fall back to English.
	Lang string
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger Logger
}

// DefaultOptions returns options for the standard calendar template in English.
func DefaultOptions() Options {
	return Options{
		Layout: models.DefaultLayout(),
		Lang:   "en",
		Logger: NopLogger{},
	}
}

func (o Options) logger() Logger {
	if o.Logger == nil {
		return NopLogger{}
	}
	return o.Logger
}
