package log

import (
	"context"
	"fmt"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	HttpXRequestId = "X-Request-Id"
	CtxRequestId   = "requestId"
)

type ctxKey string

const requestIdKey ctxKey = CtxRequestId

const (
	FormatText = "text"
	FormatJSON = "json"
)

// InitLog configures the standard logger. format is FormatText or FormatJSON.
func InitLog(logLevel, format string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	formatter, err := newFormatter(format)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(true)
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(formatter)
	return nil
}

func callerPrettyfier(frame *runtime.Frame) (string, string) {
	return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
}

func newFormatter(format string) (logrus.Formatter, error) {
	switch format {
	case "", FormatText:
		return &logrus.TextFormatter{
			TimestampFormat:  "2006-01-02 15:04:05",
			FullTimestamp:    true,
			DisableColors:    true,
			DisableQuote:     true,
			CallerPrettyfier: callerPrettyfier,
		}, nil
	case FormatJSON:
		return &logrus.JSONFormatter{
			TimestampFormat:  time.RFC3339,
			CallerPrettyfier: callerPrettyfier,
		}, nil
	default:
		return nil, fmt.Errorf("invalid log format %q, expected %s or %s", format, FormatText, FormatJSON)
	}
}

// WithRequestId returns a copy of ctx carrying the request id picked up by GetLogger.
func WithRequestId(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, requestIdKey, requestId)
}

func RequestId(ctx context.Context) string {
	v, _ := ctx.Value(requestIdKey).(string)
	return v
}

func GetLogger(c context.Context) *logrus.Entry {
	if v := RequestId(c); v != "" {
		return logrus.WithFields(logrus.Fields{
			CtxRequestId: v,
		})
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

func NewLogger() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger())
}
