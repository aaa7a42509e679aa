package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is an alias for zap.Field so callers avoid importing zap directly
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

// ErrorField is an alias of Err kept for handler readability
func ErrorField(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}
