package log

import (
	"time"

	"go.uber.org/zap"
)

var (
	Skip       = zap.Skip
	Binary     = zap.Binary
	Bool       = zap.Bool
	Duration   = zap.Duration
	Float64    = zap.Float64
	Int        = zap.Int
	Int32      = zap.Int32
	Int64      = zap.Int64
	Uint32     = zap.Uint32
	String     = zap.String
	Any        = zap.Any
	ErrorField = zap.Error
	Namespace  = zap.Namespace
)

func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}
