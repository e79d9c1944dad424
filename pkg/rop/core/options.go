package core

import "context"

type OptionKey string

const (
	RecoverOptionKey OptionKey = "recover_options"
)

// RecoverOptions controls how failures are captured at call boundaries.
type RecoverOptions struct {
	CaptureStack bool
}

func WithRecoverOptions(ctx context.Context, captureStack bool) context.Context {
	return context.WithValue(ctx, RecoverOptionKey, RecoverOptions{CaptureStack: captureStack})
}

func GetRecoverOptions(ctx context.Context, defaultOptions RecoverOptions) RecoverOptions {
	options, ok := ctx.Value(RecoverOptionKey).(RecoverOptions)
	if ok {
		return options
	}
	return defaultOptions
}

func IsStackCaptureEnabled(ctx context.Context, defaultCaptureStack bool) bool {
	return GetRecoverOptions(ctx, RecoverOptions{CaptureStack: defaultCaptureStack}).CaptureStack
}
