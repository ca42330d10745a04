package slog

import (
	"context"
	"log/slog"
)

// report logs msg at info level, or at warn level with the error attached
// when err is non-nil.
func report(logger *slog.Logger, msg string, err error, args ...any) {
	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelWarn
		args = append(args, "err", err)
	}
	logger.Log(context.Background(), level, msg, args...)
}
