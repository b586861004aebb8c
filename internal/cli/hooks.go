package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports inspection and HTTP events at debug level. It is
// registered when --verbose is set.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnInspectStart(_ context.Context, pkg string) {
	h.logger.Debug("inspect start", "package", pkg)
}

func (h *logHooks) OnInspectComplete(_ context.Context, pkg string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("inspect failed", "package", pkg, "elapsed", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("inspect done", "package", pkg, "elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnDegraded(_ context.Context, pkg, source string, err error) {
	h.logger.Debug("degraded", "package", pkg, "source", source, "err", err)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "host", host, "path", path, "status", status, "elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request error", "method", method, "host", host, "path", path, "err", err)
}
