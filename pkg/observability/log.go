package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Failed loads and
// saves are logged at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l, or to log.Default() when l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l.WithPrefix("hooks")}
}

func (h *LogHooks) OnLoad(_ context.Context, path string, n int, d time.Duration, err error) {
	h.io("load", path, n, d, err)
}

func (h *LogHooks) OnSave(_ context.Context, path string, n int, d time.Duration, err error) {
	h.io("save", path, n, d, err)
}

func (h *LogHooks) io(op, path string, n int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn(op, "path", path, "elapsed", d, "err", err)
		return
	}
	h.logger.Debug(op, "path", path, "nodes", n, "elapsed", d)
}

func (h *LogHooks) OnQuery(_ context.Context, op string, cached bool, d time.Duration) {
	h.logger.Debug("query", "op", op, "cached", cached, "elapsed", d)
}

func (h *LogHooks) OnLayout(_ context.Context, placed, forced int, d time.Duration) {
	h.logger.Debug("layout", "placed", placed, "forced", forced, "elapsed", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "key", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "key", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "key", keyType, "bytes", size)
}

var (
	_ GraphHooks = (*LogHooks)(nil)
	_ CacheHooks = (*LogHooks)(nil)
)
