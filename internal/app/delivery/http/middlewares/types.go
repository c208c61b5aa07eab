package middlewares

import (
	"pilates-vision-service/internal/app/config"
	"sync"

	"go.uber.org/zap"
)

// Middlewares groups the HTTP middleware of the studio API around one logger
// and the app configuration.
type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig

	mu         sync.RWMutex
	quietPaths map[string]struct{}
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		quietPaths:     make(map[string]struct{}),
	}
}

// Quiet lowers request logging for paths such as liveness checks to debug.
func (m *Middlewares) Quiet(paths ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, path := range paths {
		m.quietPaths[path] = struct{}{}
	}
}

func (m *Middlewares) isQuiet(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.quietPaths[path]
	return ok
}
