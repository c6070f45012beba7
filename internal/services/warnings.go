package services

import (
	"context"
	"sync"

	"github.com/epeers/stocklens/internal/models"
)

type overviewWarningsKey struct{}

// WarningCollector gathers the sections of one overview load that came back
// degraded. It is shared by the goroutines of that load.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []models.Warning
}

// NewWarningContext attaches an empty collector to ctx for the duration of one
// overview load and returns both
func NewWarningContext(ctx context.Context) (context.Context, *WarningCollector) {
	wc := &WarningCollector{}
	return context.WithValue(ctx, overviewWarningsKey{}, wc), wc
}

// AddWarning records a degraded section on the load running under ctx.
// Outside a load it does nothing.
func AddWarning(ctx context.Context, w models.Warning) {
	wc, ok := ctx.Value(overviewWarningsKey{}).(*WarningCollector)
	if !ok || wc == nil {
		return
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.warnings = append(wc.warnings, w)
}

// GetWarnings returns the degraded sections recorded so far, in arrival order.
// The caller owns the returned slice.
func (wc *WarningCollector) GetWarnings() []models.Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	out := make([]models.Warning, len(wc.warnings))
	copy(out, wc.warnings)
	return out
}
