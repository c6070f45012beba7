package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/epeers/stocklens/internal/models"
	"github.com/epeers/stocklens/internal/services"
)

func TestWarningCollector_BasicUsage(t *testing.T) {
	ctx, wc := services.NewWarningContext(context.Background())

	services.AddWarning(ctx, models.Warning{
		Code:    models.WarnAnalysisUnavailable,
		Message: "test warning 1",
	})
	services.AddWarning(ctx, models.Warning{
		Code:    models.WarnSectorUnavailable,
		Message: "test warning 2",
	})

	warnings := wc.GetWarnings()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}

	if warnings[0].Code != models.WarnAnalysisUnavailable {
		t.Errorf("expected code %s, got %s", models.WarnAnalysisUnavailable, warnings[0].Code)
	}
	if warnings[1].Code != models.WarnSectorUnavailable {
		t.Errorf("expected code %s, got %s", models.WarnSectorUnavailable, warnings[1].Code)
	}
}

func TestWarningCollector_NoCollectorNoPanic(t *testing.T) {
	// AddWarning with a plain context should not panic
	services.AddWarning(context.Background(), models.Warning{
		Code:    models.WarnFinancialsUnavailable,
		Message: "this should be silently dropped",
	})
}

func TestWarningCollector_ConcurrentSafe(t *testing.T) {
	ctx, wc := services.NewWarningContext(context.Background())

	var wg sync.WaitGroup
	n := 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			services.AddWarning(ctx, models.Warning{
				Code:    models.WarnFinancialsUnavailable,
				Message: "concurrent warning",
			})
		}()
	}
	wg.Wait()

	if got := len(wc.GetWarnings()); got != n {
		t.Errorf("expected %d warnings, got %d", n, got)
	}
}

func TestWarningCollector_ReturnedSliceIsOwnedByCaller(t *testing.T) {
	ctx, wc := services.NewWarningContext(context.Background())
	services.AddWarning(ctx, models.Warning{Code: models.WarnAnalysisUnavailable})

	first := wc.GetWarnings()
	first[0].Code = models.WarnSectorUnavailable
	services.AddWarning(ctx, models.Warning{Code: models.WarnFinancialsUnavailable})

	second := wc.GetWarnings()
	if len(second) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(second))
	}
	if second[0].Code != models.WarnAnalysisUnavailable {
		t.Errorf("expected stored code %s to be unchanged, got %s", models.WarnAnalysisUnavailable, second[0].Code)
	}
}
