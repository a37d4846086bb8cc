// Package square_test verifies that square operations are safe for concurrent use.
package square_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/govalues/decimal"
	"github.com/katalvlaran/lvgeom/square"
	"github.com/stretchr/testify/require"
)

// TestConcurrentCalls runs every operation from many goroutines and checks
// each result against a sequentially computed reference.
func TestConcurrentCalls(t *testing.T) {
	const num = 200 // number of concurrent callers
	side := 12.5
	wantArea, err := square.Area(side)
	require.NoError(t, err)
	wantPrecise, err := square.PreciseArea(decimal.MustParse("12.5"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			area, err := square.Area(side)
			if err != nil {
				errs <- err
				return
			}
			if area != wantArea {
				errs <- fmt.Errorf("Area(%v)=%v, want %v", side, area, wantArea)
				return
			}
			precise, err := square.PreciseArea(decimal.MustParse("12.5"))
			if err != nil {
				errs <- err
				return
			}
			if precise.Cmp(wantPrecise) != 0 {
				errs <- fmt.Errorf("PreciseArea(12.5)=%v, want %v", precise, wantPrecise)
				return
			}
			if _, err := square.Diagonal(-side); err == nil {
				errs <- fmt.Errorf("Diagonal(%v) accepted a negative side", -side)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err, "concurrent call diverged from the sequential result")
	}
}
