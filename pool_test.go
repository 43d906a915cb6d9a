package txt2html

import (
	"runtime"
	"testing"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	t.Run("explicit value wins", func(t *testing.T) {
		t.Parallel()

		if got := ResolvePoolSize(3); got != 3 {
			t.Errorf("ResolvePoolSize(3) = %d, want 3", got)
		}
	})

	t.Run("auto is within bounds", func(t *testing.T) {
		t.Parallel()

		got := ResolvePoolSize(0)
		if got < MinPoolSize || got > MaxPoolSize {
			t.Errorf("ResolvePoolSize(0) = %d, want in [%d, %d]", got, MinPoolSize, MaxPoolSize)
		}
		if procs := runtime.GOMAXPROCS(0); procs <= MaxPoolSize && got != procs {
			t.Errorf("ResolvePoolSize(0) = %d, want GOMAXPROCS %d", got, procs)
		}
	})

	t.Run("negative means auto", func(t *testing.T) {
		t.Parallel()

		if got := ResolvePoolSize(-1); got != ResolvePoolSize(0) {
			t.Errorf("ResolvePoolSize(-1) = %d, want %d", got, ResolvePoolSize(0))
		}
	})
}
