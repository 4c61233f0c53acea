package debug

// Periodic runtime logger enabled by the QR_DEBUG environment variable.
// Emits heap, RSS and goroutine figures to correlate native (camera /
// detector) allocations with Go heap growth during long scan sessions.

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// StartMemLogger launches a goroutine that logs runtime stats every
// interval. Best-effort: an unreadable RSS is reported as zero.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info("memstats",
				slog.Int("goroutines", runtime.NumGoroutine()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("stack_inuse", ms.StackInuse),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("rss", residentSetBytes()),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}

// residentSetBytes reads the process RSS from /proc/self/statm (pages).
// Returns 0 where procfs is unavailable.
func residentSetBytes() uint64 {
	data, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return 0
	}
	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return 0
	}
	pages, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return pages * uint64(os.Getpagesize())
}
