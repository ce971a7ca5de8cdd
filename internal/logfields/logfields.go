package logfields

import "log/slog"

// Canonical log field names shared by the benchmark harness.
const (
	KeyRunID       = "run_id"
	KeyAlgorithm   = "algorithm"
	KeyStrategy    = "strategy"
	KeyInput       = "input"
	KeySize        = "size"
	KeySeed        = "seed"
	KeyComparisons = "comparisons"
	KeySwaps       = "swaps"
	KeyAccesses    = "array_accesses"
	KeyDurationMS  = "duration_ms"
	KeyPath        = "path"
	KeyError       = "error"
)

func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Algorithm(name string) slog.Attr { return slog.String(KeyAlgorithm, name) }
func Strategy(s string) slog.Attr     { return slog.String(KeyStrategy, s) }
func Input(kind string) slog.Attr     { return slog.String(KeyInput, kind) }
func Size(n int) slog.Attr            { return slog.Int(KeySize, n) }
func Seed(seed uint64) slog.Attr      { return slog.Uint64(KeySeed, seed) }
func Comparisons(n int64) slog.Attr   { return slog.Int64(KeyComparisons, n) }
func Swaps(n int64) slog.Attr         { return slog.Int64(KeySwaps, n) }
func ArrayAccesses(n int64) slog.Attr { return slog.Int64(KeyAccesses, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
