package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// CSVHeader is the column layout of the results log. New columns go at the
// end.
var CSVHeader = []string{
	"algorithm",
	"input_size",
	"comparisons",
	"swaps",
	"array_accesses",
	"time_ns",
	"time_ms",
	"input",
	"strategy",
	"seed",
	"run_id",
}

func csvRecord(r Result) []string {
	return []string{
		r.Algorithm,
		strconv.Itoa(r.Size),
		strconv.FormatInt(r.Comparisons, 10),
		strconv.FormatInt(r.Swaps, 10),
		strconv.FormatInt(r.ArrayAccesses, 10),
		strconv.FormatInt(r.Elapsed.Nanoseconds(), 10),
		strconv.FormatInt(r.Elapsed.Milliseconds(), 10),
		string(r.Input),
		string(r.Strategy),
		strconv.FormatUint(r.Seed, 10),
		r.RunID,
	}
}

// WriteCSV writes a header row followed by one row per result.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write(csvRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVLog appends results to a file that persists across invocations.
type CSVLog struct {
	f *os.File
	w *csv.Writer
}

// OpenCSVLog opens path for appending, creating it if needed. The header row is
// written only when the file is empty.
func OpenCSVLog(path string) (*CSVLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open results log: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat results log: %w", err)
	}

	l := &CSVLog{f: f, w: csv.NewWriter(f)}
	if info.Size() == 0 {
		if err := l.write(CSVHeader); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return l, nil
}

// Record appends one result and flushes it to the file.
func (l *CSVLog) Record(r Result) error {
	return l.write(csvRecord(r))
}

func (l *CSVLog) write(row []string) error {
	if err := l.w.Write(row); err != nil {
		return fmt.Errorf("failed to write results log: %w", err)
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		return fmt.Errorf("failed to write results log: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (l *CSVLog) Close() error {
	return l.f.Close()
}

// millis renders d as fractional milliseconds for log fields and tables.
func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
