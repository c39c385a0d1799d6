package recorder

import (
	"os"
	"time"

	"github.com/ScottMansfield/nanolog"
)

var (
	logRun    nanolog.Handle
	logInsert nanolog.Handle
	nlogger   func(nanolog.Handle, ...interface{}) error
)

func init() {
	// run id, round, samples, bits, seed
	logRun = nanolog.AddLogger("%s,%i,%i,%i,%i64")
	// round, index, value, median, has median, latency
	logInsert = nanolog.AddLogger("%i,%i,%i32,%f64,%b,%i64")
}

// Create directs records to path and enables recording.
func Create(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := nanolog.SetWriter(out); err != nil {
		out.Close()
		return err
	}
	SetLogger(nanolog.Log)
	return nil
}

// Flush writes buffered records to the file.
func Flush() error {
	if nlogger == nil {
		return nil
	}
	return nanolog.Flush()
}

// SetLogger sets customized record logger, nil disables recording.
func SetLogger(l func(nanolog.Handle, ...interface{}) error) {
	nlogger = l
}

func Enabled() bool {
	return nlogger != nil
}

func Run(runId string, round int, samples int, bits int, seed int64) error {
	return nanoLog(logRun, runId, round, samples, bits, seed)
}

func Insert(round int, idx int, val int32, median float64, ok bool, latency time.Duration) error {
	return nanoLog(logInsert, round, idx, val, median, ok, int64(latency))
}

func nanoLog(handle nanolog.Handle, args ...interface{}) error {
	if nlogger != nil {
		return nlogger(handle, args...)
	}
	return nil
}
