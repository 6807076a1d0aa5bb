package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to all given writers, combining their errors.
// Used to tee service logs to both stdout and the rotated log file.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: writers,
	}
}

func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
