package hal

import (
	"bytes"
	"io"
)

// LogWriter adapts l to an io.Writer so it can back a log/slog handler.
// Each Write is split on newlines; every complete or trailing line becomes
// one WriteLineBytes call.
func LogWriter(l Logger) io.Writer {
	return logWriter{l: l}
}

type logWriter struct {
	l Logger
}

func (w logWriter) Write(p []byte) (int, error) {
	if w.l == nil {
		return len(p), nil
	}
	rest := bytes.TrimSuffix(p, []byte{'\n'})
	for len(rest) > 0 {
		line, tail, _ := bytes.Cut(rest, []byte{'\n'})
		w.l.WriteLineBytes(line)
		rest = tail
	}
	return len(p), nil
}
