package logger

import (
	"io"
	"log"
)

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

func New(w io.Writer) Logger { return &stdLogger{l: log.New(w, "", log.LstdFlags)} }

// Quiet drops Infof output but still reports errors to w.
func Quiet(w io.Writer) Logger { return &quietLogger{stdLogger{l: log.New(w, "", log.LstdFlags)}} }

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }

type quietLogger struct{ stdLogger }

func (q *quietLogger) Infof(string, ...any) {}
