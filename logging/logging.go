package logging

import (
	"io"
	"log"
	"os"
)

var (
	InfoLog = log.New(os.Stdout, "(info) ", log.Lshortfile|log.Ltime)
	ErrLog  = log.New(os.Stderr, "(err) ", log.Lshortfile|log.Ltime)
)

// SetOutput redirects both loggers, mostly so tests can silence or capture them
func SetOutput(w io.Writer) {
	InfoLog.SetOutput(w)
	ErrLog.SetOutput(w)
}
