package utils

import (
	"io"
	"log"
	"os"
)

// InitLogger builds the application logger. Request timestamps come from the
// logger flags, so middleware should not stamp lines itself.
func InitLogger(out ...io.Writer) *log.Logger {
	var w io.Writer = os.Stdout
	if len(out) > 0 && out[0] != nil {
		w = out[0]
	}
	return log.New(w, "[fundamind] ", log.LstdFlags|log.LUTC)
}
