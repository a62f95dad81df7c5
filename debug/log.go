// Package debug provides off-by-default logging and assertions. Both are
// controlled through environment variables so they can be enabled in the
// field without a rebuild.
package debug

import (
	"log"
	"os"
)

const (
	envEnableLog = "GO_MENU_ENABLE_LOG"
	logFileName  = "go-menu.log"
)

var (
	logfile *os.File
	logger  *log.Logger
)

func init() {
	loadLoggerEnv()
}

func loadLoggerEnv() {
	if e := os.Getenv(envEnableLog); e == "true" || e == "1" {
		var err error
		logfile, err = os.OpenFile(logFileName, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o666)
		if err == nil {
			logger = log.New(logfile, "", log.Llongfile|log.LstdFlags)
		} else {
			logger = log.New(os.Stderr, "", log.Llongfile|log.LstdFlags)
		}
	}
}

// Log writes msg to the log file, if logging is enabled.
func Log(msg string) {
	if logger != nil {
		_ = logger.Output(2, msg)
	}
}

// Close flushes and closes the log file, if one was opened.
func Close() {
	if logfile != nil {
		_ = logfile.Sync()
		_ = logfile.Close()
	}
}

// writeWithSync writes msg directly to the given well-known file descriptor,
// syncing afterwards. Unknown descriptors are ignored.
func writeWithSync(fd int, msg string) {
	var f *os.File
	switch fd {
	case 1:
		f = os.Stdout
	case 2:
		f = os.Stderr
	default:
		return
	}
	_, _ = f.WriteString(msg)
	_ = f.Sync()
}
