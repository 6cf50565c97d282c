package output

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupDebugLog configures logrus. When debug is false all logging is
// discarded; otherwise debug output goes to a rotating log file under the
// user's home directory so it never interleaves with command output.
func SetupDebugLog(debug bool) {
	if !debug {
		logrus.SetOutput(io.Discard)
		return
	}

	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	home, err := os.UserHomeDir()
	if err != nil {
		logrus.SetOutput(os.Stderr)
		return
	}
	logrus.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(home, ".mortar", "mortar.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	})
}
