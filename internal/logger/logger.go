package logger

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// Setup points logrus at a rotating file mirrored to stdout and returns
// that writer so the access log can share it.
func Setup(file, level string) io.Writer {
	rotator := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     7, // days
		Compress:   true,
	}
	out := io.MultiWriter(os.Stdout, rotator)

	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithError(err).Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	return out
}

// GormLogger routes gorm's SQL logging through logrus.
func GormLogger() gormlogger.Interface {
	level := gormlogger.Warn
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}
	return gormlogger.New(
		log.New(logrus.StandardLogger().WriterLevel(logrus.InfoLevel), "", 0),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}
