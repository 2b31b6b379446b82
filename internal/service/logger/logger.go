package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	AccessLogger *zap.Logger
	DBLogger     *zap.Logger
)

func buildLogger(filename string) (*zap.Logger, error) {
	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "."
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{
		filepath.Join(dir, filename),
	}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return config.Build()
}

func InitLoggers() error {
	var err error
	AccessLogger, err = buildLogger("access.log")
	if err != nil {
		return err
	}

	DBLogger, err = buildLogger("db.log")
	if err != nil {
		return err
	}

	return nil
}

func SyncLoggers() error {
	if err := AccessLogger.Sync(); err != nil {
		return err
	}
	return DBLogger.Sync()
}
