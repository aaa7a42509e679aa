package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/caronago/caronago/internal/pkg/models"
)

// ZapLogger is the application logger supporting stdout and file outputs
type ZapLogger struct {
	*zap.Logger
	filePath string
	file     *os.File
}

// InitZapLoggerFromConfig creates a ZapLogger from application configuration
func InitZapLoggerFromConfig(cfg *models.Config) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	zl := &ZapLogger{}

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if cfg.Logger.FilePath != "" {
		file, err := openLogFile(cfg.Logger.FilePath)
		if err != nil {
			return nil, err
		}
		zl.filePath = cfg.Logger.FilePath
		zl.file = file
		syncers = append(syncers, zapcore.AddSync(file))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(syncers...), level)
	zl.Logger = zap.New(core, zap.AddCaller()).With(
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	return zl, nil
}

func openLogFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Close flushes buffered entries and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}
