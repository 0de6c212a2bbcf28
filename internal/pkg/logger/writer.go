package logger

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LogWriter 把Printf风格的日志桥接到主日志的输出端，给gorm用
type LogWriter struct {
	zapcore.WriteSyncer
}

func (w *LogWriter) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w.WriteSyncer, format+"\n", args...)
	_ = w.Sync()
}

// GetWriter 返回与主日志共用输出端的写入器
func GetWriter() *LogWriter {
	return logWriter
}
