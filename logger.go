/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-16 00:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-17 23:30:00
 * @FilePath: \go-notify\logger.go
 * @Description: go-notify 日志接口，直接复用 go-logger
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package notify

import (
	"os"
	"strings"
	"time"

	"github.com/kamalyes/go-logger"
	"github.com/kamalyes/go-toolbox/pkg/mathx"
)

// LoggerPrefix 日志前缀
const LoggerPrefix = "[NOTIFY] "

// 轮转输出未指定大小/份数时的默认值
const (
	defaultRotateSizeMB  = 100
	defaultRotateBackups = 5
)

// NotifyLogger 直接使用 go-logger.ILogger
type NotifyLogger = logger.ILogger

// NewNotifyLogger 创建带通知前缀的日志器，返回的 *logger.Logger 可继续链式配置
func NewNotifyLogger(level logger.LogLevel) *logger.Logger {
	return logger.NewLogger().
		WithLevel(level).
		WithPrefix(LoggerPrefix).
		WithShowCaller(false).
		WithColorful(true).
		WithFormat(logger.FormatText).
		WithTimeFormat(time.DateTime)
}

// NewDefaultLogger 创建默认配置的日志器
func NewDefaultLogger() NotifyLogger {
	return NewNotifyLogger(logger.INFO)
}

// NewNoOpLogger 创建空日志实例
func NewNoOpLogger() NotifyLogger {
	return logger.NewEmptyLogger()
}

// 全局日志器
var (
	// DefaultLogger 默认日志器实例
	DefaultLogger NotifyLogger = NewDefaultLogger()

	// NoOpLoggerInstance 空日志器实例
	NoOpLoggerInstance NotifyLogger = NewNoOpLogger()
)

// SetDefaultLogger 设置默认日志器
func SetDefaultLogger(l NotifyLogger) {
	if l != nil {
		DefaultLogger = l
	}
}

// initLogger 根据配置初始化日志器，未启用时使用 DefaultLogger
func initLogger(logging *LoggingConfig) NotifyLogger {
	if logging == nil || !logging.Enabled {
		return DefaultLogger
	}

	l := NewNotifyLogger(parseLogLevel(logging.Level)).
		WithPrefix(mathx.IfNotZero(logging.Prefix, LoggerPrefix)).
		WithShowCaller(logging.ShowCaller).
		WithFormat(mathx.IfNotZero(logging.Format, logger.FormatText)).
		WithTimeFormat(mathx.IfNotZero(logging.TimeFormat, time.DateTime))

	switch logging.Output {
	case logger.OutputFile, logger.OutputRotate:
		if logging.FilePath == "" {
			return l.WithOutput(os.Stdout)
		}
		l = l.WithColorful(false)
		if logging.Output == logger.OutputRotate || (logging.MaxSize > 0 && logging.MaxBackups > 0) {
			return l.WithOutput(logger.NewRotateWriter(
				logger.WithFilePath(logging.FilePath),
				logger.WithMaxSize(int64(mathx.IfNotZero(logging.MaxSize, defaultRotateSizeMB))*1024*1024), // MB -> 字节
				logger.WithMaxFiles(mathx.IfNotZero(logging.MaxBackups, defaultRotateBackups)),
			))
		}
		return l.WithOutput(logger.NewFileWriter(logger.WithFileWriterPath(logging.FilePath)))
	case logger.OutputStderr:
		return l.WithOutput(os.Stderr)
	default:
		return l.WithOutput(os.Stdout)
	}
}

// parseLogLevel 解析日志级别字符串
func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DEBUG
	case "info":
		return logger.INFO
	case "warn", "warning":
		return logger.WARN
	case "error":
		return logger.ERROR
	case "fatal":
		return logger.FATAL
	default:
		return logger.INFO
	}
}
