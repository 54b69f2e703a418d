package logger_adapter

import (
	"fmt"
	"listings-service/internal/core/port"
	"log/slog"
	"time"
)

// fluentPoster - часть *fluent.Fluent, которой пользуется адаптер.
type fluentPoster interface {
	Post(tag string, message interface{}) error
	Close() error
}

// FluentLoggerAdapter отправляет записи в Fluent Bit. Тег записи - уровень ("info", "error").
type FluentLoggerAdapter struct {
	client   fluentPoster
	fields   port.Fields
	minLevel slog.Level
	now      func() time.Time
}

func NewFluentLoggerAdapter(client fluentPoster, minLevel slog.Leveler) (*FluentLoggerAdapter, error) {
	if client == nil {
		return nil, fmt.Errorf("fluent client cannot be nil")
	}

	level := slog.LevelInfo
	if minLevel != nil {
		level = minLevel.Level()
	}

	return &FluentLoggerAdapter{
		client:   client,
		fields:   make(port.Fields),
		minLevel: level,
		now:      time.Now,
	}, nil
}

func (a *FluentLoggerAdapter) mergeFields(fields port.Fields) port.Fields {
	merged := make(port.Fields, len(a.fields)+len(fields))
	for k, v := range a.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}

func (a *FluentLoggerAdapter) post(level slog.Level, tag, msg string, err error, fields port.Fields) {
	if level < a.minLevel {
		return
	}
	data := a.mergeFields(fields)
	for k, v := range data {
		// msgpack не умеет произвольные типы, отправляем их строкой
		switch v.(type) {
		case string, bool, int, int64, float64, nil:
		default:
			data[k] = fmt.Sprintf("%v", v)
		}
	}
	if err != nil {
		data["error"] = err.Error()
	}
	data["level"] = tag
	data["message"] = msg
	data["timestamp"] = a.now().UTC().Format(time.RFC3339Nano)

	// Логирование не должно ронять запрос.
	_ = a.client.Post(tag, data)
}

func (a *FluentLoggerAdapter) Info(msg string, fields port.Fields) {
	a.post(slog.LevelInfo, "info", msg, nil, fields)
}

func (a *FluentLoggerAdapter) Warn(msg string, fields port.Fields) {
	a.post(slog.LevelWarn, "warn", msg, nil, fields)
}

func (a *FluentLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	a.post(slog.LevelError, "error", msg, err, fields)
}

func (a *FluentLoggerAdapter) Debug(msg string, fields port.Fields) {
	a.post(slog.LevelDebug, "debug", msg, nil, fields)
}

func (a *FluentLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &FluentLoggerAdapter{
		client:   a.client,
		fields:   a.mergeFields(fields),
		minLevel: a.minLevel,
		now:      a.now,
	}
}

func (a *FluentLoggerAdapter) Close() error {
	return a.client.Close()
}
