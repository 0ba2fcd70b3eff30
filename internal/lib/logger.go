package lib

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Lumerin-protocol/flow-editor-api/internal/interfaces"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timeLayout  = "2006-01-02T15:04:05"
	logFileMode = 0644
)

type LoggerOptions struct {
	Level      string
	Color      bool
	IsProd     bool
	JSON       bool
	FolderPath string // enables file logging when set
	FileName   string // file name inside FolderPath, without extension
}

func NewLogger(opts LoggerOptions) (*Logger, error) {
	log, err := newLogger(opts, nil)
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: log.Sugar()}, nil
}

// NewLoggerMemory additionally writes all entries to wr, used to inspect log output in tests
func NewLoggerMemory(level string, wr io.Writer) (*Logger, error) {
	log, err := newLogger(LoggerOptions{Level: level}, wr)
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: log.Sugar()}, nil
}

// NewTestLogger logs only to stdout
func NewTestLogger() *Logger {
	log, _ := newLogger(LoggerOptions{Level: "debug"}, nil)
	return &Logger{SugaredLogger: log.Sugar()}
}

func newLogger(opts LoggerOptions, extraWriter io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core

	if opts.FolderPath != "" {
		name := opts.FileName
		if name == "" {
			name = "app"
		}
		fileCore, err := newFileCore(level, opts.IsProd, opts.JSON, filepath.Join(opts.FolderPath, name+".log"))
		if err != nil {
			return nil, err
		}
		cores = append(cores, fileCore)
	}
	if extraWriter != nil {
		memoryCore := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(zapcore.AddSync(extraWriter)), level)
		cores = append(cores, memoryCore)
	}

	cores = append(cores, newConsoleCore(level, opts.Color, opts.IsProd, opts.JSON))

	core := cores[0]
	if len(cores) > 1 {
		core = zapcore.NewTee(cores...)
	}

	zapOpts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}
	if !opts.IsProd {
		zapOpts = append(zapOpts, zap.Development())
	}

	return zap.New(core, zapOpts...), nil
}

func newConsoleCore(level zapcore.Level, color bool, isProd bool, isJSON bool) zapcore.Core {
	encoderCfg := newEncoderCfg(isProd, color, isJSON)
	return zapcore.NewCore(newEncoder(encoderCfg, isJSON), zapcore.AddSync(os.Stdout), level)
}

func newEncoderCfg(isProd bool, color bool, isJSON bool) zapcore.EncoderConfig {
	var encoderCfg zapcore.EncoderConfig
	if isProd {
		encoderCfg = zap.NewProductionEncoderConfig()
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	}

	if color && !isJSON {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return encoderCfg
}

func newEncoder(cfg zapcore.EncoderConfig, isJSON bool) zapcore.Encoder {
	if isJSON {
		return zapcore.NewJSONEncoder(cfg)
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func newFileCore(level zapcore.Level, isProd bool, isJSON bool, path string) (zapcore.Core, error) {
	encoderCfg := newEncoderCfg(isProd, false, isJSON)
	if !isJSON {
		encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, logFileMode)
	if err != nil {
		return nil, err
	}

	return zapcore.NewCore(newEncoder(encoderCfg, isJSON), zapcore.AddSync(file), level), nil
}

type Logger struct {
	*zap.SugaredLogger
}

func (l *Logger) Named(name string) interfaces.ILogger {
	return &Logger{l.SugaredLogger.Named(name)}
}

func (l *Logger) With(args ...interface{}) interfaces.ILogger {
	return &Logger{l.SugaredLogger.With(args...)}
}

// Zap exposes the underlying structured logger, e.g. for middlewares that log typed fields
func (l *Logger) Zap() *zap.Logger {
	return l.SugaredLogger.Desugar()
}
