package main

import (
	"github.com/mattn/go-colorable"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func getLogger(config *viper.Viper) *zap.Logger {
	fields := []zap.Field{
		zap.String("version", BuiltVersion),
	}
	if config.GetBool("debug") {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(colorable.NewColorableStdout()),
			zapcore.DebugLevel,
		)
		return zap.New(core, zap.AddCaller(), zap.Development()).With(fields...)
	}
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger.With(fields...)
}
