package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/username/nsw-workday-calc/internal/config"
	"github.com/username/nsw-workday-calc/internal/holiday"
	"github.com/username/nsw-workday-calc/internal/workday"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "workday-calc",
		Short:         "NSW work day calculator",
		Long:          "Count business days between two dates, excluding weekends and New South Wales public holidays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				initLogger("info")
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
					logger.Warn("File logging unavailable", zap.String("file", cfg.Log.File), zap.Error(err))
				}
			} else {
				initLogger(cfg.Log.Level)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ., $HOME/.nsw-workday-calc, /etc/nsw-workday-calc)")

	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(weekdaysCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(monthCmd())
	rootCmd.AddCommand(verifyCmd())
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

// initializeCalculator builds the calculator for the configured timezone,
// adding gazetted holidays when a holidays file is configured
func initializeCalculator(cfg *config.Config) (*workday.Calculator, error) {
	cal, err := cfg.Calendar.NewCalendar()
	if err != nil {
		return nil, err
	}

	calc := workday.NewCalculator(cal, logger)
	if cfg.Calendar.HolidaysFile == "" {
		return calc, nil
	}

	days, err := holiday.NewFileHolidays(cfg.Calendar.HolidaysFile, cal, logger).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays file: %w", err)
	}

	return calc.WithGazetted(days), nil
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// lumberjack only creates the directory on first write
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
