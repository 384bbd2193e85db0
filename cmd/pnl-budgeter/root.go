package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pnlgo/pnl-budgeter/internal/calculation"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pnl-budgeter",
		Short: "Tax-prep franchise P&L budgeting and forecasting",
		Long: `pnl-budgeter turns prior-year performance and growth targets into a
complete profit-and-loss budget: normalized prior-year metrics, projected
income drivers, the 17-line expense breakdown with category rollups, and
traffic-light KPI statuses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("config", "", "settings file (default $HOME/.pnl-budgeter.yaml)")

	cobra.OnInitialize(func() { initSettings(root) })

	root.AddCommand(newCalcCmd())
	root.AddCommand(newExampleCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newFormatsCmd())
	return root
}

// initSettings wires viper: explicit --config file, else the dotfile in
// the home directory, plus PNL_BUDGETER_* environment variables.
func initSettings(root *cobra.Command) {
	if cfgFile, _ := root.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".pnl-budgeter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("PNL_BUDGETER")
	viper.AutomaticEnv()

	viper.SetDefault("format", "console")
	viper.SetDefault("listen", ":8080")
	viper.SetDefault("log.level", "info")

	// Missing settings file is fine; defaults apply.
	_ = viper.ReadInConfig()

	if lvl, _ := root.PersistentFlags().GetString("log-level"); lvl != "" {
		viper.Set("log.level", lvl)
	}
}

// buildLogger creates the zap logger the CLI and server log through.
func buildLogger() (*zap.Logger, error) {
	var level zapcore.Level
	switch viper.GetString("log.level") {
	case "debug":
		level = zapcore.DebugLevel
	case "info", "":
		level = zapcore.InfoLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", viper.GetString("log.level"))
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// zapEngineLogger adapts a zap sugared logger to the engine's observer
// interface.
type zapEngineLogger struct {
	s *zap.SugaredLogger
}

func (l zapEngineLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l zapEngineLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l zapEngineLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }

// newEngine builds the calculation engine with zap plugged in.
func newEngine(logger *zap.Logger) *calculation.Engine {
	engine := calculation.NewEngine()
	engine.SetLogger(zapEngineLogger{s: logger.Sugar()})
	return engine
}
