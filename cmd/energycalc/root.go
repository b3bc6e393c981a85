package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jgoulah/energycalc/internal/config"
	"github.com/jgoulah/energycalc/internal/estimator"
	"github.com/jgoulah/energycalc/internal/form"
	"github.com/jgoulah/energycalc/pkg/log"
)

var (
	cfgFile  string
	logLevel string

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "energycalc",
	Short: "Estimate household electricity consumption",
	Long: `energycalc estimates daily, weekly and monthly electricity consumption for a household
from its room configuration, appliances and the day of the week.

Run "estimate" for a one-off calculation in the terminal, or "serve" for the local web form.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// saveConfig saves the configuration file
func saveConfig(c *config.Config) error {
	return config.Save(getConfigPath(), c)
}

// setup loads config and builds the logger before any subcommand runs
func setup(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = c

	level := cfg.GetLogLevel()
	if logLevel != "" {
		level = logLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	logger = log.InitLog(lvl)
	return nil
}

// newEstimator builds the estimator configured by the config file
func newEstimator() *estimator.Estimator {
	return estimator.New(estimator.WithAverageMode(cfg.GetAverageMode()))
}

// formDefaults returns the form pre-filled from config
func formDefaults() form.Input {
	appliances := cfg.GetAppliances()
	return form.Input{
		Age:               cfg.GetAge(),
		Area:              cfg.Defaults.Area,
		City:              cfg.Defaults.City,
		HouseType:         cfg.GetHouseType(),
		RoomType:          cfg.GetRoomType(),
		Day:               cfg.GetDay(),
		HasAC:             appliances.HasAC,
		ACCount:           appliances.ACCount,
		HasFridge:         appliances.HasFridge,
		HasWashingMachine: appliances.HasWashingMachine,
	}
}
