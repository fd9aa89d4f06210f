package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/structwalk/logger"
	"go.uber.org/zap"
)

// EnvPrefix prefixes environment variables overriding flags, i.e. STRUCTWALK_STRATEGY
const EnvPrefix = "STRUCTWALK"

// NewRootCmd creates structwalk command
func NewRootCmd() *cobra.Command {
	config := newConfig()
	rootCmd := &cobra.Command{
		Use:           "structwalk",
		Short:         "Walk JSON and YAML documents in breadth first or depth first order.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "turn on debug logging")
	rootCmd.AddCommand(NewWalkCmd(config))
	return rootCmd
}

// Execute runs structwalk command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "structwalk: %v\n", err)
		os.Exit(1)
	}
}

func newConfig() *viper.Viper {
	config := viper.New()
	config.SetEnvPrefix(EnvPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	return config
}

func newLogger(config *viper.Viper) (logger.Logger, error) {
	if !config.GetBool("debug") {
		return logger.Nop(), nil
	}
	zLogger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return logger.NewZap(zLogger), nil
}
