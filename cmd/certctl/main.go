package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// version is overridden via -ldflags "-X main.version=...".
var version = "dev"

const envPrefix = "CERTCTL"

// Configuration keys. Every key can be set in the config file, via
// CERTCTL_<KEY> environment variable or with the flag of the same name.
const (
	cfgRPC      = "rpc"
	cfgContract = "contract"
	cfgWallet   = "wallet"
	cfgAddress  = "address"
	cfgPassword = "password"
	cfgTimeout  = "timeout"
	cfgDebug    = "debug"
)

var (
	cfgFile string
	log     *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "certctl",
	Short: "Certification Registry CLI",
	Long: `certctl is the command-line interface for the Certification Registry
contract.

It allows auditors to register and issue certifications, contract authors
to request certification and anyone to verify certification status of a
contract version.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(home + "/.certctl")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
		viper.SetEnvPrefix(envPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}

		var err error
		log, err = newLogger(viper.GetBool(cfgDebug))
		return err
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.certctl/config.yaml)")
	rootCmd.PersistentFlags().String(cfgRPC, "http://localhost:30333", "Neo RPC endpoint")
	rootCmd.PersistentFlags().String(cfgContract, "", "registry contract address or hash")
	rootCmd.PersistentFlags().String(cfgWallet, "", "path to NEP-6 wallet used to sign transactions")
	rootCmd.PersistentFlags().String(cfgAddress, "", "wallet account address (default account if empty)")
	rootCmd.PersistentFlags().Duration(cfgTimeout, 30*time.Second, "RPC request and transaction await timeout")
	rootCmd.PersistentFlags().Bool(cfgDebug, false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print certctl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "certctl", version)
	},
}

func newLogger(debug bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.Encoding = "console"
	c.Sampling = nil
	if debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return c.Build()
}
