// internal/commands/root.go
package cvreport

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/appconfig"
	"github.com/DmitriyKonyrev/ml-cross-validator/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	v             = viper.New()
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "cvreport",
	Short:        "cvreport: charts and summary tables for classifier cross-validation runs",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appconfig.Load(v, cfgFile)
		if err != nil {
			return err
		}
		currentConfig = &cfg

		if err := logging.Init(logging.Options{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			File:   cfg.LogFile,
		}); err != nil {
			return eris.Wrap(err, "failed to initialize logger")
		}
		logging.L().Sugar().Debugw("configuration loaded", "config", cfg.ConfigPath, "inputDir", cfg.InputDir, "outDir", cfg.OutDir)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")
	flags.StringP("input-dir", "i", "", "directory holding one subdirectory per classifier (default: working directory)")
	flags.StringP("outdir", "o", "", "directory for charts and tables (default: <working directory>/graphics)")
	flags.String("log-file", "", "also write logs to this file")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log encoding: console or json")
	flags.String("nan-literal", "", "token read as 0 in metric files")

	bindRootFlags(v)
}

// bindRootFlags binds the persistent flags to their config keys on v.
func bindRootFlags(v *viper.Viper) {
	flags := rootCmd.PersistentFlags()
	_ = v.BindPFlag("inputDir", flags.Lookup("input-dir"))
	_ = v.BindPFlag("outDir", flags.Lookup("outdir"))
	_ = v.BindPFlag("logFile", flags.Lookup("log-file"))
	_ = v.BindPFlag("logLevel", flags.Lookup("log-level"))
	_ = v.BindPFlag("logFormat", flags.Lookup("log-format"))
	_ = v.BindPFlag("nanLiteral", flags.Lookup("nan-literal"))
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
