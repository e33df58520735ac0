package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rit "github.com/AshhKetchup/Rit"
)

var rootCmd = &cobra.Command{
	Use:   "rit",
	Short: "A mini git implementation",
	Long:  "Content-addressable object store with git-style plumbing commands.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/rit/config.yaml)")
	rootCmd.PersistentFlags().StringP("repo", "C", ".", "repository directory")

	viper.BindPFlag("repo_dir", rootCmd.PersistentFlags().Lookup("repo"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("RIT")
	viper.AutomaticEnv()
	viper.SetDefault("repo_dir", ".")
	viper.SetDefault("compression_level", rit.CompressionDefault)
	viper.SetDefault("concurrency", rit.DefaultConcurrency)

	viper.ReadInConfig()
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rit")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "rit")
	}
	return ".rit"
}

func repoDir() string {
	return viper.GetString("repo_dir")
}

func openRepo() (*rit.Repository, error) {
	return rit.Open(repoDir(),
		rit.WithCompressionLevel(viper.GetInt("compression_level")),
		rit.WithConcurrency(viper.GetInt("concurrency")),
	)
}
