package store

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the persisted document and carries the sync switch.
type Config interface {
	BasePath() string
	Document() string
	DocumentPath() string
	SyncEnabled() bool
}

// LoadConfig resolves configuration from .logue.yaml (working directory or
// $HOME) and LOGUE_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.logue")
	viper.SetDefault("document", "logue.json")
	viper.SetDefault("sync", true)
	viper.SetConfigName(".logue") // .yaml is implicit
	viper.SetEnvPrefix("LOGUE")
	viper.AutomaticEnv()

	if override := os.Getenv("LOGUE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		path:     path,
		document: viper.GetString("document"),
		sync:     viper.GetBool("sync"),
	}, nil
}

type fileConfig struct {
	path     string
	document string
	sync     bool
}

func (f *fileConfig) BasePath() string { return f.path }

func (f *fileConfig) Document() string { return f.document }

func (f *fileConfig) DocumentPath() string { return filepath.Join(f.path, f.document) }

func (f *fileConfig) SyncEnabled() bool { return f.sync }
