// Package config loads volume-creation defaults (blocksize, nblocks)
// from a config file or environment, via viper. A zero-value VolumeDefaults
// falls back to sifs' own package constants, so callers that don't
// care about configuration can ignore this package entirely.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// VolumeDefaults holds the default blocksize/nblocks used by mkvolume
// when the caller doesn't specify them explicitly.
type VolumeDefaults struct {
	BlockSize uint32
	NBlocks   uint32
}

// Load reads volume defaults from the named config file (any format
// viper supports: yaml, json, toml, ...) plus SIFS_-prefixed
// environment variables, which take precedence over the file.
//
// A missing config file is not an error: Load returns the zero
// VolumeDefaults, and callers are expected to fall back to sifs'
// built-in defaults.
func Load(configFile string) (VolumeDefaults, error) {
	v := viper.New()
	v.SetEnvPrefix("sifs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var d VolumeDefaults
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return d, err
			}
		}
	}

	d.BlockSize = uint32(v.GetUint32("blocksize"))
	d.NBlocks = uint32(v.GetUint32("nblocks"))
	return d, nil
}
