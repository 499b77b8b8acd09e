// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config describes one benchmark run. Zero value is a valid, if useless,
// config; loadConfig fills it from a TOML file and flags fill in the rest.
type Config struct {
	Buffer struct {
		SizeBytes uint64 `toml:"size_bytes"`
	} `toml:"buffer"`
	Message struct {
		SizeBytes int `toml:"size_bytes"`
	} `toml:"message"`
	Run struct {
		Messages   int    `toml:"messages"`
		Provider   string `toml:"provider"`
		SharedName string `toml:"shared_name"`
	} `toml:"run"`
}

func loadConfig(path string) (Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := toml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}
