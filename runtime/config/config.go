/*
   Copyright 2026 The Taoslog Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/taosdata/taoslog/runtime/appender"
)

// Settings is the file-borne appender configuration. Sizes stay in their
// human form; parsing and validation happen when the appender is built.
type Settings struct {
	LogDir               string `mapstructure:"log_dir"`
	Component            string `mapstructure:"component"`
	InstanceID           uint8  `mapstructure:"instance_id"`
	RotationCount        uint16 `mapstructure:"rotation_count"`
	RotationSize         string `mapstructure:"rotation_size"`
	Compress             bool   `mapstructure:"compress"`
	ReservedDiskSize     string `mapstructure:"reserved_disk_size"`
	StopLoggingThreshold uint   `mapstructure:"stop_logging_threshold"`
}

// Load reads settings from path. The format follows the file extension
// (yaml, toml, json, ...). Missing keys fall back to the appender's
// defaults.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("rotation_count", 30)
	v.SetDefault("rotation_size", "1GB")
	v.SetDefault("compress", false)
	v.SetDefault("reserved_disk_size", "2GB")
	v.SetDefault("stop_logging_threshold", 50)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return s, nil
}

// Build constructs the appender the settings describe.
func (s Settings) Build(opts ...appender.Option) (*appender.RollingFileAppender, error) {
	all := append([]appender.Option{
		appender.WithRotationCount(s.RotationCount),
		appender.WithRotationSize(s.RotationSize),
		appender.WithCompress(s.Compress),
		appender.WithReservedDiskSize(s.ReservedDiskSize),
		appender.WithStopLoggingThreshold(s.StopLoggingThreshold),
	}, opts...)
	return appender.New(s.LogDir, s.Component, s.InstanceID, all...)
}
