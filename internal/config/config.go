// Copyright 2014 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the owlgraph server and tool configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/spf13/viper"

	"github.com/cayleygraph/owlgraph/axioms"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/owl"
)

// Configuration keys as seen by viper, the CLI and environment variables.
const (
	KeyBackend = "store.backend"
	KeyAddress = "store.address"
	KeyOptions = "store.options"

	KeyLoadFormat = "load.format"
	KeyLoadBatch  = "load.batch"

	KeyLoadAnnotationAxioms  = "axioms.load_annotation_axioms"
	KeySplitAxiomAnnotations = "axioms.split_axiom_annotations"
	KeyIgnoreReadErrors      = "axioms.ignore_read_errors"
	KeyAllowBulkDeclarations = "axioms.allow_bulk_declarations"

	KeyCacheSize = "cache.size"

	KeyHost    = "http.host"
	KeyPort    = "http.port"
	KeyTimeout = "http.timeout"
)

const (
	DefaultBackend = "memory"
	DefaultHost    = "127.0.0.1"
	DefaultPort    = "64210"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	DatabaseType    string
	DatabasePath    string
	DatabaseOptions graph.Options
	LoadFormat      string
	LoadBatch       int
	Axioms          axioms.Config
	CacheSize       int
	ListenHost      string
	ListenPort      string
	Timeout         time.Duration
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		DatabaseType: DefaultBackend,
		LoadBatch:    quad.DefaultBatch,
		Axioms:       axioms.DefaultConfig(),
		CacheSize:    owl.DefaultCacheSize,
		ListenHost:   DefaultHost,
		ListenPort:   DefaultPort,
		Timeout:      DefaultTimeout,
	}
}

type config struct {
	DatabaseType    string                 `json:"database"`
	DatabasePath    string                 `json:"db_path"`
	DatabaseOptions map[string]interface{} `json:"db_options"`
	LoadFormat      string                 `json:"load_format"`
	LoadBatch       int                    `json:"load_batch"`
	Axioms          axioms.Config          `json:"axioms"`
	CacheSize       int                    `json:"cache_size"`
	ListenHost      string                 `json:"listen_host"`
	ListenPort      string                 `json:"listen_port"`
	Timeout         duration               `json:"timeout"`
}

func (c *Config) shadow() config {
	return config{
		DatabaseType:    c.DatabaseType,
		DatabasePath:    c.DatabasePath,
		DatabaseOptions: c.DatabaseOptions,
		LoadFormat:      c.LoadFormat,
		LoadBatch:       c.LoadBatch,
		Axioms:          c.Axioms,
		CacheSize:       c.CacheSize,
		ListenHost:      c.ListenHost,
		ListenPort:      c.ListenPort,
		Timeout:         duration(c.Timeout),
	}
}

// UnmarshalJSON decodes over the current values, so absent keys keep them.
func (c *Config) UnmarshalJSON(data []byte) error {
	t := c.shadow()
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	*c = Config{
		DatabaseType:    t.DatabaseType,
		DatabasePath:    t.DatabasePath,
		DatabaseOptions: t.DatabaseOptions,
		LoadFormat:      t.LoadFormat,
		LoadBatch:       t.LoadBatch,
		Axioms:          t.Axioms,
		CacheSize:       t.CacheSize,
		ListenHost:      t.ListenHost,
		ListenPort:      t.ListenPort,
		Timeout:         time.Duration(t.Timeout),
	}
	return nil
}

func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.shadow())
}

// duration is a time.Duration that satisfies the
// json.UnMarshaler and json.Marshaler interfaces.
type duration time.Duration

// UnmarshalJSON unmarshals a duration according to the following scheme:
//   - If the element is absent the duration is zero.
//   - If the element is parsable as a time.Duration, the parsed value is kept.
//   - If the element is parsable as a number, that number of seconds is kept.
func (d *duration) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		*d = 0
		return nil
	}
	text := string(data)
	if s, err := strconv.Unquote(text); err == nil {
		text = s
	}
	t, err := time.ParseDuration(text)
	if err == nil {
		*d = duration(t)
		return nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		*d = duration(time.Duration(i) * time.Second)
		return nil
	}
	// strconv.ParseInt rejects e-notation for integers.
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("invalid duration %q", text)
	}
	*d = duration(f * float64(time.Second))
	return nil
}

func (d duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Duration(d).String())), nil
}

// Load reads a JSON-encoded config contained in the given file over the
// defaults. The defaults are returned if the filename is empty.
func Load(file string) (*Config, error) {
	config := Default()
	if file == "" {
		return config, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open config file %q: %w", file, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	err = dec.Decode(config)
	if err != nil {
		return nil, fmt.Errorf("could not parse config file %q: %w", file, err)
	}
	return config, nil
}

// SetDefaults installs the config values as viper defaults, so that flags,
// environment variables and config files override them.
func (c *Config) SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBackend, c.DatabaseType)
	v.SetDefault(KeyAddress, c.DatabasePath)
	if c.DatabaseOptions != nil {
		v.SetDefault(KeyOptions, map[string]interface{}(c.DatabaseOptions))
	}
	v.SetDefault(KeyLoadFormat, c.LoadFormat)
	v.SetDefault(KeyLoadBatch, c.LoadBatch)
	v.SetDefault(KeyLoadAnnotationAxioms, c.Axioms.LoadAnnotationAxioms)
	v.SetDefault(KeySplitAxiomAnnotations, c.Axioms.SplitAxiomAnnotations)
	v.SetDefault(KeyIgnoreReadErrors, c.Axioms.IgnoreReadErrors)
	v.SetDefault(KeyAllowBulkDeclarations, c.Axioms.AllowBulkDeclarations)
	v.SetDefault(KeyCacheSize, c.CacheSize)
	v.SetDefault(KeyHost, c.ListenHost)
	v.SetDefault(KeyPort, c.ListenPort)
	v.SetDefault(KeyTimeout, c.Timeout)
}

// FromViper builds a config from the viper keys.
func FromViper(v *viper.Viper) *Config {
	c := &Config{
		DatabaseType: v.GetString(KeyBackend),
		DatabasePath: v.GetString(KeyAddress),
		LoadFormat:   v.GetString(KeyLoadFormat),
		LoadBatch:    v.GetInt(KeyLoadBatch),
		Axioms: axioms.Config{
			LoadAnnotationAxioms:  v.GetBool(KeyLoadAnnotationAxioms),
			SplitAxiomAnnotations: v.GetBool(KeySplitAxiomAnnotations),
			IgnoreReadErrors:      v.GetBool(KeyIgnoreReadErrors),
			AllowBulkDeclarations: v.GetBool(KeyAllowBulkDeclarations),
		},
		CacheSize:  v.GetInt(KeyCacheSize),
		ListenHost: v.GetString(KeyHost),
		ListenPort: v.GetString(KeyPort),
		Timeout:    v.GetDuration(KeyTimeout),
	}
	if opts := v.GetStringMap(KeyOptions); len(opts) != 0 {
		c.DatabaseOptions = graph.Options(opts)
	}
	if c.LoadBatch <= 0 {
		c.LoadBatch = quad.DefaultBatch
	}
	return c
}
