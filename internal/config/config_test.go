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

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlgraph/axioms"
	"github.com/cayleygraph/owlgraph/owl"
)

func TestDuration(t *testing.T) {
	var cases = []struct {
		in     string
		expect time.Duration
		err    bool
	}{
		{in: `"30s"`, expect: 30 * time.Second},
		{in: `"1m30s"`, expect: 90 * time.Second},
		{in: `12`, expect: 12 * time.Second},
		{in: `"12"`, expect: 12 * time.Second},
		{in: `1.5`, expect: 1500 * time.Millisecond},
		{in: `1e1`, expect: 10 * time.Second},
		{in: `"soon"`, err: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var d duration
			err := d.UnmarshalJSON([]byte(c.in))
			if c.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.expect, time.Duration(d))
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), c)

	dir := t.TempDir()
	file := filepath.Join(dir, "owlgraph.json")
	err = os.WriteFile(file, []byte(`{
	"database": "bolt",
	"db_path": "/var/lib/owlgraph",
	"db_options": {"nosync": true},
	"axioms": {"ignore_read_errors": true, "load_annotation_axioms": false},
	"listen_port": "8080",
	"timeout": "5s"
}`), 0644)
	require.NoError(t, err)

	c, err = Load(file)
	require.NoError(t, err)
	require.Equal(t, "bolt", c.DatabaseType)
	require.Equal(t, "/var/lib/owlgraph", c.DatabasePath)
	nosync, err := c.DatabaseOptions.BoolKey("nosync", false)
	require.NoError(t, err)
	require.True(t, nosync)
	require.Equal(t, axioms.Config{
		IgnoreReadErrors:      true,
		AllowBulkDeclarations: true,
	}, c.Axioms)
	require.Equal(t, "8080", c.ListenPort)
	require.Equal(t, DefaultHost, c.ListenHost)
	require.Equal(t, 5*time.Second, c.Timeout)
	require.Equal(t, quad.DefaultBatch, c.LoadBatch)
	require.Equal(t, owl.DefaultCacheSize, c.CacheSize)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"timeout": "later"}`), 0644))
	_, err = Load(bad)
	require.Error(t, err)
}

func TestMarshalJSON(t *testing.T) {
	c := Default()
	c.Timeout = 2 * time.Minute
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Equal(t, "2m0s", raw["timeout"])
	require.Equal(t, DefaultBackend, raw["database"])

	var back Config
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, c, &back)
}

func TestViper(t *testing.T) {
	c := Default()
	c.DatabaseType = "btree"
	c.Axioms.SplitAxiomAnnotations = true

	v := viper.New()
	c.SetDefaults(v)
	require.Equal(t, c, FromViper(v))

	v.Set(KeyBackend, "memory")
	v.Set(KeyIgnoreReadErrors, true)
	v.Set(KeyOptions, map[string]interface{}{"path": "x"})
	v.Set(KeyTimeout, "1m")
	v.Set(KeyLoadBatch, 0)

	got := FromViper(v)
	require.Equal(t, "memory", got.DatabaseType)
	require.True(t, got.Axioms.IgnoreReadErrors)
	require.True(t, got.Axioms.SplitAxiomAnnotations)
	require.Equal(t, time.Minute, got.Timeout)
	require.Equal(t, quad.DefaultBatch, got.LoadBatch)
	path, err := got.DatabaseOptions.StringKey("path", "")
	require.NoError(t, err)
	require.Equal(t, "x", path)
}
