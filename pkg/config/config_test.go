// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Libraries)
}

func Test_Config_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modelscript.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nlibraries:\n  - /opt/msl\n"), 0o644))
	//
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"/opt/msl"}, cfg.Libraries)
}

func Test_Config_EnvOverride(t *testing.T) {
	t.Setenv("MODELSCRIPT_LOG_LEVEL", "warn")
	//
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func Test_Config_InvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modelscript.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))
	//
	_, err := Load(path)
	assert.Error(t, err)
}
