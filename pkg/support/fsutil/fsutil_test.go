// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fsutil

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "model.onnx")
	exists, err := FileExists(filePath)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(filePath, nil, 0644))
	exists, err = FileExists(filePath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExpandHome(t *testing.T) {
	usr, err := user.Current()
	require.NoError(t, err)

	got, err := ExpandHome("~/fixtures/model.onnx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(usr.HomeDir, "fixtures", "model.onnx"), got)

	got, err = ExpandHome("~")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(usr.HomeDir), got)

	got, err = ExpandHome("./model.onnx")
	require.NoError(t, err)
	assert.Equal(t, "./model.onnx", got)

	_, err = ExpandHome("~no_such_user_for_fixtures/model.onnx")
	require.Error(t, err)
}
