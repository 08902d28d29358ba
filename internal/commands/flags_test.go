package commands

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigPath_uses_xdg(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	assert.Equal(t, filepath.Join("/tmp/cfg", "banners", "config.yaml"), DefaultConfigPath())
}

func TestDefaultLogFile_uses_xdg_state(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	assert.Equal(t, filepath.Join("/tmp/state", "banners", "banners.log"), DefaultLogFile())
}

func TestDefaultLogFile_fallback(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/home/test")

	want := filepath.Join("/home/test", ".local", "state", "banners", "banners.log")
	if runtime.GOOS == "darwin" {
		want = filepath.Join("/home/test", "Library", "Logs", "banners", "banners.log")
	}
	assert.Equal(t, want, DefaultLogFile())
}
