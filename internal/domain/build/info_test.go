package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_DisplayVersion(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"", "dev"},
		{"  ", "dev"},
		{"v1.2.3", "1.2.3"},
		{"1.2.3", "1.2.3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Info{Version: tt.version}.DisplayVersion(), tt.version)
	}
}

func TestInfo_ShortCommit(t *testing.T) {
	assert.Equal(t, "abc1234", Info{Commit: "abc1234def5678"}.ShortCommit())
	assert.Equal(t, "abc", Info{Commit: "abc"}.ShortCommit())
}
