package pkgbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	tests := []struct {
		name    string
		version Version
		want    string
	}{
		{"plain", Version{Pkgver: "1.2.3", Pkgrel: "1"}, "1.2.3-1"},
		{"multi-digit release", Version{Pkgver: "0.9", Pkgrel: "12"}, "0.9-12"},
		{"git snapshot", Version{Pkgver: "25.08.r14.g1a2b3c4", Pkgrel: "2"}, "25.08.r14.g1a2b3c4-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.version.String())
		})
	}
}
