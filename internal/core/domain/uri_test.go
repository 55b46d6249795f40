package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLocalURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want bool
	}{
		{name: "absolute path", uri: "/tmp/data/file.csv", want: true},
		{name: "relative path", uri: "data/file.csv", want: true},
		{name: "bare filename", uri: "file.csv", want: true},
		{name: "file scheme", uri: "file:///tmp/data", want: true},
		{name: "file scheme with localhost", uri: "file://localhost/tmp/data", want: true},
		{name: "windows drive letter", uri: `C:\Users\data`, want: true},
		{name: "empty string", uri: "", want: false},
		{name: "s3 URI", uri: "s3://bucket/key", want: false},
		{name: "https URL", uri: "https://example.com/data.csv", want: false},
		{name: "runs URI", uri: "runs:/abc123/artifacts/data", want: false},
		{name: "file scheme with remote host", uri: "file://otherhost/tmp/data", want: false},
		{name: "unparseable URI", uri: "://no-scheme", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLocalURI(tt.uri))
		})
	}
}

func TestLocalPathFromURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{name: "plain path passes through", uri: "/tmp/data", want: "/tmp/data"},
		{name: "file scheme stripped", uri: "file:///tmp/data", want: "/tmp/data"},
		{name: "file scheme with localhost", uri: "file://localhost/tmp/data", want: "/tmp/data"},
		{name: "relative path passes through", uri: "data/file.csv", want: "data/file.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalPathFromURI(tt.uri))
		})
	}
}
