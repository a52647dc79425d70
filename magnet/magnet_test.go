package magnet_test

import (
	"strings"
	"testing"

	"github.com/piratesearch/magnet-finder/magnet"
)

var testHash = strings.Repeat("A", 40)

func TestExtractInfoHash(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		want   string
		wantOK bool
	}{
		{
			name:   "Plain magnet link",
			uri:    "magnet:?xt=urn:btih:" + testHash + "&dn=Example.Movie.1080p",
			want:   testHash,
			wantOK: true,
		},
		{
			name:   "Multiple xt values with only one btih",
			uri:    "magnet:?xt=urn:ed2k:31d6cfe0d16ae931b73c59d7e0c089c0&xt=urn:btih:" + testHash,
			want:   testHash,
			wantOK: true,
		},
		{
			name:   "Not a magnet link",
			uri:    "https://example.org/?xt=urn:btih:" + testHash,
			wantOK: false,
		},
		{
			name:   "Magnet link without xt",
			uri:    "magnet:?dn=Example.Movie.1080p",
			wantOK: false,
		},
		{
			name:   "Magnet link with foreign URN only",
			uri:    "magnet:?xt=urn:sha1:" + testHash,
			wantOK: false,
		},
		{
			name:   "Empty string",
			uri:    "",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := magnet.ExtractInfoHash(tt.uri)
			if ok != tt.wantOK {
				t.Fatalf("ExtractInfoHash() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractInfoHash() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	got := magnet.Build(testHash, "My Movie")
	want := "magnet:?xt=urn:btih:" + testHash +
		"&dn=My Movie" +
		"&tr=udp%3A%2F%2Ftracker.opentrackr.org%3A1337%2Fannounce" +
		"&tr=udp%3A%2F%2Fopen.demonii.com%3A1337%2Fannounce" +
		"&tr=udp%3A%2F%2Ftracker.coppersurfer.tk%3A6969%2Fannounce" +
		"&tr=udp%3A%2F%2Ftracker.leechers-paradise.org%3A6969%2Fannounce"
	if got != want {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestBuildEncodesDisplayName(t *testing.T) {
	got := magnet.Build(testHash, "My/Movie (2020)")
	if !strings.Contains(got, "&dn=My%2FMovie %282020%29&tr=") {
		t.Errorf("Build() = %v, want dn with literal spaces and everything else escaped", got)
	}
}

func TestBuildRoundTrip(t *testing.T) {
	hash, ok := magnet.ExtractInfoHash(magnet.Build(testHash, "Example Movie 1080p"))
	if !ok || hash != testHash {
		t.Errorf("ExtractInfoHash(Build()) = %v, %v, want %v, true", hash, ok, testHash)
	}
}
