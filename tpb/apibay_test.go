package tpb

import (
	"encoding/json"
	"testing"
)

func TestApibayTorrentDecoding(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantSeeders  int64
		wantLeechers int64
		wantSize     int64
	}{
		{
			name:         "Quoted numbers as apibay serves them",
			body:         `{"name":"x","info_hash":"y","seeders":"42","leechers":"7","size":"2147483648"}`,
			wantSeeders:  42,
			wantLeechers: 7,
			wantSize:     2147483648,
		},
		{
			name:        "Bare numbers",
			body:        `{"name":"x","info_hash":"y","seeders":42,"leechers":0,"size":1024}`,
			wantSeeders: 42,
			wantSize:    1024,
		},
		{
			name: "Missing fields default to zero",
			body: `{"name":"x","info_hash":"y"}`,
		},
		{
			name: "Junk values count as zero instead of failing the batch",
			body: `{"name":"x","info_hash":"y","seeders":"lots","leechers":null,"size":"big"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got apibayTorrent
			if err := json.Unmarshal([]byte(tt.body), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if int64(got.Seeders) != tt.wantSeeders {
				t.Errorf("Seeders = %d, want %d", got.Seeders, tt.wantSeeders)
			}
			if int64(got.Leechers) != tt.wantLeechers {
				t.Errorf("Leechers = %d, want %d", got.Leechers, tt.wantLeechers)
			}
			if int64(got.Size) != tt.wantSize {
				t.Errorf("Size = %d, want %d", got.Size, tt.wantSize)
			}
		})
	}
}
