package tpb

import (
	"fmt"
	"testing"

	"github.com/piratesearch/magnet-finder/monitoring"
	"github.com/piratesearch/magnet-finder/schema"
)

func newFilterClient() *Client {
	return NewClient(Tables{MaxResults: 100}, nil, monitoring.NewMetrics())
}

func TestFilterAndRankResolution(t *testing.T) {
	rows := []schema.Torrent{
		{Name: "Example.Movie.720p", InfoHash: testHash, Seeders: 50},
		{Name: "Example.Movie.1080p", InfoHash: testHash, Seeders: 40},
		{Name: "Example.Movie.4K", InfoHash: testHash, Seeders: 30},
		{Name: "Example.Movie.2160p", InfoHash: testHash, Seeders: 20},
		{Name: "Example.Movie.UHD.BluRay", InfoHash: testHash, Seeders: 10},
		{Name: "", InfoHash: testHash, Seeders: 99},
		{Name: "Example.Movie.1080p.NoHash", Seeders: 98},
	}

	tests := []struct {
		name string
		res  Resolution
		want []string
	}{
		{
			name: "1080 keeps only names containing 1080",
			res:  Resolution1080,
			want: []string{"Example.Movie.1080p"},
		},
		{
			name: "4k matches 2160, 4k and uhd",
			res:  Resolution4K,
			want: []string{"Example.Movie.4K", "Example.Movie.2160p", "Example.Movie.UHD.BluRay"},
		},
		{
			name: "any keeps every valid row",
			res:  ResolutionAny,
			want: []string{"Example.Movie.720p", "Example.Movie.1080p", "Example.Movie.4K", "Example.Movie.2160p", "Example.Movie.UHD.BluRay"},
		},
	}
	c := newFilterClient()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.filterAndRank(rows, tt.res)
			if len(got) != len(tt.want) {
				t.Fatalf("filterAndRank() returned %d rows, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("row %d = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestFilterAndRankSortsAndCaps(t *testing.T) {
	rows := make([]schema.Torrent, 0, 500)
	for i := 0; i < 500; i++ {
		rows = append(rows, schema.Torrent{
			Name:     fmt.Sprintf("Example.Movie.1080p.%03d", i),
			InfoHash: testHash,
			Seeders:  i % 97,
		})
	}
	got := newFilterClient().filterAndRank(rows, Resolution1080)
	if len(got) != 100 {
		t.Fatalf("filterAndRank() returned %d rows, want 100", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Seeders > got[i-1].Seeders {
			t.Fatalf("rows not sorted by seeders descending at %d: %d > %d", i, got[i].Seeders, got[i-1].Seeders)
		}
	}
}

func TestFilterAndRankStableOnTies(t *testing.T) {
	rows := make([]schema.Torrent, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, schema.Torrent{
			Name:     fmt.Sprintf("Example.Movie.1080p.%d", i),
			InfoHash: testHash,
			Seeders:  7,
		})
	}
	got := newFilterClient().filterAndRank(rows, ResolutionAny)
	if len(got) != 10 {
		t.Fatalf("filterAndRank() returned %d rows, want 10", len(got))
	}
	for i, row := range got {
		want := fmt.Sprintf("Example.Movie.1080p.%d", i)
		if row.Name != want {
			t.Errorf("tie order changed at %d: got %q, want %q", i, row.Name, want)
		}
	}
}

func TestFilterAndRankCoercesNegatives(t *testing.T) {
	got := newFilterClient().filterAndRank([]schema.Torrent{
		{Name: "Example.Movie.1080p", InfoHash: testHash, Seeders: -3, Leechers: -1, SizeBytes: -42},
	}, ResolutionAny)
	if len(got) != 1 {
		t.Fatalf("filterAndRank() returned %d rows, want 1", len(got))
	}
	if got[0].Seeders != 0 || got[0].Leechers != 0 || got[0].SizeBytes != 0 {
		t.Errorf("negative counters not coerced to zero: %+v", got[0])
	}
}
