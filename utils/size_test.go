package utils_test

import (
	"testing"

	"github.com/piratesearch/magnet-finder/utils"
)

func TestParseSizeBytes(t *testing.T) {
	tests := []struct {
		name string // description of this test case
		text string
		want int64
	}{
		{
			name: "Binary gigabytes with fraction",
			text: "Uploaded 03-12 2019, Size 1.5 GiB, ULed by someone",
			want: 1610612736,
		},
		{
			name: "Decimal megabytes use the binary scale",
			text: "Size 700 MB",
			want: 734003200,
		},
		{
			name: "KB and KiB are aliases",
			text: "Size 4 KB",
			want: 4096,
		},
		{
			name: "Terabytes with lowercase unit",
			text: "Size 2 tb",
			want: 2199023255552,
		},
		{
			name: "Plain bytes",
			text: "Size 512 B",
			want: 512,
		},
		{
			name: "Unknown unit keeps the bare number",
			text: "Size 100 XB",
			want: 100,
		},
		{
			name: "No size pattern",
			text: "nothing useful in here",
			want: 0,
		},
		{
			name: "Empty string",
			text: "",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.ParseSizeBytes(tt.text)
			if got != tt.want {
				t.Errorf("ParseSizeBytes() = %v, want %v", got, tt.want)
			}
			// unrelated surrounding text must not change the outcome
			if again := utils.ParseSizeBytes("prefix " + tt.text + " suffix"); tt.want != 0 && again != tt.want {
				t.Errorf("ParseSizeBytes() with surrounding text = %v, want %v", again, tt.want)
			}
		})
	}
}

func TestParseSizeBytesAliasing(t *testing.T) {
	pairs := [][2]string{
		{"Size 3 KiB", "Size 3 KB"},
		{"Size 3 MiB", "Size 3 MB"},
		{"Size 3 GiB", "Size 3 GB"},
		{"Size 3 TiB", "Size 3 TB"},
	}
	for _, pair := range pairs {
		binary := utils.ParseSizeBytes(pair[0])
		decimal := utils.ParseSizeBytes(pair[1])
		if binary != decimal {
			t.Errorf("ParseSizeBytes(%q) = %v, ParseSizeBytes(%q) = %v, want equal", pair[0], binary, pair[1], decimal)
		}
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name      string
		sizeBytes int64
		want      string
	}{
		{
			name:      "Zero bytes",
			sizeBytes: 0,
			want:      "0.0 B",
		},
		{
			name:      "Kilobytes",
			sizeBytes: 1536,
			want:      "1.5 KB",
		},
		{
			name:      "Gigabytes",
			sizeBytes: 2147483648,
			want:      "2.0 GB",
		},
		{
			name:      "Terabytes",
			sizeBytes: 2199023255552,
			want:      "2.0 TB",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.HumanSize(tt.sizeBytes); got != tt.want {
				t.Errorf("HumanSize() = %v, want %v", got, tt.want)
			}
		})
	}
}
