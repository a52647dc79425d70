package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var sizeRegex = regexp.MustCompile(`Size ([0-9]+(?:\.[0-9]+)?)\s*([A-Za-z]+)`)

// Binary and decimal unit spellings share the 1024 scale on purpose: the
// sources report binary sizes regardless of which suffix they print, and
// "correcting" KB/MB/GB to 1000 would change every reported byte count.
var sizeScales = map[string]int64{
	"b":   1,
	"kib": 1 << 10,
	"kb":  1 << 10,
	"mib": 1 << 20,
	"mb":  1 << 20,
	"gib": 1 << 30,
	"gb":  1 << 30,
	"tib": 1 << 40,
	"tb":  1 << 40,
}

// ParseSizeBytes extracts a byte count from free text containing a
// "Size <number> <unit>" fragment, as printed in TPB detDesc cells.
// The unit is matched case-insensitively; an unknown unit counts the bare
// number, and text without any match yields 0.
func ParseSizeBytes(text string) int64 {
	match := sizeRegex.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	scale, ok := sizeScales[strings.ToLower(match[2])]
	if !ok {
		scale = 1
	}
	return int64(value * float64(scale))
}

var humanUnits = []string{"B", "KB", "MB", "GB", "TB"}

// HumanSize renders a byte count in the largest unit that keeps the value
// under 1024, with one decimal.
func HumanSize(sizeBytes int64) string {
	size := float64(sizeBytes)
	for _, unit := range humanUnits {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f PB", size)
}
