package tpb

// Category set keys accepted by Client.Search.
const (
	CategoryMoviesHD = "movies_hd"
	CategoryShowsHD  = "shows_hd"
	CategoryAllVideo = "all_video"
)

// Resolution selects the name-based resolution filter applied to results.
type Resolution string

const (
	Resolution4K   Resolution = "4k"
	Resolution1080 Resolution = "1080"
	ResolutionAny  Resolution = "any"
)

// Tables holds the fixed mirror, category and result-cap configuration for
// one Client. Read-only once the Client is built; tests substitute their own
// endpoints.
//
// Endpoint entries are format templates taking the escaped query and the
// category code, in that order. Earlier entries are preferred mirrors, later
// ones are fallback only.
type Tables struct {
	APIEndpoints  []string
	HTMLEndpoints []string
	CategorySets  map[string][]string
	MaxResults    int
}

// DefaultTables returns the production mirror set. Category codes are listed
// most-specific first; the first code that yields anything short-circuits
// the rest for that mirror.
func DefaultTables() Tables {
	return Tables{
		APIEndpoints: []string{
			"https://apibay.org/q.php?q=%s&cat=%s",
			"https://pirateproxy.live/apibay/q.php?q=%s&cat=%s",
			"https://apibay.sbs/q.php?q=%s&cat=%s",
		},
		HTMLEndpoints: []string{
			"https://thepiratebay.org/search/%s/1/99/%s",
			"https://thepiratebay0.org/search/%s/1/99/%s",
			"https://tpb.party/search/%s/1/99/%s",
		},
		CategorySets: map[string][]string{
			CategoryMoviesHD: {"207", "201", "200"}, // HD Movies, then Movies, then Video
			CategoryShowsHD:  {"208", "205", "200"}, // HD TV, then TV, then Video
			CategoryAllVideo: {"200", "0"},
		},
		MaxResults: 100,
	}
}
