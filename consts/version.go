package consts

// Populated through -ldflags on release builds; dev builds report "dev".
var (
	gitSha = "dev"
	gitTag = "dev"
)

// GetBuildInfo reports the version and revision this binary was built from.
func GetBuildInfo() map[string]string {
	return map[string]string{
		"version":  gitTag,
		"revision": gitSha,
	}
}
