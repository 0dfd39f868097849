// Package buildinfo carries the release stamp shown in the HUD and logged at
// startup. Release builds set it with the linker:
//
//	go build -ldflags "-X spincube/internal/buildinfo.Version=v1.2.0 \
//		-X spincube/internal/buildinfo.Commit=$(git rev-parse --short HEAD) \
//		-X spincube/internal/buildinfo.Date=$(date -u +%F)"
//
// Unstamped builds report "dev".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short is the release tag, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// String is Short followed by the commit and date: "v1.2.0 (abc1234, 2026-01-02)".
func String() string {
	return Short() + " (" + Commit + ", " + Date + ")"
}
