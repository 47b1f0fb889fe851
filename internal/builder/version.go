package builder

import (
	"os/exec"
	"runtime/debug"
	"strings"
)

// Version and Commit are set at build time:
//
//	-ldflags "-X 'github.com/idlab-discover/aloha-cli/internal/builder.Version=v1.2.3' -X '...Commit=abc123'"
var (
	Version = ""
	Commit  = ""
)

var (
	readBuildInfo = debug.ReadBuildInfo
	runGit        = func(args ...string) (string, error) {
		out, err := exec.Command("git", args...).Output()
		return strings.TrimSpace(string(out)), err
	}
)

// ToolVersion reports the version recorded in metadata.tools: ldflags,
// then module build info, then git, then the commit, then "devel".
func ToolVersion() string {
	for _, candidate := range []func() string{ldflagsVersion, moduleVersion, gitDescribe, commitVersion} {
		if v := candidate(); v != "" {
			return v
		}
	}
	return "devel"
}

func ldflagsVersion() string {
	if Version == "dev" {
		return ""
	}
	return Version
}

func moduleVersion() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return ""
	}
	if v := info.Main.Version; v != "(devel)" {
		return v
	}
	return ""
}

func gitDescribe() string {
	if out, err := runGit("describe", "--tags", "--always", "--dirty"); err == nil && out != "" {
		return out
	}
	if out, err := runGit("rev-parse", "--short", "HEAD"); err == nil {
		return out
	}
	return ""
}

func commitVersion() string {
	if Commit == "" {
		return ""
	}
	return "commit-" + Commit
}
