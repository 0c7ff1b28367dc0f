package cmd

import (
	"fmt"
	"io"
	"runtime"
	rtdebug "runtime/debug"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show detailed version information including build details.`,
	Run: func(cmd *cobra.Command, args []string) {
		showVersion(cmd.OutOrStdout())
	},
}

func showVersion(w io.Writer) {
	info, ok := rtdebug.ReadBuildInfo()
	if !ok {
		// Fallback to compile-time variables
		_, _ = fmt.Fprintf(w, "uuidw version %s\n", version)
		_, _ = fmt.Fprintf(w, "  commit: %s\n", commit)
		_, _ = fmt.Fprintf(w, "  built: %s\n", date)
		_, _ = fmt.Fprintf(w, "  go: %s\n", runtime.Version())
		_, _ = fmt.Fprintf(w, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return
	}

	_, _ = fmt.Fprintf(w, "uuidw version %s\n", getVersion(info))

	var vcsRevision, vcsTime string
	vcsModified := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRevision = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		case "vcs.modified":
			vcsModified = setting.Value == "true"
		}
	}

	if vcsRevision != "" {
		_, _ = fmt.Fprintf(w, "  commit: %s\n", vcsRevision)
		if vcsModified {
			_, _ = fmt.Fprintf(w, "  modified: true\n")
		}
	}
	if vcsTime != "" {
		_, _ = fmt.Fprintf(w, "  built: %s\n", vcsTime)
	}

	_, _ = fmt.Fprintf(w, "  go: %s\n", info.GoVersion)
	_, _ = fmt.Fprintf(w, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func getVersion(info *rtdebug.BuildInfo) string {
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	if version != "dev" {
		return version
	}

	// Short commit hash from VCS stamping
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			if len(setting.Value) > 7 {
				return setting.Value[:7]
			}
			return setting.Value
		}
	}
	return "dev"
}
