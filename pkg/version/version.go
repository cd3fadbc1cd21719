package version

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// set by -ldflags at build time
var (
	Version   = "unknown"
	GitCommit = "unknown"
)

var printVersion bool

// AddFlags ...
func AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&printVersion, "version", false, "print version and exit")
}

// PrintVersionOrContinue prints version info and exits when --version is set.
func PrintVersionOrContinue() {
	fmt.Printf("Version: %s, GitCommit: %s\n", Version, GitCommit)
	if printVersion {
		os.Exit(0)
	}
}
