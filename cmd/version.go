package cmd

import (
	"context"
	"flag"
	"fmt"
	"runtime/debug"

	"github.com/google/subcommands"
)

type versionCmd struct{}

func (*versionCmd) Name() string     { return "version" }
func (*versionCmd) Synopsis() string { return "print the build version" }
func (*versionCmd) Usage() string {
	return `version

Print the version this binary was built from.
`
}

func (c *versionCmd) SetFlags(f *flag.FlagSet) {}

func (c *versionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	version := "devel"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Println("rnav", version)
	return subcommands.ExitSuccess
}
