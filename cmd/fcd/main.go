package main

import (
	"flag"
	"fmt"
	"os"

	"fcd/internal/di"
	"fcd/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the configuration file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug mode (console log output)")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "fcd: %s\n", err)
		os.Exit(1)
	}
}
