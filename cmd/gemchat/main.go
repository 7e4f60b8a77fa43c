package main

import (
	"os"

	"github.com/stevegt/gemchat/cli"
	. "github.com/stevegt/goadapt"
)

// main simply calls the cli package's Cli() function
func main() {
	config := cli.NewCliConfig()
	rc, err := cli.Cli(os.Args[1:], config)
	if err != nil && rc == 0 {
		// errors recovered by Return have not been reported yet
		Fpf(os.Stderr, "%s: error: %v\n", config.Name, err)
		rc = 1
	}
	os.Exit(rc)
}
