// main is the entry point for the podfit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/mhelling/podfit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
