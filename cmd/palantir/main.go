// Command palantir inspects palantir view trees from the terminal.
package main

import (
	"os"

	"github.com/palantir-ui/palantir/cmd/palantir/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
