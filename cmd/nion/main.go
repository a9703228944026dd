// Nion is a stack calculator over the Cayley-Dickson numbers.
package main

import (
	"os"

	"github.com/nion-lang/nion/cli"
)

func main() {
	os.Exit(cli.Run())
}
