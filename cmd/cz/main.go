// cz verifies Collatz division ladders and searches exponent orderings.
package main

import (
	"os"

	"github.com/collatzlab/cz/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
