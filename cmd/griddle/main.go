// Command griddle lays items out in a tile grid and lets you walk it with the
// arrow keys.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "griddle: %v\n", err)
		os.Exit(1)
	}
}
