// Command rmq builds a Cartesian-tree range minimum index over an encoded
// array of numbers and answers queries against it.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
