// Command teams splits a roster file into random teams, or serves the
// browser page.
//
// Usage:
//
//	teams shuffle players.csv --size 3
//	teams shuffle players.json --count 4
//	teams serve
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
