// Command patrol predicts a guard's patrol route over a lab map and prints
// the number of distinct cells the guard visits before leaving the map.
//
// Usage:
//
//	patrol                       # reads input.txt
//	patrol lab.txt
//	cat lab.txt | patrol -
//	patrol lab.txt --format json
//	patrol lab.txt --trace --trace-delay 50ms
//
// A YAML file given with --config supplies defaults for every flag.
package main

import (
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
