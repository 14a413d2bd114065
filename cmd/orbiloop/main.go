// Command orbiloop enumerates, audits and extends non-crossing loops on
// the p2, p3 and p4 orbifolds.
//
// Usage:
//
//	orbiloop enumerate -t p3 -L 5 -k 10 -o yaml
//	orbiloop check loop.yaml
//	orbiloop segments loop.json
//
// Settings come from an optional YAML file (--config) and are overridden
// by flags.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
