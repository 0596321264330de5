/*
Command osdump runs overflow reconciliation passes for a scenario and prints
the resulting element tree.

A scenario is a YAML document describing the platform environment, the
measured sizes of the host structure and the instance options:

	env:
	  nativeScrollbarSize: {x: 17, y: 17}
	  rtlScrollBehavior: inverted
	direction: rtl
	host:     {client: [100, 100], offset: [100, 100]}
	viewport: {client: [100, 100], scroll: [300, 100], offset: [100, 100]}
	content:  {client: [100, 100], scroll: [300, 100]}
	scroll:   {x: 50}
	options:
	  overflow: {x: scroll, y: hidden}

Usage:

	osdump run [--passes n] [--trace level] scenario.yaml

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
