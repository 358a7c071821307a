// Command constellation compiles and combines genetic design specifications.
//
//	constellation compile "promoter . one-or-more cds . terminator"
//	constellation combine -f session.yaml --mode and --tolerance 1
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
