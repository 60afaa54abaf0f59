// Command storepath plans walking routes through a store floor plan.
//
//	storepath inspect --layout store.yaml
//	storepath path    --layout store.yaml 11,5
//	storepath route   --layout store.yaml --routed Milk=dairy Bread=bakery
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}
