// Package main provides the lambent CLI, a front end for the lambda
// calculus type inference engine and its example corpus.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
