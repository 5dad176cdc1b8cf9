// Command fluentcheck validates JSON or YAML documents against the example
// record checks and prints the result.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		// An invalid document already printed its result.
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
