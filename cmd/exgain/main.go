// exgain drives the gain plugin's control panel and a reference host.
package main

import (
	"fmt"
	"os"
)

func main() {

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
