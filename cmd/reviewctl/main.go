// Command reviewctl lets operators and moderators work the review store directly:
// apply migrations, inspect the moderation queue, approve or reject reviews and
// print pipeline statistics.
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
