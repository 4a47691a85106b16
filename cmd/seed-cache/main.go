// Command seed-cache performs cache maintenance for the market gateway:
// warming the Redis cache with the queries the UI issues on a cold start,
// and clearing stale entries by key prefix.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seed-cache",
	Short: "Cache maintenance for the market gateway",
	Long: `Cache maintenance for the market gateway.

The seed command warms the Redis cache with the set catalog, common
listing queries and card pages for the most recent sets, using the
retry/backoff fetch profile and client-side pacing so vendor rate limits
are respected. The clear command deletes cached entries by key prefix.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
