package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pokeblog",
	Short: "Headless blog CMS with a Redis-backed search index",
	Long: `pokeblog serves a blog content API backed by MongoDB, mirrors the
published posts into a Redis search index, and exposes the reindex and
analysis tooling around that pipeline.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
