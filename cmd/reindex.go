package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"pokeblog/indexer"
	"pokeblog/models"

	"github.com/spf13/cobra"
)

var reindexQuiet bool

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the search index from the content store",
	Run: func(cmd *cobra.Command, args []string) {
		result, err := indexer.Run(context.Background())
		if err != nil {
			log.Printf("[Reindex] Failed: %v", err)
			os.Exit(1)
		}
		if !reindexQuiet {
			printSummary(result.Hits)
		}
	},
}

func printSummary(blogs []models.BlogHit) {
	fmt.Printf("Indexed %d blogs:\n\n", len(blogs))
	for _, blog := range blogs {
		author, position := "-", "-"
		if blog.Author.Name != "" {
			author = blog.Author.Name
		}
		if blog.Author.Position != "" {
			position = blog.Author.Position
		}
		category := orDash(blog.Category.Title)

		fmt.Printf("Title:        %s\n", blog.Title)
		fmt.Printf("Slug:         %s\n", blog.Slug)
		fmt.Printf("Published:    %s\n", orDash(blog.PublishedAt))
		fmt.Printf("Author:       %s (%s)\n", author, position)
		fmt.Printf("Category:     %s\n", category)
		fmt.Printf("Description:  %s\n", orDash(blog.Description))
		fmt.Printf("Image:        %s\n", orDash(blog.ImageURL))
		fmt.Printf("Order Rank:   %s\n", orDash(blog.OrderRank))
		fmt.Printf("ID:           %s\n", blog.ID)
		fmt.Printf("Type:         %s\n", blog.Type)
		fmt.Println("----------------------------------------")
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	reindexCmd.Flags().BoolVarP(&reindexQuiet, "quiet", "q", false, "skip the per-blog summary")
	rootCmd.AddCommand(reindexCmd)
}
