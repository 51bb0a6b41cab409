package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"pokeblog/cms"
	"pokeblog/models"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report on the category system and content distribution",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		fmt.Println("Analyzing category system...")
		stats, err := cms.CategoryStatsAll(ctx)
		if err != nil {
			log.Printf("[Analyze] Failed to fetch categories: %v", err)
			os.Exit(1)
		}
		uncategorized, err := cms.CountUncategorized(ctx)
		if err != nil {
			log.Printf("[Analyze] Failed to count uncategorized posts: %v", err)
			os.Exit(1)
		}

		printCategoryReport(stats, uncategorized)
	},
}

const rule = "--------------------------------------------------------------------------"

func printCategoryReport(stats []models.CategoryStats, uncategorized int64) {
	if len(stats) == 0 {
		fmt.Println("No categories found.")
		fmt.Println("Create category documents via POST /api/categories before assigning posts.")
		return
	}

	fmt.Printf("Found %d categories in your system:\n\n", len(stats))
	fmt.Println(rule)
	fmt.Println("Category Analysis")
	fmt.Println(rule)

	featuredCount := 0
	totalPosts := 0
	maxPosts := 0
	mostActive := ""
	empty := []string{}

	for _, cat := range stats {
		marker := " "
		if cat.Featured {
			marker = "*"
			featuredCount++
		}
		fmt.Printf("%s %-24s %-24s %3d posts  %s\n", marker, cat.Title, cat.Slug, cat.PostCount, cat.Color)

		for i, post := range cat.Posts {
			if i >= 3 {
				fmt.Printf("    └─ ... and %d more posts\n", len(cat.Posts)-3)
				break
			}
			fmt.Printf("    ├─ %s\n", post.Title)
		}
		fmt.Println()

		totalPosts += cat.PostCount
		if cat.PostCount > maxPosts {
			maxPosts = cat.PostCount
			mostActive = cat.Title
		}
		if cat.PostCount == 0 {
			empty = append(empty, cat.Title)
		}
	}

	fmt.Println(rule)
	fmt.Println("Category System Summary:")
	fmt.Printf("   - Total Categories: %d\n", len(stats))
	fmt.Printf("   - Featured Categories: %d\n", featuredCount)
	fmt.Printf("   - Categorized Posts: %d\n", totalPosts)
	if uncategorized > 0 {
		fmt.Printf("   - Uncategorized Posts: %d\n", uncategorized)
		fmt.Println("Warning: you have blog posts without categories!")
	}

	fmt.Println()
	fmt.Println("Content Distribution:")
	fmt.Printf("   - Average posts per category: %.1f\n", float64(totalPosts)/float64(len(stats)))
	if mostActive != "" {
		fmt.Printf("   - Most active category: %s (%d posts)\n", mostActive, maxPosts)
	}
	if len(empty) > 0 {
		fmt.Printf("   - Empty categories: %d (%s)\n", len(empty), strings.Join(empty, ", "))
	}

	fmt.Println()
	fmt.Println("Recommendations:")
	if uncategorized > 0 {
		fmt.Println("   - Assign categories to uncategorized blog posts")
	}
	if len(empty) > 0 {
		fmt.Println("   - Create content for empty categories or remove them")
	}
	if featuredCount == 0 {
		fmt.Println("   - Mark important categories as featured for better visibility")
	}
	if len(stats) < 3 {
		fmt.Println("   - Consider creating more categories for better content organization")
	}

	fmt.Println()
	fmt.Println("Category analysis complete!")
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
