package utils

import (
	rndm "math/rand"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

func GetUUID() string {
	return uuid.New().String()
}

// --- Slugs ---

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the input and collapses every non-alphanumeric run
// into a single hyphen, trimming leading/trailing hyphens.
func Slugify(input string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(input), "-")
	return strings.Trim(s, "-")
}

// ValidSlug reports whether s is a URL-safe slug: lowercase letters,
// digits and single hyphens only, no leading slash or path segments.
func ValidSlug(s string) bool {
	return slugRe.MatchString(s)
}

// --- Misc ---

func Contains(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}
