package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)

// Make builds a URL slug from a title: lowercase, spaces to hyphens,
// everything else stripped.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = strings.Trim(s, "-")
	return s
}

// MakeUnique disambiguates a conflicting slug with a timestamp suffix.
func MakeUnique(base string) string {
	return fmt.Sprintf("%s-%d", base, time.Now().UnixNano())
}
