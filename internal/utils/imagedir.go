package utils

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// DestinationSlug converts a destination name to the on-disk image
// folder convention: lower case, runs of non-alphanumeric characters
// collapsed to single hyphens.  "Goa & Beaches" -> "goa-beaches".
func DestinationSlug(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// slugVariants returns candidate folder names for a destination, most
// likely first.  Legacy uploads used underscores or no separator at all,
// and some folders spell "and" where the catalog uses "&" (or vice
// versa), so those alternates are tried before giving up.
func slugVariants(name string) []string {
	primary := DestinationSlug(name)
	variants := []string{primary}
	if strings.Contains(primary, "-") {
		variants = append(variants,
			strings.ReplaceAll(primary, "-", "_"),
			strings.ReplaceAll(primary, "-", ""))
	}
	if strings.Contains(name, "&") {
		variants = append(variants, DestinationSlug(strings.ReplaceAll(name, "&", "and")))
	} else if strings.Contains(strings.ToLower(name), " and ") {
		variants = append(variants, DestinationSlug(strings.ReplaceAll(strings.ToLower(name), " and ", " & ")))
	}
	seen := make(map[string]bool, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// ResolveImageDir locates the image folder for a destination name under
// baseDir.  It returns the first candidate directory that exists on
// disk and false when none do.
func ResolveImageDir(baseDir, name string) (string, bool) {
	for _, slug := range slugVariants(name) {
		dir := filepath.Join(baseDir, slug)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, true
		}
	}
	return "", false
}
