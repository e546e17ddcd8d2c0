// Package annotation finds the hashtags and package references written in a
// message.
package annotation

import "regexp"

var (
	tagRegexp     = regexp.MustCompile(`#([\w\-]+)`)
	packageRegexp = regexp.MustCompile(`:([\w+\-.]+[\w+])`)
)

// FindTags returns the words prefixed with `#`, in order of appearance.
func FindTags(text string) []string {
	return findAll(tagRegexp, text)
}

// FindPackages returns the package names prefixed with `:`, in order of
// appearance. A trailing dot or dash is never part of the name; a trailing
// plus is, so that g++ survives.
func FindPackages(text string) []string {
	return findAll(packageRegexp, text)
}

func findAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	found := make([]string, 0, len(matches))
	for _, m := range matches {
		found = append(found, m[1])
	}

	return found
}
