package model

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"
)

const (
	AnonymousUsername = "Anonymous"

	TagURLPattern     = `<a href="http://identi.ca/tag/%[1]s">#%[1]s</a>`
	PackageURLPattern = `<a href="http://packages.debian.org/%[1]s">%[1]s</a>`
)

// tokenRegexp matches both annotation forms so a single pass never rescans
// markup it has just produced. A leading & marks a numeric character
// reference such as &#39; which is left alone.
var tokenRegexp = regexp.MustCompile(`&?#([\w\-]+)|:([\w+\-.]+[\w+])`)

func (m Message) HasImage() bool {
	return m.Image != nil
}

func (m Message) FormattedUsername() string {
	if m.SenderName == nil {
		return AnonymousUsername
	}

	return *m.SenderName
}

// Geolocation prefers what the sender told us over what the image says.
func (m Message) Geolocation() *GeoPoint {
	if m.SenderGeolocation != nil {
		return m.SenderGeolocation
	}

	return m.ImageGeolocation
}

func (m Message) FormattedWebsite() *string {
	if m.SenderWebsite == nil {
		return nil
	}

	website := *m.SenderWebsite
	if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
		website = "http://" + website
	}

	return &website
}

// FormattedContent renders the stored (already escaped) content as HTML
// paragraphs with tags and packages turned into links.
func (m Message) FormattedContent() template.HTML {
	var content string
	if m.Content != nil {
		content = strings.ReplaceAll(*m.Content, "\n\n", "\n")
	}

	tags := toSet(m.Tags)
	packages := toSet(m.Packages)

	content = tokenRegexp.ReplaceAllStringFunc(content, func(token string) string {
		if strings.HasPrefix(token, "&") {
			return token
		}

		if name, ok := strings.CutPrefix(token, "#"); ok {
			if _, known := tags[name]; known {
				return fmt.Sprintf(TagURLPattern, name)
			}

			return token
		}

		name := strings.TrimPrefix(token, ":")
		if _, known := packages[name]; known {
			return fmt.Sprintf(PackageURLPattern, name)
		}

		return token
	})

	lines := strings.Split(content, "\n")
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		paragraphs = append(paragraphs, "<p>"+line+"</p>")
	}

	return template.HTML(strings.Join(paragraphs, "\n")) //nolint:gosec
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, i := range items {
		set[i] = struct{}{}
	}

	return set
}
