package lyrics

import "strings"

// Slug lowercases s and drops every character that is not an ASCII letter or digit.
func Slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// URL returns the lyrics page address for a track on the site rooted at baseURL.
func URL(baseURL, artist, title string) string {
	return strings.TrimRight(baseURL, "/") + "/lyrics/" + Slug(artist) + "/" + Slug(title) + ".html"
}
