package lyrics

import (
	"fmt"
	"strings"

	"github.com/desertthunder/lyrx/internal/shared"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// NotFoundText replaces the lyrics when a lookup fails.
	NotFoundText = "Can't Find Lyrics"

	blankLine   = "\n"
	adMarker    = "freestar.config"
	creditCount = 2
)

// containerPath lists the class attributes of the nested containers around the lyrics, outermost first.
var containerPath = []string{
	"container main-page",
	"row",
	"col-xs-12 col-lg-8 text-center",
}

// Extract returns the lyric lines of a lyrics page.
//
// Blank lines are returned as "\n". An empty, non-nil slice means the lyrics
// container was found but held nothing after cleanup.
func Extract(document string) ([]string, error) {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrLyricsNotFound, err)
	}

	node := findFirst(root, func(n *html.Node) bool { return isElement(n, atom.Body) })
	if node == nil {
		return nil, fmt.Errorf("%w: no body", shared.ErrLyricsNotFound)
	}

	for _, class := range containerPath {
		node = findFirst(node, func(n *html.Node) bool {
			v, ok := attr(n, "class")
			return n.Type == html.ElementNode && ok && v == class
		})
		if node == nil {
			return nil, fmt.Errorf("%w: no %q container", shared.ErrLyricsNotFound, class)
		}
	}

	lyricsDiv := findFirst(node, func(n *html.Node) bool {
		_, labeled := attr(n, "class")
		return isElement(n, atom.Div) && !labeled
	})
	if lyricsDiv == nil {
		return nil, fmt.Errorf("%w: no unlabeled div", shared.ErrLyricsNotFound)
	}

	return cleanFragments(textFragments(lyricsDiv)), nil
}

// OrNotFound returns lines, or the single [NotFoundText] line when err is set or lines is empty.
func OrNotFound(lines []string, err error) []string {
	if err != nil || len(lines) == 0 {
		return []string{NotFoundText}
	}
	return lines
}

// cleanFragments turns raw text nodes into display lines.
//
// Only one blank fragment ahead is checked, so a run of three blanks leaves two.
func cleanFragments(fragments []string) []string {
	lines := []string{}
	if len(fragments) <= creditCount {
		return lines
	}

	kept := make([]string, 0, len(fragments)-creditCount)
	for _, f := range fragments[creditCount:] {
		if strings.Contains(f, adMarker) {
			continue
		}
		if f = strings.TrimSpace(f); f == "" {
			f = blankLine
		}
		kept = append(kept, f)
	}

	for i := 0; i < len(kept); i++ {
		lines = append(lines, kept[i])
		if kept[i] == blankLine && i+1 < len(kept) && kept[i+1] == blankLine {
			i++
		}
	}
	return lines
}

// textFragments returns the text nodes below n in document order.
func textFragments(n *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				out = append(out, c.Data)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// findFirst returns the first descendant of n, in document order, that satisfies match.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
