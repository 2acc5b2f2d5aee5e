// Package lyrics finds song lyrics on the lyrics site.
//
// # Pipeline
//
// [Client.Lyrics] runs the whole lookup for one track:
//  1. [Slug] reduces artist and title to the site's URL tokens (lowercase ASCII letters and digits only).
//  2. [URL] builds https://<site>/lyrics/<artist>/<title>.html.
//  3. [Client.Get] downloads the page, waiting on a rate limiter first.
//  4. [Extract] pulls the lyric lines out of the document.
//
// # Extraction
//
// The site's markup carries no ids around the lyrics. [Extract] walks body →
// "container main-page" → "row" → "col-xs-12 col-lg-8 text-center" by exact class
// attribute, then takes the first div without any class attribute. Its text nodes
// become lines after dropping the two credit fragments, trimming, removing injected
// ad config and collapsing doubled blank lines.
//
// Any failure is reported as [shared.ErrLyricsNotFound]; [OrNotFound] turns that into
// the single-line [NotFoundText] shown to the user.
package lyrics
