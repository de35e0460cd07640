package scrape

import (
	"regexp"

	"tautracker/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// the banner reads "<station>, <system> system", e.g.
// "Tau Station, Sol system". Anything else (busts, activity pages)
// means we are not looking at a regular game-world page.
var stationBanner = regexp.MustCompile(`^([^,]+), (.*?)\s+system`)

// Station resolves the current station and system from the page
// banner. Callers must treat a false return as "not a game-world
// page" and skip extraction entirely.
func Station(doc *goquery.Document) (Location, bool) {
	banner := htmlutil.CleanText(doc.Find("span.station").First().Text())
	match := stationBanner.FindStringSubmatch(banner)
	if match == nil {
		return Location{}, false
	}
	loc := Location{
		Station: htmlutil.CleanText(match[1]),
		System:  htmlutil.CleanText(match[2]),
	}
	if loc.Station == "" || loc.System == "" {
		return Location{}, false
	}
	return loc, true
}
