package scrape

import (
	"tautracker/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// The docks area renders two distinct layouts: the cockpit view while
// seated in your own ship (inter-station departures only) and the
// ground view on the dock itself (fuel vendor plus berthed ships).
type DocksVariant int

const (
	DocksUnknown DocksVariant = iota
	DocksCockpit
	DocksGround
)

func DocksVariantOf(doc *goquery.Document) DocksVariant {
	if doc.Find(".cockpit-departures").Length() > 0 {
		return DocksCockpit
	}
	if doc.Find(".docks-ground").Length() > 0 {
		return DocksGround
	}
	return DocksUnknown
}

// CockpitDistances reads the departure schedule of the cockpit view,
// which reuses the shuttle schedule markup.
func CockpitDistances(doc *goquery.Document) []Schedule {
	return schedulesIn(doc.Find(".cockpit-departures"))
}

// Fuel scans every own-ship panel on the ground view and returns the
// single quote for the largest refuel need (max gauge minus current
// gauge). Ties keep the first panel encountered. Gauges that are full
// or unpriced are discarded.
func Fuel(doc *goquery.Document) (FuelQuote, bool) {
	var best FuelQuote
	found := false

	doc.Find(".own-ship-details").Each(func(_ int, panel *goquery.Selection) {
		gauge := panel.Find(".fuel-gauge").First()
		max, okMax := htmlutil.ParseAmount(gauge.AttrOr("data-max", ""))
		current, okCurrent := htmlutil.ParseAmount(gauge.AttrOr("data-current", ""))
		if !okMax || !okCurrent {
			return
		}
		need := max - current
		if need <= 0 {
			return
		}
		price, ok := htmlutil.ParseAmount(panel.Find(".fuel-price .currency-amount").First().Text())
		if !ok || price <= 0 {
			return
		}
		if !found || need > best.FuelGrams {
			best = FuelQuote{FuelGrams: need, Price: price}
			found = true
		}
	})

	return best, found
}

// Ships merges the player's own berthed ships with any visiting ships
// listed in the docks schedule into one roster. Visiting ships often
// hide their papers; registration and class then default to
// "unknown" so the sighting still counts.
func Ships(doc *goquery.Document) []Ship {
	var ships []Ship

	doc.Find(".own-ships .ship-panel").Each(func(_ int, panel *goquery.Selection) {
		ship := Ship{
			Name:         htmlutil.CleanText(panel.Find(".ship-name").First().Text()),
			Captain:      htmlutil.CleanText(panel.Find(".ship-captain").First().Text()),
			Registration: htmlutil.CleanText(panel.Find(".ship-registration").First().Text()),
			Class:        htmlutil.CleanText(panel.Find(".ship-class").First().Text()),
		}
		if ship.Name == "" {
			return
		}
		ships = append(ships, ship)
	})

	doc.Find(".docks-schedule tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		// header rows carry th cells only
		if cells.Length() == 0 {
			return
		}
		ship := Ship{
			Name:         htmlutil.CleanText(cells.Eq(0).Text()),
			Captain:      htmlutil.CleanText(cells.Eq(1).Text()),
			Registration: htmlutil.CleanText(cells.Eq(2).Text()),
			Class:        htmlutil.CleanText(cells.Eq(3).Text()),
		}
		if ship.Name == "" {
			return
		}
		if ship.Registration == "" {
			ship.Registration = "unknown"
		}
		if ship.Class == "" {
			ship.Class = "unknown"
		}
		ships = append(ships, ship)
	})

	return ships
}
