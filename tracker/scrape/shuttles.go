package scrape

import (
	"tautracker/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Shuttles reads the departure schedule blocks of the local shuttles
// page. A leg needs a departure time and a positive distance to
// count; destinations that end up with no valid legs are dropped.
func Shuttles(doc *goquery.Document) []Schedule {
	return schedulesIn(doc.Selection)
}

func schedulesIn(sel *goquery.Selection) []Schedule {
	var schedules []Schedule
	sel.Find(".area-table-item").Each(func(_ int, block *goquery.Selection) {
		destination := htmlutil.CleanText(block.Find(".area-table-title span").First().Text())
		if destination == "" {
			return
		}

		var legs []ShuttleLeg
		block.Find("li.ticket-schedule-row").Each(func(_ int, row *goquery.Selection) {
			departure := htmlutil.CleanText(row.Find(".ticket-col-departure dd").First().Text())
			if departure == "" {
				return
			}
			distance, ok := htmlutil.ParseDistanceKm(row.Find(".ticket-col-distance dd").First().Text())
			if !ok || distance <= 0 {
				return
			}
			legs = append(legs, ShuttleLeg{
				Departure:  departure,
				DistanceKm: distance,
				TravelTime: htmlutil.CleanText(row.Find(".ticket-col-journey dd").First().Text()),
				Fare:       htmlutil.CleanText(row.Find(".ticket-col-fare .currency-amount").First().Text()),
			})
		})
		if len(legs) == 0 {
			return
		}
		schedules = append(schedules, Schedule{Destination: destination, Legs: legs})
	})
	return schedules
}
