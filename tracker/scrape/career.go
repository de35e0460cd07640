package scrape

import (
	"errors"
	"strings"

	"tautracker/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// ErrVenturesHidden means the "Current Ventures" box is collapsed or
// absent, so career data cannot be read at all. The caller should
// tell the player rather than submit nothing silently.
var ErrVenturesHidden = errors.New("employment panel is not visible")

// Career reads the player's career, rank and per-task progress from
// the employment panel. Task amounts are kept verbatim as displayed.
func Career(doc *goquery.Document) (CareerTasks, error) {
	if doc.Find("#employment-nav-heading").Length() == 0 {
		return CareerTasks{}, ErrVenturesHidden
	}

	var record CareerTasks
	doc.Find("div#employment_panel li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		if !strings.Contains(li.Text(), "Career") {
			return true
		}
		line := htmlutil.CleanText(li.Find("a").First().Text())
		career, rank, found := strings.Cut(line, " - ")
		if found {
			record.Career = htmlutil.CleanText(career)
			record.Rank = htmlutil.CleanText(rank)
		}
		return false
	})

	record.Tasks = map[string]string{}
	doc.Find(".table-career-tasks").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			name := htmlutil.CleanText(row.Find("td").First().Text())
			if name == "" {
				return
			}
			amount := htmlutil.CleanText(row.Find(".currency-amount").First().Text())
			record.Tasks[name] = amount
		})
	})

	return record, nil
}
