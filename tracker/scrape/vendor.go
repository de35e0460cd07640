package scrape

import (
	"strings"

	"tautracker/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Vendor reads a shop page: the vendor's name plus one entry per
// purchasable item button. Items without a slug or a parseable price
// are skipped; a page with zero usable items yields no record.
func Vendor(doc *goquery.Document) (VendorInventory, bool) {
	inventory := VendorInventory{
		Vendor: htmlutil.CleanText(doc.Find(".vendor-title").First().Text()),
	}
	if inventory.Vendor == "" {
		return VendorInventory{}, false
	}

	doc.Find(".vendor-item").Each(func(_ int, button *goquery.Selection) {
		slug := button.AttrOr("data-item-slug", "")
		if slug == "" {
			slug = slugFromHref(button.Find("a.item-link").First().AttrOr("href", ""))
		}
		if slug == "" {
			return
		}
		price, ok := htmlutil.ParseAmount(button.Find(".currency-amount").First().Text())
		if !ok || price <= 0 {
			return
		}
		currency := htmlutil.CleanText(button.Find(".currency-label").First().Text())
		if currency == "" {
			currency = "credits"
		}
		inventory.Items = append(inventory.Items, VendorItem{
			Slug:     slug,
			Price:    price,
			Currency: currency,
		})
	})

	if len(inventory.Items) == 0 {
		return VendorInventory{}, false
	}
	return inventory, true
}

func slugFromHref(href string) string {
	href, _, _ = strings.Cut(href, "?")
	href = strings.TrimSuffix(href, "/")
	idx := strings.LastIndexByte(href, '/')
	if idx < 0 {
		return href
	}
	return href[idx+1:]
}
