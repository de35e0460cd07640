package scrape

import (
	"net/url"
	"regexp"
	"strings"

	"tautracker/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Item reads an item stat sheet. The slug comes from the page URL
// (last path segment, query dropped); everything else comes from the
// attribute list. Stat parsing dispatches on the displayed type, an
// unrecognized type yields the base record with no extra stats. A
// page without an item name yields nothing.
func Item(doc *goquery.Document, pageURL *url.URL) (ItemRecord, bool) {
	item := ItemRecord{
		Slug: slugFromHref(pageURL.EscapedPath()),
		Name: htmlutil.CleanText(doc.Find(".item-detailed .name").First().Text()),
	}
	if item.Name == "" {
		return ItemRecord{}, false
	}

	attrs := itemAttributes(doc)
	if mass, ok := htmlutil.ParseUnitAmount(attrs["mass"]); ok {
		item.MassKg = mass
	}
	if tier, ok := htmlutil.ParseAmount(attrs["tier"]); ok {
		item.Tier = int(tier)
	}
	item.Rarity = attrs["rarity"]
	item.Type = attrs["type"]
	item.Description = htmlutil.CleanText(doc.Find(".item-detailed .item-description").First().Text())

	switch strings.ToLower(item.Type) {
	case "weapon":
		item.Weapon = weaponAspect(attrs)
	case "armor":
		item.Armor = armorAspect(attrs)
	case "medical":
		item.Medical = medicalAspect(attrs)
	case "food":
		item.Food = foodAspect(item.Description)
	}

	return item, true
}

func itemAttributes(doc *goquery.Document) map[string]string {
	attrs := map[string]string{}
	doc.Find(".item-detailed dl.item-attributes dt").Each(func(_ int, dt *goquery.Selection) {
		label := strings.ToLower(htmlutil.CleanText(dt.Text()))
		value := htmlutil.CleanText(dt.NextFiltered("dd").Text())
		if label == "" || value == "" {
			return
		}
		attrs[label] = value
	})
	return attrs
}

func weaponAspect(attrs map[string]string) *WeaponAspect {
	accuracy, ok1 := htmlutil.ParseAmount(attrs["accuracy"])
	piercing, ok2 := htmlutil.ParseAmount(attrs["piercing damage"])
	impact, ok3 := htmlutil.ParseAmount(attrs["impact damage"])
	energy, ok4 := htmlutil.ParseAmount(attrs["energy damage"])
	weaponRange := attrs["range"]
	weaponType := attrs["weapon type"]
	handToHand, ok5 := attrs["hand to hand"]
	if !(ok1 && ok2 && ok3 && ok4 && ok5) || weaponRange == "" || weaponType == "" {
		return nil
	}
	return &WeaponAspect{
		Accuracy:       accuracy,
		HandToHand:     strings.EqualFold(handToHand, "yes"),
		Range:          weaponRange,
		WeaponType:     weaponType,
		PiercingDamage: piercing,
		ImpactDamage:   impact,
		EnergyDamage:   energy,
	}
}

func armorAspect(attrs map[string]string) *ArmorAspect {
	piercing, ok1 := htmlutil.ParseAmount(attrs["piercing defense"])
	impact, ok2 := htmlutil.ParseAmount(attrs["impact defense"])
	energy, ok3 := htmlutil.ParseAmount(attrs["energy defense"])
	if !(ok1 && ok2 && ok3) {
		return nil
	}
	return &ArmorAspect{
		PiercingDefense: piercing,
		ImpactDefense:   impact,
		EnergyDefense:   energy,
	}
}

func medicalAspect(attrs map[string]string) *MedicalAspect {
	strength, ok1 := htmlutil.ParseAmount(attrs["strength boost"])
	agility, ok2 := htmlutil.ParseAmount(attrs["agility boost"])
	stamina, ok3 := htmlutil.ParseAmount(attrs["stamina boost"])
	intelligence, ok4 := htmlutil.ParseAmount(attrs["intelligence boost"])
	social, ok5 := htmlutil.ParseAmount(attrs["social boost"])
	toxicity, ok6 := htmlutil.ParseAmount(attrs["base toxicity"])
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return nil
	}
	return &MedicalAspect{
		StrengthBoost:     strength,
		AgilityBoost:      agility,
		StaminaBoost:      stamina,
		IntelligenceBoost: intelligence,
		SocialBoost:       social,
		BaseToxicity:      toxicity,
	}
}

var foodSentence = regexp.MustCompile(
	`This food gives ([A-Za-z-]+)s a (\w+) (\w+) boost for (\d+) segment`,
)

func foodAspect(description string) *FoodAspect {
	match := foodSentence.FindStringSubmatch(description)
	if match == nil {
		return nil
	}
	duration, _ := htmlutil.ParseAmount(match[4])
	return &FoodAspect{
		TargetGenotype:   match[1],
		EffectSize:       match[2],
		AffectedStat:     match[3],
		DurationSegments: duration,
	}
}
