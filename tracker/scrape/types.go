// Package scrape turns Tau Station page markup into typed records.
// Every extractor is a pure function over a parsed document and fails
// closed: a missing required sub-element drops the item (or the whole
// record) instead of producing partial data.
package scrape

// Location identifies where in the game world a page was rendered.
type Location struct {
	Station string
	System  string
}

// CareerTasks is the progress snapshot from the employment panel.
// Amounts stay in their displayed string form, the tracker server
// keeps the game-side formatting.
type CareerTasks struct {
	Career string
	Rank   string
	Tasks  map[string]string
}

type ShuttleLeg struct {
	Departure  string
	DistanceKm int
	TravelTime string
	Fare       string
}

type Schedule struct {
	Destination string
	Legs        []ShuttleLeg
}

type Ship struct {
	Name         string
	Captain      string
	Registration string
	Class        string
}

// FuelQuote is the price a dock asked for one concrete refuel need.
type FuelQuote struct {
	FuelGrams float64
	Price     float64
}

type VendorItem struct {
	Slug     string
	Price    float64
	Currency string
}

type VendorInventory struct {
	Vendor string
	Items  []VendorItem
}

type WeaponAspect struct {
	Accuracy       float64
	HandToHand     bool
	Range          string
	WeaponType     string
	PiercingDamage float64
	ImpactDamage   float64
	EnergyDamage   float64
}

type ArmorAspect struct {
	PiercingDefense float64
	ImpactDefense   float64
	EnergyDefense   float64
}

type MedicalAspect struct {
	StrengthBoost     float64
	AgilityBoost      float64
	StaminaBoost      float64
	IntelligenceBoost float64
	SocialBoost       float64
	BaseToxicity      float64
}

type FoodAspect struct {
	TargetGenotype   string
	AffectedStat     string
	EffectSize       string
	DurationSegments float64
}

// ItemRecord is an item stat sheet. Exactly one aspect is set for
// the four recognized types, none for anything else.
type ItemRecord struct {
	Slug        string
	Name        string
	MassKg      float64
	Rarity      string
	Type        string
	Tier        int
	Description string

	Weapon  *WeaponAspect
	Armor   *ArmorAspect
	Medical *MedicalAspect
	Food    *FoodAspect
}
