// Package api is the client for the Universal Tracker service: plain
// JSON over HTTP, one POST per record kind plus a staleness lookup.
package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"tautracker/lib/telemetry"
	"tautracker/tracker/scrape"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http  *resty.Client
	token string
}

// NewClient builds a tracker client. baseUrl is expected to carry the
// API version prefix, e.g. "https://tracker.example.com/v1/".
func NewClient(baseUrl, token string) *Client {
	http := resty.New()
	http.SetBaseURL(baseUrl)
	http.SetTimeout(time.Second * 30)
	http.SetHeader("content-type", "application/json")
	telemetry.InstrumentResty(http, "tautracker.tracker.api")

	return &Client{http: http, token: token}
}

func (c *Client) post(ctx context.Context, endpoint string, payload map[string]any, out any) error {
	payload["token"] = c.token
	payload["script_version"] = ScriptVersion

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(out).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("cannot talk to %s: %w", endpoint, err)
	}
	if res.IsError() {
		return fmt.Errorf("cannot talk to %s: %s", endpoint, res.Status())
	}
	return nil
}

func (c *Client) AddCareerTasks(ctx context.Context, loc scrape.Location, record scrape.CareerTasks) (CareerTaskResponse, error) {
	var out CareerTaskResponse
	err := c.post(ctx, "career-task/add", map[string]any{
		"station": loc.Station,
		"system":  loc.System,
		"career":  record.Career,
		"rank":    record.Rank,
		"tasks":   record.Tasks,
	}, &out)
	return out, err
}

func (c *Client) AddDistances(ctx context.Context, loc scrape.Location, schedules []scrape.Schedule) (RecordedResponse, error) {
	encoded := make([]map[string]any, 0, len(schedules))
	for _, schedule := range schedules {
		distances := make([][2]any, 0, len(schedule.Legs))
		for _, leg := range schedule.Legs {
			distances = append(distances, [2]any{leg.Departure, leg.DistanceKm})
		}
		encoded = append(encoded, map[string]any{
			"destination": schedule.Destination,
			"distances":   distances,
		})
	}

	var out RecordedResponse
	err := c.post(ctx, "distance/add", map[string]any{
		"source":    loc.Station,
		"system":    loc.System,
		"schedules": encoded,
	}, &out)
	return out, err
}

func (c *Client) AddFuel(ctx context.Context, loc scrape.Location, quote scrape.FuelQuote) (FuelResponse, error) {
	var out FuelResponse
	err := c.post(ctx, "fuel/add", map[string]any{
		"station": loc.Station,
		"system":  loc.System,
		"fuel_g":  quote.FuelGrams,
		"price":   quote.Price,
	}, &out)
	return out, err
}

func (c *Client) AddShips(ctx context.Context, loc scrape.Location, ships []scrape.Ship) (ShipResponse, error) {
	encoded := make([]map[string]any, 0, len(ships))
	for _, ship := range ships {
		encoded = append(encoded, map[string]any{
			"name":         ship.Name,
			"captain":      ship.Captain,
			"registration": ship.Registration,
			"class":        ship.Class,
		})
	}

	var out ShipResponse
	err := c.post(ctx, "ship/add", map[string]any{
		"station": loc.Station,
		"system":  loc.System,
		"ships":   encoded,
	}, &out)
	return out, err
}

func (c *Client) AddVendorInventory(ctx context.Context, loc scrape.Location, inventory scrape.VendorInventory) (RecordedResponse, error) {
	encoded := make([]map[string]any, 0, len(inventory.Items))
	for _, item := range inventory.Items {
		encoded = append(encoded, map[string]any{
			"slug":     item.Slug,
			"price":    item.Price,
			"currency": item.Currency,
		})
	}

	var out RecordedResponse
	err := c.post(ctx, "vendor-inventory/add", map[string]any{
		"station":   loc.Station,
		"system":    loc.System,
		"vendor":    inventory.Vendor,
		"inventory": encoded,
	}, &out)
	return out, err
}

func (c *Client) AddItem(ctx context.Context, item scrape.ItemRecord) (RecordedResponse, error) {
	payload := map[string]any{
		"slug":        item.Slug,
		"name":        item.Name,
		"mass_kg":     item.MassKg,
		"rarity":      item.Rarity,
		"type":        item.Type,
		"tier":        item.Tier,
		"description": item.Description,
	}
	// type specific stats ride flattened beside the base fields
	if w := item.Weapon; w != nil {
		payload["accuracy"] = w.Accuracy
		payload["hand_to_hand"] = w.HandToHand
		payload["range"] = w.Range
		payload["weapon_type"] = w.WeaponType
		payload["piercing_damage"] = w.PiercingDamage
		payload["impact_damage"] = w.ImpactDamage
		payload["energy_damage"] = w.EnergyDamage
	}
	if a := item.Armor; a != nil {
		payload["piercing_defense"] = a.PiercingDefense
		payload["impact_defense"] = a.ImpactDefense
		payload["energy_defense"] = a.EnergyDefense
	}
	if m := item.Medical; m != nil {
		payload["strength_boost"] = m.StrengthBoost
		payload["agility_boost"] = m.AgilityBoost
		payload["stamina_boost"] = m.StaminaBoost
		payload["intelligence_boost"] = m.IntelligenceBoost
		payload["social_boost"] = m.SocialBoost
		payload["base_toxicity"] = m.BaseToxicity
	}
	if f := item.Food; f != nil {
		payload["target_genotype"] = f.TargetGenotype
		payload["affected_stat"] = f.AffectedStat
		payload["effect_size"] = f.EffectSize
		payload["duration_segments"] = f.DurationSegments
	}

	var out RecordedResponse
	err := c.post(ctx, "item/add", payload, &out)
	return out, err
}

// StationNeedsUpdate asks whether the career data the tracker holds
// for a station has gone stale.
func (c *Client) StationNeedsUpdate(ctx context.Context, loc scrape.Location) (bool, error) {
	endpoint := fmt.Sprintf(
		"career-task/station-needs-update/%s/%s",
		url.PathEscape(loc.System),
		url.PathEscape(loc.Station),
	)

	var out needsUpdateResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(endpoint)
	if err != nil {
		return false, fmt.Errorf("cannot talk to %s: %w", endpoint, err)
	}
	if res.IsError() {
		return false, fmt.Errorf("cannot talk to %s: %s", endpoint, res.Status())
	}
	return out.NeedsUpdate, nil
}
