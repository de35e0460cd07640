package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tautracker/tracker/api"
	"tautracker/tracker/notify"
	"tautracker/tracker/page"
	"tautracker/tracker/scrape"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Router decides per page which extractors fire and turns every
// submission outcome into a notification. Submissions run in the
// background; call Wait before exiting.
type Router struct {
	cfg     Config
	api     *api.Client
	surface *notify.Surface
	stale   *expirable.LRU[string, bool]
	wg      sync.WaitGroup
}

func NewRouter(cfg Config, client *api.Client, surface *notify.Surface) *Router {
	return &Router{
		cfg:     cfg,
		api:     client,
		surface: surface,
		stale:   expirable.NewLRU[string, bool](256, nil, time.Minute*10),
	}
}

// Wait blocks until all in-flight submissions have completed and
// rendered their notifications.
func (r *Router) Wait() {
	r.wg.Wait()
}

// Route dispatches one fetched page. Item pages carry no station
// banner and are handled on their own; everything else needs a
// resolved location or is skipped entirely.
func (r *Router) Route(ctx context.Context, p *page.Page) {
	path := p.Path()
	if strings.HasPrefix(path, "/item/") {
		r.handleItem(ctx, p)
		return
	}

	loc, ok := scrape.Station(p.Doc)
	if !ok {
		slog.DebugContext(ctx, "no station banner, not a game-world page", "path", path)
		return
	}

	r.checkStaleness(ctx, loc)

	switch {
	case strings.HasPrefix(path, "/career"):
		r.handleCareer(ctx, p, loc)
	case strings.HasPrefix(path, "/area/local-shuttles"):
		r.handleShuttles(ctx, p, loc)
	case strings.HasPrefix(path, "/area/docks"):
		r.handleDocks(ctx, p, loc)
	case strings.HasPrefix(path, "/area/vendors"):
		r.handleVendor(ctx, p, loc)
	default:
		slog.DebugContext(ctx, "no extractor for path", "path", path)
	}
}

// checkStaleness asks the tracker whether the station's career data
// wants a refresh. The lookup is memoized so a multi-page scan of the
// same station asks once. Failures only log, the side channel must
// not get in the way of extraction.
func (r *Router) checkStaleness(ctx context.Context, loc scrape.Location) {
	key := loc.System + "/" + loc.Station
	needsUpdate, hit := r.stale.Get(key)
	if !hit {
		var err error
		needsUpdate, err = r.api.StationNeedsUpdate(ctx, loc)
		if err != nil {
			slog.WarnContext(ctx, "staleness lookup failed", "station", loc.Station, "err", err)
			return
		}
		r.stale.Add(key, needsUpdate)
	}
	if needsUpdate {
		r.surface.Notifyf(
			notify.Warning,
			"career task data for %s is stale - visit /career to check tasks",
			loc.Station,
		)
	}
}

// requireToken renders the configuration prompt once per submission
// attempt. Without a token no network call is made.
func (r *Router) requireToken() bool {
	if r.cfg.Token != "" {
		return true
	}
	r.surface.Notify(
		"Please configure your access token in the tracker preferences",
		notify.Warning,
	)
	return false
}

func (r *Router) submit(fn func()) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		fn()
	}()
}

func (r *Router) handleCareer(ctx context.Context, p *page.Page, loc scrape.Location) {
	record, err := scrape.Career(p.Doc)
	if err != nil {
		r.surface.Notify(
			`cannot extract career data while the "Current Ventures" box is missing`,
			notify.Warning,
		)
		return
	}
	if len(record.Tasks) == 0 {
		slog.DebugContext(ctx, "no career tasks on page")
		return
	}
	if !r.requireToken() {
		return
	}

	r.submit(func() {
		res, err := r.api.AddCareerTasks(ctx, loc, record)
		if err != nil {
			r.surface.Notify(err.Error(), notify.Error)
			return
		}
		if !res.Recorded {
			r.surface.Notify("error recording tasks: "+res.Message, notify.Error)
			return
		}

		message := "Tasks recorded. +1 brownie point!"
		if res.Factor != nil {
			message += " Current factor: " + notify.FormatFactor(*res.Factor) + "."
		}
		r.surface.Notify(message, notify.Success)

		if len(res.SystemFactors) > 0 {
			r.surface.Notify(
				"Other stations in this system:\n"+
					notify.FactorTable(res.SystemFactors, r.surface.Styled()),
				notify.Info,
			)
		} else {
			r.surface.Notify(
				"No data from other stations in this system is available right now.",
				notify.Info,
			)
		}
	})
}

func (r *Router) handleShuttles(ctx context.Context, p *page.Page, loc scrape.Location) {
	schedules := scrape.Shuttles(p.Doc)
	r.submitDistances(ctx, loc, schedules)
}

func (r *Router) submitDistances(ctx context.Context, loc scrape.Location, schedules []scrape.Schedule) {
	if len(schedules) == 0 {
		slog.DebugContext(ctx, "no schedules with valid legs on page")
		return
	}
	if !r.requireToken() {
		return
	}

	r.submit(func() {
		res, err := r.api.AddDistances(ctx, loc, schedules)
		if err != nil {
			r.surface.Notify(err.Error(), notify.Error)
			return
		}
		if !res.Recorded {
			r.surface.Notify("error recording station distances: "+res.Message, notify.Error)
			return
		}
		r.surface.Notify("Station distances recorded. +1 brownie point!", notify.Success)
	})
}

func (r *Router) handleDocks(ctx context.Context, p *page.Page, loc scrape.Location) {
	switch scrape.DocksVariantOf(p.Doc) {
	case scrape.DocksCockpit:
		r.submitDistances(ctx, loc, scrape.CockpitDistances(p.Doc))

	case scrape.DocksGround:
		quote, hasFuel := scrape.Fuel(p.Doc)
		ships := scrape.Ships(p.Doc)
		if !hasFuel && len(ships) == 0 {
			slog.DebugContext(ctx, "nothing to report from docks")
			return
		}
		if !r.requireToken() {
			return
		}
		// fuel and ships are unrelated submissions, they run and
		// report independently
		if hasFuel {
			r.submit(func() { r.submitFuel(ctx, loc, quote) })
		}
		if len(ships) > 0 {
			r.submit(func() { r.submitShips(ctx, loc, ships) })
		}

	default:
		slog.DebugContext(ctx, "unrecognized docks layout", "path", p.Path())
	}
}

func (r *Router) submitFuel(ctx context.Context, loc scrape.Location, quote scrape.FuelQuote) {
	res, err := r.api.AddFuel(ctx, loc, quote)
	if err != nil {
		r.surface.Notify(err.Error(), notify.Error)
		return
	}
	if !res.Recorded {
		r.surface.Notify("error recording fuel price: "+res.Message, notify.Error)
		return
	}

	message := "Fuel price recorded. +1 brownie point!"
	if len(res.Systems) == 0 {
		r.surface.Notify(message, notify.Success)
		return
	}
	if r.cfg.CompactFuelDisplay {
		known := 0
		for _, stations := range res.Systems {
			known += len(stations)
		}
		r.surface.Notify(fmt.Sprintf("%s (%d station prices known)", message, known), notify.Success)
		return
	}
	r.surface.Notify(message, notify.Success)
	r.surface.Notify("Known fuel prices:\n"+notify.FuelPriceTable(res.Systems), notify.Info)
}

func (r *Router) submitShips(ctx context.Context, loc scrape.Location, ships []scrape.Ship) {
	res, err := r.api.AddShips(ctx, loc, ships)
	if err != nil {
		r.surface.Notify(err.Error(), notify.Error)
		return
	}
	if !res.Success {
		r.surface.Notify("error recording ships: "+res.Message, notify.Error)
		return
	}
	message := fmt.Sprintf("Recorded %d ship sightings.", res.NumRecorded)
	if res.Message != "" {
		message += " " + res.Message
	}
	r.surface.Notify(message, notify.Success)
}

func (r *Router) handleVendor(ctx context.Context, p *page.Page, loc scrape.Location) {
	inventory, ok := scrape.Vendor(p.Doc)
	if !ok {
		slog.DebugContext(ctx, "no purchasable items on page")
		return
	}
	if !r.requireToken() {
		return
	}

	r.submit(func() {
		res, err := r.api.AddVendorInventory(ctx, loc, inventory)
		if err != nil {
			r.surface.Notify(err.Error(), notify.Error)
			return
		}
		if !res.Recorded {
			r.surface.Notify("error recording vendor inventory: "+res.Message, notify.Error)
			return
		}
		message := "Vendor inventory recorded."
		if res.Message != "" {
			message += " " + res.Message
		}
		r.surface.Notify(message, notify.Success)
	})
}

func (r *Router) handleItem(ctx context.Context, p *page.Page) {
	item, ok := scrape.Item(p.Doc, p.URL)
	if !ok {
		slog.DebugContext(ctx, "no item stat sheet on page", "path", p.Path())
		return
	}
	if !r.requireToken() {
		return
	}

	r.submit(func() {
		res, err := r.api.AddItem(ctx, item)
		if err != nil {
			r.surface.Notify(err.Error(), notify.Error)
			return
		}
		if !res.Recorded {
			r.surface.Notify("error recording item "+item.Name+": "+res.Message, notify.Error)
			return
		}
		message := "Item " + item.Name + " recorded."
		if res.Message != "" {
			message += " " + res.Message
		}
		r.surface.Notify(message, notify.Success)
	})
}
