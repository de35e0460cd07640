package api

// ScriptVersion rides along with every payload so the tracker can
// tell outdated agents apart.
const ScriptVersion = "0.4.0"

// Most add endpoints acknowledge with a `recorded` flag and a free
// form message explaining a rejection.
type RecordedResponse struct {
	Recorded bool   `json:"recorded"`
	Message  string `json:"message"`
}

type CareerTaskResponse struct {
	Recorded bool   `json:"recorded"`
	Message  string `json:"message"`
	// comparison metric for the submitting station, absent when the
	// server has nothing to compare against
	Factor *float64 `json:"factor"`
	// latest factor per other station in the same system
	SystemFactors map[string]float64 `json:"system_factors"`
}

type FuelResponse struct {
	Recorded bool   `json:"recorded"`
	Message  string `json:"message"`
	// known price per gram, keyed by system then station
	Systems map[string]map[string]float64 `json:"systems"`
}

// The ship endpoint is the odd one out: it signals with `success`.
type ShipResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	NumRecorded int    `json:"num_recorded"`
}

type needsUpdateResponse struct {
	NeedsUpdate bool `json:"needs_update"`
}
