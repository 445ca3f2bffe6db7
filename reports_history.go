package analytics

import (
	"github.com/fundview/analytics/date"
)

// HistoryReport represents the normalized value history of one asset.
type HistoryReport struct {
	Asset    string
	Currency string
	Entries  []NormalizedPoint
}

// NewHistoryReport normalizes the value history of an asset.
func NewHistoryReport(asset, currency string, h *date.History[float64]) *HistoryReport {
	return &HistoryReport{
		Asset:    asset,
		Currency: currency,
		Entries:  Normalize(Observations(h)),
	}
}

// Observations flattens a canonical history into the core's input shape,
// ascending by date.
func Observations(h *date.History[float64]) []Observation {
	obs := make([]Observation, 0, h.Len())
	for on, value := range h.Values() {
		obs = append(obs, Observation{Date: on, Value: value})
	}
	return obs
}
