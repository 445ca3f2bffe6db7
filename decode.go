package analytics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fundview/analytics/date"
)

// This file decodes the two input shapes the backend publishes, in JSONL
// form (one JSON object per line, human-readable and git-friendly):
//
//	{"on":"2025-07-01","value":123.45}                                  value series
//	{"on":"2025-07-01","asset":"AAPL","pnl":50,"volume":100,"won":true} trade records
//
// Value series are canonicalized through date.History: lines may arrive
// unsorted and a duplicated date keeps the last value seen. That honors
// the normalizer's precondition of an ascending, deduplicated series.

// DecodeObservations parses a JSONL stream of dated values into a
// canonical history. filename is for error messages only.
func DecodeObservations(filename string, r io.Reader) (*date.History[float64], error) {
	// to parse a json, we use a dedicated local struct with tag annotation.
	type jpoint struct {
		On    date.Date `json:"on"`
		Value float64   `json:"value"`
	}

	h := new(date.History[float64])
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		var jp jpoint
		if err := json.Unmarshal([]byte(line), &jp); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", filename, line, err)
		}
		h.Append(jp.On, jp.Value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %q: %w", filename, err)
	}
	return h, nil
}

// DecodeTradeRecords parses a JSONL stream of trade records, in input
// order. filename is for error messages only.
func DecodeTradeRecords(filename string, r io.Reader) ([]TradeRecord, error) {
	type jtrade struct {
		On     date.Date `json:"on"`
		Asset  string    `json:"asset"`
		PnL    float64   `json:"pnl"`
		Volume float64   `json:"volume"`
		Won    bool      `json:"won"`
	}

	records := []TradeRecord{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		var jt jtrade
		if err := json.Unmarshal([]byte(line), &jt); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", filename, line, err)
		}
		records = append(records, TradeRecord{
			Asset:  jt.Asset,
			Date:   jt.On,
			PnL:    jt.PnL,
			Volume: jt.Volume,
			Won:    jt.Won,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %q: %w", filename, err)
	}
	return records, nil
}
