package llm

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// ModelCost is the list price of a model in USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of one call.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1_000_000
}

//go:embed pricing.toml
var pricingTOML string

var priceTable = sync.OnceValues(func() (map[string]ModelCost, error) {
	return parsePricing(pricingTOML)
})

// parsePricing reads vendor tables of model = [input, output] pairs.
func parsePricing(data string) (map[string]ModelCost, error) {
	var vendors map[string]map[string][2]float64
	if _, err := toml.Decode(data, &vendors); err != nil {
		return nil, fmt.Errorf("parse pricing table: %w", err)
	}
	costs := make(map[string]ModelCost)
	for _, models := range vendors {
		for id, p := range models {
			costs[id] = ModelCost{InputPerMTok: p[0], OutputPerMTok: p[1]}
		}
	}
	return costs, nil
}

// Snapshot and preview suffixes, e.g. -20250929, -2024-07-18, -001, -exp.
var modelSuffix = regexp.MustCompile(`-(\d{8}|\d{4}-\d{2}-\d{2}|\d{3}|exp|preview|latest)$`)

// LookupCost returns the price of modelID or nil when it is unknown. IDs
// are matched after dropping an OpenRouter vendor prefix and snapshot
// suffixes, so "google/gemini-2.0-flash-001" prices as gemini-2.0-flash.
func LookupCost(modelID string) *ModelCost {
	costs, err := priceTable()
	if err != nil {
		return nil
	}
	id := strings.ToLower(modelID)
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		id = id[i+1:]
	}
	for {
		if c, ok := costs[id]; ok {
			return &c
		}
		trimmed := modelSuffix.ReplaceAllString(id, "")
		if trimmed == id {
			return nil
		}
		id = trimmed
	}
}
