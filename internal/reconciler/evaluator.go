package reconciler

import "github.com/fekuna/omnipos-backoffice-service/internal/model"

// SelectRule picks the threshold rule that applies to an item with the
// given quantity: among active rules whose breakpoint value >= quantity,
// the one with the highest status severity. A quantity of zero matches
// every rule with value >= 0, which is how items reach out_of_stock.
// Returns false when no rule matches.
func SelectRule(rules []model.ThresholdRule, quantity float64) (model.ThresholdRule, bool) {
	var best model.ThresholdRule
	found := false
	for _, r := range rules {
		if !r.Active || r.Value < quantity {
			continue
		}
		if !found || r.Severity > best.Severity {
			best = r
			found = true
		}
	}
	return best, found
}

// GroupByUnit indexes rules by their unit so a pass resolves each item with
// one map lookup.
func GroupByUnit(rules []model.ThresholdRule) map[int64][]model.ThresholdRule {
	byUnit := make(map[int64][]model.ThresholdRule, len(rules))
	for _, r := range rules {
		byUnit[r.UnitID] = append(byUnit[r.UnitID], r)
	}
	return byUnit
}
