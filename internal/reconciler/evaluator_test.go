package reconciler

import (
	"testing"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kgRules() []model.ThresholdRule {
	return []model.ThresholdRule{
		{ID: 1, UnitID: 1, Value: 10, StatusID: 2, Active: true, StatusCode: "low_stock", StatusTitle: "Low Stock", Severity: 2},
		{ID: 2, UnitID: 1, Value: 0, StatusID: 3, Active: true, StatusCode: "out_of_stock", StatusTitle: "Out of Stock", Severity: 3},
	}
}

func TestSelectRule_BelowThreshold(t *testing.T) {
	rule, ok := SelectRule(kgRules(), 5)
	require.True(t, ok)
	assert.Equal(t, "low_stock", rule.StatusCode)
}

func TestSelectRule_ZeroQuantityMatchesHighestSeverity(t *testing.T) {
	// Quantity zero satisfies both value>=0 and value>=10; the out_of_stock
	// rule wins on severity.
	rule, ok := SelectRule(kgRules(), 0)
	require.True(t, ok)
	assert.Equal(t, "out_of_stock", rule.StatusCode)
	assert.Equal(t, int64(3), rule.StatusID)
}

func TestSelectRule_AboveAllThresholds(t *testing.T) {
	_, ok := SelectRule(kgRules(), 25)
	assert.False(t, ok)
}

func TestSelectRule_ExactBoundaryMatches(t *testing.T) {
	rule, ok := SelectRule(kgRules(), 10)
	require.True(t, ok)
	assert.Equal(t, "low_stock", rule.StatusCode)
}

func TestSelectRule_InactiveRulesIgnored(t *testing.T) {
	rules := kgRules()
	rules[0].Active = false

	// Only the out_of_stock rule remains active and 5 > 0, so nothing
	// matches.
	_, ok := SelectRule(rules, 5)
	assert.False(t, ok)

	rule, ok := SelectRule(rules, 0)
	require.True(t, ok)
	assert.Equal(t, "out_of_stock", rule.StatusCode)
}

func TestSelectRule_OrderIndependent(t *testing.T) {
	rules := kgRules()
	reversed := []model.ThresholdRule{rules[1], rules[0]}

	a, okA := SelectRule(rules, 0)
	b, okB := SelectRule(reversed, 0)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a.StatusID, b.StatusID)
}

func TestSelectRule_NoRules(t *testing.T) {
	_, ok := SelectRule(nil, 0)
	assert.False(t, ok)
}

func TestGroupByUnit(t *testing.T) {
	rules := []model.ThresholdRule{
		{ID: 1, UnitID: 1},
		{ID: 2, UnitID: 2},
		{ID: 3, UnitID: 1},
	}
	byUnit := GroupByUnit(rules)
	assert.Len(t, byUnit, 2)
	assert.Len(t, byUnit[1], 2)
	assert.Len(t, byUnit[2], 1)
}
