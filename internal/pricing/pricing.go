// Package pricing resolves free-text item descriptions to estimated INR costs.
// It backs the get_real_world_cost tool exposed to the model.
package pricing

import (
	"fmt"
	"strings"
)

// FallbackCost is substituted whenever an estimate is missing or unparseable.
const FallbackCost = 100000

// The table is ordered: the first substring hit wins, so broader phrases must
// come after the more specific ones they overlap with.
var costTable = []struct {
	substr string
	reply  string
}{
	{"commercial oven", "The total cost for the commercial oven and high-end stand mixer is estimated to be ₹130,000."},
	{"best equipment", "The total cost for the commercial oven and high-end stand mixer is estimated to be ₹130,000."},
	{"retire parents", "An estimate for a retirement corpus yielding ₹50,000 per month for 20 years in India is approximately ₹1,20,00,000."},
	{"bicycle", "A good quality geared bicycle in India is estimated to cost ₹15,000."},
	{"bike", "A mid-range commuter motorcycle in India is estimated to cost ₹1,10,000 on-road."},
	{"iphone", "The latest iPhone model is estimated to cost ₹80,000 in India."},
	{"wedding", "A modest Indian wedding is estimated to cost ₹15 lakh including venue and catering."},
	{"europe trip", "A two-week Europe trip for one person is estimated to cost ₹3,50,000 including flights."},
	{"car", "A mid-segment hatchback in India is estimated to cost ₹8,00,000 on-road."},
}

// LookupCost returns a cost estimate sentence for an item query. The location
// is accepted for interface parity with the tool declaration but the table is
// location-agnostic. Unknown items get the generic startup-cost fallback.
func LookupCost(itemQuery, location string) string {
	q := strings.ToLower(itemQuery)
	for _, entry := range costTable {
		if strings.Contains(q, entry.substr) {
			return entry.reply
		}
	}
	return fmt.Sprintf("Cannot find specific cost for '%s'. Assuming a general project startup cost of ₹100,000.", itemQuery)
}
