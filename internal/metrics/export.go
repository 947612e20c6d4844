package metrics

import (
	"sort"
	"strconv"
	"strings"
)

// Column names of a CSV row, in order.
var csvColumns = []string{
	"Map name", "groupID",
	"Empty", "Interesting", "Enemy", "Hazards", "Rewards",
	"Leniency", "Adj. Leniency", "Path Leniency", "Completable",
	"Linearity", "Negative Space", "Density", "Gaps",
	"Jumps", "Required Jumps", "Reward Jumps",
	"placement constraint violations", "usage constraint violations",
	"Furthest Column",
}

const csvSep = ", "

// CSVHeader returns the header line matching Report.CSVRow.
func CSVHeader() string {
	return strings.Join(csvColumns, csvSep)
}

// CSVRow renders the report as one comma-and-space separated line.
func (r Report) CSVRow(name string, group int) string {
	fields := []string{
		name,
		strconv.Itoa(group),
		strconv.Itoa(r.Empty),
		strconv.Itoa(r.Interesting),
		strconv.Itoa(r.Enemies),
		strconv.Itoa(r.Hazards),
		strconv.Itoa(r.Rewards),
		strconv.Itoa(r.Leniency),
		formatFloat(r.AdjustedLeniency),
		formatFloat(r.PathLeniency),
		strconv.FormatBool(r.Completable),
		formatFloat(r.Linearity),
		formatFloat(r.NegativeSpace),
		formatFloat(r.Density),
		strconv.Itoa(r.Gaps),
		strconv.Itoa(r.Jumps),
		strconv.Itoa(r.RequiredJumps),
		strconv.Itoa(r.RewardJumps),
		strconv.Itoa(r.PlacementViolations),
		strconv.Itoa(r.UsageViolations),
		strconv.Itoa(r.FurthestColumn),
	}
	return strings.Join(fields, csvSep)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Bundle is a set of named metric values, the input to fitness evaluation.
type Bundle map[string]float64

// Bundle keys.
const (
	KeyEmpty         = "empty"
	KeyInterest      = "interest"
	KeyEnemies       = "enemies"
	KeyHazards       = "hazards"
	KeyRewards       = "rewards"
	KeyLeniency      = "leniency"
	KeyAdjLeniency   = "adjleniency"
	KeyPathLeniency  = "pathleniency"
	KeyCompletable   = "completable"
	KeyLinearity     = "linearity"
	KeyNegativeSpace = "negativespace"
	KeyDensity       = "density"
	KeyGaps          = "gaps"
	KeyJumps         = "jumps"
	KeyReqJumps      = "reqJumps"
	KeyRewardJumps   = "rewardJumps"
	KeyPlacement     = "placement"
	KeyUsage         = "usage"
	KeyReachable     = "reachable"
)

// Bundle converts the report into named values. Completable becomes 0 or 1.
func (r Report) Bundle() Bundle {
	completable := 0.0
	if r.Completable {
		completable = 1
	}
	return Bundle{
		KeyEmpty:         float64(r.Empty),
		KeyInterest:      float64(r.Interesting),
		KeyEnemies:       float64(r.Enemies),
		KeyHazards:       float64(r.Hazards),
		KeyRewards:       float64(r.Rewards),
		KeyLeniency:      float64(r.Leniency),
		KeyAdjLeniency:   r.AdjustedLeniency,
		KeyPathLeniency:  r.PathLeniency,
		KeyCompletable:   completable,
		KeyLinearity:     r.Linearity,
		KeyNegativeSpace: r.NegativeSpace,
		KeyDensity:       r.Density,
		KeyGaps:          float64(r.Gaps),
		KeyJumps:         float64(r.Jumps),
		KeyReqJumps:      float64(r.RequiredJumps),
		KeyRewardJumps:   float64(r.RewardJumps),
		KeyPlacement:     float64(r.PlacementViolations),
		KeyUsage:         float64(r.UsageViolations),
		KeyReachable:     float64(r.FurthestColumn),
	}
}

// BundleKeys lists every key Report.Bundle sets, sorted.
func BundleKeys() []string {
	b := Report{}.Bundle()
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
