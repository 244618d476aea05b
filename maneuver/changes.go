package maneuver

import (
	"fmt"
	"sort"

	"github.com/chandraflight/kadistate/chrono"
	"github.com/chandraflight/kadistate/telemetry"
)

// sortRank orders simultaneous changes the way the original change
// stream does: aofattmd first, then aopcadmd, aoacaseq, aopsacpr, and
// everything else last (SPEC_FULL.md §4.6 step 3).
var sortRank = map[string]int{
	"aofattmd": 1,
	"aopcadmd": 2,
	"aoacaseq": 3,
	"aopsacpr": 4,
}

func rank(msid string) int {
	if r, ok := sortRank[msid]; ok {
		return r
	}
	return 10
}

// Change is one MSID value transition.
type Change struct {
	MSID             string
	Val0, Val        string
	Date0, Date      string
	Time0, Time      float64
	Dt               float64 // set by annotateDt once the surrounding maneuver is known
}

// Changes builds the merged, sorted change stream across every series
// in msids (SPEC_FULL.md §4.6 step 3).
func Changes(msids map[string]telemetry.Series) []Change {
	var out []Change
	for msid, s := range msids {
		for i := 1; i < len(s.Times); i++ {
			v0, v1 := fmt.Sprint(s.Values[i-1]), fmt.Sprint(s.Values[i])
			if v0 == v1 {
				continue
			}
			out = append(out, Change{
				MSID: msid, Val0: v0, Val: v1,
				Date0: chrono.SecsToDate(s.Times[i-1]), Date: chrono.SecsToDate(s.Times[i]),
				Time0: s.Times[i-1], Time: s.Times[i],
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Time0 != out[j].Time0 {
			return out[i].Time0 < out[j].Time0
		}
		return rank(out[i].MSID) < rank(out[j].MSID)
	})
	return out
}

// sliceBetween returns the changes with Time0 in [from, to], annotated
// with dt relative to manvrStop (SPEC_FULL.md §4.6 step 4), filtered to
// the maneuver's "sequence": rows at or after the maneuver end, plus
// every aofattmd/aopcadmd row regardless of timing (so the maneuver's
// own start/stop transitions are always present).
func sliceBetween(changes []Change, from, to, manvrStop float64) []Change {
	lo := sort.Search(len(changes), func(i int) bool { return changes[i].Time0 >= from })
	hi := sort.Search(len(changes), func(i int) bool { return changes[i].Time0 > to })
	var out []Change
	for _, c := range changes[lo:hi] {
		c.Dt = (c.Time+c.Time0)/2 - manvrStop
		if c.Dt >= zeroDt || c.MSID == "aofattmd" || c.MSID == "aopcadmd" {
			out = append(out, c)
		}
	}
	return out
}

const zeroDt = -1e-6
