package maneuver

// Attrs carries every attribute SPEC_FULL.md §4.6 step 6 extracts from
// a maneuver's sequence of changes, plus the dwells and template
// classification from steps 5 and 7. Date fields are empty when no
// matching change was found, mirroring the original's None result.
type Attrs struct {
	PrevManvrStop  string
	PrevNpntStart  string
	NmanStart      string
	ManvrStart     string
	ManvrStop      string
	NpntStart      string
	AcqStart       string
	GuideStart     string
	KalmanStart    string
	ACAProcActStart string
	NpntStop       string
	NextNmanStart  string
	NextManvrStart string

	NDwell  int
	NAcq    int
	NGuide  int
	NKalman int

	Anomalous bool
	Template  string

	Dwells []Dwell
}

// nomVals is the nominal per-MSID value set outside of which the
// post-maneuver sequence is flagged anomalous (SPEC_FULL.md §4.6 step 6).
var nomVals = map[string]map[string]bool{
	"aopcadmd": {"NPNT": true, "NMAN": true},
	"aoacaseq": {"GUID": true, "KALM": true, "AQXN": true},
	"aofattmd": {"MNVR": true, "STDY": true},
	"aopsacpr": {"INIT": true, "INAC": true, "ACT ": true},
}

// match finds changes on msid transitioning to val (or, if val starts
// with "!", to anything but val), optionally restricted to before
// (dt < -eps) or after (dt >= -eps) the maneuver end. idx selects which
// match to return (negative indexes from the end, Python-slice style);
// an idx outside the matches returns ("", false).
func match(changes []Change, msid, val string, idx int, filter string) (string, bool) {
	all := matchAll(changes, msid, val, filter)
	if len(all) == 0 {
		return "", false
	}
	i := idx
	if i < 0 {
		i = len(all) + i
	}
	if i < 0 || i >= len(all) {
		return "", false
	}
	return all[i], true
}

func matchAll(changes []Change, msid, val, filter string) []string {
	var out []string
	want, negate := val, false
	if len(val) > 0 && val[0] == '!' {
		want, negate = val[1:], true
	}
	for _, c := range changes {
		if c.MSID != msid {
			continue
		}
		if negate {
			if c.Val == want {
				continue
			}
		} else if c.Val != want {
			continue
		}
		switch filter {
		case "before":
			if c.Dt >= zeroDt {
				continue
			}
		case "after":
			if c.Dt < zeroDt {
				continue
			}
		}
		out = append(out, c.Date)
	}
	return out
}

// ExtractAttrs computes Attrs from a maneuver's sequence of changes,
// already sliced and dt-annotated by sliceBetween (SPEC_FULL.md §4.6
// steps 5-7).
func ExtractAttrs(seq []Change) Attrs {
	var a Attrs
	a.PrevManvrStop, _ = match(seq, "aofattmd", "!MNVR", -1, "before")
	a.PrevNpntStart, _ = match(seq, "aopcadmd", "NPNT", -1, "before")
	a.NmanStart, _ = match(seq, "aopcadmd", "NMAN", -1, "before")
	a.ManvrStart, _ = match(seq, "aofattmd", "MNVR", -1, "before")
	a.ManvrStop, _ = match(seq, "aofattmd", "!MNVR", 0, "after")
	a.NpntStart, _ = match(seq, "aopcadmd", "NPNT", 0, "after")
	a.AcqStart, _ = match(seq, "aoacaseq", "AQXN", 0, "after")
	a.GuideStart, _ = match(seq, "aoacaseq", "GUID", 0, "after")
	a.KalmanStart, _ = match(seq, "aoacaseq", "KALM", 0, "after")
	a.ACAProcActStart, _ = match(seq, "aopsacpr", "ACT ", 0, "after")
	a.NpntStop, _ = match(seq, "aopcadmd", "!NPNT", -1, "after")
	a.NextNmanStart, _ = match(seq, "aopcadmd", "NMAN", -1, "after")
	a.NextManvrStart, _ = match(seq, "aofattmd", "MNVR", -1, "after")

	a.Dwells = Dwells(seq)
	a.NDwell = len(a.Dwells)
	a.NAcq = len(matchAll(seq, "aoacaseq", "AQXN", "after"))
	a.NGuide = len(matchAll(seq, "aoacaseq", "GUID", "after"))
	a.NKalman = len(matchAll(seq, "aoacaseq", "KALM", "after"))

	for _, c := range seq {
		if c.Dt < zeroDt {
			continue
		}
		if set, ok := nomVals[c.MSID]; ok && !set[c.Val] {
			a.Anomalous = true
			break
		}
	}

	a.Template = classify(seq)
	return a
}
