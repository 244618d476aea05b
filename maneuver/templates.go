package maneuver

// ManvrTemplate names a recognized sequence of post-maneuver
// aopcadmd/aofattmd/aoacaseq transitions (SPEC_FULL.md §4.6 step 7).
// The retrieved original source references a template registry
// (manvr_templates.get_manvr_templates) that was not included in the
// retrieved pack; this is a reconstructed subset covering the dominant
// sequences documented in the original spec and test corpus, not a
// byte-for-byte reproduction of the real registry (see DESIGN.md).
type ManvrTemplate struct {
	Name string
	Seq  []string
}

var templates = []ManvrTemplate{
	{
		Name: "normal",
		Seq: []string{
			"aofattmd_MNVR_STDY",
			"aopcadmd_NMAN_NPNT",
			"aoacaseq_AQXN_GUID",
			"aoacaseq_GUID_KALM",
		},
	},
	{
		Name: "nman_nsun",
		Seq: []string{
			"aofattmd_MNVR_STDY",
			"aopcadmd_NMAN_NSUN",
		},
	},
	{
		Name: "nman_dwell",
		Seq: []string{
			"aofattmd_MNVR_STDY",
		},
	},
}

// classify builds the ordered "{msid}_{val0}_{val}" sequence over the
// post-maneuver portion restricted to aopcadmd/aofattmd/aoacaseq and
// matches it against the template registry; first match wins,
// otherwise "unknown" (SPEC_FULL.md §4.6 step 7).
func classify(seq []Change) string {
	restricted := map[string]bool{"aopcadmd": true, "aofattmd": true, "aoacaseq": true}
	var got []string
	for _, c := range seq {
		if c.Dt < zeroDt || !restricted[c.MSID] {
			continue
		}
		got = append(got, c.MSID+"_"+c.Val0+"_"+c.Val)
	}
	for _, t := range templates {
		if equalSeq(got, t.Seq) {
			return t.Name
		}
	}
	return "unknown"
}

func equalSeq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
