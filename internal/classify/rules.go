package classify

import "strings"

// Rule pairs substring predicates with the category they select. A rule
// matches when any of its substrings occurs in the lowercased filename.
// Rules are evaluated in order by [Classify]; first match wins. The order
// is load-bearing: predicates overlap, so a name containing both "kick"
// and "loop" must resolve to Drums/Kick, never Other/Loop.
type Rule struct {
	Name       string
	Substrings []string
	Category   Category
}

func (r Rule) matches(lower string) bool {
	for _, sub := range r.Substrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// Rules is the ordered rule table. The "_snr"/"snr_" style variants catch
// abbreviated sample-pack naming where the full word never appears.
var Rules = []Rule{
	{"808", []string{"808"}, Drums808},
	{"snare", []string{"snare", "_snr", "snr_"}, DrumsSnare},
	{"kick", []string{"kick", "_kck", "kck_"}, DrumsKick},
	{"clap", []string{"clap", "_clp", "clp_"}, DrumsClap},
	{"hat", []string{"hat", "ht_", "_ht"}, DrumsHat},
	{"drum", []string{"drum", "_drm", "drm_"}, DrumsOther},
	{"loop", []string{"loop"}, OtherLoop},
}
