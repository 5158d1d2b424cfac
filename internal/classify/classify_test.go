package classify

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		want     Category
	}{
		// Rule 1: 808
		{"plain 808", "808_sub.wav", Drums808},
		{"808 mid-name", "my_808_boom.wav", Drums808},
		{"808 wins over kick", "808_kick.wav", Drums808},
		{"808 wins over loop", "808_loop.wav", Drums808},

		// Rule 2: snare
		{"snare word", "tight_snare.wav", DrumsSnare},
		{"snr suffix token", "vinyl_snr_03.wav", DrumsSnare},
		{"snr prefix token", "snr_vinyl.wav", DrumsSnare},

		// Rule 3: kick
		{"kick word", "one_kick.wav", DrumsKick},
		{"kck token", "deep_kck_01.wav", DrumsKick},
		{"kick wins over loop", "kick_loop_140bpm.wav", DrumsKick},
		{"kick wins over hat", "kick_and_hat.wav", DrumsKick},

		// Rule 4: clap
		{"clap word", "big_clap.wav", DrumsClap},
		{"clp token", "dry_clp_9.wav", DrumsClap},

		// Rule 5: hat
		{"hat word", "open_hat.wav", DrumsHat},
		{"ht prefix token", "ht_closed.wav", DrumsHat},
		{"ht suffix token", "closed_ht.wav", DrumsHat},

		// Rule 6: drum
		{"drum word", "drum_fill.wav", DrumsOther},
		{"drm token", "vintage_drm_kit.wav", DrumsOther},
		{"drumloop is drums not loop", "drumloop.wav", DrumsOther},

		// Rule 7: loop
		{"loop word", "guitar_loop_90bpm.wav", OtherLoop},

		// Rule 8: default
		{"no match", "pad_warm.wav", OtherOther},
		{"empty stem", ".wav", OtherOther},
		{"texture", "granular_texture.mp3", OtherOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.filename))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"KICK.wav", "Kick.wav", "kick.wav", "kIcK.WAV"} {
		assert.Equal(t, DrumsKick, Classify(name), "filename %q", name)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 8)
	assert.Equal(t, Drums808, cats[0])
	assert.Equal(t, OtherOther, cats[len(cats)-1])

	seen := make(map[string]bool)
	for _, c := range cats {
		assert.False(t, seen[c.String()], "duplicate category %s", c)
		seen[c.String()] = true
	}
}

func TestDestPath(t *testing.T) {
	got := DestPath(DrumsKick, "/dest", "One_Kick.wav")
	want := filepath.Join("/dest", "Drums", "Kick", "One_Kick.wav")
	assert.Equal(t, want, got, "original case must be preserved")
}

func TestRulesOrder(t *testing.T) {
	// The table must keep the documented priority order; collapsing or
	// reordering it changes observable classification.
	want := []Category{
		Drums808, DrumsSnare, DrumsKick, DrumsClap, DrumsHat, DrumsOther, OtherLoop,
	}
	require.Len(t, Rules, len(want))
	for i, r := range Rules {
		assert.Equal(t, want[i], r.Category, "rule %d (%s)", i+1, r.Name)
	}
}
