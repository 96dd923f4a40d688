package english

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordforge/glossa"
)

func TestConfigBuildsGenerator(t *testing.T) {
	g, err := glossa.New(Config())
	require.NoError(t, err)
	require.NotNil(t, g)
}

func TestConfigIsFreshPerCall(t *testing.T) {
	a := Config()
	b := Config()
	require.NotSame(t, a, b)
	a.Phonemes[0].StartWeight = 0
	assert.NotEqual(t, a.Phonemes[0].StartWeight, b.Phonemes[0].StartWeight)
}

func TestEveryPhonemeHasSpelling(t *testing.T) {
	cfg := Config()
	for _, p := range cfg.Phonemes {
		assert.NotEmpty(t, cfg.Graphemes[p.Symbol], "phoneme %q", p.Symbol)
	}
}

// /s/ before a stop must pass the onset monotonicity filter, which is
// the point of ranking sibilants below stops.
func TestSonorityAllowsSTOnsets(t *testing.T) {
	cfg := Config()
	var sib, stop *glossa.Phoneme
	for _, p := range cfg.Phonemes {
		switch p.Symbol {
		case "s":
			sib = p
		case "t":
			stop = p
		}
	}
	require.NotNil(t, sib)
	require.NotNil(t, stop)
	assert.Less(t, cfg.SonorityLevel(sib), cfg.SonorityLevel(stop))
}

func TestGenerateWords(t *testing.T) {
	g, err := glossa.New(Config())
	require.NoError(t, err)

	for seed := int64(0); seed < 200; seed++ {
		w, err := g.Generate(glossa.Options{
			Mode: glossa.ModeLexicon, Seed: seed, Seeded: true, Morphology: true,
		})
		require.NoError(t, err, "seed %d", seed)
		assert.NotEmpty(t, w.Written, "seed %d", seed)
		assert.NotEmpty(t, w.Pronunciation, "seed %d", seed)
		assert.NotEmpty(t, w.Syllables, "seed %d", seed)
		// The written form stays on the basic Latin alphabet.
		for _, r := range w.Written {
			assert.True(t, r >= 'a' && r <= 'z', "seed %d: %q", seed, w.Written)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g, err := glossa.New(Config())
	require.NoError(t, err)

	opts := glossa.Options{Mode: glossa.ModeText, Seed: 1234, Seeded: true, Morphology: true, Trace: true}
	a, err := g.Generate(opts)
	require.NoError(t, err)
	b, err := g.Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, a.Written, b.Written)
	assert.Equal(t, a.Pronunciation, b.Pronunciation)
	assert.Equal(t, a.Trace.Decisions(), b.Trace.Decisions())
}

func TestTextModeSkewsShorter(t *testing.T) {
	g, err := glossa.New(Config())
	require.NoError(t, err)

	total := func(mode glossa.Mode) int {
		sum := 0
		for seed := int64(0); seed < 300; seed++ {
			w, err := g.Generate(glossa.Options{Mode: mode, Seed: seed, Seeded: true})
			require.NoError(t, err)
			sum += len(w.Syllables)
		}
		return sum
	}
	assert.Less(t, total(glossa.ModeText), total(glossa.ModeLexicon))
}

func TestStressMarksInPolysyllables(t *testing.T) {
	g, err := glossa.New(Config())
	require.NoError(t, err)

	for seed := int64(0); seed < 100; seed++ {
		w, err := g.Generate(glossa.Options{
			Mode: glossa.ModeLexicon, Seed: seed, Seeded: true, SyllableCount: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(w.Pronunciation, "ˈ"), "seed %d: %s", seed, w.Pronunciation)
	}
}
