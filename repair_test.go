package glossa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syl builds a syllable from inventory symbols, cloning each phoneme.
func syl(t *testing.T, ctx *genContext, onset, nucleus, coda []string) *Syllable {
	t.Helper()
	pick := func(syms []string) []*Phoneme {
		var out []*Phoneme
		for _, sym := range syms {
			p := ctx.g.phoneme(sym)
			require.NotNil(t, p, "symbol %q not in test inventory", sym)
			out = append(out, p.clone())
		}
		return out
	}
	return &Syllable{Onset: pick(onset), Nucleus: pick(nucleus), Coda: pick(coda)}
}

func TestRepairBannedBoundary(t *testing.T) {
	ctx := testContext(t, 1)
	sylls := []*Syllable{
		syl(t, ctx, nil, []string{"a"}, []string{"t"}),
		syl(t, ctx, []string{"t"}, []string{"a"}, nil),
	}
	ctx.repair(sylls)
	// DropCoda strategy: the coda-final /t/ goes, the onset survives.
	assert.Empty(t, sylls[0].Coda)
	assert.Equal(t, []string{"t", "a"}, sylls[1].symbols())
}

func TestRepairBoundaryCascade(t *testing.T) {
	cfg := testConfig()
	cfg.BannedBoundaries[[2]string{"s", "t"}] = true
	cfg.BannedBoundaries[[2]string{"n", "t"}] = true
	g, err := New(cfg)
	require.NoError(t, err)
	ctx := &genContext{g: g, cfg: cfg, s: NewSampler(1), opts: Options{Mode: ModeLexicon}}

	// Dropping /s/ exposes /n/ before /t/, which is also banned.
	sylls := []*Syllable{
		syl(t, ctx, nil, []string{"a"}, []string{"n", "s"}),
		syl(t, ctx, []string{"t"}, []string{"a"}, nil),
	}
	ctx.repair(sylls)
	assert.Empty(t, sylls[0].Coda)
}

func TestRepairDropOnsetStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.BoundaryRepair = DropOnset
	g, err := New(cfg)
	require.NoError(t, err)
	ctx := &genContext{g: g, cfg: cfg, s: NewSampler(1), opts: Options{Mode: ModeLexicon}}

	sylls := []*Syllable{
		syl(t, ctx, nil, []string{"a"}, []string{"t"}),
		syl(t, ctx, []string{"t", "r"}, []string{"a"}, nil),
	}
	ctx.repair(sylls)
	assert.Equal(t, []string{"a", "t"}, sylls[0].symbols())
	assert.Equal(t, []string{"r", "a"}, sylls[1].symbols())
}

func TestRepairFinalCoda(t *testing.T) {
	cfg := testConfig()
	delete(cfg.AllowedFinal, "z")
	g, err := New(cfg)
	require.NoError(t, err)
	ctx := &genContext{g: g, cfg: cfg, s: NewSampler(1), opts: Options{Mode: ModeLexicon}}

	// Trailing disallowed sounds are stripped until an allowed one
	// surfaces.
	sylls := []*Syllable{syl(t, ctx, nil, []string{"a"}, []string{"t", "z"})}
	ctx.repair(sylls)
	assert.Equal(t, []string{"a", "t"}, sylls[0].symbols())
}

func TestRepairFinalCodaCanEmpty(t *testing.T) {
	cfg := testConfig()
	cfg.AllowedFinal = map[string]bool{}
	g, err := New(cfg)
	require.NoError(t, err)
	ctx := &genContext{g: g, cfg: cfg, s: NewSampler(1), opts: Options{Mode: ModeLexicon}}

	sylls := []*Syllable{syl(t, ctx, nil, []string{"a"}, []string{"n", "t"})}
	ctx.repair(sylls)
	// An emptied coda is valid output, not a fault.
	assert.Empty(t, sylls[0].Coda)
	assert.NotEmpty(t, sylls[0].Nucleus)
}

func TestRepairOnsetOverflowTrimsFront(t *testing.T) {
	cfg := testConfig()
	cfg.MaxOnset = 2
	g, err := New(cfg)
	require.NoError(t, err)
	ctx := &genContext{g: g, cfg: cfg, s: NewSampler(1), opts: Options{Mode: ModeLexicon}}

	sylls := []*Syllable{syl(t, ctx, []string{"s", "t", "r"}, []string{"a"}, nil)}
	ctx.repair(sylls)
	// The edge phoneme goes; the ones closest to the nucleus survive.
	assert.Equal(t, []string{"t", "r", "a"}, sylls[0].symbols())
}

func TestRepairCodaOverflowKeepsAppendant(t *testing.T) {
	cfg := testConfig()
	cfg.MaxCoda = 1
	g, err := New(cfg)
	require.NoError(t, err)
	ctx := &genContext{g: g, cfg: cfg, s: NewSampler(1), opts: Options{Mode: ModeLexicon}}

	// /s/ is appendant: the cap rises to 2 and the middle sound drops.
	sylls := []*Syllable{syl(t, ctx, nil, []string{"a"}, []string{"r", "n", "s"})}
	ctx.repair(sylls)
	assert.Equal(t, []string{"a", "r", "s"}, sylls[0].symbols())

	// Without a trailing appendant the outer edge is trimmed.
	sylls = []*Syllable{syl(t, ctx, nil, []string{"a"}, []string{"r", "n"})}
	ctx.repair(sylls)
	assert.Equal(t, []string{"a", "r"}, sylls[0].symbols())
}

func TestRepairVoicingAgreement(t *testing.T) {
	ctx := testContext(t, 1)
	// Final obstruent /d/ is voiced; the voiceless /s/ before it drops,
	// the sonorant /n/ stays.
	sylls := []*Syllable{syl(t, ctx, nil, []string{"a"}, []string{"n", "s", "d"})}
	ctx.repairVoicing(sylls)
	assert.Equal(t, []string{"a", "n", "d"}, sylls[0].symbols())
}

func TestRepairNasalStopHomorganic(t *testing.T) {
	ctx := testContext(t, 1)
	// /m/ (bilabial) before /t/ (alveolar) is non-homorganic.
	sylls := []*Syllable{syl(t, ctx, nil, []string{"a"}, []string{"m", "t"})}
	ctx.repairNasalStop(sylls)
	assert.Equal(t, []string{"a", "t"}, sylls[0].symbols())

	// /n/ (alveolar) before /t/ (alveolar) is homorganic and survives.
	sylls = []*Syllable{syl(t, ctx, nil, []string{"a"}, []string{"n", "t"})}
	ctx.repairNasalStop(sylls)
	assert.Equal(t, []string{"a", "n", "t"}, sylls[0].symbols())
}

func TestRepairCodaPairDrops(t *testing.T) {
	cfg := testConfig()
	cfg.CodaPairDrops[[2]string{"n", "z"}] = true
	g, err := New(cfg)
	require.NoError(t, err)
	ctx := &genContext{g: g, cfg: cfg, s: NewSampler(1), opts: Options{Mode: ModeLexicon}}

	sylls := []*Syllable{syl(t, ctx, nil, []string{"a"}, []string{"n", "z"})}
	ctx.repairCodaPairs(sylls)
	assert.Equal(t, []string{"a", "n"}, sylls[0].symbols())
}

// Repair is idempotent: a second run over already-repaired syllables
// must change nothing.
func TestRepairIdempotent(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		ctx := testContext(t, seed)
		sylls, err := ctx.buildSyllables(3)
		require.NoError(t, err)
		ctx.repair(sylls)
		first := snapshot(sylls)
		ctx.repair(sylls)
		assert.Equal(t, first, snapshot(sylls), "seed %d", seed)
	}
}
