// Package glossa synthesizes phonologically plausible, English-sounding
// nonsense words from a declarative language model: a phoneme inventory
// with positional weights, a sonority hierarchy, cluster constraints,
// grapheme spelling tables and a morphological affix inventory.
//
// Generation runs a multi-stage pipeline (deterministic weighted
// sampling, sonority-driven syllable construction, phonotactic repair,
// optional affixation, stress/aspiration/reduction assignment and
// spelling selection) and yields a structured Word: syllable
// decomposition, an IPA-like pronunciation with stress marks, and a
// written form.
package glossa

import (
	"fmt"
	"strconv"
)

// Mode selects the syllable-count and length-target statistics.
type Mode string

const (
	// ModeLexicon matches dictionary-headword statistics.
	ModeLexicon Mode = "lexicon"
	// ModeText matches running-text statistics (shorter words).
	ModeText Mode = "text"
)

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLexicon, ModeText:
		return Mode(s), nil
	}
	return "", fmt.Errorf("glossa: unknown mode %q", s)
}

// Options is the per-call option surface.
type Options struct {
	// Mode selects lexicon or running-text statistics.
	Mode Mode
	// Seed makes the call deterministic when Seeded is true; the same
	// (seed, options) pair always produces byte-identical output.
	Seed   int64
	Seeded bool
	// SyllableCount overrides the drawn syllable count when positive.
	SyllableCount int
	// Morphology enables affixation (requires a morphology config).
	Morphology bool
	// Trace attaches a decision record to the result.
	Trace bool
}

// DefaultOptions returns the standard option set: lexicon mode,
// morphology on, unseeded, untraced.
func DefaultOptions() Options {
	return Options{Mode: ModeLexicon, Morphology: true}
}

// Generator generates words from one immutable LanguageConfig.
// A Generator precomputes the hot weight distributions once and is safe
// for concurrent Generate calls; each call owns its own sampler,
// syllable list and trace.
type Generator struct {
	cfg *LanguageConfig

	bySymbol map[string]*Phoneme

	// Positional sub-inventories (positive-weight entries only).
	// Consonant pools are split by syllable role: a consonant with no
	// positively weighted grapheme for a role never enters that role's
	// pool, so the builder cannot draw a sound the writer has no way
	// to spell there.
	onsetPool [3][]*Phoneme
	codaPool  [3][]*Phoneme
	vowels    [3][]*Phoneme

	// Precomputed hot distributions.
	sylCount   map[Mode]*Distribution[int]
	monoOnset  *Distribution[int]
	initOnset  *Distribution[int]
	onsetAfterCoda *Distribution[int]
	onsetAfterOpen *Distribution[int]
	monoCoda   []*Distribution[int]
	finalCoda  *Distribution[int]
	medialCoda *Distribution[int]

	templates map[Mode]*Distribution[MorphologyTemplate]
	prefixes  *Distribution[*Affix]
	suffixes  *Distribution[*Affix]
}

// New validates cfg and returns a ready Generator. The config is
// treated as immutable from here on; mutating it afterwards is a
// contract violation.
func New(cfg *LanguageConfig) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:      cfg,
		bySymbol: make(map[string]*Phoneme, len(cfg.Phonemes)),
		sylCount: make(map[Mode]*Distribution[int]),
	}
	for _, p := range cfg.Phonemes {
		g.bySymbol[p.Symbol] = p
		weights := [3]float64{p.StartWeight, p.MidWeight, p.EndWeight}
		for pos, w := range weights {
			if w <= 0 {
				continue
			}
			if p.IsVowel() {
				g.vowels[pos] = append(g.vowels[pos], p)
				continue
			}
			if spellableIn(cfg.Graphemes[p.Symbol], posOnset) {
				g.onsetPool[pos] = append(g.onsetPool[pos], p)
			}
			if spellableIn(cfg.Graphemes[p.Symbol], posCoda) {
				g.codaPool[pos] = append(g.codaPool[pos], p)
			}
		}
	}
	for pos := wpStart; pos <= wpEnd; pos++ {
		if len(g.vowels[pos]) == 0 {
			return nil, fmt.Errorf("no vowel with %s weight: %w", pos, ErrNoPhonemes)
		}
	}

	var err error
	for mode, weights := range cfg.Builder.SyllableCount {
		if g.sylCount[mode], err = countDistribution(weights); err != nil {
			return nil, fmt.Errorf("syllable-count weights (%s): %w", mode, err)
		}
	}
	if g.monoOnset, err = NewIndexDistribution(cfg.Builder.MonoOnsetLength); err != nil {
		return nil, fmt.Errorf("monosyllable onset weights: %w", err)
	}
	if g.initOnset, err = NewIndexDistribution(cfg.Builder.InitialOnsetLength); err != nil {
		return nil, fmt.Errorf("initial onset weights: %w", err)
	}
	if g.onsetAfterCoda, err = NewIndexDistribution(cfg.Builder.MedialOnsetAfterCoda); err != nil {
		return nil, fmt.Errorf("medial onset (after coda) weights: %w", err)
	}
	if g.onsetAfterOpen, err = NewIndexDistribution(cfg.Builder.MedialOnsetAfterOpen); err != nil {
		return nil, fmt.Errorf("medial onset (after open) weights: %w", err)
	}
	for i, row := range cfg.Builder.MonoCodaByOnset {
		d, err := NewIndexDistribution(row)
		if err != nil {
			return nil, fmt.Errorf("monosyllable coda weights (onset %d): %w", i, err)
		}
		g.monoCoda = append(g.monoCoda, d)
	}
	if len(g.monoCoda) == 0 {
		return nil, fmt.Errorf("monosyllable coda weights: %w", ErrZeroWeight)
	}
	if g.finalCoda, err = NewIndexDistribution(cfg.Builder.FinalCodaLength); err != nil {
		return nil, fmt.Errorf("final coda weights: %w", err)
	}
	if g.medialCoda, err = NewIndexDistribution(cfg.Builder.MedialCodaLength); err != nil {
		return nil, fmt.Errorf("medial coda weights: %w", err)
	}

	pt := &cfg.Pronunciation
	if pt.DisyllableInitialWeight+pt.DisyllableFinalWeight <= 0 {
		return nil, fmt.Errorf("disyllable stress weights: %w", ErrZeroWeight)
	}
	if pt.HeavyPenultWeight+pt.AntepenultWeight <= 0 || pt.LightPenultWeight+pt.AntepenultWeight <= 0 {
		return nil, fmt.Errorf("primary stress weights: %w", ErrZeroWeight)
	}
	if pt.SecondaryStressChance > 0 && pt.HeavySecondaryWeight <= 0 && pt.LightSecondaryWeight <= 0 {
		return nil, fmt.Errorf("secondary stress weights: %w", ErrZeroWeight)
	}

	if mc := cfg.Morphology; mc != nil {
		g.templates = make(map[Mode]*Distribution[MorphologyTemplate])
		for mode, weights := range mc.TemplateWeights {
			choices := make([]Choice[MorphologyTemplate], len(weights))
			for i, w := range weights {
				choices[i] = Choice[MorphologyTemplate]{Value: MorphologyTemplate(i), Weight: w}
			}
			if g.templates[mode], err = NewDistribution(choices); err != nil {
				return nil, fmt.Errorf("template weights (%s): %w", mode, err)
			}
			if wantsAffix(weights, TemplatePrefixed) && len(mc.Prefixes) == 0 {
				return nil, fmt.Errorf("glossa: prefixed template weighted (%s) but no prefixes configured", mode)
			}
			if wantsAffix(weights, TemplateSuffixed) && len(mc.Suffixes) == 0 {
				return nil, fmt.Errorf("glossa: suffixed template weighted (%s) but no suffixes configured", mode)
			}
		}
		if len(mc.Prefixes) > 0 {
			if g.prefixes, err = affixDistribution(mc.Prefixes); err != nil {
				return nil, fmt.Errorf("prefix weights: %w", err)
			}
		}
		if len(mc.Suffixes) > 0 {
			if g.suffixes, err = affixDistribution(mc.Suffixes); err != nil {
				return nil, fmt.Errorf("suffix weights: %w", err)
			}
		}
	}
	return g, nil
}

// spellableIn reports whether any of the graphemes has positive weight
// in the given syllable position.
func spellableIn(gs []*Grapheme, pos syllablePosition) bool {
	for _, g := range gs {
		if g.weightIn(pos) > 0 {
			return true
		}
	}
	return false
}

// countDistribution builds a 1-based syllable-count distribution from
// per-count weights.
func countDistribution(weights []float64) (*Distribution[int], error) {
	choices := make([]Choice[int], len(weights))
	for i, w := range weights {
		choices[i] = Choice[int]{Value: i + 1, Weight: w}
	}
	return NewDistribution(choices)
}

func affixDistribution(affixes []*Affix) (*Distribution[*Affix], error) {
	choices := make([]Choice[*Affix], len(affixes))
	for i, a := range affixes {
		choices[i] = Choice[*Affix]{Value: a, Weight: a.Weight}
	}
	return NewDistribution(choices)
}

// wantsAffix reports whether the template weights can select a template
// needing the given affix side.
func wantsAffix(weights []float64, side MorphologyTemplate) bool {
	need := []MorphologyTemplate{side, TemplateBoth}
	for _, t := range need {
		if int(t) < len(weights) && weights[t] > 0 {
			return true
		}
	}
	return false
}

// Config returns the generator's language configuration.
func (g *Generator) Config() *LanguageConfig { return g.cfg }

// phoneme looks up an inventory phoneme by symbol.
func (g *Generator) phoneme(symbol string) *Phoneme { return g.bySymbol[symbol] }

// genContext is the per-call state threaded through every stage: the
// sampler, the options and the optional trace. Stages are sequential;
// nothing here is shared between calls.
type genContext struct {
	g     *Generator
	cfg   *LanguageConfig
	s     *Sampler
	opts  Options
	trace *Trace
}

// chance draws a boolean with probability p, recording the roll.
func (ctx *genContext) chance(stage, label string, p float64) bool {
	roll := ctx.s.Float()
	hit := roll < p
	ctx.trace.sample(stage, label, roll, strconv.FormatBool(hit))
	return hit
}

// drawLength draws from a precomputed length distribution, recording
// the roll.
func (ctx *genContext) drawLength(stage, label string, d *Distribution[int]) int {
	roll := ctx.s.Float()
	v := d.at(roll)
	ctx.trace.sample(stage, label, roll, strconv.Itoa(v))
	return v
}

// Generate produces one word according to opts.
// Configuration errors abort the call; no partial Word is returned.
func (g *Generator) Generate(opts Options) (*Word, error) {
	if opts.Mode == "" {
		opts.Mode = ModeLexicon
	}
	if _, ok := g.sylCount[opts.Mode]; !ok {
		return nil, fmt.Errorf("glossa: mode %q has no syllable-count weights", opts.Mode)
	}

	var s *Sampler
	if opts.Seeded {
		s = NewSampler(opts.Seed)
	} else {
		s = NewRandomSampler()
	}
	ctx := &genContext{g: g, cfg: g.cfg, s: s, opts: opts}
	if opts.Trace {
		ctx.trace = &Trace{}
	}

	plan, budget, err := ctx.planMorphology()
	if err != nil {
		return nil, err
	}

	target := opts.SyllableCount
	if target <= 0 {
		target = ctx.drawLength("build", "syllable_count", g.sylCount[opts.Mode])
	}
	rootCount := target - budget
	if rootCount < 1 {
		rootCount = 1
	}

	sylls, err := ctx.buildSyllables(rootCount)
	if err != nil {
		return nil, err
	}
	var before [][]string
	if ctx.trace != nil {
		ctx.trace.stage("build", nil, snapshot(sylls))
		before = snapshot(sylls)
	}
	ctx.repair(sylls)
	if ctx.trace != nil {
		ctx.trace.stage("repair", before, snapshot(sylls))
	}

	// Root stress must exist before morphology: the boundary doubling
	// rule and the attract-preceding stress effect both read it.
	pron, err := ctx.pronounce(sylls)
	if err != nil {
		return nil, err
	}

	chunks, err := ctx.spell(sylls)
	if err != nil {
		return nil, err
	}
	// Cleanups run before morphology so boundary spelling rules see the
	// final root orthography, and again at the end; they are idempotent.
	written := ctx.cleanSpelling(joinChunks(chunks, ""))
	hyphenated := joinChunks(chunks, "-")

	if plan.Template != TemplateBare {
		if ctx.trace != nil {
			before = snapshot(sylls)
		}
		sylls, written, hyphenated, err = ctx.applyMorphology(sylls, plan, written, hyphenated)
		if err != nil {
			return nil, err
		}
		if pron, err = ctx.pronounce(sylls); err != nil {
			return nil, err
		}
		if ctx.trace != nil {
			ctx.trace.stage("morphology", before, snapshot(sylls))
		}
	}

	word := &Word{
		Syllables:     sylls,
		Pronunciation: pron,
		Written:       ctx.cleanSpelling(written),
		Hyphenated:    hyphenated,
		Trace:         ctx.trace,
	}
	return word, nil
}

// GenerateBatch generates n words. When opts is seeded, word i uses
// seed+i, so a batch is reproducible word by word and may equivalently
// be sharded across goroutines by the caller. The batch aborts on the
// first error.
func (g *Generator) GenerateBatch(n int, opts Options) ([]*Word, error) {
	words := make([]*Word, 0, n)
	for i := 0; i < n; i++ {
		o := opts
		if o.Seeded {
			o.Seed = opts.Seed + int64(i)
		}
		w, err := g.Generate(o)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		words = append(words, w)
	}
	return words, nil
}

// joinChunks joins non-empty spelling chunks with sep.
func joinChunks(chunks []string, sep string) string {
	out := ""
	for _, c := range chunks {
		if c == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += c
	}
	return out
}
