package glossa

import "unicode"

// MorphologyPlan is the affixation decision made before root
// generation. Allomorphs are resolved later, against the finished
// root's boundary phonemes.
type MorphologyPlan struct {
	Template MorphologyTemplate
	Prefix   *Affix
	Suffix   *Affix
}

// planMorphology draws the template and affixes for this word and
// returns the syllable budget consumed by the affixes, so the root
// generator can target the correct total word length.
func (ctx *genContext) planMorphology() (*MorphologyPlan, int, error) {
	plan := &MorphologyPlan{Template: TemplateBare}
	mc := ctx.cfg.Morphology
	if mc == nil || !ctx.opts.Morphology {
		return plan, 0, nil
	}
	dist, ok := ctx.g.templates[ctx.opts.Mode]
	if !ok {
		return plan, 0, nil
	}

	roll := ctx.s.Float()
	plan.Template = dist.at(roll)
	ctx.trace.sample("morphology", "template", roll, plan.Template.String())

	budget := 0
	if plan.Template == TemplatePrefixed || plan.Template == TemplateBoth {
		roll = ctx.s.Float()
		plan.Prefix = ctx.g.prefixes.at(roll)
		ctx.trace.sample("morphology", "prefix", roll, plan.Prefix.Form)
		budget += plan.Prefix.Syllables
	}
	if plan.Template == TemplateSuffixed || plan.Template == TemplateBoth {
		roll = ctx.s.Float()
		plan.Suffix = ctx.g.suffixes.at(roll)
		ctx.trace.sample("morphology", "suffix", roll, plan.Suffix.Form)
		budget += plan.Suffix.Syllables
	}
	return plan, budget, nil
}

// resolvedAffix is an affix with its allomorph fixed by the root's
// boundary phoneme.
type resolvedAffix struct {
	affix     *Affix
	phonemes  []*Phoneme
	form      string
	syllables int
	// spliced syllables, filled during application.
	sylls []*Syllable
}

// resolveAffix checks the affix's allomorph conditions, in order,
// against the boundary phoneme; the first match wins and the base
// variant is the fallback.
func (ctx *genContext) resolveAffix(a *Affix, boundary *Phoneme) *resolvedAffix {
	symbols := a.Phonemes
	form := a.Form
	count := a.Syllables
	if boundary != nil {
		for _, alt := range a.Allomorphs {
			if !matchAllomorph(alt.When, boundary) {
				continue
			}
			symbols, form, count = alt.Phonemes, alt.Form, alt.Syllables
			break
		}
	}
	phonemes := make([]*Phoneme, len(symbols))
	for i, sym := range symbols {
		phonemes[i] = ctx.affixPhoneme(sym)
	}
	return &resolvedAffix{affix: a, phonemes: phonemes, form: form, syllables: count}
}

// matchAllomorph evaluates one condition against the boundary phoneme.
func matchAllomorph(cond AllomorphCondition, p *Phoneme) bool {
	switch cond {
	case AfterVoiceless:
		return !p.Voiced
	case AfterVoiced:
		return p.Voiced
	case AfterSibilant:
		return p.Manner == MannerSibilant || p.Manner == MannerAffricate
	case AfterAlveolarStop:
		return p.Manner == MannerStop && p.Place == PlaceAlveolar
	case BeforeBilabial:
		return p.Place == PlaceBilabial
	}
	return false
}

// affixPhoneme resolves an affix phoneme symbol against the inventory.
// A symbol missing from the inventory degrades gracefully to a
// synthetic vowel-classified placeholder instead of failing the whole
// generation; a malformed affix table costs odd syllabification, never
// a crash.
func (ctx *genContext) affixPhoneme(symbol string) *Phoneme {
	if p := ctx.g.phoneme(symbol); p != nil {
		return p.clone()
	}
	return &Phoneme{Symbol: symbol, Voiced: true, Manner: MannerMidVowel, MidWeight: 1}
}

// affixSyllables converts an affix phoneme sequence into syllables with
// a vowel-boundary heuristic: consonants before a vowel become its
// onset; consonants after a vowel default to coda unless re-split by a
// following vowel.
func affixSyllables(phonemes []*Phoneme) []*Syllable {
	var out []*Syllable
	cur := &Syllable{}
	for _, p := range phonemes {
		switch {
		case p.IsVowel():
			if len(cur.Nucleus) > 0 {
				next := &Syllable{Onset: cur.Coda}
				cur.Coda = nil
				out = append(out, cur)
				cur = next
			}
			cur.Nucleus = append(cur.Nucleus, p)
		case len(cur.Nucleus) == 0:
			cur.Onset = append(cur.Onset, p)
		default:
			cur.Coda = append(cur.Coda, p)
		}
	}
	if len(cur.Nucleus) == 0 && len(out) > 0 {
		// A trailing vowelless fragment folds into the previous coda.
		prev := out[len(out)-1]
		prev.Coda = append(prev.Coda, cur.Onset...)
		return out
	}
	return append(out, cur)
}

// applyMorphology splices the planned affixes around the generated
// root, applies stress effects and rebuilds the written forms. The
// caller re-invokes the pronunciation engine afterwards.
func (ctx *genContext) applyMorphology(sylls []*Syllable, plan *MorphologyPlan, rootWritten, rootHyphenated string) ([]*Syllable, string, string, error) {
	var prefix, suffix *resolvedAffix

	if plan.Suffix != nil {
		suffix = ctx.resolveAffix(plan.Suffix, lastPhoneme(sylls))
		rootWritten = adjustRootSpelling(rootWritten, plan.Suffix, suffix.form, sylls, ctx.cfg.Morphology.NeverDouble)
	}
	if plan.Prefix != nil {
		prefix = ctx.resolveAffix(plan.Prefix, firstPhoneme(sylls))
	}

	// Zero-syllable affixes merge into the root's boundary syllable;
	// the rest become syllables of their own and are spliced around
	// the root.
	if suffix != nil {
		if suffix.syllables == 0 {
			last := sylls[len(sylls)-1]
			last.Coda = append(last.Coda, suffix.phonemes...)
		} else {
			suffix.sylls = affixSyllables(suffix.phonemes)
		}
	}
	if prefix != nil {
		if prefix.syllables == 0 {
			first := sylls[0]
			first.Onset = append(prefix.phonemes, first.Onset...)
		} else {
			prefix.sylls = affixSyllables(prefix.phonemes)
		}
	}

	all := sylls
	if prefix != nil && len(prefix.sylls) > 0 {
		all = append(prefix.sylls, all...)
	}
	if suffix != nil && len(suffix.sylls) > 0 {
		all = append(all, suffix.sylls...)
	}

	if prefix != nil {
		applyStressEffect(all, prefix.affix.Stress, 0)
	}
	if suffix != nil {
		applyStressEffect(all, suffix.affix.Stress, len(all)-len(suffix.sylls))
	}

	written := rootWritten
	hyphenated := rootHyphenated
	if prefix != nil {
		written = prefix.form + written
		hyphenated = prefix.form + "-" + hyphenated
	}
	if suffix != nil {
		written += suffix.form
		hyphenated += "-" + suffix.form
	}

	ctx.trace.morphology()
	return all, written, hyphenated, nil
}

// applyStressEffect applies an affix's stress effect. start is the
// index of the affix's first spliced syllable within the full list. A
// zero-syllable suffix passes len(sylls), and its effect lands on the
// boundary syllable it merged into.
func applyStressEffect(sylls []*Syllable, effect StressEffect, start int) {
	anchor := start
	if anchor >= len(sylls) {
		anchor = len(sylls) - 1
	}
	switch effect {
	case StressEffectPrimary:
		for _, s := range sylls {
			if s.Stress == StressPrimary {
				s.Stress = StressSecondary
			}
		}
		sylls[anchor].Stress = StressPrimary
	case StressEffectSecondary:
		if sylls[anchor].Stress == StressNone {
			sylls[anchor].Stress = StressSecondary
		}
	case StressEffectAttract:
		// Move primary stress to the syllable just before the suffix.
		target := start - 1
		if target >= len(sylls) {
			target = len(sylls) - 1
		}
		if target < 0 {
			return
		}
		for _, s := range sylls {
			if s.Stress == StressPrimary {
				s.Stress = StressNone
			}
		}
		sylls[target].Stress = StressPrimary
	}
}

// lastPhoneme returns the root's final phoneme.
func lastPhoneme(sylls []*Syllable) *Phoneme {
	for i := len(sylls) - 1; i >= 0; i-- {
		sounds := sylls[i].Sounds()
		if len(sounds) > 0 {
			return sounds[len(sounds)-1]
		}
	}
	return nil
}

// firstPhoneme returns the root's initial phoneme.
func firstPhoneme(sylls []*Syllable) *Phoneme {
	for _, s := range sylls {
		sounds := s.Sounds()
		if len(sounds) > 0 {
			return sounds[0]
		}
	}
	return nil
}

// adjustRootSpelling applies the suffix's orthographic boundary rules
// to the root's written form: y→i, drop-silent-e, and final-consonant
// doubling after a single stressed vowel (guarded by the never-double
// letter set).
func adjustRootSpelling(root string, a *Affix, suffixForm string, sylls []*Syllable, neverDouble map[string]bool) string {
	runes := []rune(root)
	n := len(runes)
	if n == 0 {
		return root
	}
	suffixStartsVowel := suffixForm != "" && isVowelLetter([]rune(suffixForm)[0])

	if a.YToI && n > 1 && runes[n-1] == 'y' && !isVowelLetter(runes[n-2]) {
		runes[n-1] = 'i'
		return string(runes)
	}
	if a.DropSilentE && runes[n-1] == 'e' && suffixStartsVowel {
		return string(runes[:n-1])
	}
	if a.DoubleFinal && suffixStartsVowel && shouldDoubleFinal(runes, sylls, neverDouble) {
		return root + string(runes[n-1])
	}
	return root
}

// shouldDoubleFinal reports whether the root's final consonant letter
// follows a single vowel letter in a stressed final syllable.
func shouldDoubleFinal(runes []rune, sylls []*Syllable, neverDouble map[string]bool) bool {
	n := len(runes)
	if n < 2 {
		return false
	}
	last := runes[n-1]
	if isVowelLetter(last) || !unicode.IsLetter(last) {
		return false
	}
	if neverDouble[string(last)] {
		return false
	}
	if !isVowelLetter(runes[n-2]) {
		return false
	}
	if n >= 3 && isVowelLetter(runes[n-3]) {
		// Two vowel letters: a long-vowel digraph, not a single vowel.
		return false
	}
	final := sylls[len(sylls)-1]
	return len(sylls) == 1 || final.Stress == StressPrimary
}

// isVowelLetter reports whether r is a written vowel letter.
func isVowelLetter(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
