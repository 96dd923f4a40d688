package glossa

import (
	"fmt"
	"regexp"
	"strings"
)

// spellSlot is one phoneme queued for grapheme selection, with the
// context its candidate conditions may inspect.
type spellSlot struct {
	phoneme *Phoneme
	sylIdx  int
	role    syllablePosition
	// clusterLen is the size of the onset or coda this phoneme sits in;
	// nucleus slots always count as 1.
	clusterLen int
	prev, next string
	wordPos    WordPosition
}

// spell selects a grapheme for every phoneme and returns one spelling
// chunk per syllable. A phoneme with no grapheme entry at all is a
// configuration gap and aborts the word.
func (ctx *genContext) spell(sylls []*Syllable) ([]string, error) {
	slots := flattenForSpelling(sylls)
	chunks := make([]strings.Builder, len(sylls))
	for _, slot := range slots {
		form, err := ctx.spellPhoneme(slot)
		if err != nil {
			return nil, err
		}
		chunks[slot.sylIdx].WriteString(form)
	}
	out := make([]string, len(chunks))
	for i := range chunks {
		out[i] = chunks[i].String()
	}
	return out, nil
}

// flattenForSpelling walks the syllables in onset/nucleus/coda order
// and records each phoneme's word position, cluster size and neighbor
// symbols.
func flattenForSpelling(sylls []*Syllable) []spellSlot {
	var slots []spellSlot
	for i, syl := range sylls {
		for _, p := range syl.Onset {
			slots = append(slots, spellSlot{phoneme: p, sylIdx: i, role: posOnset, clusterLen: len(syl.Onset)})
		}
		for _, p := range syl.Nucleus {
			slots = append(slots, spellSlot{phoneme: p, sylIdx: i, role: posNucleus, clusterLen: 1})
		}
		for _, p := range syl.Coda {
			slots = append(slots, spellSlot{phoneme: p, sylIdx: i, role: posCoda, clusterLen: len(syl.Coda)})
		}
	}
	for i := range slots {
		switch i {
		case 0:
			slots[i].wordPos = InitialPosition
		case len(slots) - 1:
			slots[i].wordPos = FinalPosition
		default:
			slots[i].wordPos = MedialPosition
		}
		if i > 0 {
			slots[i].prev = slots[i-1].phoneme.Symbol
		}
		if i < len(slots)-1 {
			slots[i].next = slots[i+1].phoneme.Symbol
		}
	}
	// A one-phoneme word is both initial and final; initial wins, and
	// final-restricted graphemes are simply never filtered in.
	return slots
}

// spellPhoneme picks one grapheme for the slot. Candidates are filtered
// by syllable-position weight and contextual condition; survivors are
// weighted-drawn, except inside a multi-phoneme cluster, where the
// heaviest survivor is taken deterministically to avoid compounding
// spelling variation within one cluster.
func (ctx *genContext) spellPhoneme(slot spellSlot) (string, error) {
	all := ctx.cfg.Graphemes[slot.phoneme.Symbol]
	if len(all) == 0 {
		return "", fmt.Errorf("phoneme %q: %w", slot.phoneme.Symbol, ErrNoSpelling)
	}

	survivors := filterGraphemes(all, slot, true)
	fallback := false
	if len(survivors) == 0 {
		// Contextual conditions over-constrained; retry on position
		// weight alone rather than failing the word.
		survivors = filterGraphemes(all, slot, false)
		fallback = true
	}
	if len(survivors) == 0 {
		return "", fmt.Errorf("phoneme %q in %s: %w", slot.phoneme.Symbol, slot.role, ErrNoSpelling)
	}

	decision := SpellingDecision{
		Phoneme:  slot.phoneme.Symbol,
		Position: slot.role.String(),
		Fallback: fallback,
	}
	for _, g := range survivors {
		decision.Candidates = append(decision.Candidates, g.Form)
		decision.Weights = append(decision.Weights, g.weightIn(slot.role))
	}

	var chosen *Grapheme
	if slot.clusterLen > 1 {
		chosen = heaviest(survivors, slot.role)
		decision.Roll = -1
		decision.Doubled = true
	} else {
		choices := make([]Choice[*Grapheme], len(survivors))
		for i, g := range survivors {
			choices[i] = Choice[*Grapheme]{Value: g, Weight: g.weightIn(slot.role)}
		}
		roll := ctx.s.Float()
		g, err := pickChoice(choices, roll)
		if err != nil {
			return "", fmt.Errorf("grapheme draw for %q: %w", slot.phoneme.Symbol, err)
		}
		chosen = g
		decision.Roll = roll
	}
	decision.Chosen = chosen.Form
	ctx.trace.spelling(decision)
	return chosen.Form, nil
}

// filterGraphemes keeps candidates with positive weight in the slot's
// syllable position, optionally also enforcing contextual conditions.
func filterGraphemes(all []*Grapheme, slot spellSlot, contextual bool) []*Grapheme {
	var out []*Grapheme
	for _, g := range all {
		if g.weightIn(slot.role) <= 0 {
			continue
		}
		if contextual && !conditionHolds(g.Condition, slot) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// conditionHolds evaluates a grapheme's contextual condition against
// the slot's word position and neighboring sounds.
func conditionHolds(c *SpellingCondition, slot spellSlot) bool {
	if c == nil {
		return true
	}
	if c.Position != AnyPosition && c.Position != slot.wordPos {
		return false
	}
	for _, sym := range c.NotAfter {
		if slot.prev == sym {
			return false
		}
	}
	for _, sym := range c.NotBefore {
		if slot.next == sym {
			return false
		}
	}
	return true
}

// heaviest returns the highest-weight candidate, first-wins on ties, so
// cluster spelling is stable under a fixed grapheme table.
func heaviest(gs []*Grapheme, pos syllablePosition) *Grapheme {
	best := gs[0]
	for _, g := range gs[1:] {
		if g.weightIn(pos) > best.weightIn(pos) {
			best = g
		}
	}
	return best
}

// castling moves a trailing silent e past one or two final consonants,
// so a long-vowel grapheme drawn as "a_e" style ends up written the
// conventional way (maek → make). The rewrite ends in e, so a second
// application never matches again.
var castling = regexp.MustCompile(`([aeiouy])e([bcdfgkmnprstvz]{1,2})$`)

// cleanSpelling applies the word-level orthographic cleanups: run
// collapse, digraph artifact fixes and magic-e castling. Each cleanup
// is idempotent, so the whole pass can safely run more than once on the
// same word.
func (ctx *genContext) cleanSpelling(written string) string {
	s := collapseRuns(written, ctx.cfg.Orthography.KeepDoubles)
	s = fixDigraphs(s, ctx.cfg.Orthography.DigraphFixes)
	return castling.ReplaceAllString(s, "${1}${2}e")
}

// collapseRuns caps letter runs at two, and collapses doubled vowels to
// one unless the pair is a conventional digraph (ee, oo).
func collapseRuns(s string, keepDoubles map[string]bool) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		keep := j - i
		if keep > 2 {
			keep = 2
		}
		if keep == 2 && isVowelLetter(runes[i]) && !keepDoubles[string([]rune{runes[i], runes[i]})] {
			keep = 1
		}
		for k := 0; k < keep; k++ {
			b.WriteRune(runes[i])
		}
		i = j
	}
	return b.String()
}

// fixDigraphs applies the configured literal artifact rewrites to a
// fixed point. The rewrite set is small and strictly shortening or
// neutral, so the loop terminates quickly; the iteration cap is a
// backstop against a pathological table.
func fixDigraphs(s string, fixes [][2]string) string {
	for iter := 0; iter < 8; iter++ {
		before := s
		for _, f := range fixes {
			s = strings.ReplaceAll(s, f[0], f[1])
		}
		if s == before {
			break
		}
	}
	return s
}
