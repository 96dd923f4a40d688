package glossa

import "fmt"

// wordPos is a position within the whole word, selecting which of the
// phoneme's applicability weights governs a draw.
type wordPos int

const (
	wpStart wordPos = iota
	wpMid
	wpEnd
)

func (p wordPos) String() string {
	switch p {
	case wpStart:
		return "start"
	case wpMid:
		return "mid"
	default:
		return "end"
	}
}

// weightAt returns the phoneme's applicability weight at pos.
func (p *Phoneme) weightAt(pos wordPos) float64 {
	switch pos {
	case wpStart:
		return p.StartWeight
	case wpMid:
		return p.MidWeight
	default:
		return p.EndWeight
	}
}

// buildSyllables produces the unstressed, unrepaired syllable skeleton
// of a word with the given syllable count.
func (ctx *genContext) buildSyllables(count int) ([]*Syllable, error) {
	sylls := make([]*Syllable, 0, count)
	prevHadCoda := false
	for i := 0; i < count; i++ {
		syl, err := ctx.buildSyllable(i, count, prevHadCoda)
		if err != nil {
			return nil, err
		}
		prevHadCoda = len(syl.Coda) > 0
		sylls = append(sylls, syl)
	}

	// Equal-sonority boundaries are ambiguous to the ear; drop the coda
	// phoneme with the configured chance.
	for i := 0; i < len(sylls)-1; i++ {
		a, b := sylls[i], sylls[i+1]
		if len(a.Coda) == 0 || len(b.Onset) == 0 {
			continue
		}
		la := ctx.cfg.SonorityLevel(a.Coda[len(a.Coda)-1])
		lb := ctx.cfg.SonorityLevel(b.Onset[0])
		if la == lb && ctx.chance("build", "boundary_drop", ctx.cfg.Builder.BoundaryDropChance) {
			a.Coda = a.Coda[:len(a.Coda)-1]
		}
	}

	// Inflection-flavored embellishment: occasionally close the word
	// with the configured /s/-like sound.
	if sym := ctx.cfg.Builder.FinalSSymbol; sym != "" && ctx.cfg.Builder.FinalSChance > 0 {
		if p := ctx.g.phoneme(sym); p != nil {
			last := sylls[len(sylls)-1]
			if ctx.chance("build", "final_s", ctx.cfg.Builder.FinalSChance) {
				last.Coda = append(last.Coda, p.clone())
			}
		}
	}
	return sylls, nil
}

// buildSyllable builds syllable i of count, drawing cluster lengths
// from the tables matching the syllable's position in the word.
func (ctx *genContext) buildSyllable(i, count int, prevHadCoda bool) (*Syllable, error) {
	mono := count == 1
	final := i == count-1

	var onsetLen int
	switch {
	case mono:
		onsetLen = ctx.drawLength("build", "onset_len", ctx.g.monoOnset)
	case i == 0:
		onsetLen = ctx.drawLength("build", "onset_len", ctx.g.initOnset)
	case prevHadCoda:
		onsetLen = ctx.drawLength("build", "onset_len", ctx.g.onsetAfterCoda)
	default:
		onsetLen = ctx.drawLength("build", "onset_len", ctx.g.onsetAfterOpen)
	}
	if onsetLen > ctx.cfg.MaxOnset {
		onsetLen = ctx.cfg.MaxOnset
	}

	var codaLen int
	switch {
	case mono:
		row := onsetLen
		if row >= len(ctx.g.monoCoda) {
			row = len(ctx.g.monoCoda) - 1
		}
		codaLen = ctx.drawLength("build", "coda_len", ctx.g.monoCoda[row])
	case final:
		codaLen = ctx.drawLength("build", "coda_len", ctx.g.finalCoda)
	default:
		codaLen = ctx.drawLength("build", "coda_len", ctx.g.medialCoda)
	}
	if codaLen > ctx.cfg.MaxCoda {
		codaLen = ctx.cfg.MaxCoda
	}

	syl := &Syllable{}

	onsetPos := wpMid
	if i == 0 {
		onsetPos = wpStart
	}
	onset, err := ctx.drawCluster(posOnset, onsetLen, onsetPos)
	if err != nil {
		return nil, err
	}
	syl.Onset = onset

	nucleusPos := wpMid
	switch {
	case i == 0 && len(onset) == 0:
		nucleusPos = wpStart
	case final && codaLen == 0:
		nucleusPos = wpEnd
	}
	vowel, err := ctx.drawPhoneme("nucleus", ctx.g.vowels[nucleusPos], nucleusPos, nil)
	if err != nil {
		return nil, err
	}
	if vowel == nil {
		return nil, fmt.Errorf("nucleus (syllable %d, %s): %w", i, nucleusPos, ErrNoPhonemes)
	}
	syl.Nucleus = []*Phoneme{vowel}

	codaPos := wpMid
	if final {
		codaPos = wpEnd
	}
	coda, err := ctx.drawCluster(posCoda, codaLen, codaPos)
	if err != nil {
		return nil, err
	}
	syl.Coda = coda

	return syl, nil
}

// drawCluster draws up to length consonants for an onset or coda,
// enforcing sonority monotonicity: onsets are non-decreasing toward the
// nucleus, codas non-increasing away from it. Onsets are drawn (and
// stored) edge-first, codas nucleus-first, so in both cases each new
// slot is constrained against the previously drawn one. A candidate set
// emptied by the monotonicity filter shortens the cluster; an empty set
// on the first slot is a configuration error.
func (ctx *genContext) drawCluster(role syllablePosition, length int, pos wordPos) ([]*Phoneme, error) {
	if length == 0 {
		return nil, nil
	}
	pool := ctx.g.onsetPool[pos]
	if role == posCoda {
		pool = ctx.g.codaPool[pos]
	}
	cluster := make([]*Phoneme, 0, length)
	for slot := 0; slot < length; slot++ {
		filter := func(*Phoneme) bool { return true }
		if len(cluster) > 0 {
			prev := cluster[len(cluster)-1]
			prevLevel := ctx.cfg.SonorityLevel(prev)
			if role == posOnset {
				filter = func(p *Phoneme) bool {
					return p.Symbol != prev.Symbol && ctx.cfg.SonorityLevel(p) >= prevLevel
				}
			} else {
				filter = func(p *Phoneme) bool {
					return p.Symbol != prev.Symbol && ctx.cfg.SonorityLevel(p) <= prevLevel
				}
			}
		}
		p, err := ctx.drawPhoneme(role.String(), pool, pos, filter)
		if err != nil {
			return nil, err
		}
		if p == nil {
			if len(cluster) == 0 {
				return nil, fmt.Errorf("%s consonant (%s): %w", role, pos, ErrNoPhonemes)
			}
			break
		}
		cluster = append(cluster, p)
	}
	return cluster, nil
}

// drawPhoneme weighted-draws one phoneme from pool at pos, applying an
// optional filter. It returns nil when the filtered pool is empty, and
// always returns a per-word clone.
func (ctx *genContext) drawPhoneme(label string, pool []*Phoneme, pos wordPos, filter func(*Phoneme) bool) (*Phoneme, error) {
	choices := make([]Choice[*Phoneme], 0, len(pool))
	for _, p := range pool {
		if filter != nil && !filter(p) {
			continue
		}
		choices = append(choices, Choice[*Phoneme]{Value: p, Weight: p.weightAt(pos)})
	}
	if len(choices) == 0 {
		return nil, nil
	}
	roll := ctx.s.Float()
	p, err := pickChoice(choices, roll)
	if err != nil {
		return nil, fmt.Errorf("%s draw (%s): %w", label, pos, err)
	}
	ctx.trace.sample("build", label, roll, p.Symbol)
	return p.clone(), nil
}
