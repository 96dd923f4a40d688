package glossa

// repair enforces hard phonotactic legality on the syllable list.
// The passes run in a fixed order, mutate in place, only ever remove
// phonemes, and are idempotent: repairing already-legal syllables is a
// no-op. A coda emptied entirely by cascading drops is valid output,
// not a fault.
func (ctx *genContext) repair(sylls []*Syllable) {
	passes := []func([]*Syllable) bool{
		ctx.repairBoundaries,
		ctx.repairFinalCoda,
		ctx.repairClusterShape,
		ctx.repairVoicing,
		ctx.repairNasalStop,
		ctx.repairCodaPairs,
	}
	for _, pass := range passes {
		if pass(sylls) {
			ctx.trace.repairPass()
		}
	}
}

// repairBoundaries removes banned (coda-final, onset-initial) pairs at
// every syllable boundary. Drops cascade: removing a phoneme exposes a
// new boundary pair, which is re-checked until the boundary is legal or
// one side is exhausted.
func (ctx *genContext) repairBoundaries(sylls []*Syllable) bool {
	changed := false
	for i := 0; i < len(sylls)-1; i++ {
		a, b := sylls[i], sylls[i+1]
		for len(a.Coda) > 0 && len(b.Onset) > 0 {
			pair := [2]string{a.Coda[len(a.Coda)-1].Symbol, b.Onset[0].Symbol}
			if !ctx.cfg.BannedBoundaries[pair] {
				break
			}
			if ctx.cfg.BoundaryRepair == DropOnset {
				b.Onset = b.Onset[1:]
			} else {
				a.Coda = a.Coda[:len(a.Coda)-1]
			}
			changed = true
		}
	}
	return changed
}

// repairFinalCoda drops word-final coda phonemes until the last one is
// in the allowed-final set (or the coda is empty).
func (ctx *genContext) repairFinalCoda(sylls []*Syllable) bool {
	last := sylls[len(sylls)-1]
	changed := false
	for len(last.Coda) > 0 {
		if ctx.cfg.AllowedFinal[last.Coda[len(last.Coda)-1].Symbol] {
			break
		}
		last.Coda = last.Coda[:len(last.Coda)-1]
		changed = true
	}
	return changed
}

// repairClusterShape truncates over-long clusters. Trimming removes the
// outer edge so the phonemes closest to the nucleus survive; a coda
// whose final sound is in the appendant set keeps that sound and gains
// one extra slot.
func (ctx *genContext) repairClusterShape(sylls []*Syllable) bool {
	changed := false
	for _, syl := range sylls {
		for len(syl.Onset) > ctx.cfg.MaxOnset {
			syl.Onset = syl.Onset[1:]
			changed = true
		}
		if len(syl.Coda) == 0 {
			continue
		}
		limit := ctx.cfg.MaxCoda
		appendant := ctx.cfg.AppendantCodas[syl.Coda[len(syl.Coda)-1].Symbol]
		if appendant {
			limit++
		}
		for len(syl.Coda) > limit {
			if appendant {
				// Preserve the trailing appendant: remove the sound
				// just before it.
				syl.Coda = append(syl.Coda[:len(syl.Coda)-2], syl.Coda[len(syl.Coda)-1])
			} else {
				syl.Coda = syl.Coda[:len(syl.Coda)-1]
			}
			changed = true
		}
	}
	return changed
}

// repairVoicing enforces voicing agreement inside codas: the last
// obstruent is authoritative, and any earlier obstruent disagreeing in
// voicing is dropped. Sonorants in between are untouched.
func (ctx *genContext) repairVoicing(sylls []*Syllable) bool {
	changed := false
	for _, syl := range sylls {
		lastObstruent := -1
		for i := len(syl.Coda) - 1; i >= 0; i-- {
			if syl.Coda[i].Manner.IsObstruent() {
				lastObstruent = i
				break
			}
		}
		if lastObstruent < 0 {
			continue
		}
		voiced := syl.Coda[lastObstruent].Voiced
		kept := syl.Coda[:0]
		for i, p := range syl.Coda {
			if i < lastObstruent && p.Manner.IsObstruent() && p.Voiced != voiced {
				changed = true
				continue
			}
			kept = append(kept, p)
		}
		syl.Coda = kept
	}
	return changed
}

// repairNasalStop drops a coda nasal immediately followed by a stop of
// a different place of articulation (non-homorganic clusters).
func (ctx *genContext) repairNasalStop(sylls []*Syllable) bool {
	changed := false
	for _, syl := range sylls {
		for i := 0; i < len(syl.Coda)-1; {
			p, next := syl.Coda[i], syl.Coda[i+1]
			if p.Manner == MannerNasal && next.Manner == MannerStop && p.Place != next.Place {
				syl.Coda = append(syl.Coda[:i], syl.Coda[i+1:]...)
				changed = true
				continue
			}
			i++
		}
	}
	return changed
}

// repairCodaPairs strips dialect-specific coda sequences (the second
// member of each configured pair), leaving other post-nasal consonants
// untouched.
func (ctx *genContext) repairCodaPairs(sylls []*Syllable) bool {
	changed := false
	for _, syl := range sylls {
		for i := 0; i < len(syl.Coda)-1; {
			pair := [2]string{syl.Coda[i].Symbol, syl.Coda[i+1].Symbol}
			if ctx.cfg.CodaPairDrops[pair] {
				syl.Coda = append(syl.Coda[:i+1], syl.Coda[i+2:]...)
				changed = true
				continue
			}
			i++
		}
	}
	return changed
}
