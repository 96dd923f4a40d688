// Command glossa generates English-sounding nonsense words.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/wordforge/glossa"
	"github.com/wordforge/glossa/english"
)

var cli struct {
	Generate generateCmd `cmd:"" default:"withargs" help:"Generate nonsense words."`
}

type generateCmd struct {
	Count        int    `short:"n" default:"1" help:"Number of words to generate."`
	Mode         string `default:"lexicon" enum:"lexicon,text" help:"Word-length statistics: lexicon (headwords) or text (running text)."`
	Seed         *int64 `help:"Seed for reproducible output; word i uses seed+i."`
	Syllables    int    `help:"Override the drawn syllable count."`
	NoMorphology bool   `help:"Disable prefix/suffix attachment."`
	Pronounce    bool   `short:"p" help:"Print the pronunciation next to each word."`
	Hyphenate    bool   `help:"Print the syllable-separated spelling."`
	Trace        bool   `help:"Append a per-word decision summary."`
	JSON         bool   `name:"json" help:"Emit one JSON object per word."`
}

func (c *generateCmd) options(i int) glossa.Options {
	opts := glossa.DefaultOptions()
	opts.Mode = glossa.Mode(c.Mode)
	opts.SyllableCount = c.Syllables
	opts.Morphology = !c.NoMorphology
	opts.Trace = c.Trace
	if c.Seed != nil {
		opts.Seeded = true
		opts.Seed = *c.Seed + int64(i)
	}
	return opts
}

// wordOut is the JSON shape emitted with --json.
type wordOut struct {
	Written       string `json:"written"`
	Hyphenated    string `json:"hyphenated"`
	Pronunciation string `json:"pronunciation"`
	Syllables     int    `json:"syllables"`
	Decisions     int    `json:"decisions,omitempty"`
	RepairPasses  int    `json:"repair_passes,omitempty"`
	Morphology    bool   `json:"morphology,omitempty"`
}

func (c *generateCmd) Run() error {
	g, err := glossa.New(english.Config())
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	for i := 0; i < c.Count; i++ {
		word, err := g.Generate(c.options(i))
		if err != nil {
			return fmt.Errorf("word %d: %w", i, err)
		}
		if c.JSON {
			out := wordOut{
				Written:       word.Written,
				Hyphenated:    word.Hyphenated,
				Pronunciation: word.Pronunciation,
				Syllables:     len(word.Syllables),
			}
			if word.Trace != nil {
				out.Decisions = word.Trace.Decisions()
				out.RepairPasses = word.Trace.RepairPasses
				out.Morphology = word.Trace.MorphologyApplied
			}
			if err := enc.Encode(out); err != nil {
				return err
			}
			continue
		}
		line := word.Written
		if c.Hyphenate {
			line = word.Hyphenated
		}
		if c.Pronounce {
			line += "\t/" + word.Pronunciation + "/"
		}
		if c.Trace && word.Trace != nil {
			line += fmt.Sprintf("\t(%d decisions, %d repair passes)",
				word.Trace.Decisions(), word.Trace.RepairPasses)
		}
		fmt.Println(line)
	}
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("glossa"),
		kong.Description("A generator of phonologically plausible English-sounding nonsense words."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
