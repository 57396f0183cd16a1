// Package speech turns mixed-language technical text into TTS-ready
// Russian prose and keeps an exact mapping from the rewritten text
// back to the source, so a player can highlight the original word
// being spoken.
package speech

import (
	"github.com/charmbracelet/log"

	"github.com/xilec/ruvox/pkg/textmap"
	"github.com/xilec/ruvox/speech/normalize"
)

// Pipeline runs the fixed sequence of normalization passes over one
// document at a time. A Pipeline is not safe for concurrent use; each
// call is atomic from the caller's point of view.
type Pipeline struct {
	set *normalize.Set
}

// NewPipeline creates a pipeline with the given options. Words that
// fall through to phonetic transliteration are logged at debug level
// and collected in the diagnostic set.
func NewPipeline(opts normalize.Options) *Pipeline {
	set := normalize.NewSet(opts, func(word string) {
		log.Debug("no known pronunciation, transliterating", "word", word)
	})
	return &Pipeline{set: set}
}

// SetOptions replaces the pipeline options between documents.
func (p *Pipeline) SetOptions(opts normalize.Options) {
	p.set.SetOptions(opts)
}

// Options returns the current pipeline options.
func (p *Pipeline) Options() normalize.Options {
	return p.set.Options()
}

// Process normalizes text without building the position map.
func (p *Pipeline) Process(text string) string {
	return p.run(text).Text()
}

// ProcessWithMap normalizes text and returns the dense
// transformed→source character map alongside it.
func (p *Pipeline) ProcessWithMap(text string) (string, *textmap.CharMap) {
	m := p.run(text).BuildMap()
	return m.Transformed, m
}

func (p *Pipeline) run(text string) *textmap.Tracker {
	t := textmap.NewTracker(text)
	for _, pass := range p.set.Passes() {
		before := len(t.Replacements())
		pass.Apply(t)
		if n := len(t.Replacements()) - before; n > 0 {
			log.Debug("normalization pass applied", "pass", pass.Name, "replacements", n)
		}
	}
	return t
}

// UnknownWords returns the words that needed phonetic transliteration
// since the last ResetDiagnostics, unordered.
func (p *Pipeline) UnknownWords() []string {
	return p.set.UnknownWords()
}

// ResetDiagnostics clears the unknown-word set and the
// transliteration memo. Call before each new document.
func (p *Pipeline) ResetDiagnostics() {
	p.set.Reset()
}
