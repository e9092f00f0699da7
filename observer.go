package md2site

import "time"

// Stage names a step of page generation.
type Stage string

// Generation stages, in execution order.
const (
	StagePreprocess  Stage = "preprocess"
	StageFrontMatter Stage = "front matter"
	StageTitle       Stage = "title"
	StageConvert     Stage = "convert"
	StageTemplate    Stage = "template"
	StageRewrite     Stage = "rewrite"
)

// Event describes one completed stage.
type Event struct {
	Source   string
	Stage    Stage
	Duration time.Duration
	Err      error
}

// BlockEvent describes one block classified by the native engine.
type BlockEvent struct {
	Source string
	Index  int    // Position in the document, starting at 0
	Kind   string // "heading", "paragraph", "code", "quote", "unordered_list", "ordered_list"
	Level  int    // Heading level, 0 for other kinds
}

// Observer receives generation events. Implementations must be safe for
// concurrent use when the Generator is shared between goroutines.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) {
	f(e)
}

type nopObserver struct{}

func (nopObserver) Observe(Event) {}

// Compile-time interface checks.
var (
	_ Observer = ObserverFunc(nil)
	_ Observer = nopObserver{}
)
