package schema

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// ErrNilColumns is returned when Infer is called with a nil column slice.
// Messy data never errors; a nil slice is a caller bug.
var ErrNilColumns = errors.New("schema: columns must not be nil")

// RawColumn is one column of an uploaded manifest: its header text
// (possibly empty or duplicated) and up to SampleSize cell values in
// original row order.
type RawColumn struct {
	Header string   `json:"header"`
	Sample []string `json:"sample"`
}

// CandidateMatch is the scored pairing of one header with one field.
type CandidateMatch struct {
	Header       string  `json:"header"`
	Field        FieldID `json:"field"`
	NameScore    float64 `json:"name_score"`
	ContentScore float64 `json:"content_score"`
	FinalScore   float64 `json:"final_score"`
}

// AlternateCandidate is a runner-up header for a field.
type AlternateCandidate struct {
	Header string  `json:"header"`
	Score  float64 `json:"score"`
}

// SchemaMapping is the engine's result: which header supplies each field,
// how confident each assignment is, the runners-up, and which required
// fields found no home.
type SchemaMapping struct {
	Assignments       map[FieldID]string               `json:"assignments"`
	Confidence        map[FieldID]float64              `json:"confidence"`
	Alternates        map[FieldID][]AlternateCandidate `json:"alternates,omitempty"`
	UnmatchedRequired []FieldID                        `json:"unmatched_required,omitempty"`
	Warnings          []string                         `json:"warnings,omitempty"`
}

// Options are the engine's scoring constants. They are fixed at
// construction, never per request, so results stay reproducible.
type Options struct {
	SampleSize          int
	AcceptanceThreshold float64
	NameWeight          float64
	ContentWeight       float64
}

// DefaultOptions returns the standard constants: 10-row samples,
// acceptance at 0.55, and a 0.7/0.3 name/content split. Header names are
// the primary signal; content is the tie-breaker and the safety net for
// generic headers.
func DefaultOptions() Options {
	return Options{
		SampleSize:          10,
		AcceptanceThreshold: 0.55,
		NameWeight:          0.7,
		ContentWeight:       0.3,
	}
}

// contentOverrideThreshold lets a diagnostic shape predicate claim a
// column whose header carries no signal at all ("Col1", blank, etc.).
const contentOverrideThreshold = 0.80

// Engine maps raw manifest columns to semantic fields. It holds only
// immutable state after construction, so a single Engine may serve any
// number of concurrent Infer calls.
type Engine struct {
	catalog *Catalog
	opts    Options
	names   *NameScorer
	content *ContentClassifier
	log     *slog.Logger
}

// NewEngine creates an engine over the built-in field catalog.
func NewEngine(opts Options) *Engine {
	return NewEngineWithCatalog(DefaultCatalog(), opts)
}

// NewEngineWithCatalog creates an engine over a custom catalog.
func NewEngineWithCatalog(catalog *Catalog, opts Options) *Engine {
	return &Engine{
		catalog: catalog,
		opts:    opts,
		names:   NewNameScorer(),
		content: NewContentClassifier(),
		log:     slog.Default(),
	}
}

// WithLogger returns a copy of the engine using the given logger.
func (e *Engine) WithLogger(log *slog.Logger) *Engine {
	clone := *e
	clone.log = log
	return &clone
}

// ScoreName scores a header against one field's variant list.
func (e *Engine) ScoreName(header string, field FieldID) float64 {
	def, ok := e.catalog.Definition(field)
	if !ok {
		return 0
	}
	return e.names.Score(header, def.Variants)
}

// ScoreContent scores a column sample against one field's shape
// predicate. Returns 0 when the classifier abstains.
func (e *Engine) ScoreContent(sample []string, field FieldID) float64 {
	score, _ := e.content.Score(e.clampSample(sample), field)
	return score
}

// Infer assigns headers to fields: scores every (header, field) pair,
// then walks fields in priority order, each claiming its best remaining
// header. One header per field, one field per header, deterministic
// tie-breaks. Never fails on messy input; only a nil slice is an error.
func (e *Engine) Infer(columns []RawColumn) (*SchemaMapping, error) {
	if columns == nil {
		return nil, ErrNilColumns
	}

	mapping := &SchemaMapping{
		Assignments: make(map[FieldID]string),
		Confidence:  make(map[FieldID]float64),
		Alternates:  make(map[FieldID][]AlternateCandidate),
	}
	e.warnOnHeaderNoise(columns, mapping)

	claimed := make([]bool, len(columns))

	for _, def := range e.catalog.AllFields() {
		var candidates []scoredColumn
		for i, col := range columns {
			if claimed[i] {
				continue
			}
			match := e.scorePair(col, def)
			if e.qualifies(match) {
				candidates = append(candidates, scoredColumn{index: i, match: match})
			}
		}
		if len(candidates) == 0 {
			if def.Required {
				mapping.UnmatchedRequired = append(mapping.UnmatchedRequired, def.ID)
				mapping.Warnings = append(mapping.Warnings,
					fmt.Sprintf("no column matched required field %s", def.ID))
			}
			continue
		}

		// Stable sort: equal scores keep column order, so ties resolve
		// to the leftmost column every run.
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].match.FinalScore > candidates[j].match.FinalScore
		})

		winner := candidates[0]
		claimed[winner.index] = true
		mapping.Assignments[def.ID] = winner.match.Header
		mapping.Confidence[def.ID] = winner.match.FinalScore

		e.log.Debug("column assigned",
			"field", def.ID,
			"header", winner.match.Header,
			"name_score", winner.match.NameScore,
			"content_score", winner.match.ContentScore,
			"confidence", winner.match.FinalScore)

		if winner.match.FinalScore < e.opts.AcceptanceThreshold {
			mapping.Warnings = append(mapping.Warnings,
				fmt.Sprintf("field %s assigned from content evidence alone (header %q carries no name signal)",
					def.ID, winner.match.Header))
		}

		for _, alt := range candidates[1:] {
			if alt.match.FinalScore < e.opts.AcceptanceThreshold {
				continue
			}
			mapping.Alternates[def.ID] = append(mapping.Alternates[def.ID], AlternateCandidate{
				Header: alt.match.Header,
				Score:  alt.match.FinalScore,
			})
			if len(mapping.Alternates[def.ID]) == 3 {
				break
			}
		}
	}

	return mapping, nil
}

type scoredColumn struct {
	index int
	match CandidateMatch
}

// scorePair blends name and content evidence for one (column, field)
// pair. When the classifier abstains (no sample, or no predicate for the
// field) the name score stands alone: absence of evidence is not
// evidence of absence.
func (e *Engine) scorePair(col RawColumn, def FieldDefinition) CandidateMatch {
	nameScore := e.names.Score(col.Header, def.Variants)
	contentScore, hasContent := e.content.Score(e.clampSample(col.Sample), def.ID)

	final := nameScore
	if hasContent {
		final = e.opts.NameWeight*nameScore + e.opts.ContentWeight*contentScore
	}

	return CandidateMatch{
		Header:       col.Header,
		Field:        def.ID,
		NameScore:    nameScore,
		ContentScore: contentScore,
		FinalScore:   final,
	}
}

// qualifies accepts a candidate that clears the threshold, or one whose
// diagnostic content evidence is decisive even though the header told us
// nothing (the "Col1" case).
func (e *Engine) qualifies(match CandidateMatch) bool {
	if match.FinalScore >= e.opts.AcceptanceThreshold {
		return true
	}
	return e.content.Diagnostic(match.Field) &&
		match.ContentScore >= contentOverrideThreshold
}

func (e *Engine) clampSample(sample []string) []string {
	if e.opts.SampleSize > 0 && len(sample) > e.opts.SampleSize {
		return sample[:e.opts.SampleSize]
	}
	return sample
}

func (e *Engine) warnOnHeaderNoise(columns []RawColumn, mapping *SchemaMapping) {
	seen := make(map[string]bool, len(columns))
	blank := 0
	for _, col := range columns {
		norm := Normalize(col.Header)
		if norm == "" {
			blank++
			continue
		}
		if seen[norm] {
			mapping.Warnings = append(mapping.Warnings,
				fmt.Sprintf("duplicate header %q: only one column can be assigned", col.Header))
		}
		seen[norm] = true
	}
	if blank > 0 {
		mapping.Warnings = append(mapping.Warnings,
			fmt.Sprintf("%d column(s) have an empty header; content evidence only", blank))
	}
}
