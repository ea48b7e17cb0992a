// Package relations groups tokens into compound spans and walks the
// dependency tree to produce typed relations between them.
package relations

import (
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/tenses"
	"text2phenotype.com/relex/types"
)

// Relation is a typed, directed link between two compound spans. For
// subject-verb relations the subject is always Head and the verb is Sub.
type Relation struct {
	Tense types.Tense
	Mode  types.Mode
	// Rel is "{head_pos}.{head_dep}=>{sub_pos}.{sub_dep}" of the span roots.
	Rel  string
	Type types.RelationType
	Head document.Span
	Sub  document.Span
}

// Extractor derives compounds, relations and svos of one document. It
// memoizes compound spans and is not safe for concurrent use.
type Extractor struct {
	doc       *document.Doc
	detector  tenses.Detector
	compounds map[int]document.Span
}

func New(doc *document.Doc) *Extractor {
	return NewWithDetector(doc, tenses.ForLanguage(doc.Lang()))
}

func NewWithDetector(doc *document.Doc, detector tenses.Detector) *Extractor {
	return &Extractor{
		doc:       doc,
		detector:  detector,
		compounds: make(map[int]document.Span, doc.Len()),
	}
}

func (e *Extractor) Doc() *document.Doc {
	return e.doc
}
