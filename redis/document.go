package redis

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"
)

// PartialDocument is a struct view over a stored JSON document. Fields the
// struct does not declare are kept when the document is saved.
type PartialDocument interface {
	partial() *Partial
}

// Partial is embedded by partial documents to remember what was read.
type Partial struct {
	raw      []byte
	original []byte
}

func (p *Partial) partial() *Partial {
	return p
}

func fillPartial(doc PartialDocument, raw []byte) error {
	if err := json.Unmarshal(raw, doc); err != nil {
		return err
	}
	original, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	p := doc.partial()
	p.raw = raw
	p.original = original
	return nil
}

// mergedDocument applies the changes made to the struct since it was read
// as a JSON merge patch over the stored document.
func mergedDocument(doc PartialDocument) ([]byte, error) {
	current, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	p := doc.partial()
	if p.raw == nil {
		return current, nil
	}
	patch, err := jsonpatch.CreateMergePatch(p.original, current)
	if err != nil {
		return nil, err
	}
	return jsonpatch.MergePatch(p.raw, patch)
}
