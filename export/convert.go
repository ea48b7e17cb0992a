package export

import (
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/relations"
)

// Relations converts relations to rows, dropping duplicates.
func Relations(e *relations.Extractor, rels []relations.Relation) []RelationRow {
	rows := make([]RelationRow, 0, len(rels))
	for _, r := range rels {
		rows = append(rows, relationRow(e, r))
	}
	return DedupRelations(rows)
}

func relationRow(e *relations.Extractor, r relations.Relation) RelationRow {
	head, sub := r.Head, r.Sub
	sent := head.Sent()
	excerpt := head.Doc().Span(minInt(head.Start, sub.Start), maxInt(head.End, sub.End))
	subTense, subMode := e.Tense(relations.Lead(sub))
	hr, sr := head.Root(), sub.Root()

	return RelationRow{
		HeadTense:      r.Tense,
		HeadMode:       r.Mode,
		SubTense:       subTense,
		SubMode:        subMode,
		Type:           r.Type,
		Head:           head.Lower(),
		Sub:            sub.Lower(),
		HeadLead:       relations.Lead(head).Lower(),
		SubLead:        relations.Lead(sub).Lower(),
		HeadLemma:      relations.Lemma(head),
		SubLemma:       relations.Lemma(sub),
		HeadNeg:        relations.IsNeg(head),
		SubNeg:         relations.IsNeg(sub),
		HeadPos:        hr.Pos(),
		HeadDep:        hr.Dep(),
		SubPos:         sr.Pos(),
		SubDep:         sr.Dep(),
		HeadEnt:        relations.IsEnt(head),
		HeadEntLabel:   head.Label(),
		SubEnt:         relations.IsEnt(sub),
		SubEntLabel:    sub.Label(),
		HeadVectorNorm: head.VectorNorm(),
		SubVectorNorm:  sub.VectorNorm(),
		HeadVector:     head.Vector(),
		SubVector:      sub.Vector(),
		HeadStart:      head.Start,
		HeadEnd:        head.End,
		SubStart:       sub.Start,
		SubEnd:         sub.End,
		Sentiment:      excerpt.Sentiment(),
		SentSentiment:  sent.Sentiment(),
		Valence:        excerpt.Valence(),
		SentValence:    sent.Valence(),
		DocId:          head.Doc().ID(),
		SentId:         sent.ID(),
	}
}

type relationKey struct {
	rtype              string
	headStart, headEnd int
	subStart, subEnd   int
	docId, sentId      string
}

// DedupRelations keeps the first row of every relation type and
// head/sub range within a sentence.
func DedupRelations(rows []RelationRow) []RelationRow {
	seen := make(map[relationKey]bool, len(rows))
	result := make([]RelationRow, 0, len(rows))
	for _, row := range rows {
		key := relationKey{
			rtype:     row.Type.Name(),
			headStart: row.HeadStart,
			headEnd:   row.HeadEnd,
			subStart:  row.SubStart,
			subEnd:    row.SubEnd,
			docId:     row.DocId,
			sentId:    row.SentId,
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, row)
	}
	return result
}

func SVOs(svos []relations.SVO) []SVORow {
	rows := make([]SVORow, 0, len(svos))
	for _, svo := range svos {
		sent := svo.Verb.Sent()
		rows = append(rows, SVORow{
			Tense:          svo.Tense,
			Mode:           svo.Mode,
			Neg:            svo.Neg,
			Type:           svo.Type,
			Subj:           svo.Subj.Lower(),
			Verb:           svo.Verb.Lower(),
			Obj:            svo.Obj.Lower(),
			SubjLead:       relations.Lead(svo.Subj).Lower(),
			VerbLead:       relations.Lead(svo.Verb).Lower(),
			ObjLead:        relations.Lead(svo.Obj).Lower(),
			SubjLemma:      relations.Lemma(svo.Subj),
			VerbLemma:      relations.Lemma(svo.Verb),
			ObjLemma:       relations.Lemma(svo.Obj),
			SubjEnt:        relations.IsEnt(svo.Subj),
			SubjEntLabel:   svo.Subj.Label(),
			ObjEnt:         relations.IsEnt(svo.Obj),
			ObjEntLabel:    svo.Obj.Label(),
			SubjTerms:      lemmas(svo.SubjTerms),
			ObjTerms:       lemmas(svo.ObjTerms),
			SubjVectorNorm: svo.Subj.VectorNorm(),
			VerbVectorNorm: svo.Verb.VectorNorm(),
			ObjVectorNorm:  svo.Obj.VectorNorm(),
			SubjVector:     svo.Subj.Vector(),
			VerbVector:     svo.Verb.Vector(),
			ObjVector:      svo.Obj.Vector(),
			Sentiment:      svo.Sentiment(),
			SentSentiment:  svo.SentSentiment(),
			Valence:        svo.Valence(),
			SentValence:    svo.SentValence(),
			DocId:          svo.Verb.Doc().ID(),
			SentId:         sent.ID(),
		})
	}
	return rows
}

// Tokens converts the compound token stream of the document.
func Tokens(e *relations.Extractor) []TokenRow {
	spans := e.DocTokens()
	rows := make([]TokenRow, 0, len(spans))
	for _, span := range spans {
		tense, mode := e.Tense(span)
		drive := relations.Drive(span)
		sent := span.Sent()
		rows = append(rows, TokenRow{
			Tense:         tense,
			Mode:          mode,
			Neg:           relations.IsNeg(span),
			Token:         span.Lower(),
			Lead:          span.Lower(),
			Lemma:         span.Lemma(),
			Pos:           drive.Pos(),
			Dep:           drive.Dep(),
			Ent:           relations.IsEnt(span),
			EntLabel:      span.Label(),
			VectorNorm:    span.VectorNorm(),
			Vector:        span.Vector(),
			Start:         span.Start,
			End:           span.End,
			Sentiment:     span.Sentiment(),
			SentSentiment: sent.Sentiment(),
			Valence:       span.Valence(),
			SentValence:   sent.Valence(),
			DocId:         span.Doc().ID(),
			SentId:        sent.ID(),
		})
	}
	return rows
}

func lemmas(spans []document.Span) []string {
	result := make([]string, len(spans))
	for i, s := range spans {
		result[i] = relations.Lemma(s)
	}
	return result
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
