// Package export flattens relations, svos and tokens into table rows.
package export

import "text2phenotype.com/relex/types"

// Row is a table row whose values follow the column order of its table.
type Row interface {
	Values() []interface{}
}

var RelationColumns = []string{
	"head_tense", "head_mode", "sub_tense", "sub_mode", "rtype",
	"head", "sub", "head_lead", "sub_lead", "head_lemma", "sub_lemma",
	"head_neg", "sub_neg", "head_pos", "head_dep", "sub_pos", "sub_dep",
	"head_ent", "head_ent_label", "sub_ent", "sub_ent_label",
	"head_vector_norm", "sub_vector_norm", "head_vector", "sub_vector",
	"head_start", "head_end", "sub_start", "sub_end",
	"sentiment", "sent_sentiment", "valence", "sent_valence",
	"docid", "sentid",
}

type RelationRow struct {
	HeadTense      types.Tense        `json:"head_tense"`
	HeadMode       types.Mode         `json:"head_mode"`
	SubTense       types.Tense        `json:"sub_tense"`
	SubMode        types.Mode         `json:"sub_mode"`
	Type           types.RelationType `json:"rtype"`
	Head           string             `json:"head"`
	Sub            string             `json:"sub"`
	HeadLead       string             `json:"head_lead"`
	SubLead        string             `json:"sub_lead"`
	HeadLemma      string             `json:"head_lemma"`
	SubLemma       string             `json:"sub_lemma"`
	HeadNeg        bool               `json:"head_neg"`
	SubNeg         bool               `json:"sub_neg"`
	HeadPos        string             `json:"head_pos"`
	HeadDep        string             `json:"head_dep"`
	SubPos         string             `json:"sub_pos"`
	SubDep         string             `json:"sub_dep"`
	HeadEnt        bool               `json:"head_ent"`
	HeadEntLabel   string             `json:"head_ent_label"`
	SubEnt         bool               `json:"sub_ent"`
	SubEntLabel    string             `json:"sub_ent_label"`
	HeadVectorNorm float64            `json:"head_vector_norm"`
	SubVectorNorm  float64            `json:"sub_vector_norm"`
	HeadVector     []float32          `json:"head_vector"`
	SubVector      []float32          `json:"sub_vector"`
	HeadStart      int                `json:"head_start"`
	HeadEnd        int                `json:"head_end"`
	SubStart       int                `json:"sub_start"`
	SubEnd         int                `json:"sub_end"`
	Sentiment      float64            `json:"sentiment"`
	SentSentiment  float64            `json:"sent_sentiment"`
	Valence        float64            `json:"valence"`
	SentValence    float64            `json:"sent_valence"`
	DocId          string             `json:"docid"`
	SentId         string             `json:"sentid"`
}

func (r RelationRow) Values() []interface{} {
	return []interface{}{
		r.HeadTense.Name(), r.HeadMode.Name(), r.SubTense.Name(), r.SubMode.Name(), r.Type.Name(),
		r.Head, r.Sub, r.HeadLead, r.SubLead, r.HeadLemma, r.SubLemma,
		r.HeadNeg, r.SubNeg, r.HeadPos, r.HeadDep, r.SubPos, r.SubDep,
		r.HeadEnt, r.HeadEntLabel, r.SubEnt, r.SubEntLabel,
		r.HeadVectorNorm, r.SubVectorNorm, r.HeadVector, r.SubVector,
		r.HeadStart, r.HeadEnd, r.SubStart, r.SubEnd,
		r.Sentiment, r.SentSentiment, r.Valence, r.SentValence,
		r.DocId, r.SentId,
	}
}

var SVOColumns = []string{
	"tense", "mode", "neg", "rtype",
	"subj", "verb", "obj",
	"subj_lead", "verb_lead", "obj_lead",
	"subj_lemma", "verb_lemma", "obj_lemma",
	"subj_ent", "subj_ent_label", "obj_ent", "obj_ent_label",
	"subj_terms", "obj_terms",
	"subj_vector_norm", "verb_vector_norm", "obj_vector_norm",
	"subj_vector", "verb_vector", "obj_vector",
	"sentiment", "sent_sentiment", "valence", "sent_valence",
	"docid", "sentid",
}

type SVORow struct {
	Tense          types.Tense   `json:"tense"`
	Mode           types.Mode    `json:"mode"`
	Neg            bool          `json:"neg"`
	Type           types.SVOType `json:"rtype"`
	Subj           string        `json:"subj"`
	Verb           string        `json:"verb"`
	Obj            string        `json:"obj"`
	SubjLead       string        `json:"subj_lead"`
	VerbLead       string        `json:"verb_lead"`
	ObjLead        string        `json:"obj_lead"`
	SubjLemma      string        `json:"subj_lemma"`
	VerbLemma      string        `json:"verb_lemma"`
	ObjLemma       string        `json:"obj_lemma"`
	SubjEnt        bool          `json:"subj_ent"`
	SubjEntLabel   string        `json:"subj_ent_label"`
	ObjEnt         bool          `json:"obj_ent"`
	ObjEntLabel    string        `json:"obj_ent_label"`
	SubjTerms      []string      `json:"subj_terms"`
	ObjTerms       []string      `json:"obj_terms"`
	SubjVectorNorm float64       `json:"subj_vector_norm"`
	VerbVectorNorm float64       `json:"verb_vector_norm"`
	ObjVectorNorm  float64       `json:"obj_vector_norm"`
	SubjVector     []float32     `json:"subj_vector"`
	VerbVector     []float32     `json:"verb_vector"`
	ObjVector      []float32     `json:"obj_vector"`
	Sentiment      float64       `json:"sentiment"`
	SentSentiment  float64       `json:"sent_sentiment"`
	Valence        float64       `json:"valence"`
	SentValence    float64       `json:"sent_valence"`
	DocId          string        `json:"docid"`
	SentId         string        `json:"sentid"`
}

func (r SVORow) Values() []interface{} {
	return []interface{}{
		r.Tense.Name(), r.Mode.Name(), r.Neg, r.Type.Name(),
		r.Subj, r.Verb, r.Obj,
		r.SubjLead, r.VerbLead, r.ObjLead,
		r.SubjLemma, r.VerbLemma, r.ObjLemma,
		r.SubjEnt, r.SubjEntLabel, r.ObjEnt, r.ObjEntLabel,
		r.SubjTerms, r.ObjTerms,
		r.SubjVectorNorm, r.VerbVectorNorm, r.ObjVectorNorm,
		r.SubjVector, r.VerbVector, r.ObjVector,
		r.Sentiment, r.SentSentiment, r.Valence, r.SentValence,
		r.DocId, r.SentId,
	}
}

var TokenColumns = []string{
	"tense", "mode", "neg",
	"token", "lead", "lemma",
	"pos", "dep",
	"ent", "ent_label",
	"vector_norm", "vector",
	"start", "end",
	"sentiment", "sent_sentiment", "valence", "sent_valence",
	"docid", "sentid",
}

type TokenRow struct {
	Tense         types.Tense `json:"tense"`
	Mode          types.Mode  `json:"mode"`
	Neg           bool        `json:"neg"`
	Token         string      `json:"token"`
	Lead          string      `json:"lead"`
	Lemma         string      `json:"lemma"`
	Pos           string      `json:"pos"`
	Dep           string      `json:"dep"`
	Ent           bool        `json:"ent"`
	EntLabel      string      `json:"ent_label"`
	VectorNorm    float64     `json:"vector_norm"`
	Vector        []float32   `json:"vector"`
	Start         int         `json:"start"`
	End           int         `json:"end"`
	Sentiment     float64     `json:"sentiment"`
	SentSentiment float64     `json:"sent_sentiment"`
	Valence       float64     `json:"valence"`
	SentValence   float64     `json:"sent_valence"`
	DocId         string      `json:"docid"`
	SentId        string      `json:"sentid"`
}

func (r TokenRow) Values() []interface{} {
	return []interface{}{
		r.Tense.Name(), r.Mode.Name(), r.Neg,
		r.Token, r.Lead, r.Lemma,
		r.Pos, r.Dep,
		r.Ent, r.EntLabel,
		r.VectorNorm, r.Vector,
		r.Start, r.End,
		r.Sentiment, r.SentSentiment, r.Valence, r.SentValence,
		r.DocId, r.SentId,
	}
}
