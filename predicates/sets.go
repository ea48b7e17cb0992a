package predicates

func set(values ...string) map[string]bool {
	result := make(map[string]bool, len(values))
	for _, v := range values {
		result[v] = true
	}
	return result
}

var (
	// coarse part of speech
	notSemanticPos = set("DET", "PRON", "PART")
	nounPos        = set("NOUN", "PROPN")
	verbPos        = set("VERB", "AUX")
	nonWordPos     = set("SPACE")

	// dependency labels
	subjDeps       = set("nsubj", "nsubjpass", "csubj")
	nonVerbDeps    = set("acl", "acomp", "amod", "advmod")
	clauseVerbDeps = set("advcl", "ccomp")
	adjectivalDeps = set("acl", "amod")
	objDeps        = set("obj", "pobj", "dobj")

	// fine grained tags
	participleTags = set("VBN", "VBD", "VBG")
	possTags       = set("POS")
	compoundTags   = set("HYPH")

	entIOB = set("B", "I")
)

const (
	depPrep     = "prep"
	depPoss     = "poss"
	depNeg      = "neg"
	depConj     = "conj"
	depAux      = "aux"
	depCompound = "compound"
	depComp     = "acomp"
	depAttr     = "attr"
)
