package doctest

// Parses below follow the English dependency scheme of the upstream parser,
// with auxiliaries tagged as AUX.

// SpiderWeb is "This is not a spider's web."
func SpiderWeb() Sentence {
	return Sentence{
		{"This", "this", "DET", "DT", "nsubj", 1, ""},
		{"is", "be", "AUX", "VBZ", "ROOT", 1, ""},
		{"not", "not", "PART", "RB", "neg", 1, ""},
		{"a", "a", "DET", "DT", "det", 6, ""},
		{"spider", "spider", "NOUN", "NN", "poss", 6, ""},
		{"'s", "'s", "PART", "POS", "case", 4, ""},
		{"web", "web", "NOUN", "NN", "attr", 1, ""},
		{".", ".", "PUNCT", ".", "punct", 1, ""},
	}
}

// GreatDevelopment is "This is a great new development."
func GreatDevelopment() Sentence {
	return Sentence{
		{"This", "this", "DET", "DT", "nsubj", 1, ""},
		{"is", "be", "AUX", "VBZ", "ROOT", 1, ""},
		{"a", "a", "DET", "DT", "det", 5, ""},
		{"great", "great", "ADJ", "JJ", "amod", 5, ""},
		{"new", "new", "ADJ", "JJ", "amod", 5, ""},
		{"development", "development", "NOUN", "NN", "attr", 1, ""},
		{".", ".", "PUNCT", ".", "punct", 1, ""},
	}
}

// ApplesAndPears is "John eats apples and pears."
func ApplesAndPears() Sentence {
	return Sentence{
		{"John", "John", "PROPN", "NNP", "nsubj", 1, "B-PERSON"},
		{"eats", "eat", "VERB", "VBZ", "ROOT", 1, ""},
		{"apples", "apple", "NOUN", "NNS", "dobj", 1, ""},
		{"and", "and", "CCONJ", "CC", "cc", 2, ""},
		{"pears", "pear", "NOUN", "NNS", "conj", 2, ""},
		{".", ".", "PUNCT", ".", "punct", 1, ""},
	}
}

// DependsOn is "John depends on Mary."
func DependsOn() Sentence {
	return Sentence{
		{"John", "John", "PROPN", "NNP", "nsubj", 1, "B-PERSON"},
		{"depends", "depend", "VERB", "VBZ", "ROOT", 1, ""},
		{"on", "on", "ADP", "IN", "prep", 1, ""},
		{"Mary", "Mary", "PROPN", "NNP", "pobj", 2, "B-PERSON"},
		{".", ".", "PUNCT", ".", "punct", 1, ""},
	}
}

// DependsHeavilyOn is "John depends heavily on Mary."
func DependsHeavilyOn() Sentence {
	return Sentence{
		{"John", "John", "PROPN", "NNP", "nsubj", 1, "B-PERSON"},
		{"depends", "depend", "VERB", "VBZ", "ROOT", 1, ""},
		{"heavily", "heavily", "ADV", "RB", "advmod", 1, ""},
		{"on", "on", "ADP", "IN", "prep", 1, ""},
		{"Mary", "Mary", "PROPN", "NNP", "pobj", 3, "B-PERSON"},
		{".", ".", "PUNCT", ".", "punct", 1, ""},
	}
}

// NewYorkTimes is "The New York Times has reported it."
func NewYorkTimes() Sentence {
	return Sentence{
		{"The", "the", "DET", "DT", "det", 3, "B-ORG"},
		{"New", "New", "PROPN", "NNP", "compound", 2, "I-ORG"},
		{"York", "York", "PROPN", "NNP", "compound", 3, "I-ORG"},
		{"Times", "Times", "PROPN", "NNP", "nsubj", 5, "I-ORG"},
		{"has", "have", "AUX", "VBZ", "aux", 5, ""},
		{"reported", "report", "VERB", "VBN", "ROOT", 5, ""},
		{"it", "it", "PRON", "PRP", "dobj", 5, ""},
		{".", ".", "PUNCT", ".", "punct", 5, ""},
	}
}

// DataScience is "Data science should give us better answers."
func DataScience() Sentence {
	return Sentence{
		{"Data", "datum", "NOUN", "NNS", "compound", 1, ""},
		{"science", "science", "NOUN", "NN", "nsubj", 3, ""},
		{"should", "should", "AUX", "MD", "aux", 3, ""},
		{"give", "give", "VERB", "VB", "ROOT", 3, ""},
		{"us", "we", "PRON", "PRP", "dative", 3, ""},
		{"better", "well", "ADJ", "JJR", "amod", 6, ""},
		{"answers", "answer", "NOUN", "NNS", "dobj", 3, ""},
		{".", ".", "PUNCT", ".", "punct", 3, ""},
	}
}
