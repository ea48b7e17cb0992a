package types

// RelationType is the closed set of relation kinds produced by the classifier.
type RelationType int8

const (
	RelationMisc RelationType = iota
	RelationVerbVerb
	RelationSubjectVerb
	RelationComplementVerb
	RelationVerbObject
	RelationVerbComplement
	RelationLeftAdposition
	RelationRightAdposition
	RelationCompound
	RelationNounNoun
	RelationDescription
)

var relationTypeNames = map[RelationType]string{
	RelationMisc:            "misc",
	RelationVerbVerb:        "verb-verb",
	RelationSubjectVerb:     "subject-verb",
	RelationComplementVerb:  "complement-verb",
	RelationVerbObject:      "verb-object",
	RelationVerbComplement:  "verb-complement",
	RelationLeftAdposition:  "left_adposition",
	RelationRightAdposition: "right_adposition",
	RelationCompound:        "compound",
	RelationNounNoun:        "noun-noun",
	RelationDescription:     "description",
}

func (rt RelationType) Name() string {
	if name, ok := relationTypeNames[rt]; ok {
		return name
	}
	return relationTypeNames[RelationMisc]
}

func (rt RelationType) MarshalText() ([]byte, error) {
	return []byte(rt.Name()), nil
}

func (rt RelationType) IsValid() bool {
	_, ok := relationTypeNames[rt]
	return ok
}

type SVOType int8

const (
	SVOObject     SVOType = 0
	SVOComplement SVOType = 1
)

func (st SVOType) Name() string {
	if st == SVOComplement {
		return "svc"
	}
	return "svo"
}

func (st SVOType) MarshalText() ([]byte, error) {
	return []byte(st.Name()), nil
}
