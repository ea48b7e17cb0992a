package types

type Tense int8

func (t Tense) Name() string {
	switch t {
	case TensePast:
		return "PAST"
	case TenseFuture:
		return "FUTURE"
	default:
		return "PRESENT"
	}
}

func (t Tense) MarshalText() ([]byte, error) {
	return []byte(t.Name()), nil
}

const (
	TensePresent Tense = 0
	TensePast    Tense = 1
	TenseFuture  Tense = 2
)

type Mode int8

func (m Mode) Name() string {
	if m == ModeModal {
		return "MODAL"
	}
	return "NORMAL"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.Name()), nil
}

const (
	ModeNormal Mode = 0
	ModeModal  Mode = 1
)
