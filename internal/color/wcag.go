package color

// Level classifies a contrast ratio against the WCAG conformance levels.
type Level string

const (
	LevelFail Level = "FAIL"
	LevelAA   Level = "AA"
	LevelAAA  Level = "AAA"
)

// WCAG conformance thresholds for normal and large text.
const (
	AANormal  = 4.5
	AAANormal = 7.0
	AALarge   = 3.0
	AAALarge  = 4.5
)

// Compliance is the outcome of checking a ratio against the WCAG thresholds.
type Compliance struct {
	Compliant bool  `json:"compliant"`
	Level     Level `json:"level"`
}

// CheckCompliance classifies a contrast ratio. The ladder is evaluated from
// the strictest threshold down; the first threshold met wins.
func CheckCompliance(ratio float64, largeText bool) Compliance {
	aaa, aa := AAANormal, AANormal
	if largeText {
		aaa, aa = AAALarge, AALarge
	}

	switch {
	case ratio >= aaa:
		return Compliance{Compliant: true, Level: LevelAAA}
	case ratio >= aa:
		return Compliance{Compliant: true, Level: LevelAA}
	default:
		return Compliance{Compliant: false, Level: LevelFail}
	}
}
