// Package answer fetches random yes/no answers from the upstream answer API.
package answer

import "strings"

// Record is one decoded answer from the upstream API.
// The upstream vocabulary is open, so Answer is kept as a plain string.
type Record struct {
	Answer string `json:"answer" yaml:"answer"`
	Forced bool   `json:"forced" yaml:"forced"`
	Image  string `json:"image" yaml:"image"`
}

type Variant int

const (
	VariantNegative Variant = iota
	VariantAffirmative
)

func (v Variant) String() string {
	if v == VariantAffirmative {
		return "affirmative"
	}
	return "negative"
}

// VariantOf returns VariantAffirmative only for a case-insensitive "yes".
// Every other value, including "no", "maybe" and "", is negative.
func VariantOf(answer string) Variant {
	if strings.EqualFold(answer, "yes") {
		return VariantAffirmative
	}
	return VariantNegative
}

func (r Record) Variant() Variant {
	return VariantOf(r.Answer)
}
