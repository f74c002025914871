// Package translate turns a short English sentence into a SQL statement
// over the orders dataset plus an explanation of what that statement does.
//
// The pipeline is a closed-vocabulary compiler, not an NLP model: raw text
// is normalized into tokens, scanned for known entities, classified by
// keyword precedence, planned, and rendered. Every step is deterministic
// and pure, so translating the same input twice yields identical output
// and concurrent calls need no locking.
package translate

import "github.com/salesq/salesq/internal/schema"

// Translator translates natural-language requests against one registry.
type Translator struct {
	reg *schema.Registry
}

// NewTranslator creates a translator over the given registry.
func NewTranslator(reg *schema.Registry) *Translator {
	return &Translator{reg: reg}
}

// Translate is a total function over all text inputs: it never fails and
// always returns a non-empty SQL statement and explanation. Input with no
// recognizable signal resolves to the fallback list-all plan.
func (t *Translator) Translate(text string) Result {
	tokens := Normalize(text)
	ents := RecognizeEntities(tokens, t.reg)
	intent := ClassifyIntent(tokens, ents)
	plan := BuildPlan(intent, ents)

	return Generate(plan, t.reg)
}

// Translate translates against the default orders registry.
func Translate(text string) Result {
	return NewTranslator(&schema.Orders).Translate(text)
}
