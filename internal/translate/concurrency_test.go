package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salesq/salesq/internal/schema"
	"github.com/salesq/salesq/internal/testutil"
)

// Translation is pure and shares only the immutable registry, so concurrent
// callers must always see identical output.
func TestTranslate_ConcurrentDeterminism(t *testing.T) {
	questions := []string{
		"total sales by region",
		"top 5 customers by revenue",
		"how many orders in February",
		"average amount by category",
		"tell me something interesting",
	}

	expected := make([]Result, len(questions))
	for i, q := range questions {
		expected[i] = Translate(q)
	}

	testutil.RunConcurrent(t, 16, func(workerID int) {
		q := questions[workerID%len(questions)]
		got := Translate(q)
		assert.Equal(t, expected[workerID%len(questions)], got)
	})
}

func TestTranslator_SharedInstanceIsSafe(t *testing.T) {
	tr := NewTranslator(&schema.Orders)
	want := tr.Translate("total sales by region")

	testutil.AssertNoRaces(t, func() {
		assert.Equal(t, want, tr.Translate("total sales by region"))
	}, 32)
}
