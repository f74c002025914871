package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTranslate_TextOutput(t *testing.T) {
	translateJSON = false

	output := captureStdout(t, func() {
		err := runTranslate(translateCmd, []string{"total sales by region"})
		require.NoError(t, err)
	})

	assert.Contains(t, output,
		"SQL: SELECT region, SUM(amount) AS total_amount FROM orders GROUP BY region")
	assert.Contains(t, output, "Summing amount grouped by region.")
}

func TestRunTranslate_JSONOutput(t *testing.T) {
	translateJSON = true

	defer func() { translateJSON = false }()

	output := captureStdout(t, func() {
		err := runTranslate(translateCmd, []string{"how many orders"})
		require.NoError(t, err)
	})

	var decoded struct {
		SQL         string `json:"sql"`
		Explanation string `json:"explanation"`
	}

	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Equal(t, "SELECT COUNT(*) AS order_count FROM orders", decoded.SQL)
	assert.NotEmpty(t, decoded.Explanation)
}

func TestRunTranslate_EmptyQuestion(t *testing.T) {
	err := runTranslate(translateCmd, []string{"   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be empty")
}
