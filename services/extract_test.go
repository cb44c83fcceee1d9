package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObjectFromProse(t *testing.T) {
	text := "Sure! Here is the analysis:\n```json\n{\"type\": \"Shirt\", \"sustainability_score\": 7}\n```\nLet me know."

	obj, ok := ExtractObject(text)

	require.True(t, ok)
	assert.Equal(t, "Shirt", obj["type"])
	assert.Equal(t, json.Number("7"), obj["sustainability_score"])
}

func TestExtractObjectNested(t *testing.T) {
	obj, ok := ExtractObject(`{"type": "Jacket", "details": {"lining": "wool"}}`)

	require.True(t, ok)
	details, isMap := obj["details"].(map[string]any)
	require.True(t, isMap)
	assert.Equal(t, "wool", details["lining"])
}

func TestExtractObjectNotFound(t *testing.T) {
	cases := map[string]string{
		"no braces":       "I could not identify this item.",
		"only opening":    "{ \"type\": \"Shirt\"",
		"reversed":        "} nothing here {",
		"malformed":       "{type: Shirt}",
		"two objects":     `{"type": "Shirt"} and {"type": "Pants"}`,
		"unterminated":    `{"a": 1`,
		"empty":           "",
		"trailing commas": `{"type": "Shirt",}`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			obj, ok := ExtractObject(text)
			assert.False(t, ok)
			assert.Nil(t, obj)
		})
	}
}

func TestExtractArrayFromProse(t *testing.T) {
	text := `Here are your outfits: [{"outfit_name": "A", "items": [1, 2]}, {"outfit_name": "B"}] Enjoy!`

	arr, ok := ExtractArray(text)

	require.True(t, ok)
	require.Len(t, arr, 2)
	first, isMap := arr[0].(map[string]any)
	require.True(t, isMap)
	assert.Equal(t, "A", first["outfit_name"])
}

func TestExtractArrayEmpty(t *testing.T) {
	arr, ok := ExtractArray("[]")

	require.True(t, ok)
	assert.Empty(t, arr)
}

func TestExtractArrayNotFound(t *testing.T) {
	for _, text := range []string{"no outfits today", "[1, 2", "] [", "[1, 2] [3]", "[{oops}]"} {
		arr, ok := ExtractArray(text)
		assert.False(t, ok, text)
		assert.Nil(t, arr, text)
	}
}

func TestExtractObjectIsPure(t *testing.T) {
	text := `prefix {"color": "Blue"} suffix`

	first, ok1 := ExtractObject(text)
	second, ok2 := ExtractObject(text)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}
