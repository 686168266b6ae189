package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestMergeParamsCallerOverridesDefaults(t *testing.T) {
	defaults := datatypes.JSON(`{"lang":"en","topic":"tech"}`)
	caller := map[string]any{"lang": "fr", "limit": float64(5)}

	merged := MergeParams(defaults, caller)

	assert.Equal(t, map[string]any{
		"lang":  "fr",
		"topic": "tech",
		"limit": float64(5),
	}, merged)
}

func TestMergeParamsShallowOverride(t *testing.T) {
	defaults := datatypes.JSON(`{"opts":{"a":1,"b":2}}`)
	caller := map[string]any{"opts": map[string]any{"c": float64(3)}}

	merged := MergeParams(defaults, caller)

	// nested objects are replaced wholesale, not deep-merged
	assert.Equal(t, map[string]any{"c": float64(3)}, merged["opts"])
}

func TestMergeParamsEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeParams(nil, nil))
	assert.Equal(t, map[string]any{"x": "y"}, MergeParams(nil, map[string]any{"x": "y"}))

	merged := MergeParams(datatypes.JSON(`{"x":"y"}`), nil)
	assert.Equal(t, map[string]any{"x": "y"}, merged)
}

func TestMergeParamsUnparseableDefaults(t *testing.T) {
	merged := MergeParams(datatypes.JSON(`{broken`), map[string]any{"lang": "fr"})

	// merging proceeds with an empty default set
	assert.Equal(t, map[string]any{"lang": "fr"}, merged)
}
