package gateway

import (
	"encoding/json"
	"log/slog"

	"gorm.io/datatypes"
)

// MergeParams combines a workflow's stored default parameters with the
// caller's parameters. Every caller key overrides the same default key;
// override is shallow, key by key, with no deep merge of nested objects.
// An unparseable stored default set is logged and treated as empty.
func MergeParams(defaults datatypes.JSON, caller map[string]any) map[string]any {
	merged := make(map[string]any, len(caller))

	if len(defaults) > 0 {
		var stored map[string]any
		if err := json.Unmarshal(defaults, &stored); err != nil {
			slog.Warn("failed to parse stored default parameters", "error", err)
		} else {
			for k, v := range stored {
				merged[k] = v
			}
		}
	}

	for k, v := range caller {
		merged[k] = v
	}

	return merged
}
