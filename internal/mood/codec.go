package mood

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/easeaico/wellness/internal/types"
)

func historySchema() *jsonschema.Schema {
	moods := make([]any, 0, 5)
	for _, opt := range types.MoodOptions() {
		moods = append(moods, string(opt.Value))
	}
	return &jsonschema.Schema{
		Type: "array",
		Items: &jsonschema.Schema{
			Type:     "object",
			Required: []string{"id", "mood", "timestamp"},
			Properties: map[string]*jsonschema.Schema{
				"id":        {Type: "string"},
				"mood":      {Type: "string", Enum: moods},
				"emoji":     {Type: "string"},
				"timestamp": {Type: "string"},
			},
		},
	}
}

var resolvedHistorySchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return historySchema().Resolve(nil)
})

// decodeHistory parses the persisted form. Any shape problem is a *MalformedHistoryError.
func decodeHistory(data []byte) ([]types.MoodEntry, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedHistoryError{Err: err}
	}

	schema, err := resolvedHistorySchema()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve history schema: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, &MalformedHistoryError{Err: err}
	}

	var entries []types.MoodEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &MalformedHistoryError{Err: err}
	}
	for i := range entries {
		if entries[i].Emoji == "" {
			entries[i].Emoji = entries[i].Mood.Emoji()
		}
	}
	return entries, nil
}

func encodeHistory(entries []types.MoodEntry) ([]byte, error) {
	if entries == nil {
		entries = []types.MoodEntry{}
	}
	return json.Marshal(entries)
}
