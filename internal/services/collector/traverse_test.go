package collector

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/choicetrail/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCandidatesAcrossRecordShapes(t *testing.T) {
	record := map[string]any{
		"actionType": "choice",
		"choices": []any{
			map[string]any{
				"body": map[string]any{
					"recordAnswer": map[string]string{
						"scene":    "school",
						"question": "Kenapa pilih sekolah ini?",
						"answer":   "Dekat rumah",
					},
				},
			},
		},
		"body": map[string]any{
			"recordAnswer": map[string]any{
				"scene":    "intro",
				"question": "Question 1",
				"answer":   "Laki-laki",
			},
		},
	}

	found := findCandidates(record, DefaultMaxDepth)
	require.Len(t, found, 2)

	assert.Equal(t, "action.body.recordAnswer", joinPath(found[0].path))
	assert.Equal(t, models.Candidate{Scene: "intro", Question: "Question 1", Answer: "Laki-laki"}, found[0].candidate)

	assert.Equal(t, "action.choices.0.body.recordAnswer", joinPath(found[1].path))
	assert.Equal(t, "Dekat rumah", found[1].candidate.Answer)
}

func TestFindCandidatesIsDepthBounded(t *testing.T) {
	answer := map[string]any{"question": "deep", "answer": "yes"}

	atLimit := map[string]any{"a": map[string]any{"b": map[string]any{"c": map[string]any{"d": map[string]any{
		"recordAnswer": answer,
	}}}}}
	found := findCandidates(atLimit, DefaultMaxDepth)
	require.Len(t, found, 1)
	assert.Equal(t, "action.a.b.c.d.recordAnswer", joinPath(found[0].path))

	tooDeep := map[string]any{"a": map[string]any{"b": map[string]any{"c": map[string]any{"d": map[string]any{"e": map[string]any{
		"recordAnswer": answer,
	}}}}}}
	assert.Empty(t, findCandidates(tooDeep, DefaultMaxDepth))
}

func TestFindCandidatesStopsOnCycles(t *testing.T) {
	record := map[string]any{}
	record["self"] = record
	record["body"] = map[string]any{"recordAnswer": map[string]any{"question": "q"}}

	found := findCandidates(record, DefaultMaxDepth)
	// The cycle repeats the body branch at every depth it can reach
	assert.NotEmpty(t, found)
	for _, f := range found {
		assert.LessOrEqual(t, len(f.path), DefaultMaxDepth+1)
	}
}

func TestFindCandidatesIgnoresScalarPayloads(t *testing.T) {
	record := map[string]any{"body": map[string]any{"recordAnswer": true}}
	assert.Empty(t, findCandidates(record, DefaultMaxDepth))
	assert.Empty(t, findCandidates("not a record", DefaultMaxDepth))
	assert.Empty(t, findCandidates(nil, DefaultMaxDepth))
}

func TestFindCandidatesFromDecodedJSON(t *testing.T) {
	var record any
	require.NoError(t, json.Unmarshal([]byte(`{
		"actionType": "choice",
		"body": {"recordAnswer": {"scene": "quiz", "question": "Question 4", "answer": 42}}
	}`), &record))

	found := findCandidates(record, DefaultMaxDepth)
	require.Len(t, found, 1)
	assert.Equal(t, "42", found[0].candidate.Answer)
}

func TestFindScene(t *testing.T) {
	scene, ok := findScene(map[string]any{
		"params": map[string]any{"trackScene": map[string]any{"scene": "classroom"}},
	}, DefaultMaxDepth)
	assert.True(t, ok)
	assert.Equal(t, "classroom", scene)

	scene, ok = findScene(map[string]any{"trackScene": "hallway"}, DefaultMaxDepth)
	assert.True(t, ok)
	assert.Equal(t, "hallway", scene)

	_, ok = findScene(map[string]any{"trackScene": map[string]any{}}, DefaultMaxDepth)
	assert.False(t, ok)
}
