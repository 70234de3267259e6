package collector

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/choicetrail/internal/models"
)

const (
	rootSegment     = "action"
	recordAnswerKey = "recordAnswer"
	trackSceneKey   = "trackScene"
)

// candidateAt is a recordAnswer payload and the path it was found under
type candidateAt struct {
	candidate models.Candidate
	path      []string
}

// visitFunc is called for every key or index reached by walk
type visitFunc func(key string, value any, path []string)

// walk visits the record depth first in sorted key order. Containers at a
// path longer than maxDepth are not entered, which also stops self
// referencing records.
func walk(node any, path []string, maxDepth int, visit visitFunc) {
	if len(path) > maxDepth {
		return
	}

	switch n := node.(type) {
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(n)) {
			child := appendPath(path, key)
			visit(key, n[key], child)
			walk(n[key], child, maxDepth, visit)
		}
	case map[string]string:
		for _, key := range slices.Sorted(maps.Keys(n)) {
			visit(key, n[key], appendPath(path, key))
		}
	case []any:
		for i, value := range n {
			key := strconv.Itoa(i)
			child := appendPath(path, key)
			visit(key, value, child)
			walk(value, child, maxDepth, visit)
		}
	}
}

func appendPath(path []string, key string) []string {
	child := make([]string, len(path), len(path)+1)
	copy(child, path)
	return append(child, key)
}

// findCandidates returns every recordAnswer payload in the record
func findCandidates(record any, maxDepth int) []candidateAt {
	var found []candidateAt
	walk(record, []string{rootSegment}, maxDepth, func(key string, value any, path []string) {
		if key != recordAnswerKey {
			return
		}
		if candidate, ok := candidateFrom(value); ok {
			found = append(found, candidateAt{candidate: candidate, path: path})
		}
	})
	return found
}

// findScene returns the last trackScene value in the record
func findScene(record any, maxDepth int) (string, bool) {
	var scene string
	walk(record, []string{rootSegment}, maxDepth, func(key string, value any, path []string) {
		if key != trackSceneKey {
			return
		}
		switch v := value.(type) {
		case map[string]any:
			if s := stringValue(v["scene"]); s != "" {
				scene = s
			}
		case map[string]string:
			if v["scene"] != "" {
				scene = v["scene"]
			}
		default:
			if s := stringValue(v); s != "" {
				scene = s
			}
		}
	})
	return scene, scene != ""
}

// candidateFrom reads {scene, question, answer} from a recordAnswer value.
// Values that are not objects are not candidates.
func candidateFrom(value any) (models.Candidate, bool) {
	switch v := value.(type) {
	case map[string]any:
		return models.Candidate{
			Scene:    stringValue(v["scene"]),
			Question: stringValue(v["question"]),
			Answer:   stringValue(v["answer"]),
		}, true
	case map[string]string:
		return models.Candidate{
			Scene:    v["scene"],
			Question: v["question"],
			Answer:   v["answer"],
		}, true
	}
	return models.Candidate{}, false
}

// stringValue renders scalar record values; everything else is empty
func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64, float32, int, int64, int32:
		return fmt.Sprint(v)
	}
	return ""
}

func joinPath(path []string) string {
	return strings.Join(path, ".")
}
