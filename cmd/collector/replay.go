package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/choicetrail/internal/common/clock"
	"github.com/KirkDiggler/choicetrail/internal/models"
	"github.com/KirkDiggler/choicetrail/internal/services/collector"
)

const maxReplayLine = 1 << 20

// replayLine is one entry of a replay log
type replayLine struct {
	At     string            `json:"at"`
	Vars   map[string]any    `json:"vars"`
	Player map[string]any    `json:"player"`
	Record any               `json:"record"`
	Choice *models.Candidate `json:"choice"`
}

// replayClock reports the dispatch time of the line being replayed, so
// cooldowns behave as they did in the recorded session
type replayClock struct {
	mu       sync.Mutex
	fallback clock.Clock
	at       time.Time
}

func newReplayClock(fallback clock.Clock) *replayClock {
	return &replayClock{fallback: fallback}
}

func (c *replayClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.at.IsZero() {
		return c.fallback.Now()
	}
	return c.at
}

func (c *replayClock) Set(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = at
}

// replaySummary counts what happened to each observation
type replaySummary struct {
	Lines      int
	Answers    []*models.Answer
	Dropped    int
	Rejections map[collector.Rejection]int
}

func (s *replaySummary) Print(w io.Writer) {
	fmt.Fprintf(w, "Replayed %d lines: %d answers recorded\n", s.Lines, len(s.Answers))
	for _, answer := range s.Answers {
		writeAnswer(w, answer)
	}

	if s.Dropped > 0 {
		fmt.Fprintf(w, "%d answers dropped with too many sends in flight\n", s.Dropped)
	}

	reasons := make([]string, 0, len(s.Rejections))
	for reason := range s.Rejections {
		reasons = append(reasons, string(reason))
	}
	slices.Sort(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(w, "  skipped %-14s %d\n", reason, s.Rejections[collector.Rejection(reason)])
	}
}

// replay feeds every line of in through the session. identity and clk are
// updated before each observation.
func replay(ctx context.Context, in io.Reader, session collector.Session, identity *collector.MapIdentity, clk *replayClock) (*replaySummary, error) {
	summary := &replaySummary{
		Rejections: make(map[collector.Rejection]int),
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxReplayLine)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		line := &replayLine{}
		if err := json.Unmarshal(raw, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		summary.Lines++

		if line.At != "" {
			at, err := time.Parse(time.RFC3339, line.At)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid time: %w", lineNumber, err)
			}
			clk.Set(at)
		}

		if len(line.Vars) > 0 {
			identity.SetVariables(line.Vars)
		}
		if len(line.Player) > 0 {
			identity.SetPlayerConfig(line.Player)
		}

		var output *collector.ObserveOutput
		switch {
		case line.Choice != nil:
			output = session.ObserveChoice(ctx, &collector.ObserveChoiceInput{Candidate: *line.Choice})
		case line.Record != nil:
			output = session.Observe(ctx, &collector.ObserveInput{Record: line.Record})
		default:
			continue
		}

		if output.Answer != nil {
			summary.Answers = append(summary.Answers, output.Answer)
			if output.Dropped {
				summary.Dropped++
			}
			continue
		}
		summary.Rejections[output.Rejection]++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read replay log: %w", err)
	}

	return summary, nil
}
