package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/rangeprompt/internal/application/interpreter"
	"github.com/younwookim/rangeprompt/internal/application/replay"
	"github.com/younwookim/rangeprompt/internal/application/session"
	"github.com/younwookim/rangeprompt/internal/infrastructure/config"
)

// TriggeredEvent is one interaction start seen during a replay
type TriggeredEvent struct {
	Frame   int
	Map     string
	EventID int
	Name    string
}

// ReplayResult summarizes a headless replay
type ReplayResult struct {
	Frames    int
	Triggered []TriggeredEvent
	Messages  []string
	FinalMap  string
	FinalX    float64
	FinalY    float64
}

// runReplay loads a recording and plays it through a fresh session
func runReplay(path string, tunables *config.Tunables, source session.StageSource, runner interpreter.ScriptRunner, log *zap.Logger) (*ReplayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, err
	}

	sess, err := session.New(tunables, source, runner, data.Map, log)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	return simulate(sess, replay.NewReplayer(*data))
}

// simulate steps the session through every recorded frame
func simulate(sess *session.Session, replayer *replay.Replayer) (*ReplayResult, error) {
	res := &ReplayResult{}
	lastMessage := ""

	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}

		f, err := sess.Step(input)
		if err != nil {
			return nil, fmt.Errorf("replay frame %d: %w", replayer.CurrentFrame()-1, err)
		}
		res.Frames++

		if f.Triggered != nil {
			res.Triggered = append(res.Triggered, TriggeredEvent{
				Frame:   f.Index,
				Map:     f.MapID,
				EventID: f.Triggered.ID,
				Name:    f.Triggered.Name,
			})
		}
		if f.Message != "" && f.Message != lastMessage {
			res.Messages = append(res.Messages, f.Message)
		}
		lastMessage = f.Message
	}

	res.FinalMap = sess.Stage().ID
	res.FinalX = sess.Actor().X
	res.FinalY = sess.Actor().Y
	return res, nil
}
