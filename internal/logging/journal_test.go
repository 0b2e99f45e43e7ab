package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathrush/internal/achievements"
	"github.com/abhisek/mathrush/internal/problemgen"
	"github.com/abhisek/mathrush/internal/session"
)

func TestJournal_Start(t *testing.T) {
	log, hook := test.NewNullLogger()
	j := NewJournal(log)

	mode, err := session.LookupMode("blitz")
	require.NoError(t, err)
	j.Observe(session.Event{
		Kind:  session.EventStart,
		State: session.State{SessionID: "abc", Mode: mode, Energy: 100, Level: 1, TimeLeft: 30},
	})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "session started", entry.Message)
	assert.Equal(t, "abc", entry.Data["session_id"])
	assert.Equal(t, "blitz", entry.Data["mode"])
	assert.Equal(t, 30, entry.Data["time_left"])
}

func TestJournal_AnswerIsDebug(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	j := NewJournal(log)

	j.Observe(session.Event{
		Kind:     session.EventAnswer,
		State:    session.State{SessionID: "abc"},
		Input:    "42",
		Correct:  true,
		Category: problemgen.CategorySpeed,
	})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, true, entry.Data["correct"])
	assert.Equal(t, "42", entry.Data["input"])
	assert.Equal(t, "speed", entry.Data["category"])
}

func TestJournal_AnswerFilteredAtInfo(t *testing.T) {
	log, hook := test.NewNullLogger()
	j := NewJournal(log)
	j.Observe(session.Event{Kind: session.EventAnswer})
	assert.Empty(t, hook.AllEntries())
}

func TestJournal_AchievementAndEnd(t *testing.T) {
	log, hook := test.NewNullLogger()
	j := NewJournal(log)

	j.Observe(session.Event{
		Kind:        session.EventAchievement,
		Achievement: achievements.Achievement{Message: "Streak Master", Type: achievements.TypeStreak},
	})
	j.Observe(session.Event{
		Kind: session.EventEnd,
		State: session.State{
			SessionID:      "abc",
			EndReason:      session.EndEnergy,
			TotalQuestions: 4,
			CorrectAnswers: 3,
		},
	})

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Streak Master", entries[0].Data["achievement"])
	assert.Equal(t, "streak", entries[0].Data["type"])
	assert.Equal(t, "session ended", entries[1].Message)
	assert.Equal(t, "energy", entries[1].Data["reason"])
	assert.Equal(t, 0.75, entries[1].Data["accuracy"])
}

func TestJournal_WiredToMachine(t *testing.T) {
	log, hook := test.NewNullLogger()
	rng := problemgen.NewRand(3)
	m := session.NewMachine(problemgen.New(rng, problemgen.DefaultConfig()), rng, session.Options{
		Observer: NewJournal(log),
	})

	require.NoError(t, m.Start("classic"))
	m.End()

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "session started", entries[0].Message)
	assert.Equal(t, "session ended", entries[1].Message)
	assert.Equal(t, "quit", entries[1].Data["reason"])
	assert.Equal(t, entries[0].Data["session_id"], entries[1].Data["session_id"])
	assert.NotEmpty(t, entries[0].Data["session_id"])
}
