package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/writeup/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	in := strings.NewReader("  Blue  \nTHM\n10.10.10.40\n\nEasy\nB2R\n")
	var out bytes.Buffer

	got, err := Collect(context.Background(), New(in, &out), core.DefaultAuthor)
	require.NoError(t, err)

	assert.Equal(t, core.Answers{
		Room:       "Blue",
		Platform:   "THM",
		Host:       "10.10.10.40",
		Author:     "R0b1",
		Difficulty: "Easy",
		Goal:       "B2R",
	}, got)

	assert.Equal(t,
		QuestionRoom+QuestionPlatform+QuestionHost+"Author / Handle [R0b1]: "+QuestionDifficulty+QuestionGoal,
		out.String())
}

func TestCollect_LastLineWithoutNewline(t *testing.T) {
	in := strings.NewReader("Room\r\nHTB\r\n\r\nme\r\nHard\r\nCTF")

	got, err := Collect(context.Background(), New(in, io.Discard), "anon")
	require.NoError(t, err)
	assert.Equal(t, "me", got.Author)
	assert.Equal(t, "CTF", got.Goal)
	assert.Empty(t, got.Host)
}

func TestCollect_EndOfInputAborts(t *testing.T) {
	in := strings.NewReader("Room\nTHM\n")

	_, err := Collect(context.Background(), New(in, io.Discard), core.DefaultAuthor)
	assert.ErrorIs(t, err, core.ErrAborted)
}

func TestAsk_CancelledContextAborts(t *testing.T) {
	// A pipe that never delivers data stands in for a terminal waiting on the user.
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(r, io.Discard).Ask(ctx, "? ")
	assert.ErrorIs(t, err, core.ErrAborted)
}

func TestAskDefault(t *testing.T) {
	p := New(strings.NewReader("\n  value \n"), io.Discard)

	got, err := p.AskDefault(context.Background(), "? ", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)

	got, err = p.AskDefault(context.Background(), "? ", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestCollect_ReleasesReader(t *testing.T) {
	// Input keeps going after the last question.
	in := strings.NewReader("Blue\nTHM\n\n\nEasy\nB2R\nextra\nmore\n")
	p := New(in, io.Discard)

	_, err := Collect(context.Background(), p, core.DefaultAuthor)
	require.NoError(t, err)

	select {
	case <-p.stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine still running after Collect returned")
	}

	_, err = p.Ask(context.Background(), "? ")
	assert.ErrorIs(t, err, core.ErrAborted)
}

func TestClose_Idempotent(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard)
	p.Close()
	p.Close()

	_, err := p.Ask(context.Background(), "? ")
	assert.ErrorIs(t, err, core.ErrAborted)
}
