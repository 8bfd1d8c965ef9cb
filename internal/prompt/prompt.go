// Package prompt asks the user for writeup details, one line per question.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aretw0/writeup/pkg/core"
)

// Questions, in the order they are asked.
const (
	QuestionRoom       = "Room / Challenge name: "
	QuestionPlatform   = "Platform (THM/HTB/etc.): "
	QuestionHost       = "IP / Host (optional): "
	QuestionAuthor     = "Author / Handle [%s]: "
	QuestionDifficulty = "Difficulty (Easy/Medium/Hard): "
	QuestionGoal       = "Goal (B2R / CTF / Practice): "
)

// Prompter writes questions to out and reads answers from in.
//
// Lines are read on a separate goroutine so a pending read can be abandoned
// when the context is cancelled (e.g. on Ctrl+C). Close releases that
// goroutine once its current read returns.
type Prompter struct {
	in        *bufio.Reader
	out       io.Writer
	lines     chan string
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Close stops reading input. Further questions return core.ErrAborted.
func (p *Prompter) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
}

// Ask prints question and returns the trimmed answer.
// It returns core.ErrAborted when ctx is done or input is exhausted.
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	select {
	case <-p.done:
		return "", fmt.Errorf("%w: prompter closed", core.ErrAborted)
	default:
	}
	if p.lines == nil {
		p.lines = make(chan string)
		go p.readLoop()
	}

	fmt.Fprint(p.out, question)

	select {
	case <-p.done:
		return "", fmt.Errorf("%w: prompter closed", core.ErrAborted)
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", core.ErrAborted, context.Cause(ctx))
	case line, ok := <-p.lines:
		if !ok {
			return "", fmt.Errorf("%w: end of input", core.ErrAborted)
		}
		return strings.TrimSpace(line), nil
	}
}

// AskDefault is Ask, returning def when the answer is blank.
func (p *Prompter) AskDefault(ctx context.Context, question, def string) (string, error) {
	answer, err := p.Ask(ctx, question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *Prompter) readLoop() {
	defer close(p.stopped)
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		if line != "" {
			select {
			case p.lines <- line:
			case <-p.done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// Collect asks every writeup question in order and closes p when done.
// A blank author becomes defaultAuthor.
func Collect(ctx context.Context, p *Prompter, defaultAuthor string) (core.Answers, error) {
	defer p.Close()

	var a core.Answers
	steps := []struct {
		dst      *string
		question string
		def      string
	}{
		{&a.Room, QuestionRoom, ""},
		{&a.Platform, QuestionPlatform, ""},
		{&a.Host, QuestionHost, ""},
		{&a.Author, fmt.Sprintf(QuestionAuthor, defaultAuthor), defaultAuthor},
		{&a.Difficulty, QuestionDifficulty, ""},
		{&a.Goal, QuestionGoal, ""},
	}

	for _, s := range steps {
		answer, err := p.AskDefault(ctx, s.question, s.def)
		if err != nil {
			return core.Answers{}, err
		}
		*s.dst = answer
	}
	return a, nil
}
