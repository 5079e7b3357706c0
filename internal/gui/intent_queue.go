package gui

import "github.com/appengine-ltd/micromatch/internal/parser"

type commandSource int

const (
	sourceTyped commandSource = iota
	sourceHotkey
)

type queuedCommand struct {
	Intent parser.Intent
	Source commandSource
}

// CommandSink accepts parsed commands for the next frame.
type CommandSink interface {
	EnqueueIntent(parser.Intent)
}

// commandQueue collects typed and hotkey commands during input handling; the
// frame applies them in arrival order once input is read.
type commandQueue struct {
	ch chan queuedCommand
}

func newCommandQueue(size int) *commandQueue {
	if size < 1 {
		size = 16
	}
	return &commandQueue{ch: make(chan queuedCommand, size)}
}

func (q *commandQueue) EnqueueIntent(intent parser.Intent) {
	q.push(queuedCommand{Intent: intent, Source: sourceTyped})
}

// Hotkey queues a bare verb such as "hint" or "pause".
func (q *commandQueue) Hotkey(verb string) {
	q.push(queuedCommand{
		Intent: parser.Intent{Raw: verb, Normalised: verb, Kind: parser.Command, Verb: verb, Confidence: 1},
		Source: sourceHotkey,
	})
}

func (q *commandQueue) push(c queuedCommand) {
	if q == nil {
		return
	}
	select {
	case q.ch <- c:
	default:
		// Dropped only when a frame falls far behind.
	}
}

// Drain hands every queued command to apply and reports how many ran.
func (q *commandQueue) Drain(apply func(queuedCommand)) int {
	if q == nil {
		return 0
	}
	n := 0
	for {
		select {
		case c := <-q.ch:
			apply(c)
			n++
		default:
			return n
		}
	}
}
