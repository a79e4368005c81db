package services

import (
	"sync"

	"backend/models"
)

// Domain events decouple the write path from its side effects: creating an
// alert publishes AlertCreated, and the reputation ledger and the geo
// dispatcher react independently instead of being chained inside the CRUD
// call.

type Event interface {
	eventName() string
}

type AlertCreated struct {
	Alert *models.Alert
}

type AlertVerified struct {
	Alert *models.Alert
}

type AlertExpired struct {
	Alert *models.Alert
}

type CommentPosted struct {
	Comment *models.Comment
	// AuthorID is the commenter, who earns the points.
	AuthorID uint
}

type UpvoteReceived struct {
	Alert *models.Alert
	// RecipientID is the alert author, not the voter.
	RecipientID uint
}

type DownvoteReceived struct {
	Alert       *models.Alert
	RecipientID uint
}

type ReportFiled struct {
	Report *models.Report
}

func (AlertCreated) eventName() string     { return "alert.created" }
func (AlertVerified) eventName() string    { return "alert.verified" }
func (AlertExpired) eventName() string     { return "alert.expired" }
func (CommentPosted) eventName() string    { return "comment.posted" }
func (UpvoteReceived) eventName() string   { return "vote.up" }
func (DownvoteReceived) eventName() string { return "vote.down" }
func (ReportFiled) eventName() string      { return "report.filed" }

// Bus is a minimal synchronous in-process event bus. Handlers run on the
// publisher's goroutine in subscription order; a handler that wants
// parallelism spawns its own workers.
type Bus struct {
	mu       sync.RWMutex
	handlers []func(Event)
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(fn func(Event)) {
	b.mu.Lock()
	b.handlers = append(b.handlers, fn)
	b.mu.Unlock()
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	hs := make([]func(Event), len(b.handlers))
	copy(hs, b.handlers)
	b.mu.RUnlock()

	for _, h := range hs {
		h(e)
	}
}
