package chat

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/ecochat/internal/telemetry/metrics"
	"github.com/2beens/ecochat/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=summarizer_mocks_test.go -package=chat_test

const (
	// a summary is produced every summaryInterval turns, covering the
	// summaryWindowSize oldest turns of that batch
	summaryInterval   = 10
	summaryWindowSize = 5

	summaryJobQueueSize = 16
	summaryTimeout      = time.Minute
)

type summarizerRepo interface {
	ListTurns(ctx context.Context, conversationID int) ([]Turn, error)
	AddSummary(ctx context.Context, summary Summary) (*Summary, error)
}

type summarizerModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type summaryJob struct {
	conversationID int
	turnCount      int
}

// Summarizer compresses older turns into summaries in the background.
// Jobs are handed off through a queue so a slow or failing summarization
// never delays the turn that triggered it.
type Summarizer struct {
	repo           summarizerRepo
	model          summarizerModel
	metricsManager *metrics.Manager

	mu     sync.Mutex
	closed bool
	jobs   chan summaryJob
	done   chan struct{}
}

func NewSummarizer(
	repo summarizerRepo,
	model summarizerModel,
	metricsManager *metrics.Manager,
) *Summarizer {
	s := &Summarizer{
		repo:           repo,
		model:          model,
		metricsManager: metricsManager,
		jobs:           make(chan summaryJob, summaryJobQueueSize),
		done:           make(chan struct{}),
	}
	go s.run()
	return s
}

// MaybeEnqueue checks whether the turn count crossed a summarization
// threshold and, if so, queues a summary job. Returns true when a job
// was queued. Never blocks, a full or closed queue drops the job with
// a log.
func (s *Summarizer) MaybeEnqueue(conversationID, turnCount int) bool {
	if turnCount <= 0 || turnCount%summaryInterval != 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		log.Warnf("summarizer closed, dropping job for conversation %d", conversationID)
		return false
	}

	select {
	case s.jobs <- summaryJob{conversationID: conversationID, turnCount: turnCount}:
		return true
	default:
		log.Warnf("summarizer queue full, dropping job for conversation %d", conversationID)
		return false
	}
}

// Close drains queued jobs and stops the worker. MaybeEnqueue calls
// after Close drop their jobs.
func (s *Summarizer) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.jobs)
	}
	s.mu.Unlock()
	<-s.done
}

func (s *Summarizer) run() {
	defer close(s.done)
	for job := range s.jobs {
		if err := s.summarize(job); err != nil {
			log.Errorf(
				"summarize conversation %d at turn %d: %s",
				job.conversationID, job.turnCount, err,
			)
			if s.metricsManager != nil {
				s.metricsManager.CounterSummaryFailures.Inc()
			}
		}
	}
}

func (s *Summarizer) summarize(job summaryJob) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
	defer cancel()

	ctx, span := tracing.GlobalTracer.Start(ctx, "chat.summarizer.summarize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("conversation.id", job.conversationID))
	span.SetAttributes(attribute.Int("turn.count", job.turnCount))

	turns, err := s.repo.ListTurns(ctx, job.conversationID)
	if err != nil {
		return err
	}
	if len(turns) < job.turnCount {
		// turns disappeared under us, summarize what we actually have
		job.turnCount = len(turns)
	}

	windowStart := job.turnCount - summaryInterval
	windowEnd := job.turnCount - summaryWindowSize
	if windowStart < 0 || windowEnd <= windowStart {
		return nil
	}
	window := turns[windowStart:windowEnd]

	content, err := s.model.Generate(ctx, BuildSummaryPrompt(window))
	if err != nil {
		return err
	}

	if _, err := s.repo.AddSummary(ctx, Summary{
		ConversationID: job.conversationID,
		Content:        content,
		MessageCount:   len(window),
	}); err != nil {
		return err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterSummariesCreated.Inc()
	}
	log.Debugf(
		"conversation %d: summarized turns [%d, %d)",
		job.conversationID, windowStart, windowEnd,
	)

	return nil
}
