package coretest

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Cache is a map backed CacheRepository holding JSON documents.
type Cache struct {
	mu     sync.Mutex
	docs   map[string][]byte
	tokens map[string]string
	Hits   int
}

func NewCache() *Cache {
	return &Cache{docs: make(map[string][]byte), tokens: make(map[string]string)}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.docs[key]
	if !ok {
		return false, nil
	}
	c.Hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[key] = encoded
	return nil
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.docs, key)
	}
	return nil
}

// Has reports whether a document is stored under key.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.docs[key]
	return ok
}

func (c *Cache) Claim(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, held := c.tokens[key]; held {
		return false, nil
	}
	c.tokens[key] = token
	return true, nil
}

func (c *Cache) Release(ctx context.Context, key, token string) (contracts.ReleaseOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, held := c.tokens[key]
	if !held {
		return contracts.ReleaseExpired, nil
	}
	if current != token {
		return contracts.ReleaseForeign, nil
	}
	delete(c.tokens, key)
	return contracts.ReleaseDeleted, nil
}

// Locker grants every instructor lock unless Busy is set.
type Locker struct {
	mu       sync.Mutex
	Busy     bool
	Acquired []string
	Released []string
}

func (l *Locker) LockInstructor(ctx context.Context, instructorID string) (func(context.Context) error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Busy {
		return nil, exceptions.ErrAppointmentLockNotAcquired(nil)
	}
	l.Acquired = append(l.Acquired, instructorID)
	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.Released = append(l.Released, instructorID)
		return nil
	}
	return release, nil
}

type PublishedEvent struct {
	EventType   string
	Appointment responses.Appointment
}

type Publisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
	Err    error
}

func (p *Publisher) Publish(ctx context.Context, eventType string, appointment responses.Appointment) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, PublishedEvent{EventType: eventType, Appointment: appointment})
	return nil
}

// Images keeps saved posture images in memory under the "posture-images"
// bucket name.
type Images struct {
	mu    sync.Mutex
	Saved []contracts.PostureImage
	Err   error
}

func (s *Images) SavePostureImage(ctx context.Context, image contracts.PostureImage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	s.Saved = append(s.Saved, image)
	return "posture-images/" + utils.GenerateAssessmentObjectName(image.StudentID, image.FileName), nil
}

// Analyzer answers with Result or Err and remembers the last request.
type Analyzer struct {
	Result      *responses.PostureAnalysis
	Err         error
	LastRequest *requests.AnalyzePosture
}

func (a *Analyzer) Analyze(ctx context.Context, request *requests.AnalyzePosture) (*responses.PostureAnalysis, error) {
	a.LastRequest = request
	if a.Err != nil {
		return nil, a.Err
	}
	result := *a.Result
	return &result, nil
}

// Planner answers with Exercises or Err and remembers the last input.
type Planner struct {
	Exercises []responses.WorkoutExercise
	Err       error
	LastInput *requests.WorkoutPlannerInput
}

func (p *Planner) Generate(ctx context.Context, input *requests.WorkoutPlannerInput) ([]responses.WorkoutExercise, error) {
	p.LastInput = input
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Exercises, nil
}
