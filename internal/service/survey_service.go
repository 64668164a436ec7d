package service

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/events"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/repository"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/undo"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/validation"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/pkg/util"
)

// SurveyService coordinates survey CRUD, search and delete recovery.
type SurveyService struct {
	surveys    repository.SurveyRepository
	deleted    *undo.Buffer
	dispatcher events.Dispatcher
	now        func() string
}

// SurveyDependencies bundles collaborator requirements.
type SurveyDependencies struct {
	SurveyRepo repository.SurveyRepository
	UndoBuffer *undo.Buffer
	Dispatcher events.Dispatcher
}

// NewSurveyService builds the service.
func NewSurveyService(deps SurveyDependencies) *SurveyService {
	buffer := deps.UndoBuffer
	if buffer == nil {
		buffer = undo.New(undo.DefaultCapacity)
	}
	return &SurveyService{
		surveys:    deps.SurveyRepo,
		deleted:    buffer,
		dispatcher: deps.Dispatcher,
		now:        domain.NowStamp,
	}
}

// Create validates the submitted form and stores a new survey. Any caller,
// including the guest session, may submit.
func (s *SurveyService) Create(ctx context.Context, session domain.Session, form validation.SurveyForm) (*domain.Survey, error) {
	ratings, violations := validation.CheckSurveyForm(form)
	if len(violations) > 0 {
		return nil, util.NewValidationError(violations)
	}

	now := s.now()
	record := &domain.Survey{
		ID:         uuid.NewString(),
		Timestamp:  now,
		Name:       strings.TrimSpace(form.Name),
		Email:      strings.TrimSpace(form.Email),
		Phone:      strings.TrimSpace(form.Phone),
		Gender:     strings.TrimSpace(form.Gender),
		Location:   strings.TrimSpace(form.Location),
		Quality:    ratings.Quality,
		Timeliness: ratings.Timeliness,
		Service:    ratings.Service,
		Overall:    ratings.Overall,
		Comments:   strings.TrimSpace(form.Comments),
		Owner:      session.Owner(),
		CreatedAt:  now,
	}
	if err := s.surveys.Save(ctx, record); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventSurveyCreated, record.ID, session)
	return record, nil
}

// Update overwrites every mutable field of an existing survey and refreshes
// its timestamp. Admin only. A missing id is reported, not fatal.
func (s *SurveyService) Update(ctx context.Context, session domain.Session, id string, form validation.SurveyForm) (*domain.Survey, error) {
	if !session.IsAdmin {
		return nil, util.NewForbidden("only the administrator may edit surveys")
	}

	ratings, violations := validation.CheckSurveyForm(form)
	if len(violations) > 0 {
		return nil, util.NewValidationError(violations)
	}

	record := &domain.Survey{
		ID:         id,
		Timestamp:  s.now(),
		Name:       strings.TrimSpace(form.Name),
		Email:      strings.TrimSpace(form.Email),
		Phone:      strings.TrimSpace(form.Phone),
		Gender:     strings.TrimSpace(form.Gender),
		Location:   strings.TrimSpace(form.Location),
		Quality:    ratings.Quality,
		Timeliness: ratings.Timeliness,
		Service:    ratings.Service,
		Overall:    ratings.Overall,
		Comments:   strings.TrimSpace(form.Comments),
	}
	if err := s.surveys.Update(ctx, id, record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NewNotFound("survey", map[string]any{"id": id})
		}
		return nil, err
	}

	s.publish(ctx, events.EventSurveyUpdated, id, session)
	return record, nil
}

// Delete removes a survey and parks the removed payload in the undo buffer.
// Admin only.
func (s *SurveyService) Delete(ctx context.Context, session domain.Session, id string) error {
	if !session.IsAdmin {
		return util.NewForbidden("only the administrator may delete surveys")
	}

	record, err := s.surveys.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return util.NewNotFound("survey", map[string]any{"id": id})
		}
		return err
	}
	s.deleted.Push(*record)

	s.publish(ctx, events.EventSurveyDeleted, id, session)
	return nil
}

// Undo restores the most recently deleted survey as a brand-new store row
// carrying its original identifier, fields and timestamps. Admin only.
func (s *SurveyService) Undo(ctx context.Context, session domain.Session) (*domain.Survey, error) {
	if !session.IsAdmin {
		return nil, util.NewForbidden("only the administrator may undo deletions")
	}

	record, ok := s.deleted.Pop()
	if !ok {
		return nil, util.NewNotFound("recoverable deletion", nil)
	}
	if err := s.surveys.Save(ctx, &record); err != nil {
		// Park it again so the payload is not lost on a transient failure.
		s.deleted.Push(record)
		return nil, err
	}

	s.publish(ctx, events.EventSurveyRestored, record.ID, session)
	return &record, nil
}

// List returns surveys most recent first, optionally filtered by a
// case-insensitive keyword across name, email, location and comments.
func (s *SurveyService) List(ctx context.Context, keyword string) ([]domain.Survey, error) {
	return s.surveys.Search(ctx, keyword)
}

var (
	sampleNames     = []string{"Sahrini", "Prabu Roro", "Agus Kopling"}
	sampleLocations = []string{"Jonggol", "Benowo", "Bandung", "Madiun", "Pati"}
)

// Sample produces a prefilled form payload for quick manual testing.
func (s *SurveyService) Sample() validation.SurveyForm {
	name := sampleNames[rand.Intn(len(sampleNames))]
	first := strings.ToLower(strings.Fields(name)[0])
	return validation.SurveyForm{
		Name:       name,
		Email:      first + "@gmail.com",
		Phone:      "08123456789",
		Location:   sampleLocations[rand.Intn(len(sampleLocations))],
		Quality:    strconv.Itoa(1 + rand.Intn(5)),
		Timeliness: strconv.Itoa(1 + rand.Intn(5)),
		Service:    strconv.Itoa(1 + rand.Intn(5)),
		Overall:    strconv.Itoa(1 + rand.Intn(10)),
		Comments:   "Very satisfied with the service.",
	}
}

func (s *SurveyService) publish(ctx context.Context, eventType events.EventType, id string, session domain.Session) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		SurveyID:  id,
		Actor:     session.Username,
		Timestamp: time.Now(),
	})
}
