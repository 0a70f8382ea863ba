// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/query"
	"github.com/MKhiriev/go-memo-keeper/internal/store"
	"github.com/MKhiriev/go-memo-keeper/internal/validators"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const defaultSearchCacheSize = 256

// View is the list page state for one query.
type View struct {
	// Memos match the query, newest first.
	Memos []models.Memo

	// TagOptions starts with [query.NoTag] followed by the distinct tags.
	TagOptions []string

	// Tag is the tag filter actually applied. It falls back to
	// [query.NoTag] when the requested tag no longer exists.
	Tag string

	// Total counts all memos, filtered or not.
	Total int
}

// Session owns the memo list and the "currently editing" reference for one
// run of the application. It is not safe for concurrent use; the front end
// calls it from its single update loop.
type Session struct {
	memos     *store.MemoStore
	engine    *query.Engine
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time

	editingID int64
	editing   bool
}

var _ MemoService = (*Session)(nil)

// Option customises a [Session].
type Option func(*Session)

// WithClock replaces time.Now, which stamps new memo ids and default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithEngine sets the query engine used by [Session.View].
func WithEngine(engine *query.Engine) Option {
	return func(s *Session) { s.engine = engine }
}

// NewSession builds a session and loads the persisted memos. Unreadable data
// loads as an empty list.
func NewSession(ctx context.Context, memos *store.MemoStore, validator validators.Validator, log *logger.Logger, opts ...Option) *Session {
	s := &Session{
		memos:     memos,
		validator: validator,
		logger:    log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		s.engine = query.NewEngine(defaultSearchCacheSize)
	}

	ctx, _ = logger.WithTraceID(ctx, s.logger)
	loaded := s.memos.Load(ctx)
	logger.FromContext(ctx).Info().
		Str("func", "NewSession").
		Int("count", len(loaded)).
		Msg("session started")

	return s
}

func (s *Session) New() {
	s.editingID, s.editing = 0, false
}

func (s *Session) Open(ctx context.Context, id int64) (models.Memo, bool) {
	memo, ok := s.memos.FindByID(id)
	if !ok {
		logger.FromContextOr(ctx, s.logger).Debug().
			Str("func", "Session.Open").
			Int64("id", id).
			Msg("memo not found")
		return models.Memo{}, false
	}

	s.editingID, s.editing = id, true
	return memo, true
}

func (s *Session) Editing() (int64, bool) {
	return s.editingID, s.editing
}

func (s *Session) Save(ctx context.Context, draft models.Draft) (models.Memo, error) {
	ctx, _ = logger.WithTraceID(ctx, s.logger)
	log := logger.FromContext(ctx)

	draft.Title = strings.TrimSpace(draft.Title)
	if err := s.validator.Validate(ctx, draft); err != nil {
		log.Debug().Err(err).Str("func", "Session.Save").Msg("draft rejected")
		return models.Memo{}, fmt.Errorf("%w: %w", ErrInvalidMemo, err)
	}

	now := s.now()
	memo := models.Memo{
		Title:       draft.Title,
		ContentHTML: draft.ContentHTML,
		Tags:        models.ParseTags(draft.TagsText),
		Date:        valueOr(draft.Date, models.Today(now)),
		FontSize:    valueOr(draft.FontSize, models.DefaultFontSize),
		IsBold:      draft.IsBold,
	}

	created := true
	if _, found := s.memos.FindByID(s.editingID); s.editing && found {
		memo.ID = s.editingID
		created = false
	} else {
		// also covers a memo deleted while it was open
		memo.ID = s.nextID(now)
	}

	if err := s.validator.Validate(ctx, memo, validators.FieldID); err != nil {
		log.Error().Err(err).Str("func", "Session.Save").Int64("id", memo.ID).Msg("memo got an invalid id")
		return models.Memo{}, fmt.Errorf("%w: %w", ErrInvalidMemo, err)
	}

	s.memos.Upsert(memo)
	s.editingID, s.editing = memo.ID, true

	if err := s.memos.Persist(ctx); err != nil {
		log.Err(err).Str("func", "Session.Save").Int64("id", memo.ID).Msg("failed to persist memo")
		return memo, err
	}

	log.Info().
		Str("func", "Session.Save").
		Int64("id", memo.ID).
		Bool("created", created).
		Msg("memo saved")
	return memo, nil
}

func (s *Session) Delete(ctx context.Context, id int64, confirm Confirmer) (bool, error) {
	ctx, _ = logger.WithTraceID(ctx, s.logger)
	log := logger.FromContext(ctx)

	if confirm == nil || !confirm.Confirm(ctx, id) {
		log.Debug().Str("func", "Session.Delete").Int64("id", id).Msg("delete declined")
		return false, nil
	}

	if s.editing && s.editingID == id {
		s.New()
	}

	if !s.memos.Remove(id) {
		log.Debug().Str("func", "Session.Delete").Int64("id", id).Msg("memo already gone")
		return true, nil
	}

	if err := s.memos.Persist(ctx); err != nil {
		log.Err(err).Str("func", "Session.Delete").Int64("id", id).Msg("failed to persist after delete")
		return true, err
	}

	log.Info().Str("func", "Session.Delete").Int64("id", id).Msg("memo deleted")
	return true, nil
}

func (s *Session) View(q query.Query) View {
	all := s.memos.List()
	tags := query.Tags(all)
	tag := query.ResolveTag(tags, q.Tag)

	return View{
		Memos:      s.engine.Filter(all, query.Query{Search: q.Search, Tag: tag}),
		TagOptions: append([]string{query.NoTag}, tags...),
		Tag:        tag,
		Total:      len(all),
	}
}

// nextID returns the creation time in Unix milliseconds, bumped past every
// existing id so two saves within one millisecond stay unique and ordered.
func (s *Session) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if maxID := s.memos.MaxID(); id <= maxID {
		id = maxID + 1
	}
	return id
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
