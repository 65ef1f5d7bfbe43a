package trivia

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// QuestionStore abstracts question persistence (implemented by the pgx-backed
// repository). Implementations execute Filter predicates with parameterized
// queries and return results ordered by id ascending.
type QuestionStore interface {
	List(ctx context.Context, f Filter) ([]Question, error)
	Insert(ctx context.Context, in CreateQuestionInput) (Question, error)
	Delete(ctx context.Context, id int) error
}

// CategoryStore abstracts category lookups.
type CategoryStore interface {
	ListAll(ctx context.Context) ([]Category, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// CategoryCache holds the read-only id->type mapping (implemented by the
// Redis-backed Cache). Question sets are never cached; every question query
// goes back to the store.
type CategoryCache interface {
	Get(ctx context.Context) (CategoryMap, error)
	Set(ctx context.Context, categories CategoryMap) error
}

// Service orchestrates the store, paginator and quiz selector behind the HTTP
// handlers.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	cache      CategoryCache
	selector   *Selector
	pageSize   int
	logger     zerolog.Logger
}

// ServiceOptions tunes pagination and randomness. Zero values fall back to
// DefaultPageSize and a seeded PRNG.
type ServiceOptions struct {
	PageSize int
	Rand     Rand
}

// NewService wires the trivia service. cache may be nil to disable category
// caching.
func NewService(questions QuestionStore, categories CategoryStore, cache CategoryCache, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      cache,
		selector:   NewSelector(opts.Rand),
		pageSize:   pageSize,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// Categories returns the id->type mapping, served from cache when possible.
// Cache failures fall through to the store.
func (s *Service) Categories(ctx context.Context) (CategoryMap, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		}
	}

	cats, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	mapping := make(CategoryMap, len(cats))
	for _, c := range cats {
		mapping[c.ID] = c.Type
	}

	if s.cache != nil && len(mapping) > 0 {
		if err := s.cache.Set(ctx, mapping); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return mapping, nil
}

// ListPage returns one page of the full question bank ordered by id. Total is
// the count of the unfiltered set, matching what clients use to render
// pagination controls.
func (s *Service) ListPage(ctx context.Context, page int) (Page, error) {
	all, err := s.questions.List(ctx, Filter{})
	if err != nil {
		return Page{}, fmt.Errorf("list questions: %w", err)
	}
	return Page{
		Questions: Paginate(all, page, s.pageSize),
		Total:     len(all),
	}, nil
}

// SearchPage returns one page of questions whose text contains term
// (case-insensitive). Total counts the matches, not the global set. An empty
// term matches every question.
func (s *Service) SearchPage(ctx context.Context, term string, page int) (Page, error) {
	matches, err := s.questions.List(ctx, Filter{Search: term})
	if err != nil {
		return Page{}, fmt.Errorf("search questions: %w", err)
	}
	return Page{
		Questions: Paginate(matches, page, s.pageSize),
		Total:     len(matches),
	}, nil
}

// CategoryPage returns one page of questions in exactly the given category.
func (s *Service) CategoryPage(ctx context.Context, categoryID, page int) (Page, error) {
	matches, err := s.questions.List(ctx, Filter{CategoryID: categoryID})
	if err != nil {
		return Page{}, fmt.Errorf("list category questions: %w", err)
	}
	return Page{
		Questions: Paginate(matches, page, s.pageSize),
		Total:     len(matches),
	}, nil
}

// Create validates and persists a new question. Every field must carry a
// usable value and the category must exist; validation runs before any store
// mutation.
func (s *Service) Create(ctx context.Context, in CreateQuestionInput) (Question, error) {
	if in.Question == "" || in.Answer == "" || in.Difficulty == 0 || in.Category == 0 {
		return Question{}, fmt.Errorf("%w: all of question, answer, difficulty and category are required", ErrInvalidInput)
	}

	known, err := s.categories.Exists(ctx, in.Category)
	if err != nil {
		return Question{}, fmt.Errorf("check category %d: %w", in.Category, err)
	}
	if !known {
		return Question{}, fmt.Errorf("%w: unknown category %d", ErrInvalidInput, in.Category)
	}

	created, err := s.questions.Insert(ctx, in)
	if err != nil {
		return Question{}, fmt.Errorf("insert question: %w", err)
	}
	s.logger.Info().Int("question_id", created.ID).Int("category", created.Category).Msg("question created")
	return created, nil
}

// Delete removes a question by id. Deleting an absent id reports ErrNotFound
// rather than succeeding silently.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return nil
}

// Draw picks one random question for the quiz flow: scoped to categoryID
// unless it is AllCategories, and never one whose id is in excluded. A nil
// question with a nil error means the candidate pool is exhausted.
func (s *Service) Draw(ctx context.Context, categoryID int, excluded []int) (*Question, error) {
	f := Filter{ExcludeIDs: excluded}
	if categoryID != AllCategories {
		f.CategoryID = categoryID
	}

	pool, err := s.questions.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load quiz candidates: %w", err)
	}
	// The store already excluded previous questions; the selector re-checks so
	// the invariant holds even against a store that ignores ExcludeIDs.
	return s.selector.Next(pool, excluded), nil
}
