package service

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/emzola/sdmagic/config"
	"github.com/emzola/sdmagic/data"
	"github.com/emzola/sdmagic/internal/jsonlog"
	"github.com/emzola/sdmagic/repository"
	"github.com/jellydator/ttlcache/v3"
)

// memRepo is an in-memory repository.Repository that enforces the same
// uniqueness, reference and version rules as the Postgres schema.
type memRepo struct {
	mu         sync.Mutex
	nextID     int64
	categories map[int64]*data.Category
	prompts    map[int64]*data.Prompt
	templates  map[int64]*data.Template
	allReads   int

	// afterAllReads runs once GetAllCategories has copied its result.
	afterAllReads func()
	// beforeCategoryUpdate runs at the start of UpdateCategory.
	beforeCategoryUpdate func()
}

func newMemRepo() *memRepo {
	r := &memRepo{
		categories: map[int64]*data.Category{},
		prompts:    map[int64]*data.Prompt{},
		templates:  map[int64]*data.Template{},
	}
	r.nextID = 1
	r.categories[1] = &data.Category{ID: 1, Name: data.DefaultCategoryName, IsDefault: true}
	return r
}

func (r *memRepo) id() int64 {
	r.nextID++
	return r.nextID
}

func (r *memRepo) CreateCategory(_ context.Context, category *data.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == category.Name {
			return repository.ErrDuplicateRecord
		}
	}
	if category.ParentID != 0 {
		if _, ok := r.categories[category.ParentID]; !ok {
			return repository.ErrInvalidReference
		}
	}
	category.ID = r.id()
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	stored := *category
	stored.Children = nil
	r.categories[category.ID] = &stored
	return nil
}

func (r *memRepo) GetCategory(_ context.Context, categoryID int64) (*data.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[categoryID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	category := *c
	return &category, nil
}

func (r *memRepo) GetDefaultCategory(_ context.Context) (*data.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.IsDefault {
			category := *c
			return &category, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *memRepo) GetAllCategories(_ context.Context) ([]*data.Category, error) {
	r.mu.Lock()
	r.allReads++
	flat := make([]*data.Category, 0, len(r.categories))
	for _, c := range r.categories {
		category := *c
		flat = append(flat, &category)
	}
	hook := r.afterAllReads
	r.mu.Unlock()
	sort.Slice(flat, func(i, j int) bool { return flat[i].ID < flat[j].ID })
	if hook != nil {
		hook()
	}
	return flat, nil
}

func (r *memRepo) UpdateCategory(_ context.Context, category *data.Category) error {
	if r.beforeCategoryUpdate != nil {
		r.beforeCategoryUpdate()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.categories[category.ID]
	if !ok || stored.IsDefault {
		return repository.ErrRecordNotFound
	}
	for id := category.ParentID; id != data.RootID; {
		if id == category.ID {
			return repository.ErrCycle
		}
		parent, ok := r.categories[id]
		if !ok {
			break
		}
		id = parent.ParentID
	}
	for _, c := range r.categories {
		if c.ID != category.ID && c.Name == category.Name {
			return repository.ErrDuplicateRecord
		}
	}
	stored.Name = category.Name
	stored.ParentID = category.ParentID
	stored.UpdatedAt = time.Now()
	category.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *memRepo) DeleteCategory(_ context.Context, categoryID, defaultID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[categoryID]
	if !ok || c.IsDefault {
		return 0, repository.ErrRecordNotFound
	}
	flat := make([]*data.Category, 0, len(r.categories))
	for _, c := range r.categories {
		flat = append(flat, c)
	}
	ids := data.Descendants(flat, categoryID)
	var moved int64
	for _, id := range ids {
		for _, p := range r.prompts {
			if p.CategoryID == id {
				p.CategoryID = defaultID
				p.Version++
				moved++
			}
		}
	}
	for _, id := range ids {
		delete(r.categories, id)
	}
	return moved, nil
}

func (r *memRepo) CreatePrompt(_ context.Context, prompt *data.Prompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.prompts {
		if p.OriginalText == prompt.OriginalText {
			return repository.ErrDuplicateRecord
		}
	}
	if _, ok := r.categories[prompt.CategoryID]; !ok {
		return repository.ErrInvalidReference
	}
	prompt.ID = r.id()
	prompt.CreatedAt = time.Now()
	prompt.UpdatedAt = prompt.CreatedAt
	prompt.Version = 1
	stored := *prompt
	r.prompts[prompt.ID] = &stored
	return nil
}

func (r *memRepo) GetPrompt(_ context.Context, promptID int64) (*data.Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prompts[promptID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	prompt := *p
	return &prompt, nil
}

func (r *memRepo) UpdatePrompt(_ context.Context, prompt *data.Prompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.prompts[prompt.ID]
	if !ok || stored.Version != prompt.Version {
		return repository.ErrEditConflict
	}
	for _, p := range r.prompts {
		if p.ID != prompt.ID && p.OriginalText == prompt.OriginalText {
			return repository.ErrDuplicateRecord
		}
	}
	if _, ok := r.categories[prompt.CategoryID]; !ok {
		return repository.ErrInvalidReference
	}
	prompt.Version++
	prompt.UpdatedAt = time.Now()
	updated := *prompt
	r.prompts[prompt.ID] = &updated
	return nil
}

func (r *memRepo) DeletePrompt(_ context.Context, promptID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.prompts[promptID]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(r.prompts, promptID)
	return nil
}

func (r *memRepo) sortedPrompts() []*data.Prompt {
	prompts := make([]*data.Prompt, 0, len(r.prompts))
	for _, p := range r.prompts {
		prompt := *p
		prompts = append(prompts, &prompt)
	}
	sort.Slice(prompts, func(i, j int) bool { return prompts[i].ID < prompts[j].ID })
	return prompts
}

func (r *memRepo) GetAllPrompts(_ context.Context, filter data.PromptFilter) ([]*data.Prompt, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches := []*data.Prompt{}
	search := strings.ToLower(filter.Search)
	for _, p := range r.sortedPrompts() {
		if len(filter.CategoryIDs) > 0 {
			found := false
			for _, id := range filter.CategoryIDs {
				if p.CategoryID == id {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		if search != "" {
			text := strings.ToLower(p.OriginalText)
			if p.ChineseTranslation != nil {
				text += "\n" + strings.ToLower(*p.ChineseTranslation)
			}
			if !strings.Contains(text, search) {
				continue
			}
		}
		matches = append(matches, p)
	}
	count := len(matches)
	start := min(filter.Window.Skip, count)
	end := min(start+filter.Window.Limit, count)
	return matches[start:end], count, nil
}

func (r *memRepo) ExportPrompts(_ context.Context) ([]*data.Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedPrompts(), nil
}

func (r *memRepo) CreateTemplate(_ context.Context, template *data.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.templates {
		if t.Name == template.Name {
			return repository.ErrDuplicateRecord
		}
	}
	template.ID = r.id()
	template.CreatedAt = time.Now()
	template.UpdatedAt = template.CreatedAt
	template.Version = 1
	stored := *template
	r.templates[template.ID] = &stored
	return nil
}

func (r *memRepo) GetTemplate(_ context.Context, templateID int64) (*data.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[templateID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	template := *t
	return &template, nil
}

func (r *memRepo) UpdateTemplate(_ context.Context, template *data.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.templates[template.ID]
	if !ok || stored.Version != template.Version {
		return repository.ErrEditConflict
	}
	for _, t := range r.templates {
		if t.ID != template.ID && t.Name == template.Name {
			return repository.ErrDuplicateRecord
		}
	}
	template.Version++
	template.UpdatedAt = time.Now()
	updated := *template
	r.templates[template.ID] = &updated
	return nil
}

func (r *memRepo) DeleteTemplate(_ context.Context, templateID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[templateID]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(r.templates, templateID)
	return nil
}

func (r *memRepo) GetAllTemplates(_ context.Context, name string, filters data.Filters) ([]*data.Template, data.Metadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches := []*data.Template{}
	for _, t := range r.templates {
		if name == "" || strings.Contains(strings.ToLower(t.Name), strings.ToLower(name)) {
			template := *t
			matches = append(matches, &template)
		}
	}
	// Only the default -updated_at order is modelled here; ties fall back to ID.
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].UpdatedAt.Equal(matches[j].UpdatedAt) {
			return matches[i].UpdatedAt.After(matches[j].UpdatedAt)
		}
		return matches[i].ID > matches[j].ID
	})
	total := len(matches)
	start := min(filters.Offset(), total)
	end := min(start+filters.Limit(), total)
	return matches[start:end], data.CalculateMetadata(total, filters.Page, filters.PageSize), nil
}

func (r *memRepo) ExportTemplates(_ context.Context) ([]*data.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	templates := make([]*data.Template, 0, len(r.templates))
	for _, t := range r.templates {
		template := *t
		templates = append(templates, &template)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].ID < templates[j].ID })
	return templates, nil
}

// memStore records uploads instead of sending them anywhere.
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *memStore) Put(_ context.Context, key, contentType string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.objects[key] = body
	s.types[key] = contentType
	return nil
}

type testEnv struct {
	svc   *service
	repo  *memRepo
	store *memStore
	wg    *sync.WaitGroup
	logs  *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := newMemRepo()
	store := newMemStore()
	env := newTestEnvWith(t, repo, store)
	env.store = store
	return env
}

// newTestEnvWith builds a service around repo. A nil store disables snapshots.
func newTestEnvWith(t *testing.T, repo *memRepo, store *memStore) *testEnv {
	t.Helper()
	var wg sync.WaitGroup
	logs := &bytes.Buffer{}
	logger := jsonlog.New(logs, jsonlog.LevelDebug)
	cache := ttlcache.New[string, []*data.Category](
		ttlcache.WithTTL[string, []*data.Category](time.Minute),
	)
	var svc *service
	if store != nil {
		svc = New(config.Config{}, &wg, logger, repo, store, cache)
	} else {
		svc = New(config.Config{}, &wg, logger, repo, nil, cache)
	}
	return &testEnv{svc: svc, repo: repo, wg: &wg, logs: logs}
}

var errUnavailable = errors.New("store unavailable")
