package memory

import (
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"prism-brain-be/internal/entity"
)

// ProjectRepository is the in-memory project registry. Projects live for
// the process lifetime; no eviction, no persistence.
type ProjectRepository struct {
	cache *cache.Cache
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *ProjectRepository) Save(project *entity.Project) {
	r.cache.Set(project.Id.String(), project, cache.NoExpiration)
}

func (r *ProjectRepository) Get(id uuid.UUID) (*entity.Project, bool) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*entity.Project), true
	}
	return nil, false
}

// List returns every registered project in unspecified order.
func (r *ProjectRepository) List() []*entity.Project {
	items := r.cache.Items()
	projects := make([]*entity.Project, 0, len(items))
	for _, item := range items {
		projects = append(projects, item.Object.(*entity.Project))
	}
	return projects
}

func (r *ProjectRepository) Count() int {
	return r.cache.ItemCount()
}
