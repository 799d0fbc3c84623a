package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimarket/admin-api/internal/category/domain"
)

type stubCategoryRepo struct {
	categories map[uint]*domain.Category
	nextID     uint
	createErr  error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uint]*domain.Category), nextID: 1}
}

func (r *stubCategoryRepo) Create(category *domain.Category) error {
	if r.createErr != nil {
		return r.createErr
	}
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = category
	return nil
}

func (r *stubCategoryRepo) FindByID(id uint) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, assert.AnError
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindAll() ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(category *domain.Category) error {
	r.categories[category.ID] = category
	return nil
}

func TestCreateCategory(t *testing.T) {
	repo := newStubCategoryRepo()
	handler := NewCreateCategoryHandler(repo)

	category, err := handler.Handle(CreateCategoryCommand{Name: "Lácteos", Description: "Leche y derivados"})
	require.NoError(t, err)

	assert.NotZero(t, category.ID)
	assert.True(t, category.IsActive)
	assert.Equal(t, "Lácteos", category.Name)
}

func TestCreateCategory_NameRequired(t *testing.T) {
	repo := newStubCategoryRepo()
	handler := NewCreateCategoryHandler(repo)

	_, err := handler.Handle(CreateCategoryCommand{Description: "sin nombre"})
	assert.Error(t, err)
	assert.Empty(t, repo.categories)
}

func TestCreateCategory_RepositoryFailure(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.createErr = assert.AnError
	handler := NewCreateCategoryHandler(repo)

	_, err := handler.Handle(CreateCategoryCommand{Name: "Lácteos"})
	assert.Error(t, err)
}

func TestUpdateCategory_PartialFields(t *testing.T) {
	repo := newStubCategoryRepo()
	create := NewCreateCategoryHandler(repo)
	created, err := create.Handle(CreateCategoryCommand{Name: "Lácteos", Description: "original"})
	require.NoError(t, err)

	handler := NewUpdateCategoryHandler(repo)

	name := "Lácteos y Huevo"
	updated, err := handler.Handle(UpdateCategoryCommand{ID: created.ID, Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Lácteos y Huevo", updated.Name)
	// Untouched fields keep their values
	assert.Equal(t, "original", updated.Description)
	assert.True(t, updated.IsActive)
}

func TestUpdateCategory_ReactivatesViaIsActive(t *testing.T) {
	repo := newStubCategoryRepo()
	created, err := NewCreateCategoryHandler(repo).Handle(CreateCategoryCommand{Name: "Lácteos"})
	require.NoError(t, err)

	require.NoError(t, NewDeactivateCategoryHandler(repo).Handle(DeactivateCategoryCommand{ID: created.ID}))

	active := true
	updated, err := NewUpdateCategoryHandler(repo).Handle(UpdateCategoryCommand{ID: created.ID, IsActive: &active})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestUpdateCategory_EmptyNameRejected(t *testing.T) {
	repo := newStubCategoryRepo()
	created, err := NewCreateCategoryHandler(repo).Handle(CreateCategoryCommand{Name: "Lácteos"})
	require.NoError(t, err)

	empty := ""
	_, err = NewUpdateCategoryHandler(repo).Handle(UpdateCategoryCommand{ID: created.ID, Name: &empty})
	assert.Error(t, err)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	repo := newStubCategoryRepo()

	name := "x"
	_, err := NewUpdateCategoryHandler(repo).Handle(UpdateCategoryCommand{ID: 99, Name: &name})
	assert.Error(t, err)
}

func TestDeactivateCategory(t *testing.T) {
	repo := newStubCategoryRepo()
	created, err := NewCreateCategoryHandler(repo).Handle(CreateCategoryCommand{Name: "Lácteos"})
	require.NoError(t, err)

	require.NoError(t, NewDeactivateCategoryHandler(repo).Handle(DeactivateCategoryCommand{ID: created.ID}))

	// The row survives as inactive instead of being deleted
	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestDeactivateCategory_InvalidID(t *testing.T) {
	repo := newStubCategoryRepo()
	handler := NewDeactivateCategoryHandler(repo)

	assert.Error(t, handler.Handle(DeactivateCategoryCommand{ID: 0}))
	assert.Error(t, handler.Handle(DeactivateCategoryCommand{ID: 42}))
}
