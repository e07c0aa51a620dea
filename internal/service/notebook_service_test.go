package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"notebook-be/internal/apperr"
	"notebook-be/internal/entity"
	"notebook-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository implements contract.NotebookRepository in memory and
// counts calls so tests can assert when the gateway was reached.
type fakeRepository struct {
	sectionsByUser map[string][]*entity.Section

	getSectionsCalls int
	nextId           int

	failWith error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		sectionsByUser: map[string][]*entity.Section{},
		nextId:         100,
	}
}

func (f *fakeRepository) assignId() int {
	f.nextId++
	return f.nextId
}

func (f *fakeRepository) GetSections(ctx context.Context, userId string) ([]*entity.Section, error) {
	f.getSectionsCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.sectionsByUser[userId], nil
}

func (f *fakeRepository) CreateSection(ctx context.Context, section *entity.Section) error {
	if f.failWith != nil {
		return f.failWith
	}
	section.Id = f.assignId()
	for _, page := range section.Pages {
		page.Id = f.assignId()
		page.SectionId = section.Id
	}
	f.sectionsByUser[section.UserId] = append(f.sectionsByUser[section.UserId], section)
	return nil
}

func (f *fakeRepository) UpdateSection(ctx context.Context, section *entity.Section, userId string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, s := range f.sectionsByUser[userId] {
		if s.Id == section.Id {
			s.Name = section.Name
			return nil
		}
	}
	return &apperr.EntityNotFoundError{Entity: "section"}
}

func (f *fakeRepository) DeleteSection(ctx context.Context, id int, userId string) error {
	if f.failWith != nil {
		return f.failWith
	}
	sections := f.sectionsByUser[userId]
	for i, s := range sections {
		if s.Id == id {
			f.sectionsByUser[userId] = append(sections[:i], sections[i+1:]...)
			return nil
		}
	}
	return &apperr.EntityNotFoundError{Entity: "section"}
}

func (f *fakeRepository) GetPageContentById(ctx context.Context, id int, userId string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	for _, s := range f.sectionsByUser[userId] {
		for _, p := range s.Pages {
			if p.Id == id {
				return p.Content, nil
			}
		}
	}
	return "", &apperr.EntityNotFoundError{Entity: "page"}
}

func (f *fakeRepository) AddPage(ctx context.Context, page *entity.Page, userId string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, s := range f.sectionsByUser[userId] {
		if s.Id == page.SectionId {
			page.Id = f.assignId()
			s.Pages = append(s.Pages, page)
			return nil
		}
	}
	return &apperr.EntityNotFoundError{Entity: "section"}
}

func (f *fakeRepository) UpdatePage(ctx context.Context, page *entity.Page, userId string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, s := range f.sectionsByUser[userId] {
		for _, p := range s.Pages {
			if p.Id == page.Id {
				p.Title = page.Title
				p.Content = page.Content
				p.SizeInBytes = page.SizeInBytes
				p.UpdatedAt = page.UpdatedAt
				return nil
			}
		}
	}
	return &apperr.EntityNotFoundError{Entity: "page"}
}

func (f *fakeRepository) DeletePage(ctx context.Context, id int, userId string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, s := range f.sectionsByUser[userId] {
		for i, p := range s.Pages {
			if p.Id == id {
				s.Pages = append(s.Pages[:i], s.Pages[i+1:]...)
				return nil
			}
		}
	}
	return &apperr.EntityNotFoundError{Entity: "page"}
}

var (
	alice = entity.CurrentUser{Id: "user-alice", Name: "Alice", IsAuthenticated: true}
	bob   = entity.CurrentUser{Id: "user-bob", Name: "Bob", IsAuthenticated: true}
	guest = entity.CurrentUser{}
)

func newServiceWithRepo() (INotebookService, *fakeRepository) {
	repo := newFakeRepository()
	return NewNotebookService(repo, memory.NewSectionCache()), repo
}

func seedSection(t *testing.T, svc INotebookService, user entity.CurrentUser, name string) *entity.Section {
	t.Helper()
	section := &entity.Section{Name: name}
	require.NoError(t, svc.CreateSection(context.Background(), user, section))
	return section
}

func TestUnauthenticatedUserIsRejectedBeforeAnyIO(t *testing.T) {
	svc, repo := newServiceWithRepo()
	ctx := context.Background()

	_, err := svc.GetSections(ctx, guest)
	assert.ErrorIs(t, err, apperr.ErrNotAuthorized)

	_, err = svc.SearchSections(ctx, guest, "anything")
	assert.ErrorIs(t, err, apperr.ErrNotAuthorized)

	assert.ErrorIs(t, svc.CreateSection(ctx, guest, &entity.Section{Name: "X"}), apperr.ErrNotAuthorized)
	assert.ErrorIs(t, svc.UpdateSection(ctx, guest, &entity.Section{Id: 1, Name: "X"}), apperr.ErrNotAuthorized)
	assert.ErrorIs(t, svc.DeleteSection(ctx, guest, 1), apperr.ErrNotAuthorized)
	assert.ErrorIs(t, svc.AddPage(ctx, guest, &entity.Page{SectionId: 1}), apperr.ErrNotAuthorized)
	assert.ErrorIs(t, svc.UpdatePage(ctx, guest, &entity.Page{Id: 1}), apperr.ErrNotAuthorized)
	assert.ErrorIs(t, svc.DeletePage(ctx, guest, 1), apperr.ErrNotAuthorized)

	_, err = svc.GetPageContentById(ctx, guest, 1)
	assert.ErrorIs(t, err, apperr.ErrNotAuthorized)

	assert.Zero(t, repo.getSectionsCalls)
}

func TestNilInputIsRejectedWithoutIO(t *testing.T) {
	svc, repo := newServiceWithRepo()
	ctx := context.Background()

	assert.ErrorIs(t, svc.CreateSection(ctx, alice, nil), apperr.ErrInvalidArgument)
	assert.ErrorIs(t, svc.UpdateSection(ctx, alice, nil), apperr.ErrInvalidArgument)
	assert.ErrorIs(t, svc.AddPage(ctx, alice, nil), apperr.ErrInvalidArgument)
	assert.ErrorIs(t, svc.UpdatePage(ctx, alice, nil), apperr.ErrInvalidArgument)

	assert.Empty(t, repo.sectionsByUser)
}

func TestCreateSectionAppendsExactlyOneDefaultPage(t *testing.T) {
	svc, _ := newServiceWithRepo()

	before := time.Now().UTC()
	section := &entity.Section{Name: "Recipes", UserId: "someone-else"}
	require.NoError(t, svc.CreateSection(context.Background(), alice, section))

	assert.Equal(t, alice.Id, section.UserId, "owner is always the caller")
	assert.NotZero(t, section.Id)
	require.Len(t, section.Pages, 1)

	page := section.Pages[0]
	assert.Equal(t, "Untitled page", page.Title)
	assert.Nil(t, page.UpdatedAt)
	assert.False(t, page.CreatedAt.Before(before))
	assert.Equal(t, time.UTC, page.CreatedAt.Location())
}

func TestUpdateSectionDefaultsEmptyName(t *testing.T) {
	svc, repo := newServiceWithRepo()
	section := seedSection(t, svc, alice, "Old name")

	require.NoError(t, svc.UpdateSection(context.Background(), alice, &entity.Section{Id: section.Id, Name: ""}))

	assert.Equal(t, "Untitled section", repo.sectionsByUser[alice.Id][0].Name)
}

func TestUpdateSectionOfOtherUserFailsNotFound(t *testing.T) {
	svc, _ := newServiceWithRepo()
	section := seedSection(t, svc, alice, "Private")

	err := svc.UpdateSection(context.Background(), bob, &entity.Section{Id: section.Id, Name: "Hijack"})
	assert.True(t, apperr.IsNotFound(err))

	err = svc.DeleteSection(context.Background(), bob, section.Id)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAddPageDefaultsAndComputesSize(t *testing.T) {
	svc, _ := newServiceWithRepo()
	section := seedSection(t, svc, alice, "Notes")

	page := &entity.Page{SectionId: section.Id, Content: "á"}
	require.NoError(t, svc.AddPage(context.Background(), alice, page))

	assert.Equal(t, "Untitled page", page.Title)
	assert.Equal(t, int64(2), page.SizeInBytes)
	assert.NotZero(t, page.CreatedAt)
	assert.Nil(t, page.UpdatedAt)
}

func TestAddPageToMissingOrForeignSectionFailsNotFound(t *testing.T) {
	svc, _ := newServiceWithRepo()
	section := seedSection(t, svc, alice, "Notes")

	err := svc.AddPage(context.Background(), alice, &entity.Page{SectionId: 9999, Title: "X"})
	assert.True(t, apperr.IsNotFound(err))

	err = svc.AddPage(context.Background(), bob, &entity.Page{SectionId: section.Id, Title: "X"})
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdatePageRecomputesSizeAndSetsUpdatedAt(t *testing.T) {
	svc, repo := newServiceWithRepo()
	section := seedSection(t, svc, alice, "Notes")
	created := section.Pages[0]
	createdAt := created.CreatedAt

	update := &entity.Page{Id: created.Id, SectionId: section.Id, Title: "", Content: "ab"}
	require.NoError(t, svc.UpdatePage(context.Background(), alice, update))

	stored := repo.sectionsByUser[alice.Id][0].Pages[0]
	assert.Equal(t, "Untitled page", stored.Title)
	assert.Equal(t, int64(2), stored.SizeInBytes)
	require.NotNil(t, stored.UpdatedAt)
	assert.Equal(t, time.UTC, stored.UpdatedAt.Location())
	assert.Equal(t, createdAt, stored.CreatedAt, "creation timestamp is never touched on update")
}

func TestDeletePageOfOtherUserFailsNotFound(t *testing.T) {
	svc, _ := newServiceWithRepo()
	section := seedSection(t, svc, alice, "Notes")

	err := svc.DeletePage(context.Background(), bob, section.Pages[0].Id)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetPageContentById(t *testing.T) {
	svc, _ := newServiceWithRepo()
	section := seedSection(t, svc, alice, "Notes")
	page := &entity.Page{SectionId: section.Id, Title: "Drafts", Content: "hello"}
	require.NoError(t, svc.AddPage(context.Background(), alice, page))

	content, err := svc.GetPageContentById(context.Background(), alice, page.Id)
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	_, err = svc.GetPageContentById(context.Background(), bob, page.Id)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetSectionsUsesCache(t *testing.T) {
	svc, repo := newServiceWithRepo()
	seedSection(t, svc, alice, "Notes")

	_, err := svc.GetSections(context.Background(), alice)
	require.NoError(t, err)
	_, err = svc.GetSections(context.Background(), alice)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getSectionsCalls)
}

func TestWriteInvalidatesCallersCacheOnly(t *testing.T) {
	svc, repo := newServiceWithRepo()
	seedSection(t, svc, alice, "Alice notes")
	seedSection(t, svc, bob, "Bob notes")

	_, err := svc.GetSections(context.Background(), alice)
	require.NoError(t, err)
	_, err = svc.GetSections(context.Background(), bob)
	require.NoError(t, err)
	require.Equal(t, 2, repo.getSectionsCalls)

	// Alice writes; her next read refetches, Bob stays cached.
	seedSection(t, svc, alice, "More notes")

	sections, err := svc.GetSections(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, sections, 2)

	_, err = svc.GetSections(context.Background(), bob)
	require.NoError(t, err)

	assert.Equal(t, 3, repo.getSectionsCalls, "only the writer's entry was invalidated")
}

func TestFailedScopedWriteLeavesCacheIntact(t *testing.T) {
	svc, repo := newServiceWithRepo()
	section := seedSection(t, svc, alice, "Notes")

	_, err := svc.GetSections(context.Background(), alice)
	require.NoError(t, err)
	require.Equal(t, 1, repo.getSectionsCalls)

	err = svc.UpdateSection(context.Background(), alice, &entity.Section{Id: section.Id + 1, Name: "X"})
	require.True(t, apperr.IsNotFound(err))

	_, err = svc.GetSections(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getSectionsCalls, "a write that changed nothing must not drop the cache")
}

func TestCancelledWriteStillInvalidatesCache(t *testing.T) {
	svc, repo := newServiceWithRepo()
	section := seedSection(t, svc, alice, "Notes")

	_, err := svc.GetSections(context.Background(), alice)
	require.NoError(t, err)
	require.Equal(t, 1, repo.getSectionsCalls)

	// The write may have committed before the cancellation surfaced, so
	// the cached tree can no longer be trusted.
	repo.failWith = context.Canceled
	err = svc.UpdateSection(context.Background(), alice, &entity.Section{Id: section.Id, Name: "X"})
	require.ErrorIs(t, err, context.Canceled)
	repo.failWith = nil

	_, err = svc.GetSections(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getSectionsCalls)
}

func TestGatewayErrorsPropagateUnchanged(t *testing.T) {
	svc, repo := newServiceWithRepo()
	unavailable := errors.New("dial tcp: connection refused")
	repo.failWith = unavailable

	_, err := svc.GetSections(context.Background(), alice)
	assert.ErrorIs(t, err, unavailable)

	err = svc.CreateSection(context.Background(), alice, &entity.Section{Name: "X"})
	assert.ErrorIs(t, err, unavailable)
}

func TestSearchSectionsBlankTextReturnsEmptyWithoutGateway(t *testing.T) {
	svc, repo := newServiceWithRepo()
	seedSection(t, svc, alice, "Notes")
	repo.getSectionsCalls = 0

	for _, text := range []string{"", "   ", "\t\n"} {
		result, err := svc.SearchSections(context.Background(), alice, text)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	}

	assert.Zero(t, repo.getSectionsCalls)
}

func TestSearchSectionsMatchesDiacriticAndCaseInsensitive(t *testing.T) {
	svc, _ := newServiceWithRepo()
	ctx := context.Background()

	kodovani := seedSection(t, svc, alice, "Kódování")
	recipes := seedSection(t, svc, alice, "Recipes")
	seedSection(t, svc, alice, "Misc")
	require.NoError(t, svc.AddPage(ctx, alice, &entity.Page{SectionId: recipes.Id, Title: "Žluťoučký dort"}))

	tests := []struct {
		name    string
		text    string
		wantIds []int
	}{
		{name: "section name without diacritics", text: "kodovani", wantIds: []int{kodovani.Id}},
		{name: "section name with diacritics", text: "KÓDOVÁNÍ", wantIds: []int{kodovani.Id}},
		{name: "page title match includes whole section", text: "zlutoucky", wantIds: []int{recipes.Id}},
		{name: "substring match", text: "ecip", wantIds: []int{recipes.Id}},
		{name: "no match", text: "xyzzy", wantIds: []int{}},
		{name: "surrounding whitespace trimmed", text: "  kodovani  ", wantIds: []int{kodovani.Id}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.SearchSections(ctx, alice, tt.text)
			require.NoError(t, err)

			ids := make([]int, 0, len(result))
			for _, s := range result {
				ids = append(ids, s.Id)
			}
			assert.Equal(t, tt.wantIds, ids)
		})
	}
}

func TestSearchSectionsReturnsEachSectionAtMostOnce(t *testing.T) {
	svc, _ := newServiceWithRepo()
	ctx := context.Background()

	// Section name and both page titles match the same search text.
	section := seedSection(t, svc, alice, "Plán práce")
	require.NoError(t, svc.AddPage(ctx, alice, &entity.Page{SectionId: section.Id, Title: "Plán A"}))
	require.NoError(t, svc.AddPage(ctx, alice, &entity.Page{SectionId: section.Id, Title: "Plán B"}))

	result, err := svc.SearchSections(ctx, alice, "plan")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, section.Id, result[0].Id)
	assert.Len(t, result[0].Pages, 3, "the whole section is returned, pages unfiltered")
}

func TestSearchSectionsIsSubsetOfGetSections(t *testing.T) {
	svc, _ := newServiceWithRepo()
	ctx := context.Background()

	seedSection(t, svc, alice, "Kódování")
	seedSection(t, svc, alice, "Recipes")
	seedSection(t, svc, alice, "Kod review")

	all, err := svc.GetSections(ctx, alice)
	require.NoError(t, err)
	allIds := map[int]bool{}
	for _, s := range all {
		allIds[s.Id] = true
	}

	result, err := svc.SearchSections(ctx, alice, "kod")
	require.NoError(t, err)
	assert.Len(t, result, 2)

	seen := map[int]bool{}
	for _, s := range result {
		assert.True(t, allIds[s.Id], "search result %d not in GetSections", s.Id)
		assert.False(t, seen[s.Id], "section %d returned twice", s.Id)
		seen[s.Id] = true
	}
}
