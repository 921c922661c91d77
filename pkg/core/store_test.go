package core_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/aretw0/notes/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRepository implements core.Repository in memory.
type MockRepository struct {
	notes       []core.Note
	exists      bool
	loadErr     error
	saveErr     error
	saves       int
	initialized int
}

func NewMockRepository(notes ...core.Note) *MockRepository {
	return &MockRepository{notes: notes, exists: len(notes) > 0}
}

func (m *MockRepository) Initialize(ctx context.Context) error {
	m.initialized++
	m.exists = true
	return nil
}

func (m *MockRepository) Load(ctx context.Context) ([]core.Note, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]core.Note, len(m.notes))
	copy(out, m.notes)
	return out, nil
}

func (m *MockRepository) Save(ctx context.Context, notes []core.Note) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.notes = make([]core.Note, len(notes))
	copy(m.notes, notes)
	m.loadErr = nil
	return nil
}

func loadedStore(t *testing.T, repo *MockRepository) *core.Store {
	t.Helper()
	store := core.NewStore(repo, core.Config{})
	require.NoError(t, store.Load(context.Background()))
	return store
}

func TestStore_IDsAreSequentialWithoutDeletes(t *testing.T) {
	store := loadedStore(t, NewMockRepository())

	for i := 0; i < 10; i++ {
		note, err := store.Add(fmt.Sprintf("note %d", i))
		require.NoError(t, err)
		assert.Equal(t, uint64(i), note.ID)
	}

	notes := store.List()
	for i := 1; i < len(notes); i++ {
		assert.Equal(t, notes[i-1].ID+1, notes[i].ID)
	}
}

func TestStore_NextID(t *testing.T) {
	t.Run("Empty Store", func(t *testing.T) {
		store := loadedStore(t, NewMockRepository())
		assert.Equal(t, uint64(0), store.NextID())
	})

	t.Run("Follows Last Note Not Highest", func(t *testing.T) {
		repo := NewMockRepository(core.Note{ID: 9, Description: "x"}, core.Note{ID: 3, Description: "y"})
		store := loadedStore(t, repo)
		assert.Equal(t, uint64(4), store.NextID())
	})
}

func TestStore_AddAfterMaxID(t *testing.T) {
	repo := NewMockRepository(
		core.Note{ID: 0, Description: "a"},
		core.Note{ID: math.MaxUint64, Description: "b"},
	)
	store := loadedStore(t, repo)

	_, err := store.Add("c")
	assert.ErrorIs(t, err, core.ErrIDExhausted)
	assert.Equal(t, 2, store.Len())
	assert.False(t, store.Dirty())

	_, err = store.Delete(2)
	require.NoError(t, err)
	note, err := store.Add("c")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), note.ID)
}

func TestStore_BuyMilkScenario(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	store := loadedStore(t, repo)

	milk, err := store.Add("buy milk")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), milk.ID)

	mom, err := store.Add("call mom")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), mom.ID)

	removed, err := store.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", removed.Description)

	require.Len(t, store.List(), 1)
	assert.Equal(t, "1: call mom", store.List()[0].String())

	require.NoError(t, store.Save(ctx))

	reloaded := loadedStore(t, repo)
	assert.Equal(t, store.List(), reloaded.List())
}

// Deleting the last note frees its id: the next id is derived from the new
// tail of the sequence.
func TestStore_ReusesIDOfDeletedTail(t *testing.T) {
	store := loadedStore(t, NewMockRepository())

	a, _ := store.Add("a")
	b, _ := store.Add("b")
	assert.Equal(t, uint64(0), a.ID)
	assert.Equal(t, uint64(1), b.ID)

	_, err := store.Delete(2)
	require.NoError(t, err)

	c, err := store.Add("c")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), c.ID, "id of the deleted tail is reused")
}

// Delete is positional. Ids start at 0 and positions at 1, so passing a
// note's id removes a different note.
func TestStore_DeleteIsPositionalNotByID(t *testing.T) {
	store := loadedStore(t, NewMockRepository())
	store.Add("zero")
	store.Add("one")
	store.Add("two")

	removed, err := store.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), removed.ID, "position 1 holds id 0")
	assert.Equal(t, []core.Note{{ID: 1, Description: "one"}, {ID: 2, Description: "two"}}, store.List())
}

func TestStore_DeleteOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		notes    int
		position int
	}{
		{name: "Empty Store", notes: 0, position: 1},
		{name: "Zero", notes: 2, position: 0},
		{name: "Negative", notes: 2, position: -1},
		{name: "Past End", notes: 2, position: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := loadedStore(t, NewMockRepository())
			for i := 0; i < tt.notes; i++ {
				store.Add(fmt.Sprintf("n%d", i))
			}
			before := store.List()

			_, err := store.Delete(tt.position)
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrOutOfRange))

			var rangeErr *core.OutOfRangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.position, rangeErr.Position)
			assert.Equal(t, tt.notes, rangeErr.Len)

			assert.Equal(t, before, store.List())
		})
	}
}

func TestStore_LoadCorruptedResets(t *testing.T) {
	repo := NewMockRepository(core.Note{ID: 0, Description: "lost"})
	repo.loadErr = fmt.Errorf("decoding: %w", core.ErrCorrupt)

	store := core.NewStore(repo, core.Config{})
	require.NoError(t, store.Load(context.Background()))

	assert.True(t, store.IsEmpty())
	assert.Equal(t, 1, repo.saves, "corrupted store is rewritten")
	assert.Empty(t, repo.notes)
}

func TestStore_LoadCorruptedReadOnly(t *testing.T) {
	repo := NewMockRepository(core.Note{ID: 0, Description: "kept"})
	repo.loadErr = fmt.Errorf("decoding: %w", core.ErrCorrupt)

	store := core.NewStore(repo, core.Config{ReadOnly: true})
	require.NoError(t, store.Load(context.Background()))

	assert.True(t, store.IsEmpty())
	assert.Equal(t, 0, repo.saves, "read-only store never writes")
}

func TestStore_LoadFailure(t *testing.T) {
	repo := NewMockRepository()
	repo.loadErr = errors.New("permission denied")

	store := core.NewStore(repo, core.Config{})
	err := store.Load(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, core.ErrCorrupt))
	assert.Equal(t, 0, repo.saves)
}

func TestStore_ResetWritesImmediately(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository(core.Note{ID: 0, Description: "a"}, core.Note{ID: 1, Description: "b"})
	store := loadedStore(t, repo)

	require.NoError(t, store.Reset(ctx))
	assert.True(t, store.IsEmpty())
	assert.Equal(t, 1, repo.saves)
	assert.Empty(t, repo.notes)

	// Adds after a reset start over and are persisted by the final save.
	note, err := store.Add("fresh")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), note.ID)
	require.NoError(t, store.Save(ctx))
	assert.Equal(t, []core.Note{{ID: 0, Description: "fresh"}}, repo.notes)
}

func TestStore_SaveFailureIsReported(t *testing.T) {
	repo := NewMockRepository()
	store := loadedStore(t, repo)
	store.Add("x")

	repo.saveErr = errors.New("disk full")
	err := store.Save(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, store.Dirty(), "failed save keeps changes pending")
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Operations Before Load", func(t *testing.T) {
		store := core.NewStore(NewMockRepository(), core.Config{})
		_, err := store.Add("x")
		assert.ErrorIs(t, err, core.ErrNotLoaded)
		assert.ErrorIs(t, store.Save(ctx), core.ErrNotLoaded)
	})

	t.Run("Operations After Close", func(t *testing.T) {
		store := loadedStore(t, NewMockRepository())
		require.NoError(t, store.Close())
		_, err := store.Add("x")
		assert.ErrorIs(t, err, core.ErrClosed)
		assert.ErrorIs(t, store.Load(ctx), core.ErrClosed)
	})

	t.Run("Read Only Rejects Writes", func(t *testing.T) {
		store := core.NewStore(NewMockRepository(), core.Config{ReadOnly: true})
		require.NoError(t, store.Load(ctx))
		_, err := store.Add("x")
		assert.ErrorIs(t, err, core.ErrReadOnly)
		_, err = store.Delete(1)
		assert.ErrorIs(t, err, core.ErrReadOnly)
		assert.ErrorIs(t, store.Reset(ctx), core.ErrReadOnly)
		assert.ErrorIs(t, store.Save(ctx), core.ErrReadOnly)
	})
}

func TestStore_State(t *testing.T) {
	store := loadedStore(t, NewMockRepository())
	store.Add("x")

	state, ok := store.State().(core.StoreState)
	require.True(t, ok)
	assert.Equal(t, core.PhaseLoaded, state.Phase)
	assert.Equal(t, 1, state.Notes)
	assert.Equal(t, uint64(1), state.NextID)
	assert.True(t, state.Dirty)
	assert.Equal(t, "repository", state.RepositoryType)
	assert.Equal(t, "store", store.ComponentType())
}

func TestStore_Watch_Unsupported(t *testing.T) {
	store := loadedStore(t, NewMockRepository())

	_, err := store.Watch(context.Background())
	require.Error(t, err)
	assert.Equal(t, "repository does not support watching", err.Error())
}
