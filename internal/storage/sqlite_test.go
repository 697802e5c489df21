package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestFamily(t *testing.T, s *Storage) *domain.Family {
	t.Helper()
	f := &domain.Family{Name: "Testfamilie"}
	require.NoError(t, s.CreateFamily(f))
	require.NotZero(t, f.ID)
	return f
}

func TestFamilyRoundtrip(t *testing.T) {
	s := newTestStorage(t)

	f := &domain.Family{Name: "Müller", ChatID: 12345}
	require.NoError(t, s.CreateFamily(f))

	got, err := s.GetFamily(f.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Müller", got.Name)
	assert.Equal(t, int64(12345), got.ChatID)

	missing, err := s.GetFamily(9999)
	require.NoError(t, err)
	assert.Nil(t, missing, "unknown id yields nil, not an error")

	all, err := s.ListFamilies()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemberRoundtrip(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)

	m := &domain.Member{FamilyID: f.ID, Name: "Marie", Role: domain.RoleOwner}
	require.NoError(t, s.CreateMember(m))

	members, err := s.ListMembers(f.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Marie", members[0].Name)
	assert.Equal(t, domain.RoleOwner, members[0].Role)
}

func TestEventRoundtrip(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)

	e := &domain.Event{
		FamilyID:    f.ID,
		Title:       "Elternabend",
		Description: "Aula",
		Date:        time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		TimeOfDay:   "19:30",
	}
	require.NoError(t, s.CreateEvent(e))

	got, err := s.GetEvent(e.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Elternabend", got.Title)
	assert.Equal(t, "19:30", got.TimeOfDay)
	assert.True(t, got.Date.Equal(e.Date))
	assert.False(t, got.IsImported())

	got.Title = "Elternabend (verschoben)"
	require.NoError(t, s.UpdateEvent(got))
	again, err := s.GetEvent(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Elternabend (verschoben)", again.Title)

	require.NoError(t, s.DeleteEvent(e.ID))
	gone, err := s.GetEvent(e.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestEventRemoteUIDLookup(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)

	now := time.Now().UTC().Truncate(time.Second)
	e := &domain.Event{
		FamilyID:  f.ID,
		Title:     "Importiert",
		Date:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		RemoteUID: "abc-123@remote",
		SyncedAt:  &now,
	}
	require.NoError(t, s.CreateEvent(e))

	got, err := s.GetEventByRemoteUID("abc-123@remote")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsImported())

	none, err := s.GetEventByRemoteUID("")
	require.NoError(t, err)
	assert.Nil(t, none, "empty uid never matches")

	imported, err := s.ListImportedEvents(f.ID)
	require.NoError(t, err)
	assert.Len(t, imported, 1)
}

func TestTodoRoundtripAndOrdering(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)

	due := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	low := &domain.Todo{FamilyID: f.ID, Task: "Keller aufräumen", Priority: domain.PriorityLow}
	high := &domain.Todo{FamilyID: f.ID, Task: "Impftermin", Priority: domain.PriorityHigh, DueDate: &due}
	require.NoError(t, s.CreateTodo(low))
	require.NoError(t, s.CreateTodo(high))

	todos, err := s.ListTodos(f.ID, false)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "Impftermin", todos[0].Task, "high priority sorts first")
	require.NotNil(t, todos[0].DueDate)
	assert.True(t, todos[0].DueDate.Equal(due))
	assert.Nil(t, todos[1].DueDate)

	require.NoError(t, s.SetTodoDone(low.ID, true))
	open, err := s.ListTodos(f.ID, false)
	require.NoError(t, err)
	assert.Len(t, open, 1)
	all, err := s.ListTodos(f.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTodoCommentsResolveAuthor(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)

	m := &domain.Member{FamilyID: f.ID, Name: "Jonas", Role: domain.RoleMember}
	require.NoError(t, s.CreateMember(m))
	todo := &domain.Todo{FamilyID: f.ID, Task: "Rasen mähen"}
	require.NoError(t, s.CreateTodo(todo))

	c := &domain.TodoComment{TodoID: todo.ID, AuthorID: m.ID, Text: "mach ich am Samstag"}
	require.NoError(t, s.CreateTodoComment(c))

	comments, err := s.ListTodoComments(todo.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "mach ich am Samstag", comments[0].Text)
	assert.Equal(t, "Jonas", comments[0].AuthorName)
}

func TestContactRoundtrip(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)

	bd := time.Date(1980, 5, 15, 0, 0, 0, 0, time.UTC)
	c := &domain.Contact{FamilyID: f.ID, FirstName: "Oma", LastName: "Müller", Birthdate: &bd}
	require.NoError(t, s.CreateContact(c))

	contacts, err := s.ListContacts(f.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Oma Müller", contacts[0].FullName())
	require.NotNil(t, contacts[0].Birthdate)
	assert.True(t, contacts[0].Birthdate.Equal(bd))

	noBday := &domain.Contact{FamilyID: f.ID, FirstName: "Nachbar"}
	require.NoError(t, s.CreateContact(noBday))
	got, err := s.GetContact(noBday.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Birthdate)
}

func TestShoppingItemRoundtrip(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)

	deal := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	i := &domain.ShoppingItem{
		FamilyID: f.ID,
		Name:     "Milch",
		Quantity: "2",
		Unit:     domain.UnitLiter,
		Store:    "Edeka",
		DealDate: &deal,
	}
	require.NoError(t, s.CreateShoppingItem(i))

	require.NoError(t, s.UpdateShoppingItemQuantity(i.ID, "3.00"))
	require.NoError(t, s.SetShoppingItemChecked(i.ID, true))

	got, err := s.GetShoppingItem(i.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "3.00", got.Quantity)
	assert.True(t, got.Checked)
	assert.Equal(t, "Edeka", got.Store)
	require.NotNil(t, got.DealDate)
	assert.True(t, got.DealDate.Equal(deal))
}

func TestRecipeRoundtrip(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)

	r := &domain.Recipe{
		FamilyID:     f.ID,
		Name:         "Pfannkuchen",
		Instructions: "Alles verrühren, backen.",
		Servings:     4,
		Ingredients: []domain.RecipeIngredient{
			{Name: "Mehl", Quantity: "250", Unit: domain.UnitGram, AddToShopping: true},
			{Name: "Milch", Quantity: "0.5", Unit: domain.UnitLiter, AddToShopping: true},
			{Name: "Salz", Quantity: "1", Unit: domain.UnitPinch},
		},
	}
	require.NoError(t, s.CreateRecipe(r))

	got, err := s.GetRecipe(r.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, got.Servings)
	require.Len(t, got.Ingredients, 3)
	assert.Equal(t, "Mehl", got.Ingredients[0].Name, "position order preserved")
	assert.Len(t, got.ShoppingIngredients(), 2)

	// update replaces the ingredient list
	got.Ingredients = got.Ingredients[:1]
	got.Servings = 2
	require.NoError(t, s.UpdateRecipe(got))
	again, err := s.GetRecipe(r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Servings)
	assert.Len(t, again.Ingredients, 1)

	require.NoError(t, s.DeleteRecipe(r.ID))
	gone, err := s.GetRecipe(r.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestNoteRoundtrip(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)

	n := &domain.Note{FamilyID: f.ID, Title: "WLAN", Body: "Passwort steht im Router"}
	require.NoError(t, s.CreateNote(n))

	n.Body = "Passwort: siehe Karte am Kühlschrank"
	require.NoError(t, s.UpdateNote(n))

	notes, err := s.ListNotes(f.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Passwort: siehe Karte am Kühlschrank", notes[0].Body)
}
