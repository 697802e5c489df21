package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

// === events ===

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	events, err := s.events.List(fid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]eventJSON, 0, len(events))
	for _, e := range events {
		out = append(out, toEventJSON(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Date        string `json:"date"`
		TimeOfDay   string `json:"time_of_day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid date %q", req.Date))
		return
	}

	event, err := s.events.Create(fid, req.Title, req.Description, date, req.TimeOfDay)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventJSON(event))
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	event, err := s.events.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if event == nil || event.FamilyID != fid {
		writeError(w, http.StatusNotFound, fmt.Errorf("event not found"))
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Date        string `json:"date"`
		TimeOfDay   string `json:"time_of_day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid date %q", req.Date))
		return
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Date = date
	event.TimeOfDay = req.TimeOfDay
	if err := s.events.Update(event); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventJSON(event))
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, func(id, fid int64) error { return s.events.Delete(id, fid) })
}

// deleteByID factors the shared id/fid plumbing of delete handlers.
func (s *Server) deleteByID(w http.ResponseWriter, r *http.Request, del func(id, fid int64) error) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := del(id, fid); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// === todos ===

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	includeDone := r.URL.Query().Get("include_done") == "true"
	todos, err := s.todos.List(fid, includeDone)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]todoJSON, 0, len(todos))
	for _, t := range todos {
		out = append(out, toTodoJSON(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Task        string `json:"task"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
		AssignedTo  *int64 `json:"assigned_to"`
		Priority    string `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	todo, err := s.todos.Create(fid, req.Task, req.Description,
		optionalTimestamp(req.DueDate), req.AssignedTo, domain.Priority(req.Priority))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTodoJSON(todo))
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	todo, err := s.todos.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if todo == nil || todo.FamilyID != fid {
		writeError(w, http.StatusNotFound, fmt.Errorf("todo not found"))
		return
	}

	var req struct {
		Task        string `json:"task"`
		Description string `json:"description"`
		Done        bool   `json:"done"`
		DueDate     string `json:"due_date"`
		AssignedTo  *int64 `json:"assigned_to"`
		Priority    string `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	todo.Task = req.Task
	todo.Description = req.Description
	todo.Done = req.Done
	todo.DueDate = optionalTimestamp(req.DueDate)
	todo.AssignedTo = req.AssignedTo
	todo.Priority = domain.Priority(req.Priority)
	if err := s.todos.Update(todo); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoJSON(todo))
}

func (s *Server) handleTodoDone(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	done := true
	if v := r.URL.Query().Get("done"); v != "" {
		done, _ = strconv.ParseBool(v)
	}
	if err := s.todos.SetDone(id, fid, done); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, func(id, fid int64) error { return s.todos.Delete(id, fid) })
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	comments, err := s.todos.ListComments(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	type commentJSON struct {
		ID         int64  `json:"id"`
		AuthorID   int64  `json:"author_id"`
		AuthorName string `json:"author_name"`
		Text       string `json:"text"`
		CreatedAt  string `json:"created_at"`
	}
	out := make([]commentJSON, 0, len(comments))
	for _, c := range comments {
		out = append(out, commentJSON{
			ID:         c.ID,
			AuthorID:   c.AuthorID,
			AuthorName: c.AuthorName,
			Text:       c.Text,
			CreatedAt:  c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		AuthorID int64  `json:"author_id"`
		Text     string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	comment, err := s.todos.AddComment(id, req.AuthorID, req.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": comment.ID})
}

// === contacts ===

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	contacts, err := s.contacts.List(fid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]contactJSON, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, toContactJSON(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		Birthdate       string `json:"birthdate"`
		ContactFamilyID *int64 `json:"contact_family_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	contact, err := s.contacts.Create(fid, req.FirstName, req.LastName,
		optionalDay(req.Birthdate), req.ContactFamilyID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContactJSON(contact))
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	contact, err := s.contacts.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if contact == nil || contact.FamilyID != fid {
		writeError(w, http.StatusNotFound, fmt.Errorf("contact not found"))
		return
	}

	var req struct {
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		Birthdate       string `json:"birthdate"`
		ContactFamilyID *int64 `json:"contact_family_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Birthdate = optionalDay(req.Birthdate)
	contact.ContactFamilyID = req.ContactFamilyID
	if err := s.contacts.Update(contact); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, toContactJSON(contact))
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, func(id, fid int64) error { return s.contacts.Delete(id, fid) })
}

type contactFamilyJSON struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

func (s *Server) handleListContactFamilies(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cfs, err := s.contacts.ListContactFamilies(fid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]contactFamilyJSON, 0, len(cfs))
	for _, cf := range cfs {
		out = append(out, contactFamilyJSON{ID: cf.ID, Name: cf.Name, Address: cf.Address})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateContactFamily(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cf, err := s.contacts.CreateContactFamily(fid, req.Name, req.Address)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, contactFamilyJSON{ID: cf.ID, Name: cf.Name, Address: cf.Address})
}

// === shopping ===

// handleListUnits serves the unit vocabulary for client-side pickers.
func (s *Server) handleListUnits(w http.ResponseWriter, r *http.Request) {
	units := domain.Units()
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, string(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListShopping(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	items, err := s.shopping.List(fid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]shoppingItemJSON, 0, len(items))
	for _, i := range items {
		out = append(out, toShoppingItemJSON(i))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateShopping(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name      string `json:"name"`
		Quantity  string `json:"quantity"`
		Unit      string `json:"unit"`
		Store     string `json:"store"`
		DealDate  string `json:"deal_date"`
		CreatedBy int64  `json:"created_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := s.shopping.Create(fid, req.Name, req.Quantity, domain.Unit(req.Unit),
		req.Store, optionalDay(req.DealDate), req.CreatedBy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, toShoppingItemJSON(item))
}

func (s *Server) handleUpdateShopping(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := s.shopping.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if item == nil || item.FamilyID != fid {
		writeError(w, http.StatusNotFound, fmt.Errorf("shopping item not found"))
		return
	}

	var req struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
		Store    string `json:"store"`
		DealDate string `json:"deal_date"`
		Checked  bool   `json:"checked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	item.Name = req.Name
	item.Quantity = req.Quantity
	item.Unit = domain.Unit(req.Unit)
	item.Store = req.Store
	item.DealDate = optionalDay(req.DealDate)
	item.Checked = req.Checked
	if err := s.shopping.Update(item); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, toShoppingItemJSON(item))
}

func (s *Server) handleShoppingChecked(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	checked := true
	if v := r.URL.Query().Get("checked"); v != "" {
		checked, _ = strconv.ParseBool(v)
	}
	if err := s.shopping.SetChecked(id, fid, checked); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteShopping(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, func(id, fid int64) error { return s.shopping.Delete(id, fid) })
}

// === recipes ===

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	recipes, err := s.recipes.List(fid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]recipeJSON, 0, len(recipes))
	for _, rec := range recipes {
		out = append(out, toRecipeJSON(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name         string           `json:"name"`
		Instructions string           `json:"instructions"`
		Servings     int              `json:"servings"`
		Ingredients  []ingredientJSON `json:"ingredients"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	recipe, err := s.recipes.Create(fid, req.Name, req.Instructions, req.Servings,
		fromIngredientsJSON(req.Ingredients))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecipeJSON(recipe))
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	recipe, err := s.recipes.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if recipe == nil || recipe.FamilyID != fid {
		writeError(w, http.StatusNotFound, fmt.Errorf("recipe not found"))
		return
	}
	writeJSON(w, http.StatusOK, toRecipeJSON(recipe))
}

func (s *Server) handleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	recipe, err := s.recipes.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if recipe == nil || recipe.FamilyID != fid {
		writeError(w, http.StatusNotFound, fmt.Errorf("recipe not found"))
		return
	}

	var req struct {
		Name         string           `json:"name"`
		Instructions string           `json:"instructions"`
		Servings     int              `json:"servings"`
		Ingredients  []ingredientJSON `json:"ingredients"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	recipe.Name = req.Name
	recipe.Instructions = req.Instructions
	recipe.Servings = req.Servings
	recipe.Ingredients = fromIngredientsJSON(req.Ingredients)
	if err := s.recipes.Update(recipe); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeJSON(recipe))
}

func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, func(id, fid int64) error { return s.recipes.Delete(id, fid) })
}

func (s *Server) handleScaleRecipe(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	servings, err := strconv.Atoi(r.URL.Query().Get("servings"))
	if err != nil || servings <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("servings must be a positive number"))
		return
	}

	scaled, err := s.recipes.Scale(id, fid, servings)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, toIngredientsJSON(scaled))
}

func (s *Server) handleAddToList(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Servings  int   `json:"servings"`
		CreatedBy int64 `json:"created_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	plan, err := s.recipes.AddToShoppingList(id, fid, req.Servings, req.CreatedBy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"inserted": len(plan.Inserts),
		"updated":  len(plan.Updates),
		"summary":  plan.Summary(),
	})
}

// === notes ===

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	notes, err := s.notes.List(fid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]noteJSON, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteJSON(n))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	note, err := s.notes.Create(fid, req.Title, req.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteJSON(note))
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	fid, err := familyID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	note, err := s.notes.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if note == nil || note.FamilyID != fid {
		writeError(w, http.StatusNotFound, fmt.Errorf("note not found"))
		return
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	note.Title = req.Title
	note.Body = req.Body
	if err := s.notes.Update(note); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteJSON(note))
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, func(id, fid int64) error { return s.notes.Delete(id, fid) })
}
