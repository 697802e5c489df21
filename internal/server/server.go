// Package server exposes the planner as a JSON HTTP API. Handlers are
// thin: decode, call a service, encode. Requests carry the family id in
// the path; authentication is a deployment concern in front of this
// process.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/agenda"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/service"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

const dateLayout = "2006-01-02"

type Server struct {
	storage  *storage.Storage
	agenda   *service.AgendaService
	events   *service.EventService
	todos    *service.TodoService
	contacts *service.ContactService
	shopping *service.ShoppingService
	recipes  *service.RecipeService
	notes    *service.NoteService
}

func NewServer(
	st *storage.Storage,
	agendaSvc *service.AgendaService,
	eventSvc *service.EventService,
	todoSvc *service.TodoService,
	contactSvc *service.ContactService,
	shoppingSvc *service.ShoppingService,
	recipeSvc *service.RecipeService,
	noteSvc *service.NoteService,
) *Server {
	return &Server{
		storage:  st,
		agenda:   agendaSvc,
		events:   eventSvc,
		todos:    todoSvc,
		contacts: contactSvc,
		shopping: shoppingSvc,
		recipes:  recipeSvc,
		notes:    noteSvc,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/units", s.handleListUnits)

	mux.HandleFunc("GET /api/families", s.handleListFamilies)
	mux.HandleFunc("POST /api/families", s.handleCreateFamily)
	mux.HandleFunc("GET /api/families/{fid}/members", s.handleListMembers)
	mux.HandleFunc("POST /api/families/{fid}/members", s.handleCreateMember)

	mux.HandleFunc("GET /api/families/{fid}/agenda", s.handleAgendaList)
	mux.HandleFunc("GET /api/families/{fid}/agenda/month", s.handleAgendaMonth)
	mux.HandleFunc("GET /api/families/{fid}/agenda/week", s.handleAgendaWeek)
	mux.HandleFunc("GET /api/families/{fid}/agenda/day", s.handleAgendaDay)
	mux.HandleFunc("GET /api/families/{fid}/calendar.ics", s.handleCalendarICS)

	mux.HandleFunc("GET /api/families/{fid}/events", s.handleListEvents)
	mux.HandleFunc("POST /api/families/{fid}/events", s.handleCreateEvent)
	mux.HandleFunc("PUT /api/families/{fid}/events/{id}", s.handleUpdateEvent)
	mux.HandleFunc("DELETE /api/families/{fid}/events/{id}", s.handleDeleteEvent)

	mux.HandleFunc("GET /api/families/{fid}/todos", s.handleListTodos)
	mux.HandleFunc("POST /api/families/{fid}/todos", s.handleCreateTodo)
	mux.HandleFunc("PUT /api/families/{fid}/todos/{id}", s.handleUpdateTodo)
	mux.HandleFunc("POST /api/families/{fid}/todos/{id}/done", s.handleTodoDone)
	mux.HandleFunc("DELETE /api/families/{fid}/todos/{id}", s.handleDeleteTodo)
	mux.HandleFunc("GET /api/families/{fid}/todos/{id}/comments", s.handleListComments)
	mux.HandleFunc("POST /api/families/{fid}/todos/{id}/comments", s.handleAddComment)

	mux.HandleFunc("GET /api/families/{fid}/contacts", s.handleListContacts)
	mux.HandleFunc("POST /api/families/{fid}/contacts", s.handleCreateContact)
	mux.HandleFunc("PUT /api/families/{fid}/contacts/{id}", s.handleUpdateContact)
	mux.HandleFunc("DELETE /api/families/{fid}/contacts/{id}", s.handleDeleteContact)
	mux.HandleFunc("GET /api/families/{fid}/contact-families", s.handleListContactFamilies)
	mux.HandleFunc("POST /api/families/{fid}/contact-families", s.handleCreateContactFamily)

	mux.HandleFunc("GET /api/families/{fid}/shopping", s.handleListShopping)
	mux.HandleFunc("POST /api/families/{fid}/shopping", s.handleCreateShopping)
	mux.HandleFunc("PUT /api/families/{fid}/shopping/{id}", s.handleUpdateShopping)
	mux.HandleFunc("POST /api/families/{fid}/shopping/{id}/checked", s.handleShoppingChecked)
	mux.HandleFunc("DELETE /api/families/{fid}/shopping/{id}", s.handleDeleteShopping)

	mux.HandleFunc("GET /api/families/{fid}/recipes", s.handleListRecipes)
	mux.HandleFunc("POST /api/families/{fid}/recipes", s.handleCreateRecipe)
	mux.HandleFunc("GET /api/families/{fid}/recipes/{id}", s.handleGetRecipe)
	mux.HandleFunc("PUT /api/families/{fid}/recipes/{id}", s.handleUpdateRecipe)
	mux.HandleFunc("DELETE /api/families/{fid}/recipes/{id}", s.handleDeleteRecipe)
	mux.HandleFunc("GET /api/families/{fid}/recipes/{id}/scale", s.handleScaleRecipe)
	mux.HandleFunc("POST /api/families/{fid}/recipes/{id}/add-to-list", s.handleAddToList)

	mux.HandleFunc("GET /api/families/{fid}/notes", s.handleListNotes)
	mux.HandleFunc("POST /api/families/{fid}/notes", s.handleCreateNote)
	mux.HandleFunc("PUT /api/families/{fid}/notes/{id}", s.handleUpdateNote)
	mux.HandleFunc("DELETE /api/families/{fid}/notes/{id}", s.handleDeleteNote)

	return mux
}

// === helpers ===

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

func familyID(r *http.Request) (int64, error) {
	return pathID(r, "fid")
}

// parseDay parses a "YYYY-MM-DD" query value.
func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

func optionalDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := parseDay(s)
	if err != nil {
		return nil
	}
	return &t
}

func optionalTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// permit plain dates for deadlines without a time of day
		if d, derr := parseDay(s); derr == nil {
			return &d
		}
		return nil
	}
	return &t
}

func dayString(t time.Time) string {
	return t.Format(dateLayout)
}

func dayStringPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func timestampPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// === agenda DTOs ===

type agendaItemJSON struct {
	Kind        string `json:"kind"`
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	TimeOfDay   string `json:"time_of_day,omitempty"`
	Description string `json:"description,omitempty"`
	Age         int    `json:"age,omitempty"`
}

func toAgendaItemJSON(it agenda.Item) agendaItemJSON {
	return agendaItemJSON{
		Kind:        string(it.Kind),
		ID:          it.ID,
		Title:       it.Title,
		Date:        dayString(it.Date),
		TimeOfDay:   it.TimeOfDay(),
		Description: it.Description,
		Age:         it.Age(),
	}
}

func toAgendaItemsJSON(items []agenda.Item) []agendaItemJSON {
	out := make([]agendaItemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, toAgendaItemJSON(it))
	}
	return out
}

type dayCellJSON struct {
	Date    string           `json:"date"`
	InMonth bool             `json:"in_month"`
	Items   []agendaItemJSON `json:"items"`
}

func toDayCellsJSON(cells []agenda.DayCell) []dayCellJSON {
	out := make([]dayCellJSON, 0, len(cells))
	for _, c := range cells {
		out = append(out, dayCellJSON{
			Date:    dayString(c.Date),
			InMonth: c.InMonth,
			Items:   toAgendaItemsJSON(c.Items),
		})
	}
	return out
}

// === entity DTOs ===

type eventJSON struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	TimeOfDay   string `json:"time_of_day,omitempty"`
	Imported    bool   `json:"imported,omitempty"`
}

func toEventJSON(e *domain.Event) eventJSON {
	return eventJSON{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        dayString(e.Date),
		TimeOfDay:   e.TimeOfDay,
		Imported:    e.IsImported(),
	}
}

type todoJSON struct {
	ID          int64  `json:"id"`
	Task        string `json:"task"`
	Description string `json:"description,omitempty"`
	Done        bool   `json:"done"`
	DueDate     string `json:"due_date,omitempty"`
	AssignedTo  *int64 `json:"assigned_to,omitempty"`
	Priority    string `json:"priority"`
}

func toTodoJSON(t *domain.Todo) todoJSON {
	return todoJSON{
		ID:          t.ID,
		Task:        t.Task,
		Description: t.Description,
		Done:        t.Done,
		DueDate:     timestampPtr(t.DueDate),
		AssignedTo:  t.AssignedTo,
		Priority:    string(t.Priority),
	}
}

type contactJSON struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name,omitempty"`
	Birthdate       string `json:"birthdate,omitempty"`
	ContactFamilyID *int64 `json:"contact_family_id,omitempty"`
}

func toContactJSON(c *domain.Contact) contactJSON {
	return contactJSON{
		ID:              c.ID,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Birthdate:       dayStringPtr(c.Birthdate),
		ContactFamilyID: c.ContactFamilyID,
	}
}

type shoppingItemJSON struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Store    string `json:"store,omitempty"`
	DealDate string `json:"deal_date,omitempty"`
	Checked  bool   `json:"checked"`
}

func toShoppingItemJSON(i *domain.ShoppingItem) shoppingItemJSON {
	return shoppingItemJSON{
		ID:       i.ID,
		Name:     i.Name,
		Quantity: i.Quantity,
		Unit:     string(i.Unit),
		Store:    i.Store,
		DealDate: dayStringPtr(i.DealDate),
		Checked:  i.Checked,
	}
}

type ingredientJSON struct {
	Name          string `json:"name"`
	Quantity      string `json:"quantity"`
	Unit          string `json:"unit"`
	AddToShopping bool   `json:"add_to_shopping"`
}

func toIngredientsJSON(ings []domain.RecipeIngredient) []ingredientJSON {
	out := make([]ingredientJSON, 0, len(ings))
	for _, ing := range ings {
		out = append(out, ingredientJSON{
			Name:          ing.Name,
			Quantity:      ing.Quantity,
			Unit:          string(ing.Unit),
			AddToShopping: ing.AddToShopping,
		})
	}
	return out
}

func fromIngredientsJSON(ings []ingredientJSON) []domain.RecipeIngredient {
	out := make([]domain.RecipeIngredient, 0, len(ings))
	for i, ing := range ings {
		out = append(out, domain.RecipeIngredient{
			Name:          ing.Name,
			Quantity:      ing.Quantity,
			Unit:          domain.Unit(ing.Unit),
			AddToShopping: ing.AddToShopping,
			Position:      i,
		})
	}
	return out
}

type recipeJSON struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Instructions string           `json:"instructions,omitempty"`
	Servings     int              `json:"servings,omitempty"`
	Ingredients  []ingredientJSON `json:"ingredients,omitempty"`
}

func toRecipeJSON(r *domain.Recipe) recipeJSON {
	return recipeJSON{
		ID:           r.ID,
		Name:         r.Name,
		Instructions: r.Instructions,
		Servings:     r.Servings,
		Ingredients:  toIngredientsJSON(r.Ingredients),
	}
}

type noteJSON struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

func toNoteJSON(n *domain.Note) noteJSON {
	return noteJSON{ID: n.ID, Title: n.Title, Body: n.Body}
}
