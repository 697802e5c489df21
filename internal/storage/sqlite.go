package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"

	_ "github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

func New(dbPath string) (*Storage, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// sqlite allows one writer; a single pooled connection also keeps
	// :memory: databases alive across queries.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	s := &Storage{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS families (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			chat_id INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS members (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			family_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'member',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (family_id) REFERENCES families(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_members_family ON members(family_id)`,
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			family_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT DEFAULT '',
			date DATETIME NOT NULL,
			time_of_day TEXT DEFAULT '',
			remote_uid TEXT DEFAULT '',
			synced_at DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (family_id) REFERENCES families(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_family ON events(family_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_events_remote_uid ON events(remote_uid) WHERE remote_uid != ''`,
		`CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			family_id INTEGER NOT NULL,
			task TEXT NOT NULL,
			description TEXT DEFAULT '',
			done INTEGER DEFAULT 0,
			due_date DATETIME,
			assigned_to INTEGER,
			priority TEXT DEFAULT 'none',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (family_id) REFERENCES families(id),
			FOREIGN KEY (assigned_to) REFERENCES members(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_family ON todos(family_id)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_due ON todos(due_date)`,
		`CREATE TABLE IF NOT EXISTS todo_comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			todo_id INTEGER NOT NULL,
			author_id INTEGER NOT NULL,
			text TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (todo_id) REFERENCES todos(id) ON DELETE CASCADE,
			FOREIGN KEY (author_id) REFERENCES members(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_todo_comments_todo ON todo_comments(todo_id)`,
		`CREATE TABLE IF NOT EXISTS contact_families (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			family_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			address TEXT DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (family_id) REFERENCES families(id)
		)`,
		`CREATE TABLE IF NOT EXISTS contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			family_id INTEGER NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT DEFAULT '',
			birthdate DATE,
			contact_family_id INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (family_id) REFERENCES families(id),
			FOREIGN KEY (contact_family_id) REFERENCES contact_families(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_family ON contacts(family_id)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_birthdate ON contacts(birthdate)`,
		`CREATE TABLE IF NOT EXISTS shopping_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			family_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			quantity TEXT DEFAULT '',
			unit TEXT DEFAULT 'Stück',
			store TEXT DEFAULT '',
			deal_date DATE,
			checked INTEGER DEFAULT 0,
			created_by INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (family_id) REFERENCES families(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_shopping_family ON shopping_items(family_id)`,
		`CREATE INDEX IF NOT EXISTS idx_shopping_deal ON shopping_items(deal_date)`,
		`CREATE TABLE IF NOT EXISTS recipes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			family_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			instructions TEXT DEFAULT '',
			servings INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (family_id) REFERENCES families(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_family ON recipes(family_id)`,
		`CREATE TABLE IF NOT EXISTS recipe_ingredients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			recipe_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			quantity TEXT DEFAULT '',
			unit TEXT DEFAULT 'Stück',
			add_to_shopping INTEGER DEFAULT 1,
			position INTEGER DEFAULT 0,
			FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_recipe ON recipe_ingredients(recipe_id)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			family_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			body TEXT DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (family_id) REFERENCES families(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_family ON notes(family_id)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			// Ignore "duplicate column" errors for ALTER TABLE
			if !strings.Contains(err.Error(), "duplicate column") {
				return fmt.Errorf("exec migration: %w", err)
			}
		}
	}
	return nil
}

// === Families ===

func (s *Storage) CreateFamily(f *domain.Family) error {
	res, err := s.db.Exec(
		`INSERT INTO families (name, chat_id) VALUES (?, ?)`,
		f.Name, f.ChatID,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	f.ID = id
	f.CreatedAt = time.Now()
	return nil
}

func (s *Storage) GetFamily(id int64) (*domain.Family, error) {
	f := &domain.Family{}
	err := s.db.QueryRow(
		`SELECT id, name, chat_id, created_at FROM families WHERE id = ?`,
		id,
	).Scan(&f.ID, &f.Name, &f.ChatID, &f.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return f, err
}

func (s *Storage) ListFamilies() ([]*domain.Family, error) {
	rows, err := s.db.Query(`SELECT id, name, chat_id, created_at FROM families ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var families []*domain.Family
	for rows.Next() {
		f := &domain.Family{}
		if err := rows.Scan(&f.ID, &f.Name, &f.ChatID, &f.CreatedAt); err != nil {
			return nil, err
		}
		families = append(families, f)
	}
	return families, rows.Err()
}

// === Members ===

func (s *Storage) CreateMember(m *domain.Member) error {
	res, err := s.db.Exec(
		`INSERT INTO members (family_id, name, role) VALUES (?, ?, ?)`,
		m.FamilyID, m.Name, m.Role,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	m.ID = id
	m.CreatedAt = time.Now()
	return nil
}

func (s *Storage) GetMember(id int64) (*domain.Member, error) {
	m := &domain.Member{}
	err := s.db.QueryRow(
		`SELECT id, family_id, name, role, created_at FROM members WHERE id = ?`,
		id,
	).Scan(&m.ID, &m.FamilyID, &m.Name, &m.Role, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return m, err
}

func (s *Storage) ListMembers(familyID int64) ([]*domain.Member, error) {
	rows, err := s.db.Query(
		`SELECT id, family_id, name, role, created_at FROM members WHERE family_id = ? ORDER BY id`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		m := &domain.Member{}
		if err := rows.Scan(&m.ID, &m.FamilyID, &m.Name, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// === Events ===

const eventColumns = `id, family_id, title, description, date, time_of_day, COALESCE(remote_uid, ''), synced_at, created_at, updated_at`

func (s *Storage) scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(&e.ID, &e.FamilyID, &e.Title, &e.Description, &e.Date, &e.TimeOfDay,
		&e.RemoteUID, &e.SyncedAt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Storage) CreateEvent(e *domain.Event) error {
	res, err := s.db.Exec(
		`INSERT INTO events (family_id, title, description, date, time_of_day, remote_uid, synced_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.FamilyID, e.Title, e.Description, e.Date, e.TimeOfDay, e.RemoteUID, e.SyncedAt,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	e.ID = id
	e.CreatedAt = time.Now()
	return nil
}

func (s *Storage) GetEvent(id int64) (*domain.Event, error) {
	e, err := s.scanEvent(s.db.QueryRow(
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func (s *Storage) GetEventByRemoteUID(uid string) (*domain.Event, error) {
	if uid == "" {
		return nil, nil
	}
	e, err := s.scanEvent(s.db.QueryRow(
		`SELECT `+eventColumns+` FROM events WHERE remote_uid = ?`, uid,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func (s *Storage) ListEvents(familyID int64) ([]*domain.Event, error) {
	rows, err := s.db.Query(
		`SELECT `+eventColumns+` FROM events WHERE family_id = ? ORDER BY date, time_of_day`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := s.scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListImportedEvents returns events that carry a remote UID.
func (s *Storage) ListImportedEvents(familyID int64) ([]*domain.Event, error) {
	rows, err := s.db.Query(
		`SELECT `+eventColumns+` FROM events WHERE family_id = ? AND remote_uid != '' ORDER BY date`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := s.scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *Storage) UpdateEvent(e *domain.Event) error {
	_, err := s.db.Exec(
		`UPDATE events SET title = ?, description = ?, date = ?, time_of_day = ?, remote_uid = ?, synced_at = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		e.Title, e.Description, e.Date, e.TimeOfDay, e.RemoteUID, e.SyncedAt, e.ID,
	)
	return err
}

func (s *Storage) DeleteEvent(id int64) error {
	_, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	return err
}

// === Todos ===

const todoColumns = `id, family_id, task, description, done, due_date, assigned_to, priority, created_at`

func (s *Storage) scanTodo(row interface{ Scan(...any) error }) (*domain.Todo, error) {
	t := &domain.Todo{}
	err := row.Scan(&t.ID, &t.FamilyID, &t.Task, &t.Description, &t.Done,
		&t.DueDate, &t.AssignedTo, &t.Priority, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Storage) CreateTodo(t *domain.Todo) error {
	if t.Priority == "" {
		t.Priority = domain.PriorityNone
	}
	res, err := s.db.Exec(
		`INSERT INTO todos (family_id, task, description, done, due_date, assigned_to, priority)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.FamilyID, t.Task, t.Description, t.Done, t.DueDate, t.AssignedTo, t.Priority,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	t.ID = id
	t.CreatedAt = time.Now()
	return nil
}

func (s *Storage) GetTodo(id int64) (*domain.Todo, error) {
	t, err := s.scanTodo(s.db.QueryRow(
		`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return t, err
}

func (s *Storage) ListTodos(familyID int64, includeDone bool) ([]*domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE family_id = ?`
	if !includeDone {
		query += ` AND done = 0`
	}
	query += ` ORDER BY
		CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4 END,
		created_at DESC`

	rows, err := s.db.Query(query, familyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []*domain.Todo
	for rows.Next() {
		t, err := s.scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (s *Storage) UpdateTodo(t *domain.Todo) error {
	_, err := s.db.Exec(
		`UPDATE todos SET task = ?, description = ?, done = ?, due_date = ?, assigned_to = ?, priority = ? WHERE id = ?`,
		t.Task, t.Description, t.Done, t.DueDate, t.AssignedTo, t.Priority, t.ID,
	)
	return err
}

func (s *Storage) SetTodoDone(id int64, done bool) error {
	_, err := s.db.Exec(`UPDATE todos SET done = ? WHERE id = ?`, done, id)
	return err
}

func (s *Storage) DeleteTodo(id int64) error {
	_, err := s.db.Exec(`DELETE FROM todos WHERE id = ?`, id)
	return err
}

func (s *Storage) CreateTodoComment(c *domain.TodoComment) error {
	res, err := s.db.Exec(
		`INSERT INTO todo_comments (todo_id, author_id, text) VALUES (?, ?, ?)`,
		c.TodoID, c.AuthorID, c.Text,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	c.ID = id
	c.CreatedAt = time.Now()
	return nil
}

// ListTodoComments returns comments with the author name resolved.
func (s *Storage) ListTodoComments(todoID int64) ([]*domain.TodoComment, error) {
	rows, err := s.db.Query(
		`SELECT c.id, c.todo_id, c.author_id, COALESCE(m.name, ''), c.text, c.created_at
		 FROM todo_comments c LEFT JOIN members m ON m.id = c.author_id
		 WHERE c.todo_id = ? ORDER BY c.created_at`,
		todoID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*domain.TodoComment
	for rows.Next() {
		c := &domain.TodoComment{}
		if err := rows.Scan(&c.ID, &c.TodoID, &c.AuthorID, &c.AuthorName, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// === Contacts ===

const contactColumns = `id, family_id, first_name, last_name, birthdate, contact_family_id, created_at`

func (s *Storage) scanContact(row interface{ Scan(...any) error }) (*domain.Contact, error) {
	c := &domain.Contact{}
	err := row.Scan(&c.ID, &c.FamilyID, &c.FirstName, &c.LastName, &c.Birthdate, &c.ContactFamilyID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Storage) CreateContact(c *domain.Contact) error {
	res, err := s.db.Exec(
		`INSERT INTO contacts (family_id, first_name, last_name, birthdate, contact_family_id)
		 VALUES (?, ?, ?, ?, ?)`,
		c.FamilyID, c.FirstName, c.LastName, c.Birthdate, c.ContactFamilyID,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	c.ID = id
	c.CreatedAt = time.Now()
	return nil
}

func (s *Storage) GetContact(id int64) (*domain.Contact, error) {
	c, err := s.scanContact(s.db.QueryRow(
		`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

func (s *Storage) ListContacts(familyID int64) ([]*domain.Contact, error) {
	rows, err := s.db.Query(
		`SELECT `+contactColumns+` FROM contacts WHERE family_id = ? ORDER BY last_name, first_name`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		c, err := s.scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *Storage) UpdateContact(c *domain.Contact) error {
	_, err := s.db.Exec(
		`UPDATE contacts SET first_name = ?, last_name = ?, birthdate = ?, contact_family_id = ? WHERE id = ?`,
		c.FirstName, c.LastName, c.Birthdate, c.ContactFamilyID, c.ID,
	)
	return err
}

func (s *Storage) DeleteContact(id int64) error {
	_, err := s.db.Exec(`DELETE FROM contacts WHERE id = ?`, id)
	return err
}

func (s *Storage) CreateContactFamily(cf *domain.ContactFamily) error {
	res, err := s.db.Exec(
		`INSERT INTO contact_families (family_id, name, address) VALUES (?, ?, ?)`,
		cf.FamilyID, cf.Name, cf.Address,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	cf.ID = id
	cf.CreatedAt = time.Now()
	return nil
}

func (s *Storage) ListContactFamilies(familyID int64) ([]*domain.ContactFamily, error) {
	rows, err := s.db.Query(
		`SELECT id, family_id, name, address, created_at FROM contact_families WHERE family_id = ? ORDER BY name`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.ContactFamily
	for rows.Next() {
		cf := &domain.ContactFamily{}
		if err := rows.Scan(&cf.ID, &cf.FamilyID, &cf.Name, &cf.Address, &cf.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, cf)
	}
	return out, rows.Err()
}

// === Shopping items ===

const shoppingColumns = `id, family_id, name, quantity, unit, store, deal_date, checked, created_by, created_at`

func (s *Storage) scanShoppingItem(row interface{ Scan(...any) error }) (*domain.ShoppingItem, error) {
	i := &domain.ShoppingItem{}
	err := row.Scan(&i.ID, &i.FamilyID, &i.Name, &i.Quantity, &i.Unit, &i.Store,
		&i.DealDate, &i.Checked, &i.CreatedBy, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Storage) CreateShoppingItem(i *domain.ShoppingItem) error {
	if i.Unit == "" {
		i.Unit = domain.UnitPiece
	}
	res, err := s.db.Exec(
		`INSERT INTO shopping_items (family_id, name, quantity, unit, store, deal_date, checked, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		i.FamilyID, i.Name, i.Quantity, i.Unit, i.Store, i.DealDate, i.Checked, i.CreatedBy,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	i.ID = id
	i.CreatedAt = time.Now()
	return nil
}

func (s *Storage) GetShoppingItem(id int64) (*domain.ShoppingItem, error) {
	i, err := s.scanShoppingItem(s.db.QueryRow(
		`SELECT `+shoppingColumns+` FROM shopping_items WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return i, err
}

func (s *Storage) ListShoppingItems(familyID int64) ([]*domain.ShoppingItem, error) {
	rows, err := s.db.Query(
		`SELECT `+shoppingColumns+` FROM shopping_items WHERE family_id = ? ORDER BY checked, name`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.ShoppingItem
	for rows.Next() {
		i, err := s.scanShoppingItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (s *Storage) UpdateShoppingItem(i *domain.ShoppingItem) error {
	_, err := s.db.Exec(
		`UPDATE shopping_items SET name = ?, quantity = ?, unit = ?, store = ?, deal_date = ?, checked = ? WHERE id = ?`,
		i.Name, i.Quantity, i.Unit, i.Store, i.DealDate, i.Checked, i.ID,
	)
	return err
}

// UpdateShoppingItemQuantity applies one merge-plan update instruction.
func (s *Storage) UpdateShoppingItemQuantity(id int64, quantity string) error {
	_, err := s.db.Exec(`UPDATE shopping_items SET quantity = ? WHERE id = ?`, quantity, id)
	return err
}

func (s *Storage) SetShoppingItemChecked(id int64, checked bool) error {
	_, err := s.db.Exec(`UPDATE shopping_items SET checked = ? WHERE id = ?`, checked, id)
	return err
}

func (s *Storage) DeleteShoppingItem(id int64) error {
	_, err := s.db.Exec(`DELETE FROM shopping_items WHERE id = ?`, id)
	return err
}

// === Recipes ===

func (s *Storage) CreateRecipe(r *domain.Recipe) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO recipes (family_id, name, instructions, servings) VALUES (?, ?, ?, ?)`,
		r.FamilyID, r.Name, r.Instructions, r.Servings,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	r.ID = id

	if err := insertIngredients(tx, r.ID, r.Ingredients); err != nil {
		return err
	}
	for i := range r.Ingredients {
		r.Ingredients[i].RecipeID = r.ID
	}
	r.CreatedAt = time.Now()
	return tx.Commit()
}

func insertIngredients(tx *sql.Tx, recipeID int64, ings []domain.RecipeIngredient) error {
	for i, ing := range ings {
		unit := ing.Unit
		if unit == "" {
			unit = domain.UnitPiece
		}
		if _, err := tx.Exec(
			`INSERT INTO recipe_ingredients (recipe_id, name, quantity, unit, add_to_shopping, position)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			recipeID, ing.Name, ing.Quantity, unit, ing.AddToShopping, i,
		); err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) GetRecipe(id int64) (*domain.Recipe, error) {
	r := &domain.Recipe{}
	err := s.db.QueryRow(
		`SELECT id, family_id, name, instructions, servings, created_at, updated_at FROM recipes WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.FamilyID, &r.Name, &r.Instructions, &r.Servings, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT id, recipe_id, name, quantity, unit, add_to_shopping, position
		 FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ing domain.RecipeIngredient
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &ing.Name, &ing.Quantity, &ing.Unit, &ing.AddToShopping, &ing.Position); err != nil {
			return nil, err
		}
		r.Ingredients = append(r.Ingredients, ing)
	}
	return r, rows.Err()
}

// ListRecipes returns recipes without their ingredient lists.
func (s *Storage) ListRecipes(familyID int64) ([]*domain.Recipe, error) {
	rows, err := s.db.Query(
		`SELECT id, family_id, name, instructions, servings, created_at, updated_at
		 FROM recipes WHERE family_id = ? ORDER BY name`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*domain.Recipe
	for rows.Next() {
		r := &domain.Recipe{}
		if err := rows.Scan(&r.ID, &r.FamilyID, &r.Name, &r.Instructions, &r.Servings, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}

// UpdateRecipe replaces the recipe row and its full ingredient list.
func (s *Storage) UpdateRecipe(r *domain.Recipe) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE recipes SET name = ?, instructions = ?, servings = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		r.Name, r.Instructions, r.Servings, r.ID,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM recipe_ingredients WHERE recipe_id = ?`, r.ID); err != nil {
		return err
	}
	if err := insertIngredients(tx, r.ID, r.Ingredients); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Storage) DeleteRecipe(id int64) error {
	_, err := s.db.Exec(`DELETE FROM recipes WHERE id = ?`, id)
	return err
}

// === Notes ===

func (s *Storage) CreateNote(n *domain.Note) error {
	res, err := s.db.Exec(
		`INSERT INTO notes (family_id, title, body) VALUES (?, ?, ?)`,
		n.FamilyID, n.Title, n.Body,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	n.ID = id
	n.CreatedAt = time.Now()
	return nil
}

func (s *Storage) GetNote(id int64) (*domain.Note, error) {
	n := &domain.Note{}
	err := s.db.QueryRow(
		`SELECT id, family_id, title, body, created_at, updated_at FROM notes WHERE id = ?`,
		id,
	).Scan(&n.ID, &n.FamilyID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return n, err
}

func (s *Storage) ListNotes(familyID int64) ([]*domain.Note, error) {
	rows, err := s.db.Query(
		`SELECT id, family_id, title, body, created_at, updated_at FROM notes WHERE family_id = ? ORDER BY updated_at DESC`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		n := &domain.Note{}
		if err := rows.Scan(&n.ID, &n.FamilyID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *Storage) UpdateNote(n *domain.Note) error {
	_, err := s.db.Exec(
		`UPDATE notes SET title = ?, body = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		n.Title, n.Body, n.ID,
	)
	return err
}

func (s *Storage) DeleteNote(id int64) error {
	_, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	return err
}
