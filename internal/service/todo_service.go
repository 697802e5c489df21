package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

type TodoService struct {
	storage  *storage.Storage
	notifier Notifier
}

func NewTodoService(s *storage.Storage, n Notifier) *TodoService {
	return &TodoService{storage: s, notifier: n}
}

func (s *TodoService) Create(familyID int64, task, description string, dueDate *time.Time, assignedTo *int64, priority domain.Priority) (*domain.Todo, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return nil, fmt.Errorf("todo task cannot be empty")
	}
	if priority == "" {
		priority = domain.PriorityNone
	}

	todo := &domain.Todo{
		FamilyID:    familyID,
		Task:        task,
		Description: description,
		DueDate:     dueDate,
		AssignedTo:  assignedTo,
		Priority:    priority,
	}
	if err := s.storage.CreateTodo(todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	text := "✅ Neues Todo: " + todo.Task + priorityTag(todo.Priority)
	if todo.DueDate != nil {
		text += " (fällig " + todo.DueDate.Format("02.01.2006") + ")"
	}
	alertFamily(s.storage, s.notifier, familyID, text)

	return todo, nil
}

func (s *TodoService) Get(id int64) (*domain.Todo, error) {
	return s.storage.GetTodo(id)
}

func (s *TodoService) List(familyID int64, includeDone bool) ([]*domain.Todo, error) {
	return s.storage.ListTodos(familyID, includeDone)
}

func (s *TodoService) Update(todo *domain.Todo) error {
	existing, err := s.storage.GetTodo(todo.ID)
	if err != nil {
		return fmt.Errorf("get todo: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("todo not found")
	}
	if existing.FamilyID != todo.FamilyID {
		return fmt.Errorf("access denied")
	}
	if err := s.storage.UpdateTodo(todo); err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	return nil
}

func (s *TodoService) SetDone(id, familyID int64, done bool) error {
	todo, err := s.storage.GetTodo(id)
	if err != nil {
		return fmt.Errorf("get todo: %w", err)
	}
	if todo == nil {
		return fmt.Errorf("todo not found")
	}
	if todo.FamilyID != familyID {
		return fmt.Errorf("access denied")
	}
	return s.storage.SetTodoDone(id, done)
}

func (s *TodoService) Delete(id, familyID int64) error {
	todo, err := s.storage.GetTodo(id)
	if err != nil {
		return fmt.Errorf("get todo: %w", err)
	}
	if todo == nil {
		return fmt.Errorf("todo not found")
	}
	if todo.FamilyID != familyID {
		return fmt.Errorf("access denied")
	}
	return s.storage.DeleteTodo(id)
}

func (s *TodoService) AddComment(todoID, authorID int64, text string) (*domain.TodoComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("comment text cannot be empty")
	}
	todo, err := s.storage.GetTodo(todoID)
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}
	if todo == nil {
		return nil, fmt.Errorf("todo not found")
	}

	comment := &domain.TodoComment{TodoID: todoID, AuthorID: authorID, Text: text}
	if err := s.storage.CreateTodoComment(comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *TodoService) ListComments(todoID int64) ([]*domain.TodoComment, error) {
	return s.storage.ListTodoComments(todoID)
}
