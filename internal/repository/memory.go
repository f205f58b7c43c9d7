package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/UnknownOlympus/hestia/internal/models"
)

// MemoryRepository keeps employees in process memory. Identifiers start at 1 and are never reused.
type MemoryRepository struct {
	mu        sync.RWMutex
	employees map[int]models.Employee
	lastID    int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{employees: make(map[int]models.Employee)}
}

// Ping always succeeds; it lets the memory store stand in for the database in health checks.
func (m *MemoryRepository) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryRepository) ListEmployees(_ context.Context) ([]models.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	employees := make([]models.Employee, 0, len(m.employees))
	for _, employee := range m.employees {
		employees = append(employees, employee)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })

	return employees, nil
}

func (m *MemoryRepository) SaveEmployee(_ context.Context, employee models.Employee) (models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if employee.ID == 0 {
		m.lastID++
		employee.ID = m.lastID
	} else if _, ok := m.employees[employee.ID]; !ok {
		return models.Employee{}, fmt.Errorf("failed to update employee %d: %w", employee.ID, ErrNotFound)
	}

	m.employees[employee.ID] = employee

	return employee, nil
}

func (m *MemoryRepository) GetEmployeeByID(_ context.Context, identifier int) (models.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	employee, ok := m.employees[identifier]
	if !ok {
		return models.Employee{}, fmt.Errorf("failed to get employee %d: %w", identifier, ErrNotFound)
	}

	return employee, nil
}

func (m *MemoryRepository) DeleteEmployee(_ context.Context, identifier int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.employees[identifier]; !ok {
		return fmt.Errorf("failed to delete employee %d: %w", identifier, ErrNotFound)
	}
	delete(m.employees, identifier)

	return nil
}
