package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
)

// ErrEmployeeNotFound is returned when the requested employee does not exist.
var ErrEmployeeNotFound = errors.New("employee not found")

type Staff struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, m *metrics.Metrics) *Staff {
	return &Staff{log: log, repo: repo, metrics: m}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// record counts the outcome of an operation and converts store misses into ErrEmployeeNotFound.
func (s *Staff) record(operation string, err error) error {
	switch {
	case err == nil:
		s.metrics.EmployeeOperations.WithLabelValues(operation, metrics.ResultSuccess).Inc()
		return nil
	case errors.Is(err, repository.ErrNotFound):
		s.metrics.EmployeeOperations.WithLabelValues(operation, metrics.ResultNotFound).Inc()
		return fmt.Errorf("%w: %w", ErrEmployeeNotFound, err)
	default:
		s.metrics.EmployeeOperations.WithLabelValues(operation, metrics.ResultFailure).Inc()
		return err
	}
}

// List returns all stored employees.
func (s *Staff) List(ctx context.Context) ([]models.Employee, error) {
	const opn = "Employee.List"
	log := s.initLogger(opn)

	employees, err := s.repo.ListEmployees(ctx)
	if err = s.record("list", err); err != nil {
		log.ErrorContext(ctx, "Failed to list employees", sl.Err(err))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	log.DebugContext(ctx, "Employees listed", "count", len(employees))

	return employees, nil
}

// Create stores a new employee. Any identifier in the payload is discarded.
func (s *Staff) Create(ctx context.Context, payload models.Employee) (models.Employee, error) {
	const opn = "Employee.Create"
	log := s.initLogger(opn)

	payload.ID = 0

	created, err := s.repo.SaveEmployee(ctx, payload)
	if err = s.record("create", err); err != nil {
		log.ErrorContext(ctx, "Failed to create employee", sl.Err(err))
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	log.InfoContext(ctx, "Employee created", "id", created.ID)

	return created, nil
}

// Get returns the employee with the given identifier.
func (s *Staff) Get(ctx context.Context, identifier int) (models.Employee, error) {
	const opn = "Employee.Get"
	log := s.initLogger(opn)

	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err = s.record("get", err); err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			log.DebugContext(ctx, "Employee not found", "id", identifier)
		} else {
			log.ErrorContext(ctx, "Failed to get employee", "id", identifier, sl.Err(err))
		}
		return models.Employee{}, fmt.Errorf("failed to get employee %d: %w", identifier, err)
	}

	log.DebugContext(ctx, "Employee fetched", "id", employee.ID)

	return employee, nil
}

// Update overwrites the first name, last name, location and email of an existing employee.
// The identifier is never changed.
func (s *Staff) Update(ctx context.Context, identifier int, payload models.Employee) (models.Employee, error) {
	const opn = "Employee.Update"
	log := s.initLogger(opn)

	existing, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		err = s.record("update", err)
		return models.Employee{}, fmt.Errorf("failed to find employee %d: %w", identifier, err)
	}

	existing.FirstName = payload.FirstName
	existing.LastName = payload.LastName
	existing.Email = payload.Email
	existing.Location = payload.Location

	updated, err := s.repo.SaveEmployee(ctx, existing)
	if err = s.record("update", err); err != nil {
		log.ErrorContext(ctx, "Failed to update employee", "id", identifier, sl.Err(err))
		return models.Employee{}, fmt.Errorf("failed to update employee %d: %w", identifier, err)
	}

	log.InfoContext(ctx, "Employee updated", "id", updated.ID)

	return updated, nil
}

// Delete removes the employee permanently and returns its last known state.
func (s *Staff) Delete(ctx context.Context, identifier int) (models.Employee, error) {
	const opn = "Employee.Delete"
	log := s.initLogger(opn)

	existing, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		err = s.record("delete", err)
		return models.Employee{}, fmt.Errorf("failed to find employee %d: %w", identifier, err)
	}

	if err = s.record("delete", s.repo.DeleteEmployee(ctx, identifier)); err != nil {
		log.ErrorContext(ctx, "Failed to delete employee", "id", identifier, sl.Err(err))
		return models.Employee{}, fmt.Errorf("failed to delete employee %d: %w", identifier, err)
	}

	log.InfoContext(ctx, "Employee deleted", "id", identifier)

	return existing, nil
}
