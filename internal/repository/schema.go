package repository

import (
	"fmt"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/models"
)

const (
	employeesTable = "employees"
	employeeKey    = "id"
)

type employeeColumn struct {
	name  string
	field func(*models.Employee) *string
}

// employeeColumns maps every mutable Employee field to its column, in statement order.
var employeeColumns = []employeeColumn{
	{name: "first_name", field: func(e *models.Employee) *string { return &e.FirstName }},
	{name: "last_name", field: func(e *models.Employee) *string { return &e.LastName }},
	{name: "location", field: func(e *models.Employee) *string { return &e.Location }},
	{name: "email_address", field: func(e *models.Employee) *string { return &e.Email }},
}

var (
	listEmployeesQuery   = selectEmployeesQuery() + " ORDER BY " + employeeKey
	getEmployeeByIDQuery = selectEmployeesQuery() + " WHERE " + employeeKey + " = $1"
	insertEmployeeQuery  = buildInsertQuery()
	updateEmployeeQuery  = buildUpdateQuery()
	deleteEmployeeQuery  = "DELETE FROM " + employeesTable + " WHERE " + employeeKey + " = $1"
)

func columnNames() []string {
	names := make([]string, 0, len(employeeColumns))
	for _, col := range employeeColumns {
		names = append(names, col.name)
	}
	return names
}

func selectEmployeesQuery() string {
	return fmt.Sprintf("SELECT %s, %s FROM %s", employeeKey, strings.Join(columnNames(), ", "), employeesTable)
}

func buildInsertQuery() string {
	placeholders := make([]string, 0, len(employeeColumns))
	for i := range employeeColumns {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		employeesTable, strings.Join(columnNames(), ", "), strings.Join(placeholders, ", "), employeeKey)
}

// buildUpdateQuery binds the key to $1 and the columns to $2..$n.
func buildUpdateQuery() string {
	assignments := make([]string, 0, len(employeeColumns))
	for i, col := range employeeColumns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col.name, i+2))
	}

	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1", employeesTable, strings.Join(assignments, ", "), employeeKey)
}

// columnValues returns the mutable field values in column order.
func columnValues(employee models.Employee) []any {
	values := make([]any, 0, len(employeeColumns))
	for _, col := range employeeColumns {
		values = append(values, *col.field(&employee))
	}
	return values
}

// scanTargets returns destinations for a row produced by selectEmployeesQuery.
func scanTargets(employee *models.Employee) []any {
	targets := make([]any, 0, len(employeeColumns)+1)
	targets = append(targets, &employee.ID)
	for _, col := range employeeColumns {
		targets = append(targets, col.field(employee))
	}
	return targets
}
