package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/employee-data-generator/internal/domain"
	"github.com/employee-data-generator/internal/service"
)

func TestGenerateCountTooSmall(t *testing.T) {
	gen := service.NewSeededGeneratorService(1)

	_, err := gen.Generate(context.Background(), 0)
	if !errors.Is(err, domain.ErrCountTooSmall) {
		t.Fatalf("expected ErrCountTooSmall, got %v", err)
	}

	_, err = gen.Generate(context.Background(), -5)
	if !errors.Is(err, domain.ErrCountTooSmall) {
		t.Fatalf("expected ErrCountTooSmall for negative count, got %v", err)
	}
}

func TestGenerateCountTooLarge(t *testing.T) {
	gen := service.NewSeededGeneratorService(1)

	_, err := gen.Generate(context.Background(), 1001)
	if !errors.Is(err, domain.ErrCountTooLarge) {
		t.Fatalf("expected ErrCountTooLarge, got %v", err)
	}
}

func TestGenerateSequentialIDs(t *testing.T) {
	gen := service.NewSeededGeneratorService(42)

	employees, err := gen.Generate(context.Background(), 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(employees) != 25 {
		t.Fatalf("expected 25 employees, got %d", len(employees))
	}

	for i, emp := range employees {
		if emp.EmpID != i+1 {
			t.Errorf("employee at index %d has id %d, expected %d", i, emp.EmpID, i+1)
		}
	}
}

func TestGenerateBoundaryCounts(t *testing.T) {
	gen := service.NewSeededGeneratorService(42)

	employees, err := gen.Generate(context.Background(), domain.MinEmployees)
	if err != nil {
		t.Fatalf("unexpected error for count %d: %v", domain.MinEmployees, err)
	}
	if len(employees) != domain.MinEmployees {
		t.Fatalf("expected %d employees, got %d", domain.MinEmployees, len(employees))
	}

	employees, err = gen.Generate(context.Background(), domain.MaxEmployees)
	if err != nil {
		t.Fatalf("unexpected error for count %d: %v", domain.MaxEmployees, err)
	}
	if len(employees) != domain.MaxEmployees {
		t.Fatalf("expected %d employees, got %d", domain.MaxEmployees, len(employees))
	}
}

func TestGenerateFieldRanges(t *testing.T) {
	gen := service.NewSeededGeneratorService(7)

	employees, err := gen.Generate(context.Background(), 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	validDepartments := make(map[string]bool)
	for _, dept := range domain.Departments {
		validDepartments[dept] = true
	}

	now := time.Now().UTC()
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)

	for _, emp := range employees {
		if emp.FullName == "" {
			t.Errorf("employee %d has empty name", emp.EmpID)
		}

		if !validDepartments[emp.Department] {
			t.Errorf("employee %d has unknown department %q", emp.EmpID, emp.Department)
		}

		if emp.Salary.LessThan(domain.MinSalary) || emp.Salary.GreaterThan(domain.MaxSalary) {
			t.Errorf("employee %d has salary %s outside [%s, %s]",
				emp.EmpID, emp.Salary, domain.MinSalary, domain.MaxSalary)
		}

		if !emp.Salary.Equal(emp.Salary.Round(2)) {
			t.Errorf("employee %d has salary %s with more than 2 decimal places", emp.EmpID, emp.Salary)
		}

		if emp.HireDate.Before(domain.HireDateStart) || emp.HireDate.After(endOfToday) {
			t.Errorf("employee %d has hire date %s outside valid range", emp.EmpID, emp.HireDate.Format("2006-01-02"))
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	first, err := service.NewSeededGeneratorService(99).Generate(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := service.NewSeededGeneratorService(99).Generate(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first {
		if first[i].FullName != second[i].FullName ||
			first[i].Department != second[i].Department ||
			!first[i].Salary.Equal(second[i].Salary) ||
			!first[i].HireDate.Equal(second[i].HireDate) {
			t.Errorf("employee %d differs between two runs with the same seed", i+1)
		}
	}
}

func TestGenerateDataVariety(t *testing.T) {
	gen := service.NewSeededGeneratorService(3)

	employees, err := gen.Generate(context.Background(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	departments := make(map[string]bool)
	names := make(map[string]bool)
	for _, emp := range employees {
		departments[emp.Department] = true
		names[emp.FullName] = true
	}

	if len(departments) < 2 {
		t.Errorf("expected multiple departments in a batch of 100, got %d", len(departments))
	}
	if len(names) < 50 {
		t.Errorf("expected variety in generated names, got %d unique out of 100", len(names))
	}
}
