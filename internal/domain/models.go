package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Departments - фиксированный набор подразделений для генерации
var Departments = []string{"IT", "HR", "Operations", "Administration", "Finance"}

// Границы количества сотрудников в одной генерации
const (
	MinEmployees = 1
	MaxEmployees = 1000
)

// Границы зарплаты для генерации
var (
	MinSalary = decimal.NewFromInt(25000)
	MaxSalary = decimal.NewFromInt(120000)
)

// HireDateStart - начало диапазона дат найма; конец диапазона - текущая дата
var HireDateStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Константы экспорта в Excel
const (
	ExportFileName     = "employees.xlsx"
	EmployeesSheetName = "Employees"
	SummarySheetName   = "Summary"
)

// Employee представляет синтетического сотрудника
type Employee struct {
	EmpID      int             `json:"emp_id"`
	FullName   string          `json:"full_name"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   time.Time       `json:"hire_date"`
}

// DepartmentSummary - средняя зарплата по подразделению, вычисляется при экспорте
type DepartmentSummary struct {
	Department    string          `json:"department"`
	AvgSalary     decimal.Decimal `json:"avg_salary"`
	EmployeeCount int             `json:"employee_count"`
}
