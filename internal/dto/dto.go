package dto

import (
	"github.com/shopspring/decimal"
)

// GenerateEmployeesRequest - запрос на генерацию сотрудников
type GenerateEmployeesRequest struct {
	Count int `json:"count" validate:"required,min=1,max=1000"`
}

// ExportEmployeesRequest - запрос на экспорт сотрудников в Excel
type ExportEmployeesRequest struct {
	Employees         []EmployeeDTO `json:"employees" validate:"required,min=1,dive"`
	DestinationFolder string        `json:"destination_folder" validate:"omitempty,min=1"`
}

// GenerateDatasetRequest - запрос на генерацию и экспорт одним вызовом
type GenerateDatasetRequest struct {
	Count             int    `json:"count" validate:"required,min=1,max=1000"`
	DestinationFolder string `json:"destination_folder" validate:"omitempty,min=1"`
}

// EmployeeDTO - данные одного сотрудника на границе API
type EmployeeDTO struct {
	EmpID      int             `json:"emp_id" validate:"required,min=1"`
	FullName   string          `json:"full_name" validate:"required,min=1,max=200"`
	Department string          `json:"department" validate:"required,min=1"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   string          `json:"hire_date" validate:"required,datetime=2006-01-02"`
}

// EmployeesResponse - ответ со сгенерированными сотрудниками
type EmployeesResponse struct {
	Count     int           `json:"count"`
	Employees []EmployeeDTO `json:"employees"`
}

// ExportResponse - ответ с результатом экспорта
type ExportResponse struct {
	FilePath    string `json:"file_path"`
	RecordCount int    `json:"record_count"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
