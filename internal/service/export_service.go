package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/employee-data-generator/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportService определяет интерфейс экспорта сотрудников в Excel
type ExportService interface {
	Export(ctx context.Context, employees []domain.Employee, destinationFolder string) (string, error)
	BuildSummary(employees []domain.Employee) []domain.DepartmentSummary
}

type exportService struct{}

// NewExportService создаёт новый экземпляр сервиса экспорта
func NewExportService() ExportService {
	return &exportService{}
}

// Export записывает книгу с листами Employees и Summary в файл
// employees.xlsx внутри destinationFolder и возвращает полный путь к файлу.
// Запись идёт во временный файл с последующим переименованием, чтобы при
// сбое не оставить повреждённый employees.xlsx
func (s *exportService) Export(ctx context.Context, employees []domain.Employee, destinationFolder string) (string, error) {
	if len(employees) == 0 {
		return "", domain.ErrEmptyDataset
	}

	if err := s.checkDestination(destinationFolder); err != nil {
		return "", err
	}

	filePath := filepath.Join(destinationFolder, domain.ExportFileName)
	tmpPath := filepath.Join(destinationFolder, fmt.Sprintf(".%s-%s.tmp", domain.ExportFileName, uuid.NewString()))

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", domain.ErrDestinationNotWritable
		}
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	if err := s.writeWorkbook(employees, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	return filePath, nil
}

// BuildSummary вычисляет среднюю зарплату по каждому подразделению,
// присутствующему в выборке; строки отсортированы по имени подразделения
func (s *exportService) BuildSummary(employees []domain.Employee) []domain.DepartmentSummary {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)

	for _, emp := range employees {
		totals[emp.Department] = totals[emp.Department].Add(emp.Salary)
		counts[emp.Department]++
	}

	summaries := make([]domain.DepartmentSummary, 0, len(totals))
	for dept, total := range totals {
		count := counts[dept]
		summaries = append(summaries, domain.DepartmentSummary{
			Department:    dept,
			AvgSalary:     total.Div(decimal.NewFromInt(int64(count))).Round(2),
			EmployeeCount: count,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Department < summaries[j].Department
	})

	return summaries
}

func (s *exportService) checkDestination(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrDestinationNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	if !info.IsDir() {
		return domain.ErrDestinationNotDirectory
	}

	return nil
}

func (s *exportService) writeWorkbook(employees []domain.Employee, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", domain.EmployeesSheetName); err != nil {
		return err
	}
	if err := s.writeEmployeesSheet(f, employees); err != nil {
		return err
	}

	if _, err := f.NewSheet(domain.SummarySheetName); err != nil {
		return err
	}
	if err := s.writeSummarySheet(f, employees); err != nil {
		return err
	}

	return f.Write(w)
}

func (s *exportService) writeEmployeesSheet(f *excelize.File, employees []domain.Employee) error {
	header := []interface{}{"emp_id", "full_name", "department", "salary", "hire_date"}
	if err := f.SetSheetRow(domain.EmployeesSheetName, "A1", &header); err != nil {
		return err
	}

	for i, emp := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []interface{}{
			emp.EmpID,
			emp.FullName,
			emp.Department,
			emp.Salary.InexactFloat64(),
			emp.HireDate.Format("2006-01-02"),
		}
		if err := f.SetSheetRow(domain.EmployeesSheetName, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

func (s *exportService) writeSummarySheet(f *excelize.File, employees []domain.Employee) error {
	header := []interface{}{"department", "avg_salary", "employee_count"}
	if err := f.SetSheetRow(domain.SummarySheetName, "A1", &header); err != nil {
		return err
	}

	row := 2
	for _, summary := range s.BuildSummary(employees) {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}

		values := []interface{}{
			summary.Department,
			summary.AvgSalary.InexactFloat64(),
			summary.EmployeeCount,
		}
		if err := f.SetSheetRow(domain.SummarySheetName, cell, &values); err != nil {
			return err
		}
		row++
	}

	// Строка с меткой времени экспорта
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	stamp := []interface{}{"Export Timestamp", nil, time.Now().Format("2006-01-02 15:04:05")}
	return f.SetSheetRow(domain.SummarySheetName, cell, &stamp)
}
