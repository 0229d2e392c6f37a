package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/employee-data-generator/internal/domain"
	"github.com/employee-data-generator/internal/dto"
	"github.com/employee-data-generator/internal/service"
	"github.com/go-playground/validator/v10"
)

type EmployeeHandler struct {
	genService       service.GeneratorService
	exportService    service.ExportService
	defaultExportDir string
	validator        *validator.Validate
	logger           *slog.Logger
}

func NewEmployeeHandler(
	genService service.GeneratorService,
	exportService service.ExportService,
	defaultExportDir string,
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		genService:       genService,
		exportService:    exportService,
		defaultExportDir: defaultExportDir,
		validator:        validator.New(),
		logger:           logger,
	}
}

func (h *EmployeeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateEmployeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	employees, err := h.genService.Generate(r.Context(), req.Count)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toEmployeesResponse(employees))
}

func (h *EmployeeHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req dto.ExportEmployeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	employees, err := h.toEmployees(req.Employees)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee data", err.Error())
		return
	}

	folder, ok := h.resolveFolder(req.DestinationFolder)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "destination_folder is required", "")
		return
	}

	filePath, err := h.exportService.Export(r.Context(), employees, folder)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.ExportResponse{
		FilePath:    filePath,
		RecordCount: len(employees),
	})
}

// GenerateDataset генерирует сотрудников и сразу экспортирует их в Excel
func (h *EmployeeHandler) GenerateDataset(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateDatasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	folder, ok := h.resolveFolder(req.DestinationFolder)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "destination_folder is required", "")
		return
	}

	employees, err := h.genService.Generate(r.Context(), req.Count)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	filePath, err := h.exportService.Export(r.Context(), employees, folder)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.ExportResponse{
		FilePath:    filePath,
		RecordCount: len(employees),
	})
}

// resolveFolder возвращает папку из запроса либо папку по умолчанию из конфигурации
func (h *EmployeeHandler) resolveFolder(requested string) (string, bool) {
	if requested != "" {
		return requested, true
	}
	if h.defaultExportDir != "" {
		return h.defaultExportDir, true
	}
	return "", false
}

func (h *EmployeeHandler) toEmployeesResponse(employees []domain.Employee) dto.EmployeesResponse {
	resp := dto.EmployeesResponse{
		Count:     len(employees),
		Employees: make([]dto.EmployeeDTO, len(employees)),
	}

	for i, emp := range employees {
		resp.Employees[i] = dto.EmployeeDTO{
			EmpID:      emp.EmpID,
			FullName:   emp.FullName,
			Department: emp.Department,
			Salary:     emp.Salary,
			HireDate:   emp.HireDate.Format("2006-01-02"),
		}
	}

	return resp
}

func (h *EmployeeHandler) toEmployees(dtos []dto.EmployeeDTO) ([]domain.Employee, error) {
	employees := make([]domain.Employee, len(dtos))

	for i, d := range dtos {
		hireDate, err := time.Parse("2006-01-02", d.HireDate)
		if err != nil {
			return nil, err
		}

		employees[i] = domain.Employee{
			EmpID:      d.EmpID,
			FullName:   d.FullName,
			Department: d.Department,
			Salary:     d.Salary,
			HireDate:   hireDate,
		}
	}

	return employees, nil
}

func (h *EmployeeHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCountTooSmall):
		h.respondError(w, http.StatusBadRequest, "employee count must be at least 1", "")
	case errors.Is(err, domain.ErrCountTooLarge):
		h.respondError(w, http.StatusBadRequest, "employee count must not exceed 1000", "")
	case errors.Is(err, domain.ErrEmptyDataset):
		h.respondError(w, http.StatusBadRequest, "no employee data to export", "")
	case errors.Is(err, domain.ErrDestinationNotFound):
		h.respondError(w, http.StatusBadRequest, "destination folder does not exist", "")
	case errors.Is(err, domain.ErrDestinationNotDirectory):
		h.respondError(w, http.StatusBadRequest, "destination path is not a directory", "")
	case errors.Is(err, domain.ErrDestinationNotWritable):
		h.respondError(w, http.StatusBadRequest, "destination folder is not writable", "")
	case errors.Is(err, domain.ErrExportFailed):
		h.logger.Error("export failed", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "export failed", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *EmployeeHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *EmployeeHandler) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
