package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/employee-data-generator/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	empHandler *EmployeeHandler
}

// NewRouter создаёт новый роутер
func NewRouter(empHandler *EmployeeHandler, logger *slog.Logger) *Router {
	return &Router{
		mux:        http.NewServeMux(),
		logger:     logger,
		empHandler: empHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Регистрируем обработчики
	r.mux.HandleFunc("/employees/", r.employeesRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// employeesRouter обрабатывает все запросы к /employees/
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/employees")
	path = strings.Trim(path, "/")

	if req.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	switch path {
	case "generate":
		// POST /employees/generate - генерация выборки
		r.empHandler.Generate(w, req)
	case "export":
		// POST /employees/export - экспорт переданной выборки в Excel
		r.empHandler.Export(w, req)
	case "dataset":
		// POST /employees/dataset - генерация и экспорт одним вызовом
		r.empHandler.GenerateDataset(w, req)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}
