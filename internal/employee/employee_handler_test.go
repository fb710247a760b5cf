package employee_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-payroll/internal/employee"
	employeeerrors "hr-payroll/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn          func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn          func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByEmployeeIDFn func(ctx context.Context, employeeID int64) (employee.EmployeeResponse, error)
	UpdateFn          func(ctx context.Context, employeeID int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn          func(ctx context.Context, employeeID int64) error
	CountFn           func(ctx context.Context) (int64, error)
	TotalSalaryFn     func(ctx context.Context) (float64, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByEmployeeID(ctx context.Context, employeeID int64) (employee.EmployeeResponse, error) {
	return f.GetByEmployeeIDFn(ctx, employeeID)
}
func (f *fakeEmployeeService) Update(ctx context.Context, employeeID int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, employeeID, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, employeeID int64) error {
	return f.DeleteFn(ctx, employeeID)
}
func (f *fakeEmployeeService) Count(ctx context.Context) (int64, error) {
	return f.CountFn(ctx)
}
func (f *fakeEmployeeService) TotalSalary(ctx context.Context) (float64, error) {
	return f.TotalSalaryFn(ctx)
}

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	employee.RegisterRoutes(r.Group(""), employee.NewHandler(svc))
	return r
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Asha Verma", req.Name)
				return employee.EmployeeResponse{
					EmployeeID:    1,
					Name:          req.Name,
					Email:         req.Email,
					DateOfJoining: req.DateOfJoining,
				}, nil
			},
		}

		r := setupRouter(svc)
		body := `{"name":"Asha Verma","email":"asha@company.com","categories":"Engineering","salary":52000,"date_of_joining":"2024-03-15","designation":"Developer"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"employeeId":1`)
		assert.Contains(t, w.Body.String(), "Asha Verma")
	})

	t.Run("missing fields", func(t *testing.T) {
		r := setupRouter(&fakeEmployeeService{})
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("db error")
			},
		}

		r := setupRouter(svc)
		body := `{"name":"Asha","email":"asha@company.com","categories":"Engineering","salary":52000,"date_of_joining":"2024-03-15","designation":"Developer"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "An error occurred while processing your request.")
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByEmployeeIDFn: func(ctx context.Context, employeeID int64) (employee.EmployeeResponse, error) {
				assert.Equal(t, int64(7), employeeID)
				return employee.EmployeeResponse{EmployeeID: 7, Name: "Asha"}, nil
			},
		}

		r := setupRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/employees/7", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employeeId":7`)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		r := setupRouter(&fakeEmployeeService{})
		req := httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid employee ID")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByEmployeeIDFn: func(ctx context.Context, employeeID int64) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		r := setupRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/employees/99", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee not found")
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, employeeID int64) error {
				assert.Equal(t, int64(7), employeeID)
				return nil
			},
		}

		r := setupRouter(svc)
		req := httptest.NewRequest(http.MethodDelete, "/employees/7", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, employeeID int64) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}

		r := setupRouter(svc)
		req := httptest.NewRequest(http.MethodDelete, "/employees/99", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Aggregates(t *testing.T) {
	t.Run("total employees", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CountFn: func(ctx context.Context) (int64, error) { return 12, nil },
		}

		r := setupRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/total-employees", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"total":12}`, w.Body.String())
	})

	t.Run("total salary spent", func(t *testing.T) {
		svc := &fakeEmployeeService{
			TotalSalaryFn: func(ctx context.Context) (float64, error) { return 104000, nil },
		}

		r := setupRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/total-salary-spent", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"totalSalarySpent":104000}`, w.Body.String())
	})
}
