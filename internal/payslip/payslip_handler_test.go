package payslip_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/domain"
	"go-payroll/internal/payslip"
	paysliperrors "go-payroll/internal/payslip/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayslipService struct {
	generateFn     func(ctx context.Context, req payslip.GeneratePayslipsRequest) (payslip.GeneratePayslipsResponse, error)
	getAllFn       func(ctx context.Context) ([]payslip.PayslipResponse, error)
	getByIDFn      func(ctx context.Context, id int64) (payslip.PayslipResponse, error)
	updateStatusFn func(ctx context.Context, id int64, req payslip.UpdateStatusRequest) (payslip.PayslipResponse, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (f *fakePayslipService) Generate(ctx context.Context, req payslip.GeneratePayslipsRequest) (payslip.GeneratePayslipsResponse, error) {
	return f.generateFn(ctx, req)
}

func (f *fakePayslipService) GetAll(ctx context.Context) ([]payslip.PayslipResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakePayslipService) GetByID(ctx context.Context, id int64) (payslip.PayslipResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePayslipService) UpdateStatus(ctx context.Context, id int64, req payslip.UpdateStatusRequest) (payslip.PayslipResponse, error) {
	return f.updateStatusFn(ctx, id, req)
}

func (f *fakePayslipService) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func TestPayslipHandler_Generate(t *testing.T) {
	svc := &fakePayslipService{
		generateFn: func(_ context.Context, req payslip.GeneratePayslipsRequest) (payslip.GeneratePayslipsResponse, error) {
			assert.Equal(t, []int64{1, 999999}, req.EmployeeIDs)
			assert.Equal(t, "Acme Corp", req.CompanyName)
			return payslip.GeneratePayslipsResponse{
				Success: []payslip.PayslipResponse{{ID: 42, EmployeeID: 1, Number: "PS-000001", NetSalary: "50100"}},
				Errors:  []payslip.GenerationError{{EmployeeID: 999999, Error: "Employee not found"}},
			}, nil
		},
	}

	h := payslip.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{
		"employeeIds": [1, 999999],
		"payPeriodStart": "2025-08-01",
		"payPeriodEnd": "2025-08-31",
		"payslipStatus": "DRAFT",
		"companyName": "Acme Corp",
		"companyAddress": "1 Main Street"
	}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	// Partial failure is still 201: callers inspect the errors array.
	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var res payslip.GeneratePayslipsResponse
	assert.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Len(t, res.Success, 1)
	assert.Len(t, res.Errors, 1)
	assert.Equal(t, int64(999999), res.Errors[0].EmployeeID)
}

func TestPayslipHandler_Generate_ValidationError(t *testing.T) {
	h := payslip.NewHandler(&fakePayslipService{}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employeeIds": [], "payPeriodStart": "2025-08-01", "payPeriodEnd": "2025-08-31"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestPayslipHandler_Generate_Overlap(t *testing.T) {
	svc := &fakePayslipService{
		generateFn: func(_ context.Context, _ payslip.GeneratePayslipsRequest) (payslip.GeneratePayslipsResponse, error) {
			return payslip.GeneratePayslipsResponse{}, paysliperrors.OverlappingPeriod([]int64{2})
		},
	}

	h := payslip.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{
		"employeeIds": [1, 2],
		"payPeriodStart": "2025-08-01",
		"payPeriodEnd": "2025-08-31",
		"payslipStatus": "DRAFT",
		"companyName": "Acme Corp",
		"companyAddress": "1 Main Street"
	}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Contains(t, env.Error.Message, "[2]")
}

func TestPayslipHandler_UpdateStatus_InvalidTransition(t *testing.T) {
	svc := &fakePayslipService{
		updateStatusFn: func(_ context.Context, _ int64, _ payslip.UpdateStatusRequest) (payslip.PayslipResponse, error) {
			return payslip.PayslipResponse{}, paysliperrors.ErrInvalidStatusTransition
		},
	}

	h := payslip.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"status": "PAID"}`
	c.Request = httptest.NewRequest(http.MethodPatch, "/payslips/42/status", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "42"}}

	h.UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestPayslipHandler_GetByID(t *testing.T) {
	svc := &fakePayslipService{
		getByIDFn: func(_ context.Context, id int64) (payslip.PayslipResponse, error) {
			assert.Equal(t, int64(42), id)
			return payslip.PayslipResponse{ID: 42, Number: "PS-000042", PayslipStatus: domain.PayslipStatusDraft}, nil
		},
	}

	h := payslip.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payslips/42", nil)
	c.Params = []gin.Param{{Key: "id", Value: "42"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayslipHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &fakePayslipService{
			deleteFn: func(_ context.Context, id int64) error {
				assert.Equal(t, int64(42), id)
				return nil
			},
		}

		h := payslip.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/payslips/42", nil)
		c.Params = []gin.Param{{Key: "id", Value: "42"}}

		h.Delete(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("absent id is 404", func(t *testing.T) {
		svc := &fakePayslipService{
			deleteFn: func(_ context.Context, _ int64) error {
				return paysliperrors.ErrPayslipNotFound
			},
		}

		h := payslip.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/payslips/999999", nil)
		c.Params = []gin.Param{{Key: "id", Value: "999999"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
