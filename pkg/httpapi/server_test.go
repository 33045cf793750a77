package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nikogura/cv-evaluator/pkg/duration"
	"github.com/nikogura/cv-evaluator/pkg/industry"
	"github.com/nikogura/cv-evaluator/pkg/report"
	"github.com/nikogura/cv-evaluator/pkg/requirements"
)

const janeDoe = `{
  "summary": "Jane Doe",
  "experience": [
    {"title": "Team Lead", "duration": "01/2018 to present", "description": "Led customer service team, increased satisfaction by 20%"}
  ],
  "skills": ["Customer Service", "Excel"]
}`

func newTestServer(logger *zap.Logger) (s *Server) {
	gin.SetMode(gin.TestMode)
	parser := &duration.Parser{
		Now:            func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) },
		FallbackMonths: duration.DefaultFallbackMonths,
	}
	s = NewServer(report.NewAssembler(requirements.Default(), parser, logger), logger, "test")
	return s
}

func post(t *testing.T, router http.Handler, path, body string) (rec *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestServer(nil).Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Version)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := newTestServer(nil).Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestEvaluate(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	router := newTestServer(zap.New(core)).Router()

	body := `{"resume_data": ` + janeDoe + `, "requirements": {"min_experience_years": 1, "required_skills": ["Customer Service"]}}`
	rec := post(t, router, "/v1/evaluate", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result report.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.IndividualReports, 1)

	ir := result.IndividualReports[0]
	assert.Equal(t, SingleResumeID, ir.CVID)
	assert.Equal(t, industry.CustomerService, ir.Industry)
	assert.True(t, ir.MeetsRequirements.RequiredSkills)
	assert.Equal(t, "Jane Doe", ir.Report.CandidateInfo.Name)
	assert.Equal(t, 1, result.SummaryReport.TotalCVsEvaluated)

	entries := logs.FilterMessage("evaluated resumes").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["count"])
	assert.NotEmpty(t, entries[0].ContextMap()["run_id"])
}

func TestEvaluateDoesNotChangeServerRequirements(t *testing.T) {
	s := newTestServer(nil)
	router := s.Router()

	body := `{"resume_data": ` + janeDoe + `, "requirements": {"min_experience_years": 30}}`
	rec := post(t, router, "/v1/evaluate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, requirements.Default().MinExperienceYears, s.assembler.Requirements.MinExperienceYears)
}

func TestEvaluateBadRequests(t *testing.T) {
	router := newTestServer(nil).Router()

	tests := []struct {
		name    string
		path    string
		body    string
		message string
	}{
		{
			name:    "missing requirements",
			path:    "/v1/evaluate",
			body:    `{"resume_data": ` + janeDoe + `}`,
			message: "Missing resume_data or requirements",
		},
		{
			name:    "missing resume",
			path:    "/v1/evaluate",
			body:    `{"requirements": {"min_experience_years": 1}}`,
			message: "Missing resume_data or requirements",
		},
		{
			name:    "empty requirements",
			path:    "/v1/evaluate",
			body:    `{"resume_data": ` + janeDoe + `, "requirements": {}}`,
			message: "Missing resume_data or requirements",
		},
		{
			name:    "malformed body",
			path:    "/v1/evaluate",
			body:    `{"resume_data": `,
			message: "Invalid request body",
		},
		{
			name:    "batch missing resumes",
			path:    "/v1/evaluate/batch",
			body:    `{"requirements": {"min_experience_years": 1}}`,
			message: "Missing resumes or requirements",
		},
		{
			name:    "batch resumes not an object",
			path:    "/v1/evaluate/batch",
			body:    `{"resumes": [1, 2], "requirements": {"min_experience_years": 1}}`,
			message: "Invalid resumes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, router, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp.Error)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestEvaluateBatchKeepsOrderAndIsolatesFailures(t *testing.T) {
	router := newTestServer(nil).Router()

	body := `{
  "resumes": {
    "zoe": ` + janeDoe + `,
    "broken": {"skills": "not a list"},
    "adam": {"summary": "Adam", "skills": ["Python"]}
  },
  "requirements": {"min_experience_years": 1}
}`
	rec := post(t, router, "/v1/evaluate/batch", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result report.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.IndividualReports, 3)

	assert.Equal(t, "zoe", result.IndividualReports[0].CVID)
	assert.Equal(t, "broken", result.IndividualReports[1].CVID)
	assert.Equal(t, "adam", result.IndividualReports[2].CVID)

	broken := result.IndividualReports[1]
	assert.NotEmpty(t, broken.Error)
	assert.Equal(t, report.DecisionError, broken.Report.EvaluationSummary.Decision)
	assert.Equal(t, industry.Unknown, broken.Industry)

	assert.Equal(t, 3, result.SummaryReport.TotalCVsEvaluated)
	assert.Equal(t, 1, result.SummaryReport.DecisionDistribution[report.DecisionError])
}

func TestRecoveryReturns500(t *testing.T) {
	s := newTestServer(nil)
	router := s.Router()
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
