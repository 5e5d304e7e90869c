package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"toolhub/config"
	"toolhub/di"
	"toolhub/domain"
	"toolhub/usecase/import_tools_usecase"
	"toolhub/utils/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeImportGateway is an in-memory tool store keyed by company name.
type fakeImportGateway struct {
	tools    map[string]*domain.Tool
	failName string
}

func newFakeImportGateway() *fakeImportGateway {
	return &fakeImportGateway{tools: map[string]*domain.Tool{}}
}

func (f *fakeImportGateway) FindToolByName(ctx context.Context, companyName string) (*domain.Tool, error) {
	if tool, ok := f.tools[companyName]; ok {
		return tool, nil
	}
	return nil, domain.ErrToolNotFound
}

func (f *fakeImportGateway) InsertTool(ctx context.Context, record domain.ToolRecord) error {
	if record.CompanyName == f.failName {
		return assert.AnError
	}
	f.tools[record.CompanyName] = &domain.Tool{
		ID:          uuid.New(),
		CompanyName: record.CompanyName,
		PrimaryTask: record.PrimaryTask,
	}
	return nil
}

func (f *fakeImportGateway) UpdateToolByName(ctx context.Context, record domain.ToolRecord) error {
	if record.CompanyName == f.failName {
		return assert.AnError
	}
	f.tools[record.CompanyName].PrimaryTask = record.PrimaryTask
	return nil
}

func importTestContainer(gateway *fakeImportGateway) *di.ApplicationComponents {
	return &di.ApplicationComponents{
		ImportToolsUsecase: import_tools_usecase.NewImportToolsUsecase(gateway, 0),
		Metrics:            metrics.NewMetrics(),
	}
}

func importTestConfig() *config.Config {
	return &config.Config{
		Import: config.ImportConfig{MaxUploadBytes: 1 << 20, MaxRows: 1000},
	}
}

func multipartCSVRequest(t *testing.T, field, csvBody string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, "tools.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvBody))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/tools/import", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestHandleImportTools_CreatesAndUpdates(t *testing.T) {
	gateway := newFakeImportGateway()
	gateway.tools["Existing Tool"] = &domain.Tool{ID: uuid.New(), CompanyName: "Existing Tool"}

	container := importTestContainer(gateway)

	csvBody := "company_name,primary_task,applicable_tasks\n" +
		"New Tool,chatbots,\"writing, research\"\n" +
		"Existing Tool,image generation,\n"

	e := echo.New()
	req := multipartCSVRequest(t, "csv", csvBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handleImportTools(container, importTestConfig())(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ImportSuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Processed 2 tools. Created: 1, Updated: 1, Errors: 0", resp.Message)
	assert.Equal(t, 1, resp.Results.Created)
	assert.Equal(t, 1, resp.Results.Updated)
	assert.Empty(t, resp.Results.Errors)

	assert.Equal(t, "image generation", gateway.tools["Existing Tool"].PrimaryTask)
}

func TestHandleImportTools_PartialFailure(t *testing.T) {
	gateway := newFakeImportGateway()
	gateway.failName = "Bad Tool"

	container := importTestContainer(gateway)

	csvBody := "company_name\nGood Tool\nBad Tool\n"

	e := echo.New()
	req := multipartCSVRequest(t, "csv", csvBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handleImportTools(container, importTestConfig())(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ImportSuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Results.Created)
	require.Len(t, resp.Results.Errors, 1)
	assert.Equal(t, "Bad Tool", resp.Results.Errors[0].CompanyName)
}

func TestHandleImportTools_MissingFile(t *testing.T) {
	container := importTestContainer(newFakeImportGateway())

	e := echo.New()
	req := multipartCSVRequest(t, "document", "company_name\nTool\n")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handleImportTools(container, importTestConfig())(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ImportFailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "No CSV file provided", resp.Error)
}

func TestHandleImportTools_EmptyFile(t *testing.T) {
	container := importTestContainer(newFakeImportGateway())

	e := echo.New()
	req := multipartCSVRequest(t, "csv", "")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handleImportTools(container, importTestConfig())(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ImportFailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestHandleImportTemplate(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/tools/import/template", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handleImportTemplate()(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], "company_name,short_description"))
	assert.Contains(t, lines[0], "q3,a3")
}
