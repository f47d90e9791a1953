package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/response"
	"furniture-admin-api/internal/search"
)

type noteRequest struct {
	Title string `json:"title" binding:"required"`
}

type noteResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// fakeNoteService lets each test script the service behavior
type fakeNoteService struct {
	createFn func(ctx context.Context, actor string, req noteRequest) (noteResponse, error)
	getFn    func(ctx context.Context, id uint) (noteResponse, error)
	searchFn func(ctx context.Context, req *search.Request, page dto.PageRequest) (dto.Page[noteResponse], error)
	importFn func(ctx context.Context, actor string, data []byte) ([]byte, error)
}

func (f *fakeNoteService) Create(ctx context.Context, actor string, req noteRequest) (noteResponse, error) {
	return f.createFn(ctx, actor, req)
}

func (f *fakeNoteService) Update(ctx context.Context, actor string, id uint, req noteRequest) (noteResponse, error) {
	return noteResponse{ID: id, Title: req.Title}, nil
}

func (f *fakeNoteService) GetByID(ctx context.Context, id uint) (noteResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakeNoteService) GetByUUID(ctx context.Context, uuid string) (noteResponse, error) {
	return noteResponse{Title: uuid}, nil
}

func (f *fakeNoteService) GetAll(ctx context.Context) ([]noteResponse, error) {
	return []noteResponse{}, nil
}

func (f *fakeNoteService) GetAllPaged(ctx context.Context, page dto.PageRequest) (dto.Page[noteResponse], error) {
	return dto.Page[noteResponse]{Page: page.Page, Size: page.Size}, nil
}

func (f *fakeNoteService) DeleteByID(ctx context.Context, actor string, id uint) error {
	return nil
}

func (f *fakeNoteService) DeleteByUUID(ctx context.Context, actor string, uuid string) error {
	return nil
}

func (f *fakeNoteService) Search(ctx context.Context, req *search.Request, page dto.PageRequest) (dto.Page[noteResponse], error) {
	return f.searchFn(ctx, req, page)
}

func (f *fakeNoteService) Import(ctx context.Context, actor string, data []byte) ([]byte, error) {
	return f.importFn(ctx, actor, data)
}

func (f *fakeNoteService) Export(ctx context.Context, req *search.Request) ([]byte, error) {
	return []byte("workbook-bytes"), nil
}

func (f *fakeNoteService) GenerateTemplate() ([]byte, error) {
	return []byte("template-bytes"), nil
}

func setupRouter(svc CrudService[noteRequest, noteResponse]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBaseHandler(svc, "note", nil, zap.NewNop())
	h.RegisterRoutes(r.Group("/api/notes"))
	return r
}

func TestBaseHandler_Create(t *testing.T) {
	svc := &fakeNoteService{
		createFn: func(ctx context.Context, actor string, req noteRequest) (noteResponse, error) {
			if actor != "system" {
				t.Errorf("actor = %q, want system outside auth", actor)
			}
			return noteResponse{ID: 7, Title: req.Title}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notes",
		strings.NewReader(`{"title":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var body response.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	result := body.Result.(map[string]any)
	if result["id"].(float64) != 7 || result["title"] != "hello" {
		t.Errorf("result = %v", result)
	}
}

func TestBaseHandler_CreateValidatesBody(t *testing.T) {
	r := setupRouter(&fakeNoteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBaseHandler_NotFoundMapsTo404(t *testing.T) {
	svc := &fakeNoteService{
		getFn: func(ctx context.Context, id uint) (noteResponse, error) {
			return noteResponse{}, response.NewNotFound("note", id)
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notes/42", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body response.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Error.Code != response.ErrCodeNotFound {
		t.Errorf("code = %q, want NOT_FOUND", body.Error.Code)
	}
}

func TestBaseHandler_ConflictMapsTo409(t *testing.T) {
	svc := &fakeNoteService{
		getFn: func(ctx context.Context, id uint) (noteResponse, error) {
			return noteResponse{}, response.NewConflict("note", nil)
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notes/42", nil))

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestBaseHandler_BadIDIs400(t *testing.T) {
	r := setupRouter(&fakeNoteService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notes/not-a-number", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBaseHandler_SearchPassesCriteriaAndPaging(t *testing.T) {
	svc := &fakeNoteService{
		searchFn: func(ctx context.Context, req *search.Request, page dto.PageRequest) (dto.Page[noteResponse], error) {
			if len(req.Criteria) != 1 || req.Criteria[0].Property != "title" {
				t.Errorf("criteria = %+v", req.Criteria)
			}
			if !req.IncludeDeleted {
				t.Error("includeDeleted not passed through")
			}
			if page.Page != 2 || page.Size != 5 {
				t.Errorf("page = %+v", page)
			}
			return dto.Page[noteResponse]{TotalCount: 0, Page: page.Page, Size: page.Size}, nil
		},
	}
	r := setupRouter(svc)

	body := `{
		"criteria": [{"property":"title","operator":"LIKE","value":"x","type":"STRING"}],
		"includeDeleted": true,
		"page": 2,
		"size": 5
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notes/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestBaseHandler_ImportRequiresFile(t *testing.T) {
	r := setupRouter(&fakeNoteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notes/import", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBaseHandler_ImportReturnsAnnotatedWorkbook(t *testing.T) {
	svc := &fakeNoteService{
		importFn: func(ctx context.Context, actor string, data []byte) ([]byte, error) {
			if string(data) != "uploaded-bytes" {
				t.Errorf("uploaded = %q", data)
			}
			return []byte("annotated-bytes"), nil
		},
	}
	r := setupRouter(svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "upload.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("uploaded-bytes"))
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notes/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "annotated-bytes" {
		t.Errorf("body = %q", w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "note-import-result.xlsx") {
		t.Errorf("content disposition = %q", cd)
	}
}

func TestBaseHandler_TemplateDownload(t *testing.T) {
	r := setupRouter(&fakeNoteService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notes/template", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "template-bytes" {
		t.Errorf("body = %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %q", ct)
	}
}

func TestBaseHandler_ExportWithoutBody(t *testing.T) {
	r := setupRouter(&fakeNoteService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/notes/export", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "workbook-bytes" {
		t.Errorf("body = %q", w.Body.String())
	}
}
