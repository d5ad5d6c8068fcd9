package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/biblioteca/pkg/httpx"
	pkgvalidator "github.com/ghuser/biblioteca/pkg/validator"
)

type sampleStruct struct {
	Titulo string   `validate:"notblank,max=10"`
	Ano    int      `validate:"gte=1000"`
	Precio *float64 `validate:"omitempty,gte=0"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{Titulo: "Dune", Ano: 1965}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_blankTitle(t *testing.T) {
	for _, titulo := range []string{"", "   ", "\t\n"} {
		s := sampleStruct{Titulo: titulo, Ano: 2000}
		err := pkgvalidator.Validate(&s)
		if err == nil {
			t.Fatalf("expected validation error for %q", titulo)
		}
		if m := pkgvalidator.FormatValidationErrors(err); m["Titulo"] != "This field is required" {
			t.Errorf("unexpected Titulo message for %q: %q", titulo, m["Titulo"])
		}
	}
}

func TestFormatValidationErrors_gte(t *testing.T) {
	s := sampleStruct{Titulo: "ok", Ano: 999}
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&s))
	if m["Ano"] != "Must be greater than or equal to 1000" {
		t.Errorf("unexpected Ano message: %q", m["Ano"])
	}
}

func TestFormatValidationErrors_negativePointer(t *testing.T) {
	p := -1.0
	s := sampleStruct{Titulo: "ok", Ano: 2000, Precio: &p}
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&s))
	if m["Precio"] != "Must be greater than or equal to 0" {
		t.Errorf("unexpected Precio message: %q", m["Precio"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{Titulo: "12345678901", Ano: 2000} // 11 chars > max=10
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&s))
	if m["Titulo"] != "Maximum length is 10" {
		t.Errorf("unexpected Titulo message: %q", m["Titulo"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type libroReq struct {
	Titulo         string `json:"titulo"         validate:"notblank,max=200"`
	AnoPublicacion int    `json:"anoPublicacion" validate:"required,gte=1000"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"titulo":"Clean Code","anoPublicacion":2008}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[libroReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Titulo != "Clean Code" {
		t.Errorf("unexpected Titulo: %q", req.Titulo)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[libroReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"titulo":"Clean Code"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[libroReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing anoPublicacion")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "anoPublicacion") {
		t.Errorf("expected field name in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	body := `{"titulo":"` + strings.Repeat("x", 200) + `","anoPublicacion":2008}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	var req *libroReq
	var ok bool
	httpx.RequestBodyLimit(64)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok = pkgvalidator.ValidateRequest[libroReq](w, r)
	})).ServeHTTP(w, r)

	if ok || req != nil {
		t.Fatal("expected ok=false for oversized body")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}
