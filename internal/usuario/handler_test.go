package usuario

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&Usuario{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCriarELogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	db := setupTestDB(t)
	h := NewHandler(db)

	body := `{"name":"Dono","email":"dono@blackbox.dev","senha":"s3nh4-forte","is_admin":true}`
	req := httptest.NewRequest(http.MethodPost, "/usuarios", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Criar(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("criar: %d body=%s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "s3nh4-forte") {
		t.Fatal("resposta de criação vazou a senha")
	}

	req = httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"dono@blackbox.dev","senha":"s3nh4-forte"}`))
	w = httptest.NewRecorder()
	h.Login(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Token   string  `json:"token"`
		Usuario Usuario `json:"usuario"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" || !resp.Usuario.IsAdmin {
		t.Fatalf("resposta de login inesperada: %+v", resp)
	}
}

func TestLoginComSenhaErrada(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	db := setupTestDB(t)
	h := NewHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/usuarios",
		strings.NewReader(`{"email":"dono@blackbox.dev","senha":"certa"}`))
	w := httptest.NewRecorder()
	h.Criar(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("criar: %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"dono@blackbox.dev","senha":"errada"}`))
	w = httptest.NewRecorder()
	h.Login(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("esperava 401, veio %d", w.Code)
	}
}
