package empresa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blackboxdigital/api-portal/internal/atualizacao"
	"github.com/blackboxdigital/api-portal/internal/auth"
	"github.com/blackboxdigital/api-portal/internal/documento"
	"github.com/blackboxdigital/api-portal/internal/marco"
	"github.com/blackboxdigital/api-portal/internal/usuario"
)

func TestCriarComAcessoDeCliente(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler(db)

	body := `{"name":"Acme Ltda","cnpj":"12.345.678/0001-90","client_email":"cliente@acme.com","client_name":"Maria"}`
	req := httptest.NewRequest(http.MethodPost, "/empresas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Criar(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("criar: %d body=%s", w.Code, w.Body.String())
	}

	var resp EmpresaCriadaDTO
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Empresa.PhasePresentation != FasePendente {
		t.Fatalf("fases deveriam nascer pendentes: %+v", resp.Empresa)
	}
	if resp.ClientEmail != "cliente@acme.com" || len(resp.SenhaInicial) != 12 {
		t.Fatalf("credencial inicial inesperada: %+v", resp)
	}

	// o acesso de cliente ficou atrelado ao tenant
	var u usuario.Usuario
	if err := db.Where("email = ?", "cliente@acme.com").First(&u).Error; err != nil {
		t.Fatalf("usuário cliente: %v", err)
	}
	if u.TenantID == nil || *u.TenantID != resp.Empresa.ID || u.IsAdmin {
		t.Fatalf("usuário cliente inesperado: %+v", u)
	}
}

// cliente só enxerga o que está marcado como visível
func TestVisaoPortalFiltraInvisiveis(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler(db)

	e := Empresa{Name: "Acme", Status: "active",
		PhasePresentation: FaseCompleta, PhaseBudget: FaseCompleta, PhaseContract: FaseCompleta}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	seeds := []interface{}{
		&marco.Marco{TenantID: e.ID, Title: "Kickoff", Status: marco.StatusCompleto},
		&documento.Documento{TenantID: e.ID, Title: "Proposta", URL: "https://x/a", VisibleToClient: true},
		&documento.Documento{TenantID: e.ID, Title: "Interno", URL: "https://x/b", VisibleToClient: false},
		&atualizacao.Atualizacao{TenantID: e.ID, Title: "Semana 1", Body: "andamento", VisibleToClient: true},
		&atualizacao.Atualizacao{TenantID: e.ID, Title: "Nota interna", Body: "não publicar", VisibleToClient: false},
	}
	for _, s := range seeds {
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/portal", nil)
	ctx := context.WithValue(req.Context(), auth.CtxUserID, uint(7))
	ctx = context.WithValue(ctx, auth.CtxIsAdmin, false)
	ctx = context.WithValue(ctx, auth.CtxEmpresaID, e.ID)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()
	h.VisaoPortal(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("portal: %d body=%s", w.Code, w.Body.String())
	}

	var dto PortalDTO
	if err := json.Unmarshal(w.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !dto.FasesCompletas {
		t.Fatal("fases_completas deveria ser true")
	}
	if len(dto.Documentos) != 1 || dto.Documentos[0].Title != "Proposta" {
		t.Fatalf("documentos visíveis inesperados: %+v", dto.Documentos)
	}
	if len(dto.Atualizacoes) != 1 || dto.Atualizacoes[0].Title != "Semana 1" {
		t.Fatalf("atualizações visíveis inesperadas: %+v", dto.Atualizacoes)
	}
	if len(dto.Marcos) != 1 {
		t.Fatalf("marcos inesperados: %+v", dto.Marcos)
	}
}

// sem tenant no contexto não há dashboard
func TestVisaoPortalSemTenant(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler(db)

	req := httptest.NewRequest(http.MethodGet, "/portal", nil)
	ctx := context.WithValue(req.Context(), auth.CtxUserID, uint(7))
	ctx = context.WithValue(ctx, auth.CtxIsAdmin, false)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()
	h.VisaoPortal(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("esperava 403, veio %d", w.Code)
	}
}
