package orcamento

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
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
	if err := db.AutoMigrate(&Orcamento{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func doPatch(t *testing.T, h http.HandlerFunc, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r := mux.NewRouter()
	r.HandleFunc("/orcamentos/{id}/enviar", h).Methods("PATCH")
	r.HandleFunc("/orcamentos/{id}/aceitar", h).Methods("PATCH")
	r.HandleFunc("/orcamentos/{id}/concluir", h).Methods("PATCH")
	r.HandleFunc("/orcamentos/{id}/cancelar", h).Methods("PATCH")
	r.ServeHTTP(w, req)
	return w
}

func criarViaHandler(t *testing.T, h *Handler) Orcamento {
	t.Helper()
	body := `{"company_name":"Acme Ltda","client_name":"João","project_type":"landing page",` +
		`"description":"site institucional","features":"home, contato","deadline":"6 semanas",` +
		`"budget_value":"R$ 5.000,00","payment_terms":"50% na entrada"}`
	req := httptest.NewRequest(http.MethodPost, "/orcamentos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Criar(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("criar: esperava 201, veio %d body=%s", w.Code, w.Body.String())
	}
	var o Orcamento
	if err := json.Unmarshal(w.Body.Bytes(), &o); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return o
}

func TestCriarEnviarAceitarConcluir(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler(db)

	o := criarViaHandler(t, h)
	if o.Status != StatusCriado {
		t.Fatalf("status inicial = %s", o.Status)
	}

	w := doPatch(t, h.Enviar, fmt.Sprintf("/orcamentos/%d/enviar", o.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("enviar: %d body=%s", w.Code, w.Body.String())
	}

	w = doPatch(t, h.Aceitar, fmt.Sprintf("/orcamentos/%d/aceitar", o.ID),
		`{"observacoes":"fechado","valor_alterado":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("aceitar: %d body=%s", w.Code, w.Body.String())
	}
	var aceito Orcamento
	_ = json.Unmarshal(w.Body.Bytes(), &aceito)
	if aceito.Status != StatusEmAndamento || aceito.FinalValue != "R$ 5.000,00" || aceito.StartedAt == nil {
		t.Fatalf("aceite inesperado: %+v", aceito)
	}

	w = doPatch(t, h.Concluir, fmt.Sprintf("/orcamentos/%d/concluir", o.ID),
		`{"observacoes":"entregue"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("concluir: %d body=%s", w.Code, w.Body.String())
	}
	var entregue Orcamento
	_ = json.Unmarshal(w.Body.Bytes(), &entregue)
	if entregue.Status != StatusEntregue || entregue.DeliveredAt == nil {
		t.Fatalf("entrega inesperada: %+v", entregue)
	}
	if entregue.ExecutionDays == nil || *entregue.ExecutionDays != 0 {
		t.Fatalf("execution_days = %v, esperava 0 para entrega no mesmo dia", entregue.ExecutionDays)
	}
}

func TestConcluirComDataInformada(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler(db)

	o := criarViaHandler(t, h)
	w := doPatch(t, h.Aceitar, fmt.Sprintf("/orcamentos/%d/aceitar", o.ID),
		`{"valor_alterado":true,"valor_final":"R$ 4.500,00"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("aceitar: %d", w.Code)
	}
	var aceito Orcamento
	_ = json.Unmarshal(w.Body.Bytes(), &aceito)
	if !aceito.ValueChanged || aceito.FinalValue != "R$ 4.500,00" {
		t.Fatalf("aceite inesperado: %+v", aceito)
	}

	data := aceito.StartedAt.Add(12 * 24 * time.Hour).Format(time.RFC3339)
	w = doPatch(t, h.Concluir, fmt.Sprintf("/orcamentos/%d/concluir", o.ID),
		fmt.Sprintf(`{"data_conclusao":%q}`, data))
	if w.Code != http.StatusOK {
		t.Fatalf("concluir: %d body=%s", w.Code, w.Body.String())
	}
	var entregue Orcamento
	_ = json.Unmarshal(w.Body.Bytes(), &entregue)
	if entregue.ExecutionDays == nil || *entregue.ExecutionDays != 12 {
		t.Fatalf("execution_days = %v, esperava 12", entregue.ExecutionDays)
	}
}

func TestConcluirComDataAnteriorAoInicio(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler(db)

	o := criarViaHandler(t, h)
	w := doPatch(t, h.Aceitar, fmt.Sprintf("/orcamentos/%d/aceitar", o.ID),
		`{"valor_alterado":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("aceitar: %d", w.Code)
	}
	var aceito Orcamento
	_ = json.Unmarshal(w.Body.Bytes(), &aceito)

	data := aceito.StartedAt.Add(-48 * time.Hour).Format(time.RFC3339)
	w = doPatch(t, h.Concluir, fmt.Sprintf("/orcamentos/%d/concluir", o.ID),
		fmt.Sprintf(`{"data_conclusao":%q}`, data))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("data anterior ao início: esperava 400, veio %d body=%s", w.Code, w.Body.String())
	}

	var salvo Orcamento
	if err := db.First(&salvo, o.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if salvo.Status != StatusEmAndamento || salvo.DeliveredAt != nil || salvo.ExecutionDays != nil {
		t.Fatalf("rejeição não pode persistir entrega: %+v", salvo)
	}
}

func TestTransicaoIlegalRetorna409(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler(db)

	o := criarViaHandler(t, h)
	w := doPatch(t, h.Concluir, fmt.Sprintf("/orcamentos/%d/concluir", o.ID), `{}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("concluir em criado: esperava 409, veio %d", w.Code)
	}

	// estado não mudou no banco
	var salvo Orcamento
	if err := db.First(&salvo, o.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if salvo.Status != StatusCriado {
		t.Fatalf("status = %s, transição ilegal não pode persistir nada", salvo.Status)
	}
}

func TestComandoContraIDInexistente(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler(db)

	w := doPatch(t, h.Enviar, "/orcamentos/999/enviar", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("esperava 404, veio %d", w.Code)
	}
}
