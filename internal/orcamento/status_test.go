package orcamento

import (
	"errors"
	"testing"
	"time"
)

func novaProposta() *Orcamento {
	return &Orcamento{
		CompanyName: "Acme Ltda",
		ClientName:  "João",
		BudgetValue: "R$ 5.000,00",
		Status:      StatusCriado,
	}
}

func TestFluxoCompleto(t *testing.T) {
	o := novaProposta()
	agora := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	if err := o.MarcarEnviado(); err != nil {
		t.Fatalf("enviar: %v", err)
	}
	if o.Status != StatusEnviado {
		t.Fatalf("status = %s, esperava enviado", o.Status)
	}

	if err := o.Aceitar(agora, "fechado por telefone", false, ""); err != nil {
		t.Fatalf("aceitar: %v", err)
	}
	if o.Status != StatusEmAndamento {
		t.Fatalf("status = %s, esperava em_andamento", o.Status)
	}
	if o.FinalValue != "R$ 5.000,00" {
		t.Fatalf("final_value = %q, esperava o valor original", o.FinalValue)
	}
	if o.StartedAt == nil || o.AcceptedAt == nil {
		t.Fatal("started_at e accepted_at deveriam estar preenchidos")
	}

	entrega := agora.Add(12 * 24 * time.Hour)
	if err := o.Concluir(time.Now(), "entregue com ajustes", &entrega); err != nil {
		t.Fatalf("concluir: %v", err)
	}
	if o.Status != StatusEntregue {
		t.Fatalf("status = %s, esperava entregue", o.Status)
	}
	if o.ExecutionDays == nil || *o.ExecutionDays != 12 {
		t.Fatalf("execution_days = %v, esperava 12", o.ExecutionDays)
	}
}

func TestAceiteComValorAlterado(t *testing.T) {
	o := novaProposta()
	if err := o.Aceitar(time.Now(), "desconto negociado", true, "R$ 4.500,00"); err != nil {
		t.Fatalf("aceitar: %v", err)
	}
	if !o.ValueChanged || o.FinalValue != "R$ 4.500,00" {
		t.Fatalf("value_changed=%v final_value=%q", o.ValueChanged, o.FinalValue)
	}
}

func TestTransicoesRejeitadas(t *testing.T) {
	// Concluir antes do aceite
	o := novaProposta()
	if err := o.Concluir(time.Now(), "", nil); err == nil {
		t.Fatal("concluir em criado deveria falhar")
	}

	// Aceitar duas vezes: a segunda bate no guard
	o = novaProposta()
	if err := o.Aceitar(time.Now(), "", false, ""); err != nil {
		t.Fatalf("primeiro aceite: %v", err)
	}
	primeiroAceite := *o.AcceptedAt
	err := o.Aceitar(time.Now(), "de novo", false, "")
	var te *TransicaoInvalidaError
	if !errors.As(err, &te) {
		t.Fatalf("segundo aceite: erro %v, esperava TransicaoInvalidaError", err)
	}
	if !o.AcceptedAt.Equal(primeiroAceite) {
		t.Fatal("accepted_at não pode ser sobrescrito")
	}

	// Enviar fora de criado
	if err := o.MarcarEnviado(); err == nil {
		t.Fatal("enviar em em_andamento deveria falhar")
	}

	// Cancelar em estado terminal
	o = novaProposta()
	if err := o.Cancelar(); err != nil {
		t.Fatalf("cancelar: %v", err)
	}
	if err := o.Cancelar(); err == nil {
		t.Fatal("cancelar um orçamento cancelado deveria falhar")
	}

	o = novaProposta()
	_ = o.Aceitar(time.Now(), "", false, "")
	_ = o.Concluir(time.Now(), "", nil)
	if err := o.Cancelar(); err == nil {
		t.Fatal("cancelar um orçamento entregue deveria falhar")
	}
}

func TestDiasExecucao(t *testing.T) {
	// Sem started_at os dias de execução ficam nulos
	o := novaProposta()
	o.Status = StatusEmAndamento
	if err := o.Concluir(time.Now(), "", nil); err != nil {
		t.Fatalf("concluir: %v", err)
	}
	if o.ExecutionDays != nil {
		t.Fatalf("execution_days = %v, esperava nil sem data de início", o.ExecutionDays)
	}

	// Piso do dia inteiro: 2 dias e 23h -> 2
	o = novaProposta()
	inicio := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_ = o.Aceitar(inicio, "", false, "")
	entrega := inicio.Add(2*24*time.Hour + 23*time.Hour)
	if err := o.Concluir(time.Now(), "", &entrega); err != nil {
		t.Fatalf("concluir: %v", err)
	}
	if o.ExecutionDays == nil || *o.ExecutionDays != 2 {
		t.Fatalf("execution_days = %v, esperava 2", o.ExecutionDays)
	}
}

func TestCancelarNaoMexeNosDemaisCampos(t *testing.T) {
	o := novaProposta()
	_ = o.MarcarEnviado()
	if err := o.Cancelar(); err != nil {
		t.Fatalf("cancelar: %v", err)
	}
	if o.Status != StatusCancelado {
		t.Fatalf("status = %s", o.Status)
	}
	if o.AcceptedAt != nil || o.DeliveredAt != nil || o.FinalValue != "" {
		t.Fatal("cancelamento só muda o status")
	}
}
