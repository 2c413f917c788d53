// internal/orcamento/status.go
package orcamento

import (
	"errors"
	"fmt"
	"time"
)

// ErrEntregaAntesDoInicio rejeita uma data de conclusão anterior ao
// início da execução.
var ErrEntregaAntesDoInicio = errors.New("a data de conclusão não pode ser anterior ao início da execução")

// Status do orçamento. O grafo de transições é fixo:
// criado -> enviado -> em_andamento -> entregue, com cancelado
// alcançável a partir de qualquer estado não terminal.
type Status string

const (
	StatusCriado      Status = "criado"
	StatusEnviado     Status = "enviado"
	StatusEmAndamento Status = "em_andamento"
	StatusEntregue    Status = "entregue"
	StatusCancelado   Status = "cancelado"
)

// TransicaoInvalidaError indica um comando incompatível com o estado atual.
type TransicaoInvalidaError struct {
	De   Status
	Para Status
}

func (e *TransicaoInvalidaError) Error() string {
	return fmt.Sprintf("transição de status inválida: %s -> %s", e.De, e.Para)
}

func (s Status) terminal() bool {
	return s == StatusEntregue || s == StatusCancelado
}

// MarcarEnviado registra o envio da proposta ao cliente.
func (o *Orcamento) MarcarEnviado() error {
	if o.Status != StatusCriado {
		return &TransicaoInvalidaError{De: o.Status, Para: StatusEnviado}
	}
	o.Status = StatusEnviado
	return nil
}

// Aceitar registra o aceite do cliente e inicia a execução.
// Só é permitido em "criado" ou "enviado", o que garante um único
// aceite por orçamento. Se o valor não mudou, o valor final herda
// o valor original da proposta.
func (o *Orcamento) Aceitar(agora time.Time, observacoes string, valorAlterado bool, valorFinal string) error {
	if o.Status != StatusCriado && o.Status != StatusEnviado {
		return &TransicaoInvalidaError{De: o.Status, Para: StatusEmAndamento}
	}
	o.Status = StatusEmAndamento
	o.AcceptedAt = &agora
	o.AcceptedNotes = observacoes
	o.ValueChanged = valorAlterado
	if valorAlterado {
		o.FinalValue = valorFinal
	} else {
		o.FinalValue = o.BudgetValue
	}
	o.StartedAt = &agora
	return nil
}

// Concluir registra a entrega do projeto. A data de conclusão é opcional
// e cai para "agora" quando ausente. Os dias de execução são o número
// inteiro de dias entre o início e a entrega; ficam nulos se o início
// não foi registrado. Uma data de conclusão anterior ao início é rejeitada.
func (o *Orcamento) Concluir(agora time.Time, observacoes string, dataConclusao *time.Time) error {
	if o.Status != StatusEmAndamento {
		return &TransicaoInvalidaError{De: o.Status, Para: StatusEntregue}
	}
	entrega := agora
	if dataConclusao != nil {
		entrega = *dataConclusao
	}
	if o.StartedAt != nil && entrega.Before(*o.StartedAt) {
		return ErrEntregaAntesDoInicio
	}
	o.Status = StatusEntregue
	o.DeliveredAt = &entrega
	o.CompletionNotes = observacoes
	if o.StartedAt != nil {
		dias := int(entrega.Sub(*o.StartedAt).Hours() / 24)
		o.ExecutionDays = &dias
	}
	return nil
}

// Cancelar encerra o orçamento sem entrega. Nenhum outro campo muda.
func (o *Orcamento) Cancelar() error {
	if o.Status.terminal() {
		return &TransicaoInvalidaError{De: o.Status, Para: StatusCancelado}
	}
	o.Status = StatusCancelado
	return nil
}
