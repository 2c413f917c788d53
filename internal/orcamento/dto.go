package orcamento

// CriarOrcamentoDTO carrega os oito campos da proposta vindos do assistente
// de criação. O status nunca vem do cliente: todo orçamento nasce "criado".
type CriarOrcamentoDTO struct {
	CompanyName  string `json:"company_name"`
	ClientName   string `json:"client_name"`
	ProjectType  string `json:"project_type"`
	Description  string `json:"description"`
	Features     string `json:"features"`
	Deadline     string `json:"deadline"`
	BudgetValue  string `json:"budget_value"`
	PaymentTerms string `json:"payment_terms"`
}

// AceitarOrcamentoDTO é o corpo do PATCH de aceite.
type AceitarOrcamentoDTO struct {
	Observacoes   string `json:"observacoes"`
	ValorAlterado bool   `json:"valor_alterado"`
	ValorFinal    string `json:"valor_final"`
}

// ConcluirOrcamentoDTO é o corpo do PATCH de conclusão.
// DataConclusao é RFC3339 e opcional.
type ConcluirOrcamentoDTO struct {
	Observacoes   string `json:"observacoes"`
	DataConclusao string `json:"data_conclusao"`
}
