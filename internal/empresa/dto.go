package empresa

import (
	"github.com/blackboxdigital/api-portal/internal/atualizacao"
	"github.com/blackboxdigital/api-portal/internal/documento"
	"github.com/blackboxdigital/api-portal/internal/marco"
)

// CriarEmpresaDTO é o payload de criação do tenant. O e-mail do cliente é
// opcional; quando presente, um acesso de cliente é provisionado junto.
type CriarEmpresaDTO struct {
	Name        string `json:"name"`
	CNPJ        string `json:"cnpj"`
	LogoURL     string `json:"logo_url"`
	ClientEmail string `json:"client_email"`
	ClientName  string `json:"client_name"`
}

// AtualizarEmpresaDTO é o payload do PUT de dados cadastrais.
type AtualizarEmpresaDTO struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Status  string `json:"status"`
	LogoURL string `json:"logo_url"`
}

// AtualizarFaseDTO é o corpo do PATCH de fase.
type AtualizarFaseDTO struct {
	Status string `json:"status"` // pending | complete
	URL    string `json:"url"`    // opcional, guardada apenas ao completar
}

// EmpresaCriadaDTO devolve a empresa e, quando provisionada, a credencial
// temporária do cliente (exibida uma única vez).
type EmpresaCriadaDTO struct {
	Empresa      Empresa `json:"empresa"`
	ClientEmail  string  `json:"client_email,omitempty"`
	SenhaInicial string  `json:"senha_inicial,omitempty"`
}

// PortalDTO é a visão do dashboard do cliente: fases + apenas as linhas
// visíveis para o cliente.
type PortalDTO struct {
	Empresa        Empresa                   `json:"empresa"`
	FasesCompletas bool                      `json:"fases_completas"`
	Marcos         []marco.Marco             `json:"marcos"`
	Documentos     []documento.Documento     `json:"documentos"`
	Atualizacoes   []atualizacao.Atualizacao `json:"atualizacoes"`
}
