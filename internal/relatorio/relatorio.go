// internal/relatorio/relatorio.go
package relatorio

import (
	"fmt"
	"sort"
	"time"

	"github.com/blackboxdigital/api-portal/internal/moeda"
	"github.com/blackboxdigital/api-portal/internal/orcamento"
)

// Periodo do filtro de relatório, aplicado antes de qualquer agregação.
type Periodo string

const (
	PeriodoTodos     Periodo = "all"
	PeriodoMes       Periodo = "month"
	PeriodoTrimestre Periodo = "quarter"
	PeriodoAno       Periodo = "year"
)

// Totais por balde de status. Os quatro baldes cobrem todos os status,
// então a soma das contagens bate com o total filtrado.
type Totais struct {
	Total            int     `json:"total"`
	Entregues        int     `json:"entregues"`
	ValorEntregue    float64 `json:"valor_entregue"`
	EmAndamento      int     `json:"em_andamento"`
	ValorEmAndamento float64 `json:"valor_em_andamento"`
	Pendentes        int     `json:"pendentes"` // criado + enviado
	ValorPendente    float64 `json:"valor_pendente"`
	Cancelados       int     `json:"cancelados"`
	ValorCancelado   float64 `json:"valor_cancelado"`
}

// EstagioFunil é um degrau do funil de conversão.
type EstagioFunil struct {
	Nome       string  `json:"nome"`
	Quantidade int     `json:"quantidade"`
	Percentual float64 `json:"percentual"`
}

// ClienteRanking agrega propostas por nome de cliente. O nome é texto
// livre: grafias diferentes do mesmo cliente contam separado.
type ClienteRanking struct {
	Cliente    string  `json:"cliente"`
	Quantidade int     `json:"quantidade"`
	Valor      float64 `json:"valor"`
	Entregues  int     `json:"entregues"`
}

// BucketMes é uma coluna do gráfico dos últimos seis meses. Altura é a
// barra normalizada (0-100) contra o mês de maior valor.
type BucketMes struct {
	Rotulo     string  `json:"rotulo"`
	Quantidade int     `json:"quantidade"`
	Valor      float64 `json:"valor"`
	Altura     int     `json:"altura"`
}

// Relatorio é o DTO combinado do dashboard de orçamentos.
type Relatorio struct {
	Periodo           Periodo          `json:"periodo"`
	Totais            Totais           `json:"totais"`
	Funil             []EstagioFunil   `json:"funil"`
	Ranking           []ClienteRanking `json:"ranking"`
	Meses             []BucketMes      `json:"meses"`
	MediaDiasExecucao float64          `json:"media_dias_execucao"`
}

var mesesAbrev = [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

func inicioPeriodo(p Periodo, agora time.Time) (time.Time, bool) {
	switch p {
	case PeriodoMes:
		return agora.AddDate(0, -1, 0), true
	case PeriodoTrimestre:
		return agora.AddDate(0, -3, 0), true
	case PeriodoAno:
		return agora.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// Filtrar devolve apenas os orçamentos criados dentro do período.
func Filtrar(orcs []orcamento.Orcamento, p Periodo, agora time.Time) []orcamento.Orcamento {
	inicio, limitado := inicioPeriodo(p, agora)
	if !limitado {
		return orcs
	}
	var out []orcamento.Orcamento
	for _, o := range orcs {
		if !o.CreatedAt.Before(inicio) {
			out = append(out, o)
		}
	}
	return out
}

// ValorEfetivo devolve o valor final quando existe, senão o valor da
// proposta, sempre pelo parse textual.
func ValorEfetivo(o *orcamento.Orcamento) float64 {
	if o.FinalValue != "" {
		return moeda.Parse(o.FinalValue)
	}
	return moeda.Parse(o.BudgetValue)
}

// CalcularTotais soma contagens e valores por balde de status.
func CalcularTotais(orcs []orcamento.Orcamento) Totais {
	t := Totais{Total: len(orcs)}
	for i := range orcs {
		o := &orcs[i]
		v := ValorEfetivo(o)
		switch o.Status {
		case orcamento.StatusEntregue:
			t.Entregues++
			t.ValorEntregue += v
		case orcamento.StatusEmAndamento:
			t.EmAndamento++
			t.ValorEmAndamento += v
		case orcamento.StatusCancelado:
			t.Cancelados++
			t.ValorCancelado += v
		default: // criado, enviado
			t.Pendentes++
			t.ValorPendente += v
		}
	}
	return t
}

// CalcularFunil monta os quatro degraus de conversão. O denominador tem
// piso 1 para evitar divisão por zero; os percentuais ficam em [0,100].
func CalcularFunil(orcs []orcamento.Orcamento) []EstagioFunil {
	total := len(orcs)
	var enviados, aceitos, entregues int
	for i := range orcs {
		o := &orcs[i]
		switch o.Status {
		case orcamento.StatusEnviado, orcamento.StatusEmAndamento, orcamento.StatusEntregue:
			enviados++
		}
		if o.AcceptedAt != nil {
			aceitos++
		}
		if o.Status == orcamento.StatusEntregue {
			entregues++
		}
	}

	denom := total
	if denom < 1 {
		denom = 1
	}
	pct := func(n int) float64 {
		return float64(n) * 100 / float64(denom)
	}
	return []EstagioFunil{
		{Nome: "criados", Quantidade: total, Percentual: pct(total)},
		{Nome: "enviados", Quantidade: enviados, Percentual: pct(enviados)},
		{Nome: "aceitos", Quantidade: aceitos, Percentual: pct(aceitos)},
		{Nome: "entregues", Quantidade: entregues, Percentual: pct(entregues)},
	}
}

// RankearClientes agrupa por client_name e devolve os 10 maiores por valor.
func RankearClientes(orcs []orcamento.Orcamento) []ClienteRanking {
	porCliente := map[string]*ClienteRanking{}
	for i := range orcs {
		o := &orcs[i]
		c, ok := porCliente[o.ClientName]
		if !ok {
			c = &ClienteRanking{Cliente: o.ClientName}
			porCliente[o.ClientName] = c
		}
		c.Quantidade++
		c.Valor += ValorEfetivo(o)
		if o.Status == orcamento.StatusEntregue {
			c.Entregues++
		}
	}

	ranking := make([]ClienteRanking, 0, len(porCliente))
	for _, c := range porCliente {
		ranking = append(ranking, *c)
	}
	sort.Slice(ranking, func(i, j int) bool {
		return ranking[i].Valor > ranking[j].Valor
	})
	if len(ranking) > 10 {
		ranking = ranking[:10]
	}
	return ranking
}

// AgruparPorMes monta as seis colunas mensais encerradas no mês atual.
func AgruparPorMes(orcs []orcamento.Orcamento, agora time.Time) []BucketMes {
	buckets := make([]BucketMes, 6)
	indice := map[string]int{}
	// Ancorado no dia 1 para que AddDate não normalize fins de mês
	// (31 de ago - 4 meses viraria 1 de mai).
	base := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
	for i := 0; i < 6; i++ {
		ref := base.AddDate(0, i-5, 0)
		rotulo := fmt.Sprintf("%s/%d", mesesAbrev[ref.Month()-1], ref.Year())
		buckets[i] = BucketMes{Rotulo: rotulo}
		indice[fmt.Sprintf("%d-%d", ref.Year(), ref.Month())] = i
	}

	for i := range orcs {
		o := &orcs[i]
		chave := fmt.Sprintf("%d-%d", o.CreatedAt.Year(), o.CreatedAt.Month())
		if pos, ok := indice[chave]; ok {
			buckets[pos].Quantidade++
			buckets[pos].Valor += ValorEfetivo(o)
		}
	}

	var max float64
	for _, b := range buckets {
		if b.Valor > max {
			max = b.Valor
		}
	}
	if max > 0 {
		for i := range buckets {
			buckets[i].Altura = int(buckets[i].Valor * 100 / max)
		}
	}
	return buckets
}

// MediaDiasExecucao considera só entregas com dias registrados e usa
// denominador com piso 1.
func MediaDiasExecucao(orcs []orcamento.Orcamento) float64 {
	var soma, qtd int
	for i := range orcs {
		o := &orcs[i]
		if o.Status == orcamento.StatusEntregue && o.ExecutionDays != nil {
			soma += *o.ExecutionDays
			qtd++
		}
	}
	if qtd < 1 {
		qtd = 1
	}
	return float64(soma) / float64(qtd)
}

// Montar aplica o filtro de período e recalcula todos os agregados.
// Sem cache: cada leitura refaz a conta sobre as linhas buscadas.
func Montar(orcs []orcamento.Orcamento, p Periodo, agora time.Time) Relatorio {
	filtrados := Filtrar(orcs, p, agora)
	return Relatorio{
		Periodo:           p,
		Totais:            CalcularTotais(filtrados),
		Funil:             CalcularFunil(filtrados),
		Ranking:           RankearClientes(filtrados),
		Meses:             AgruparPorMes(filtrados, agora),
		MediaDiasExecucao: MediaDiasExecucao(filtrados),
	}
}
