package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarAlertaFasesConcluidas avisa o webhook de automação que o
// onboarding de uma empresa terminou. Melhor esforço: falhas só geram log.
func EnviarAlertaFasesConcluidas(nomeEmpresa string) {
	url := os.Getenv("WEBHOOK_FASES_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem": "Onboarding concluído: todas as fases foram finalizadas",
		"empresa":  nomeEmpresa,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook de fases: %v", err)
		return
	}
	defer resp.Body.Close()
}
