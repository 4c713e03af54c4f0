package clients

import (
	"net/http"
	"time"
)

// NewHTTPClient cria o cliente HTTP padrão do gerador, com pool de conexões
// reutilizáveis para o endpoint de ingestão.
// Sem Timeout global: uma requisição pode bloquear indefinidamente se o
// endpoint não responder, comportamento herdado do gerador original.
func NewHTTPClient() HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 50,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}
