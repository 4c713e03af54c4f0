package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThalysSilva/gerador-carga/internal/clients"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "catalog:location:"

type catalogStore struct {
	redisClient clients.RedisClient
	catalog     *Catalog
	ctx         context.Context
}

// CatalogStore publica o snapshot do catálogo no Redis para que a bancada de
// ingestão possa conferir os identificadores emitidos, e limpa as chaves no
// encerramento. Não participa do laço de envio.
type CatalogStore interface {
	Publish() error
	Fetch(location string) ([]string, error)
	Clear() error
}

func NewCatalogStore(ctx context.Context, redisClient clients.RedisClient, catalog *Catalog) CatalogStore {
	return &catalogStore{
		redisClient: redisClient,
		catalog:     catalog,
		ctx:         ctx,
	}
}

// Publish grava o pool de cada localização como JSON sob catalog:location:<loc>.
func (s *catalogStore) Publish() error {
	for location, pool := range s.catalog.Snapshot() {
		payload, err := json.Marshal(pool)
		if err != nil {
			return fmt.Errorf("falha ao serializar o pool de %s: %w", location, err)
		}
		if err := s.redisClient.Set(s.ctx, keyPrefix+location, payload, 0).Err(); err != nil {
			return fmt.Errorf("falha ao publicar o pool de %s: %w", location, err)
		}
	}
	log.Debug().Msgf("Catálogo publicado no Redis (%d localizações)", len(Locations))
	return nil
}

// Fetch lê de volta o pool publicado de uma localização.
func (s *catalogStore) Fetch(location string) ([]string, error) {
	payload, err := s.redisClient.Get(s.ctx, keyPrefix+location).Result()
	if err != nil {
		return nil, fmt.Errorf("falha ao ler o pool de %s: %w", location, err)
	}
	var pool []string
	if err := json.Unmarshal([]byte(payload), &pool); err != nil {
		return nil, fmt.Errorf("falha ao desserializar o pool de %s: %w", location, err)
	}
	return pool, nil
}

// Clear remove todas as chaves do catálogo publicadas neste processo.
// Roda no encerramento, depois do cancelamento do contexto do processo, por
// isso usa um contexto próprio com prazo curto em vez do contexto de
// construção.
func (s *catalogStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var keys []string
	cursor := uint64(0)
	for {
		batch, next, err := s.redisClient.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("falha ao varrer as chaves do catálogo: %w", err)
		}
		keys = append(keys, batch...)
		if next == 0 {
			break
		}
		cursor = next
	}

	if len(keys) == 0 {
		return nil
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("falha ao excluir as chaves do catálogo: %w", err)
	}
	log.Debug().Msgf("Catálogo removido do Redis (%d chaves)", len(keys))
	return nil
}
