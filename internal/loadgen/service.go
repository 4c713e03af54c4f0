package loadgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ThalysSilva/gerador-carga/internal/catalog"
	"github.com/ThalysSilva/gerador-carga/internal/clients"
	"github.com/rs/zerolog/log"
)

type loadGenService struct {
	ctx        context.Context
	catalog    *catalog.Catalog
	tsdbURL    string
	batchSize  int
	baseTime   int64
	httpClient clients.HTTPClient
}

type LoadGenService interface {
	// Executa o laço de envio até o contexto ser cancelado ou o transporte
	// falhar. Retorna nil no cancelamento; falha de transporte é devolvida
	// ao chamador, que encerra o processo.
	StartLoop(interval time.Duration) error
}

var nowMillisFunc = func() int64 { return time.Now().UnixMilli() }

// NewLoadGenService cria o serviço de geração e envio de lotes.
// O instante base dos timestamps é capturado aqui, uma única vez: todas as
// linhas emitidas durante a vida do processo ficam na janela de 3 segundos
// anterior a ele.
func NewLoadGenService(ctx context.Context, cat *catalog.Catalog, tsdbURL string, batchSize int, options ...func(*loadGenService)) LoadGenService {
	if batchSize <= 0 {
		panic(fmt.Sprintf("batchSize deve ser maior que 0, recebido: %d", batchSize))
	}
	registerMetrics()
	service := &loadGenService{
		ctx:        ctx,
		catalog:    cat,
		tsdbURL:    tsdbURL,
		batchSize:  batchSize,
		baseTime:   nowMillisFunc(),
		httpClient: clients.NewHTTPClient(),
	}
	for _, option := range options {
		option(service)
	}
	return service
}

// WithCustomHTTPClient permite passar um cliente HTTP customizado
func WithCustomHTTPClient(client clients.HTTPClient) func(*loadGenService) {
	return func(s *loadGenService) {
		s.httpClient = client
	}
}

func (s *loadGenService) StartLoop(interval time.Duration) error {
	log.Info().Msgf("Iniciando o envio de lotes para %s (tamanho: %d, intervalo: %v)", s.tsdbURL, s.batchSize, interval)
	batchNum := 1
	for {
		select {
		case <-s.ctx.Done():
			log.Info().Msgf("Envio encerrado após %d lotes", batchNum-1)
			return nil
		default:
			if err := s.sendBatch(batchNum); err != nil {
				// Cancelamento no meio de uma requisição não é falha de
				// transporte.
				if s.ctx.Err() != nil {
					log.Info().Msgf("Envio encerrado após %d lotes", batchNum-1)
					return nil
				}
				return err
			}
			batchNum++

			select {
			case <-s.ctx.Done():
				log.Info().Msgf("Envio encerrado após %d lotes", batchNum-1)
				return nil
			case <-time.After(interval):
			}
		}
	}
}

// sendBatch monta e envia um único lote. Status fora de 2xx não é erro:
// apenas é reportado e o laço continua. Erro de transporte interrompe o laço.
func (s *loadGenService) sendBatch(batchNum int) error {
	cycleStart := time.Now()

	payload := s.generateBatch(s.batchSize)
	batchBuildTime.Observe(time.Since(cycleStart).Seconds())

	// Corpo bruto, sem Content-Type: o endpoint consome o texto como chega.
	req, err := http.NewRequestWithContext(s.ctx, http.MethodPost, s.tsdbURL, strings.NewReader(payload))
	if err != nil {
		return fmt.Errorf("falha ao montar a requisição do lote %d: %w", batchNum, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		batchesSentFailed.Inc()
		return fmt.Errorf("falha no envio do lote %d: %w", batchNum, err)
	}
	resp.Body.Close()

	fmt.Printf("Batch Num: `%d`, Status: `%d`\n", batchNum, resp.StatusCode)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		batchesSentSuccess.Inc()
	} else {
		batchesRejected.Inc()
		log.Warn().Msgf("Lote %d respondido com status %d", batchNum, resp.StatusCode)
	}

	sendCycleTime.Observe(time.Since(cycleStart).Seconds())
	return nil
}
