package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThalysSilva/gerador-carga/internal/catalog"
	"github.com/ThalysSilva/gerador-carga/internal/clients"
	"github.com/ThalysSilva/gerador-carga/internal/loadgen"
	"github.com/ThalysSilva/gerador-carga/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	TSDB_URL     = os.Getenv("TSDB_URL")
	METRICS_PORT = os.Getenv("METRICS_PORT")
	REDIS_HOST   = os.Getenv("REDIS_HOST")
	REDIS_PORT   = os.Getenv("REDIS_PORT")
)

const (
	defaultTSDBURL     = "http://localhost:3000/influxdb"
	defaultMetricsPort = "9100"
	batchSize          = 1000
	sendInterval       = 3 * time.Second
)

func init() {
	clients.InitLog("log_loadgen.log")
}

func main() {
	tsdbURL := TSDB_URL
	if tsdbURL == "" {
		tsdbURL = defaultTSDBURL
	}
	metricsPort := METRICS_PORT
	if metricsPort == "" {
		metricsPort = defaultMetricsPort
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	cat := catalog.New()
	for _, location := range catalog.Locations {
		log.Info().Msgf("Localização %s: %d dispositivos", location, len(cat.Devices(location)))
	}

	// Publicação do catálogo é opcional: só acontece com Redis configurado.
	var store catalog.CatalogStore
	if REDIS_HOST != "" {
		redisClient := clients.InitRedisClient(REDIS_HOST, REDIS_PORT)
		defer redisClient.Close()

		store = catalog.NewCatalogStore(ctx, redisClient, cat)
		if err := utils.Retry(store.Publish, 3); err != nil {
			log.Warn().Msgf("Não foi possível publicar o catálogo no Redis: %v", err)
		}
	}

	router := gin.Default()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/catalog", func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.Snapshot())
	})

	go func() {
		log.Info().Msgf("Métricas disponíveis em :%s/metrics", metricsPort)
		if err := router.Run(":" + metricsPort); err != nil {
			log.Error().Msgf("Erro ao iniciar o servidor de métricas: %v", err)
			os.Exit(1)
		}
	}()

	service := loadgen.NewLoadGenService(ctx, cat, tsdbURL, batchSize)
	go func() {
		if err := service.StartLoop(sendInterval); err != nil {
			// Falha de transporte encerra o processo: o gerador não tenta
			// de novo nem degrada para envio parcial.
			log.Fatal().Msgf("Erro no envio de lotes: %v", err)
		}
	}()

	<-stop
	log.Info().Msg("Recebido sinal de parada, finalizando...")
	cancel()

	if store != nil {
		if err := store.Clear(); err != nil {
			log.Warn().Msgf("Não foi possível limpar o catálogo no Redis: %v", err)
		}
	}
}
