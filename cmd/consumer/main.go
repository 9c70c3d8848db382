package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hospice/hospital-locator-api/broker"
	"github.com/hospice/hospital-locator-api/config"
	"github.com/hospice/hospital-locator-api/consumer"
	"github.com/hospice/hospital-locator-api/messaging"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"github.com/hospice/hospital-locator-api/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var clientCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "go_consumer_metrics",
}, []string{"topic", "outcome"})

// Stores doctor replies published by the api's inbound webhook.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Logger().Fatal("failed to load config", zap.Error(err))
	}

	http.HandleFunc("/healthcheck", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(200)
	})

	http.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(":"+cfg.Server.Port, nil); err != nil {
			log.Logger().Error("server could not started or stopped", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, err := repository.New(ctx, cfg.Database.ConnStr)
	if err != nil {
		log.Logger().Panic("failed to connect to database", zap.Error(err))
	}
	defer repo.Close()

	client, err := broker.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		log.Logger().Panic(err.Error())
		return
	}

	relay := messaging.NewRelay(repo, repo, nil)
	c := consumer.NewConsumer(client, cfg.Kafka.InboundTopic, relay, clientCounter)
	c.Start(ctx)

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	healthy := true
	for healthy {
		select {
		case <-ctx.Done():
			log.Logger().Info("terminating: context cancelled")
			healthy = false
		case <-sigterm:
			log.Logger().Info("terminating: via signal")
			healthy = false
		}
	}

	cancel()
	if err = client.Close(); err != nil {
		log.Logger().Panic("Error closing client:", zap.Error(err))
	}
}
