package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"floe/config"
	"floe/domain/book"
	"floe/domain/match"
	"floe/feed"
	"floe/infra/kafka"
	"floe/infra/sequence"
	"floe/render"
	"floe/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// ---------------- Domain ----------------

	b := book.NewOrderBook()
	matcher := match.New(b)

	// ---------------- Trade reporting ----------------

	var reporter service.TradeReporter
	if cfg.Kafka.Enabled() {
		rep := kafka.NewReporter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer rep.Close()
		reporter = rep
		logger.WithFields(logrus.Fields{
			"brokers": cfg.Kafka.Brokers,
			"topic":   cfg.Kafka.Topic,
		}).Info("trade reporting enabled")
	}

	// ---------------- Service ----------------

	engine := service.NewEngine(b, matcher, sequence.New(0), logger, reporter)

	// ---------------- Feed ----------------

	in := os.Stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			logger.WithError(err).Fatal("cannot open order feed")
		}
		defer f.Close()
		in = f
	}

	ctx := context.Background()
	reader := feed.NewReader(in)
	for {
		o, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.WithError(err).Warn("skipping malformed order line")
			continue
		}
		if _, err := engine.Submit(ctx, o); err != nil {
			logger.WithError(err).WithField("order_id", o.ID).Warn("order rejected")
		}
	}

	if err := render.Write(os.Stdout, b); err != nil {
		logger.WithError(err).Fatal("book render failed")
	}
}
