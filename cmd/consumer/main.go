package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/internal/domains/stay/state"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const defaultConsumerGroup = "frontdesk-audit"

// Tails the stay event topic and writes every lifecycle transition to the log.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if !cfg.Kafka.Enable {
		log.Fatal().Msg("Kafka is disabled, nothing to consume")
	}

	group := cfg.Kafka.ConsumerGroup
	if group == "" {
		group = defaultConsumerGroup
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := kafka.New(cfg)

	log.Info().Str("topic", cfg.Kafka.Topic.StayEvents).Str("group", group).Msg("Consuming stay events")

	client.Consume(ctx, group, cfg.Kafka.Topic.StayEvents, func(message kafkaGo.Message) {
		key, event, err := kafka.DecodeKafkaMessage[state.Event](message)
		if err != nil {
			return
		}

		log.Info().
			Str("key", key).
			Str("type", string(event.Type)).
			Str("booking", event.BookingNo).
			Str("room", event.RoomID).
			Str("status", event.Status).
			Float64("amount", event.Amount).
			Time("at", event.At).
			Msg("Stay event")
	})
}
