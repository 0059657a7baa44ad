package kafka_test

import (
	"context"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomEvent struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{Key: "B-aaaaa", Value: roomEvent{Type: "CHECKED_IN", RoomID: "A101"}}

	got, err := message.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("B-aaaaa"), got.Key)
	assert.JSONEq(t, `{"type":"CHECKED_IN","roomId":"A101"}`, string(got.Value))
}

func TestMessage_ToKafkaMessageRejectsUnencodable(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()
	assert.Error(t, err)
}

func TestDecodeKafkaMessage(t *testing.T) {
	key, got, err := kafka.DecodeKafkaMessage[roomEvent](kafkaGo.Message{
		Key:   []byte("B-aaaaa"),
		Value: []byte(`{"type":"CHECKED_OUT","roomId":"M201"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "B-aaaaa", key)
	assert.Equal(t, roomEvent{Type: "CHECKED_OUT", RoomID: "M201"}, got)

	_, _, err = kafka.DecodeKafkaMessage[roomEvent](kafkaGo.Message{Value: []byte(`{`)})
	assert.Error(t, err)
}

func TestSendMessagesWithoutMessagesIsNoop(t *testing.T) {
	client := kafka.New(&config.Config{})

	assert.NoError(t, client.SendMessages(context.Background(), "frontdesk.stay.events"))
}

func TestConsumeWithoutBrokersReturns(t *testing.T) {
	client := kafka.New(&config.Config{})

	called := false
	client.Consume(context.Background(), "audit", "frontdesk.stay.events", func(kafkaGo.Message) { called = true })

	assert.False(t, called)
}
