package kafka_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/config"
	"todolist/infras/kafka"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "12",
		Value: map[string]any{"type": "todo.created", "id": 12},
	}

	kafkaMsg, err := msg.ToKafkaMessage("todo.events")
	require.NoError(t, err)

	assert.Equal(t, "todo.events", kafkaMsg.Topic)
	assert.Equal(t, []byte("12"), kafkaMsg.Key)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(kafkaMsg.Value, &decoded))
	assert.Equal(t, "todo.created", decoded["type"])
	assert.InDelta(t, 12, decoded["id"], 0)
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "1", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("todo.events")
	assert.Error(t, err)
}

func TestNew_WithoutBrokers(t *testing.T) {
	cfg := &config.Config{}

	assert.Nil(t, kafka.New(cfg))
}
