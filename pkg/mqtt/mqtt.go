// Package mqtt publishes ledger events to the studio broker. The bridge
// is strictly fire-and-forget: a dead broker never blocks or fails a
// command handler.
package mqtt

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/FPBotGo/pkg/logger"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	topicScore   = "fpbot/events/score"
	topicWarning = "fpbot/events/warning"
)

// ScoreEvent is published after every ledger score write
type ScoreEvent struct {
	GuildID string `json:"guildId"`
	UserID  int64  `json:"userId"`
	FP      int    `json:"fp"`
	Delta   int    `json:"delta,omitempty"`
}

// WarningEvent is published after the warning history changes
type WarningEvent struct {
	GuildID string `json:"guildId"`
	UserID  int64  `json:"userId"`
	Action  string `json:"action"` // add, clear, sub
	Total   int    `json:"total"`
}

// Bridge handles the MQTT connection and event publishing
type Bridge struct {
	client   mqtt.Client
	clientID string
	mu       sync.RWMutex
}

var (
	bridge *Bridge
	once   sync.Once
)

// Init initializes the global MQTT bridge
func Init(host, port, username, password, clientID string) *Bridge {
	once.Do(func() {
		bridge = NewBridge(host, port, username, password, clientID)
	})
	return bridge
}

// Get returns the global MQTT bridge
func Get() *Bridge {
	return bridge
}

// NewBridge creates a new MQTT bridge and starts connecting
func NewBridge(host, port, username, password, clientID string) *Bridge {
	b := &Bridge{clientID: clientID}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Connected to MQTT broker as %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("MQTT connection lost: %v", err), "MQTT")
		})

	b.client = mqtt.NewClient(opts)

	token := b.client.Connect()
	if token.WaitTimeout(5*time.Second) && token.Error() != nil {
		logger.Error(fmt.Sprintf("MQTT connection error: %v", token.Error()), "MQTT")
	}

	return b
}

// Destroy closes the MQTT connection
func (b *Bridge) Destroy() {
	if b.client != nil && b.client.IsConnected() {
		b.client.Disconnect(250)
		logger.System("MQTT connection closed successfully.", "MQTT")
	} else {
		logger.Warn("MQTT client was not connected, nothing to close.", "MQTT")
	}
}

// IsConnected returns true if connected to the broker
func (b *Bridge) IsConnected() bool {
	return b.client != nil && b.client.IsConnected()
}

// Publish sends a message to a topic
func (b *Bridge) Publish(topic string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	token := b.client.Publish(topic, 0, false, jsonData)
	token.Wait()
	return token.Error()
}

// PublishScore publishes a score change without blocking the caller
func (b *Bridge) PublishScore(event ScoreEvent) {
	go b.publishAsync(topicScore, event)
}

// PublishWarning publishes a warning history change without blocking the
// caller
func (b *Bridge) PublishWarning(event WarningEvent) {
	go b.publishAsync(topicWarning, event)
}

func (b *Bridge) publishAsync(topic string, payload interface{}) {
	if !b.IsConnected() {
		return
	}
	if err := b.Publish(topic, payload); err != nil {
		logger.Debug(fmt.Sprintf("Dropping MQTT event on %s: %v", topic, err), "MQTT")
	}
}

// PublishScore publishes through the global bridge when one exists
func PublishScore(event ScoreEvent) {
	if bridge != nil {
		bridge.PublishScore(event)
	}
}

// PublishWarning publishes through the global bridge when one exists
func PublishWarning(event WarningEvent) {
	if bridge != nil {
		bridge.PublishWarning(event)
	}
}
