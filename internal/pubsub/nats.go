package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tabletop-hub/internal/shared"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const intentTimeout = 5 * time.Second

// IntentHandler applies an intent to a room. room.Manager implements it.
type IntentHandler interface {
	HandleIntent(ctx context.Context, roomCode string, in shared.Intent) error
}

// Reply answers a request sent to an intents subject.
type Reply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Bridge mirrors room events onto NATS and accepts intents from it.
//
// Events go to <prefix>.rooms.<code>.events with every hand masked.
// Intents arrive on <prefix>.rooms.<code>.intents and must carry playerId.
type Bridge struct {
	nc     *nats.Conn
	prefix string
	logger *zap.Logger
	sub    *nats.Subscription
}

func Connect(url, prefix string, logger *zap.Logger) (*Bridge, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := []nats.Option{
		nats.Name("tabletop-hub"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	}
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return NewBridge(nc, prefix, logger), nil
}

func NewBridge(nc *nats.Conn, prefix string, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	if prefix == "" {
		prefix = "tabletop"
	}
	return &Bridge{nc: nc, prefix: prefix, logger: logger}
}

func (b *Bridge) EventSubject(roomCode string) string {
	return b.prefix + ".rooms." + roomCode + ".events"
}

func (b *Bridge) IntentSubject(roomCode string) string {
	return b.prefix + ".rooms." + roomCode + ".intents"
}

// roomCode extracts <code> from <prefix>.rooms.<code>.intents.
func (b *Bridge) roomCode(subject string) (string, bool) {
	rest, ok := strings.CutPrefix(subject, b.prefix+".rooms.")
	if !ok {
		return "", false
	}
	code, ok := strings.CutSuffix(rest, ".intents")
	if !ok || code == "" || strings.Contains(code, ".") {
		return "", false
	}
	return code, true
}

// Broadcast publishes the spectator view of ev.
func (b *Bridge) Broadcast(roomCode string, ev shared.Event) {
	data, err := json.Marshal(ev.ForViewer(""))
	if err != nil {
		b.logger.Error("encode event", zap.String("kind", ev.Kind), zap.Error(err))
		return
	}
	if err := b.nc.Publish(b.EventSubject(roomCode), data); err != nil {
		b.logger.Warn("nats publish failed", zap.String("room", roomCode), zap.Error(err))
	}
}

// Serve subscribes to the intents of every room.
func (b *Bridge) Serve(h IntentHandler) error {
	sub, err := b.nc.Subscribe(b.IntentSubject("*"), func(msg *nats.Msg) {
		b.handle(h, msg)
	})
	if err != nil {
		return fmt.Errorf("nats subscribe: %w", err)
	}
	b.sub = sub
	b.logger.Info("nats intents subscribed", zap.String("subject", sub.Subject))
	return nil
}

func (b *Bridge) handle(h IntentHandler, msg *nats.Msg) Reply {
	reply := b.apply(h, msg)
	if msg.Reply != "" {
		data, _ := json.Marshal(reply)
		if err := msg.Respond(data); err != nil {
			b.logger.Warn("nats respond failed", zap.String("subject", msg.Subject), zap.Error(err))
		}
	}
	return reply
}

func (b *Bridge) apply(h IntentHandler, msg *nats.Msg) Reply {
	code, ok := b.roomCode(msg.Subject)
	if !ok {
		return Reply{Error: "bad subject"}
	}
	var in shared.Intent
	if err := json.Unmarshal(msg.Data, &in); err != nil {
		b.logger.Debug("bad intent payload", zap.String("room", code), zap.Error(err))
		return Reply{Error: "malformed message"}
	}
	if in.PlayerID == "" {
		return Reply{Error: "playerId is required"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), intentTimeout)
	defer cancel()
	if err := h.HandleIntent(ctx, code, in); err != nil {
		return Reply{Error: err.Error()}
	}
	return Reply{OK: true}
}

// Close unsubscribes and drains the connection.
func (b *Bridge) Close() error {
	if b.sub != nil {
		_ = b.sub.Unsubscribe()
	}
	return b.nc.Drain()
}
