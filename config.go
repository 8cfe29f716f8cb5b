package store

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"sitara.io/store/admin"
	"sitara.io/store/cart"
	"sitara.io/store/catalog"
	"sitara.io/store/checkout"
	"sitara.io/store/driver"
	"sitara.io/store/event"
	"sitara.io/store/gateway"
	"sitara.io/store/query"
	"sitara.io/store/session"
)

// Config holds everything needed to stand the client up.
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url"`

		// Timeout is a Go duration string, e.g. "15s".
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	NATS struct {
		// URL of the server carrying backend change events. Empty disables
		// the subscription; cached queries then expire by TTL only.
		URL string `yaml:"url"`
	} `yaml:"nats"`
}

func DefaultConfig() Config {
	var cfg Config
	cfg.API.BaseURL = "https://api.adhlal.sa/api"
	cfg.Redis.Addr = "localhost:6379"
	return cfg
}

// APITimeout resolves the configured request timeout, falling back to the
// gateway default when unset or unparsable.
func (c Config) APITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return gateway.DefaultTimeout
	}
	return d
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Open assembles the whole client from configuration. confirm guards the
// destructive back-office operations and may be nil to refuse them all. The
// returned cleanup closes the infrastructure connections.
func Open(ctx context.Context, cfg Config, confirm admin.ConfirmFunc, logger *zap.Logger) (Service, func(), error) {
	redisClient, err := driver.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	kv := driver.NewRedisKV(redisClient)

	cache := query.NewCache(kv, logger)
	sessions := session.NewManager(kv, cache, logger)

	gw, err := gateway.NewClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.APITimeout()}, sessions, logger)
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("build gateway client: %w", err)
	}
	sessions.AttachGateway(gw)

	cartStore := cart.NewStore(ctx, kv, logger)
	flow := checkout.NewFlow(gw, cartStore, logger)
	catalogRepo := catalog.NewRepository(gw, cache, logger)
	backofficeRepo := admin.NewRepository(gw, cache, confirm, logger)
	events := event.NewRepository(kv, logger)

	var natsConn *nats.Conn
	if cfg.NATS.URL != "" {
		natsConn, err = driver.ConnectNATS(cfg.NATS.URL)
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("connect nats: %w", err)
		}
	}

	svc := NewService(gw, catalogRepo, backofficeRepo, cartStore, flow, sessions, events, cache, natsConn, logger)

	cleanup := func() {
		svc.Shutdown()
		if natsConn != nil {
			natsConn.Close()
		}
		_ = redisClient.Close()
	}
	return svc, cleanup, nil
}
