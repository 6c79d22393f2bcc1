package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/ipcli/internal/adapters/file"
	"github.com/aretw0/ipcli/internal/adapters/redis"
	"github.com/aretw0/ipcli/internal/config"
	"github.com/aretw0/ipcli/pkg/adapters/memory"
	"github.com/aretw0/ipcli/pkg/persistence/middleware"
	"github.com/aretw0/ipcli/pkg/ports"
)

// OpenStore builds the ScriptStore selected by cfg, encrypted when a key is configured.
// The returned close func releases backend connections and is never nil.
func OpenStore(cfg config.Store, logger *slog.Logger) (ports.ScriptStore, func() error, error) {
	store, closeFn, err := openBackend(cfg, logger)
	if err != nil || cfg.EncryptionKey == "" {
		return store, closeFn, err
	}
	key, err := middleware.ParseKey(cfg.EncryptionKey)
	if err != nil {
		_ = closeFn()
		return nil, func() error { return nil }, err
	}
	logger.Debug("Script store encryption enabled")
	return middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})(store), closeFn, nil
}

func openBackend(cfg config.Store, logger *slog.Logger) (ports.ScriptStore, func() error, error) {
	nop := func() error { return nil }
	switch cfg.Kind {
	case config.StoreMemory:
		logger.Debug("Script store", "kind", cfg.Kind)
		return memory.NewStore(), nop, nil
	case config.StoreFile, "":
		logger.Debug("Script store", "kind", config.StoreFile, "dir", cfg.Dir)
		return file.New(cfg.Dir), nop, nil
	case config.StoreRedis:
		var opts []redis.Option
		if cfg.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Prefix))
		}
		store, err := redis.NewFromURL(cfg.RedisURL, opts...)
		if err != nil {
			return nil, nop, err
		}
		logger.Debug("Script store", "kind", cfg.Kind, "prefix", cfg.Prefix)
		return store, store.Close, nil
	}
	return nil, nop, fmt.Errorf("unknown store kind %q", cfg.Kind)
}
