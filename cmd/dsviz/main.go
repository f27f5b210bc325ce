// Command dsviz runs data-structure commands from a script file or stdin
// and logs every outcome, pacing graph algorithms like an animation.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/op/go-logging"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dsviz/binheap"
	"github.com/katalvlaran/dsviz/hashtable"
	"github.com/katalvlaran/dsviz/internal/console"
	"github.com/katalvlaran/dsviz/player"
)

var log = logging.MustGetLogger("dsviz")

// InitConfig uses viper to read configuration from DSVIZ_ environment
// variables and the optional ./config.yaml. Environment variables take
// precedence over the file.
func InitConfig() (*viper.Viper, error) {
	v := viper.New()

	v.AutomaticEnv()
	v.SetEnvPrefix("dsviz")
	// DSVIZ_LOG_LEVEL maps to log.level
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("log.level", "INFO")
	v.SetDefault("animation.interval", player.DefaultInterval)
	v.SetDefault("heap.kind", "min")
	v.SetDefault("heap.backend", binheap.BackendReference)
	v.SetDefault("hashtable.capacity", hashtable.DefaultCapacity)
	v.SetDefault("hashtable.strategy", "chaining")
	v.SetDefault("hashtable.tombstones", false)
	v.SetDefault("graph.seed", 1)
	v.SetDefault("script", "")

	v.SetConfigFile("./config.yaml")
	if err := v.ReadInConfig(); err != nil {
		fmt.Println("Configuration could not be read from config file. Using env variables instead")
	}

	return v, nil
}

// InitLogger parses logLevel and installs a stdout backend at that level.
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s} %{module:-8s} %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

// consoleConfig maps viper keys onto console.Config.
func consoleConfig(v *viper.Viper) (console.Config, error) {
	cfg := console.DefaultConfig()

	kind, err := binheap.ParseKind(v.GetString("heap.kind"))
	if err != nil {
		return cfg, err
	}
	strategy, err := hashtable.ParseStrategy(v.GetString("hashtable.strategy"))
	if err != nil {
		return cfg, err
	}
	interval := v.GetDuration("animation.interval")
	if interval < 0 {
		return cfg, fmt.Errorf("animation.interval must not be negative, got %v", interval)
	}

	cfg.HeapKind = kind
	cfg.HeapBackend = v.GetString("heap.backend")
	cfg.TableCapacity = v.GetInt("hashtable.capacity")
	cfg.TableStrategy = strategy
	cfg.TableTombstones = v.GetBool("hashtable.tombstones")
	cfg.Interval = interval
	cfg.GraphSeed = v.GetInt64("graph.seed")

	return cfg, nil
}

func main() {
	v, err := InitConfig()
	if err != nil {
		log.Criticalf("%s", err)
		os.Exit(1)
	}

	if err := InitLogger(v.GetString("log.level")); err != nil {
		log.Criticalf("%s", err)
		os.Exit(1)
	}

	cfg, err := consoleConfig(v)
	if err != nil {
		log.Criticalf("invalid configuration: %s", err)
		os.Exit(1)
	}
	log.Infof("action: config | result: success | heap: %s/%s | table: %d/%s | interval: %v",
		cfg.HeapKind, cfg.HeapBackend, cfg.TableCapacity, cfg.TableStrategy, cfg.Interval.Round(time.Millisecond))

	c, err := console.New(cfg)
	if err != nil {
		log.Criticalf("%s", err)
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if path := v.GetString("script"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Criticalf("%s", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := c.Run(ctx, in); err != nil {
		log.Errorf("action: run | result: fail | error: %v", err)
		return
	}
	log.Info("action: run | result: success")
}
