package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/QuestCraft_Go/internal/config"
	"github.com/osse101/QuestCraft_Go/internal/daily"
	"github.com/osse101/QuestCraft_Go/internal/event"
	"github.com/osse101/QuestCraft_Go/internal/game"
	"github.com/osse101/QuestCraft_Go/internal/metrics"
	"github.com/osse101/QuestCraft_Go/internal/milestone"
	"github.com/osse101/QuestCraft_Go/internal/relay"
	"github.com/osse101/QuestCraft_Go/internal/shop"
	"github.com/osse101/QuestCraft_Go/internal/sse"
	"github.com/osse101/QuestCraft_Go/internal/storage"
)

// App holds the wired application components
type App struct {
	Store   storage.Store
	Bus     event.Bus
	Game    game.Service
	Catalog *shop.Catalog
	Hub     *sse.Hub          // nil unless Options.LiveFeed
	Relay   *relay.Subscriber // nil when RELAY_URL is unset
}

// Options toggles the long-running parts that only the server needs
type Options struct {
	LiveFeed bool // start the SSE hub
}

// BuildApp wires the event bus, its subscribers and the game service on top of store
func BuildApp(ctx context.Context, cfg *config.Config, store storage.Store, opts Options) (*App, error) {
	pool, err := daily.LoadPool(cfg.DailyPoolPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadDailyPoolFmt, err)
	}
	catalog, err := shop.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFmt, err)
	}

	bus := event.NewMemoryBus()
	app := &App{Store: store, Bus: bus, Catalog: catalog}

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if opts.LiveFeed {
		app.Hub = sse.NewHub()
		sse.NewSubscriber(app.Hub, bus).Subscribe()
		slog.Info(LogMsgLiveFeedStarted)
	}

	if cfg.RelayEnabled() {
		relayCfg := cfg.RelayConfig()
		if err := relayCfg.Validate(); err != nil {
			app.stopHub()
			return nil, fmt.Errorf(ErrMsgInvalidRelayFmt, err)
		}
		client := relay.NewClient(relayCfg, &http.Client{Timeout: RelayHTTPTimeout})
		app.Relay = relay.NewSubscriber(client, bus, cfg.RelayTimeout, metrics.RelayRecorder{})
		app.Relay.Subscribe()
		slog.Info(LogMsgRelayEnabled, "player", relayCfg.Player, "namespace", relayCfg.Namespace)
	} else {
		slog.Info(LogMsgRelayDisabled)
	}

	svc, err := game.NewService(ctx, game.Deps{
		Gateway:  storage.NewGateway(store),
		Selector: daily.NewSelector(pool),
		Catalog:  catalog,
		Notifier: milestone.NewNotifier(catalog.Thresholds()),
		Bus:      bus,
		Location: cfg.Location(),
	})
	if err != nil {
		app.stopHub()
		return nil, fmt.Errorf(ErrMsgCreateGameServiceFmt, err)
	}
	app.Game = svc

	return app, nil
}

func (a *App) stopHub() {
	if a.Hub != nil {
		a.Hub.Close()
	}
}
