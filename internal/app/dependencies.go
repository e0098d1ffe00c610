package app

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/ecowaste/site/internal/config"
	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/email"
	"github.com/ecowaste/site/internal/notify"
	"github.com/ecowaste/site/internal/pubsub"
	"github.com/ecowaste/site/internal/rendering"
	"github.com/ecowaste/site/internal/server"
	"github.com/ecowaste/site/internal/wastedata"
)

// Tracing owns the tracer used by the event bus and flushes it on shutdown.
type Tracing struct {
	Tracer  trace.Tracer
	cleanup func()
}

// Shutdown flushes pending spans.
func (t *Tracing) Shutdown() {
	if t.cleanup != nil {
		t.cleanup()
	}
}

// EventBus is the in-process bus shared by publishers and subscribers.
type EventBus struct {
	*pubsub.WatermillBridge
}

// Shutdown closes the bus, ending every subscription.
func (b *EventBus) Shutdown() error {
	return b.Close()
}

// services registers every core service. Providers are lazy: nothing is
// built until the server or a test asks for it.
func services(ctx context.Context, cfg config.Provider, version string) func(do.Injector) {
	return do.Package(
		do.Eager(cfg),
		do.Lazy(func(i do.Injector) (*Tracing, error) {
			tracer, cleanup, err := pubsub.SetupOTel(ctx, pubsub.TracingConfigFrom(cfg, version))
			if err != nil {
				return nil, fmt.Errorf("failed to set up tracing: %w", err)
			}
			return &Tracing{Tracer: tracer, cleanup: cleanup}, nil
		}),
		do.Lazy(func(i do.Injector) (*EventBus, error) {
			tracing, err := do.Invoke[*Tracing](i)
			if err != nil {
				return nil, err
			}
			return &EventBus{pubsub.NewWatermillBridge(tracing.Tracer)}, nil
		}),
		do.Lazy(func(i do.Injector) (domain.EmailSender, error) {
			return email.NewEmailService(do.MustInvoke[config.Provider](i))
		}),
		do.Lazy(func(i do.Injector) (*rendering.UniversalRenderer, error) {
			return rendering.NewUniversalRenderer(), nil
		}),
		do.Lazy(func(i do.Injector) (*wastedata.Dataset, error) {
			return wastedata.New(), nil
		}),
		do.Lazy(func(i do.Injector) (*notify.Service, error) {
			bus, err := do.Invoke[*EventBus](i)
			if err != nil {
				return nil, err
			}
			sender, err := do.Invoke[domain.EmailSender](i)
			if err != nil {
				return nil, err
			}
			renderer := do.MustInvoke[*rendering.UniversalRenderer](i)
			svc := notify.New(bus, sender, renderer, cfg.GetAppBaseURL())
			if err := svc.Start(ctx); err != nil {
				return nil, err
			}
			return svc, nil
		}),
		do.Lazy(func(i do.Injector) (*server.Server, error) {
			bus, err := do.Invoke[*EventBus](i)
			if err != nil {
				return nil, err
			}
			// The notification service must be listening before the first
			// request can publish.
			if _, err := do.Invoke[*notify.Service](i); err != nil {
				return nil, err
			}
			s, err := server.New(server.Dependencies{
				Config:    cfg,
				Publisher: bus,
				Dataset:   do.MustInvoke[*wastedata.Dataset](i),
				Renderer:  do.MustInvoke[*rendering.UniversalRenderer](i),
			})
			if err != nil {
				return nil, err
			}
			s.RegisterRoutes()
			return s, nil
		}),
	)
}
