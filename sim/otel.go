package sim

import (
	"context"
	"fmt"

	"github.com/automoto/airfighter/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/automoto/airfighter/sim"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// metrics are fed from the frame's events. They use the global provider,
// which is a no-op unless the host installs an SDK.
type metrics struct {
	frames    metric.Int64Counter
	kills     metric.Int64Counter
	pickups   metric.Int64Counter
	livesLost metric.Int64Counter
	bosses    metric.Int64Counter
}

func newMetrics() (*metrics, error) {
	m := meter()
	mt := &metrics{}

	var err error
	mt.frames, err = m.Int64Counter(
		"airfighter.frames",
		metric.WithDescription("Simulated frames"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frames counter: %w", err)
	}

	mt.kills, err = m.Int64Counter(
		"airfighter.enemies.killed",
		metric.WithDescription("Enemies destroyed by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kills counter: %w", err)
	}

	mt.pickups, err = m.Int64Counter(
		"airfighter.drops.picked",
		metric.WithDescription("Drops collected by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pickups counter: %w", err)
	}

	mt.livesLost, err = m.Int64Counter(
		"airfighter.lives.lost",
		metric.WithDescription("Lives lost"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating lives counter: %w", err)
	}

	mt.bosses, err = m.Int64Counter(
		"airfighter.bosses.defeated",
		metric.WithDescription("Boss fights won"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating bosses counter: %w", err)
	}

	return mt, nil
}

func (m *metrics) record(ctx context.Context, e events.Event) {
	switch e.Kind {
	case events.EnemyKilled:
		m.kills.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", e.Enemy.String())))
	case events.ItemPickup:
		m.pickups.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", e.Drop.String())))
	case events.LifeLost:
		m.livesLost.Add(ctx, 1, metric.WithAttributes(attribute.Int("scene", e.Scene)))
	case events.BossDefeated:
		m.bosses.Add(ctx, 1, metric.WithAttributes(attribute.String("boss", e.Boss.String())))
	}
}
