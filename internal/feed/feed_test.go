package feed

import (
	"math"
	"testing"

	"mark3tsim/internal/models"
)

func TestSnapshot_JitterBounds(t *testing.T) {
	snapshot := Snapshot()
	if len(snapshot) != len(assetPool) {
		t.Fatalf("expected %d assets, got %d", len(assetPool), len(snapshot))
	}

	for i, asset := range snapshot {
		base := assetPool[i]
		if asset.ID != base.ID {
			t.Errorf("asset %d: expected id %s, got %s", i, base.ID, asset.ID)
		}

		ratio := asset.CurrentPrice / base.CurrentPrice
		if ratio < 1-snapshotPriceJitter/2 || ratio > 1+snapshotPriceJitter/2 {
			t.Errorf("%s: price ratio %f outside jitter bounds", asset.ID, ratio)
		}
		if math.Abs(asset.Change24h-base.Change24h) > snapshotChangeJitter/2 {
			t.Errorf("%s: change24h moved by %f, beyond jitter bounds", asset.ID, asset.Change24h-base.Change24h)
		}
	}
}

func TestSnapshot_DoesNotMutatePool(t *testing.T) {
	before := assetPool[0].CurrentPrice
	Snapshot()
	if assetPool[0].CurrentPrice != before {
		t.Fatalf("snapshot mutated the static pool")
	}
}

func TestAssetByID(t *testing.T) {
	asset, ok := AssetByID("sim-btc")
	if !ok {
		t.Fatal("expected sim-btc to exist")
	}
	if asset.Symbol != "BTC" {
		t.Errorf("expected symbol BTC, got %s", asset.Symbol)
	}

	if _, ok := AssetByID("sim-nothing"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestTopMovers(t *testing.T) {
	movers := TopMovers(3)
	if len(movers) != 3 {
		t.Fatalf("expected 3 movers, got %d", len(movers))
	}
	for i := 1; i < len(movers); i++ {
		if math.Abs(movers[i].Change24h) > math.Abs(movers[i-1].Change24h) {
			t.Errorf("movers not sorted by absolute change at index %d", i)
		}
	}

	all := TopMovers(0)
	if len(all) != len(assetPool) {
		t.Errorf("limit 0 should return the full catalog, got %d", len(all))
	}
}

func TestHighVolatility(t *testing.T) {
	volatile := HighVolatility(10)
	if len(volatile) == 0 {
		t.Fatal("expected at least one high-volatility asset")
	}
	for _, asset := range volatile {
		if asset.Volatility != models.VolatilityHigh && asset.Volatility != models.VolatilityExtreme {
			t.Errorf("%s: unexpected volatility %s", asset.ID, asset.Volatility)
		}
	}

	if got := HighVolatility(2); len(got) != 2 {
		t.Errorf("expected limit of 2, got %d", len(got))
	}
}

func TestBySource(t *testing.T) {
	assets := BySource(models.SourceStakez)
	if len(assets) == 0 {
		t.Fatal("expected assets for stak3z source")
	}
	for _, asset := range assets {
		if asset.Source != models.SourceStakez {
			t.Errorf("%s: unexpected source %s", asset.ID, asset.Source)
		}
	}
}

func TestEvents(t *testing.T) {
	events := Events(8)
	if len(events) != 8 {
		t.Fatalf("expected 8 events, got %d", len(events))
	}

	known := make(map[string]bool)
	for _, template := range eventTemplates {
		known[template.Type] = true
	}

	for i, event := range events {
		if event.ID == "" {
			t.Errorf("event %d: missing id", i)
		}
		if !known[event.Type] {
			t.Errorf("event %d: unknown type %s", i, event.Type)
		}
		if i > 0 && events[i-1].Timestamp < event.Timestamp {
			t.Errorf("events not sorted newest first at index %d", i)
		}
	}
}
