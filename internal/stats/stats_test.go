package stats

import (
	"reflect"
	"testing"

	"github.com/naruebet/storefront-admin/internal/datastore"
	"github.com/naruebet/storefront-admin/internal/interaction"
	"github.com/naruebet/storefront-admin/internal/product"
	"github.com/naruebet/storefront-admin/internal/user"
)

func TestTopByCountEmpty(t *testing.T) {
	leaders := TopByCount(nil)
	if len(leaders) != 0 {
		t.Fatalf("expected no leaders for empty input, got %v", leaders)
	}
}

func TestTopByCountTiesArePreserved(t *testing.T) {
	keys := []datastore.ID{"a", "b", "a", "b", "c"}
	leaders := TopByCount(keys)
	if len(leaders) != 2 {
		t.Fatalf("expected 2 tied leaders, got %v", leaders)
	}
	for _, l := range leaders {
		if l.Count != 2 {
			t.Fatalf("expected shared count 2, got %v", l)
		}
	}
	// first-appearance order keeps the result stable for a fixed input
	if leaders[0].Key != "a" || leaders[1].Key != "b" {
		t.Fatalf("unexpected order: %v", leaders)
	}
}

func TestTopByCountSingleLeader(t *testing.T) {
	leaders := TopByCount([]datastore.ID{"x", "y", "x"})
	if len(leaders) != 1 || leaders[0].Key != "x" || leaders[0].Count != 2 {
		t.Fatalf("unexpected leaders: %v", leaders)
	}
}

func TestTopByCountDeterministic(t *testing.T) {
	keys := []datastore.ID{"p3", "p1", "p2", "p1", "p3", "p2"}
	first := TopByCount(keys)
	for i := 0; i < 50; i++ {
		if again := TopByCount(keys); !reflect.DeepEqual(first, again) {
			t.Fatalf("result changed between runs: %v vs %v", first, again)
		}
	}
}

func TestEnrichPreservesCardinalityAndFillsPlaceholders(t *testing.T) {
	ints := []interaction.Interaction{
		{ID: "1", ProductID: "1", UserID: "u1", Type: interaction.TypeLike},
		{ID: "2", ProductID: "999", UserID: "u1", Type: interaction.TypeLike},
		{ID: "3", ProductID: "1", UserID: "ghost", Type: interaction.TypeDislike},
		{ID: "4", ProductID: "999", UserID: "ghost", Type: interaction.TypeDislike},
	}
	prods := []product.Product{{ID: "1", Name: "Widget"}}
	users := []user.User{{ID: "u1", Username: "alice"}}

	out := Enrich(ints, prods, users)
	if len(out) != len(ints) {
		t.Fatalf("expected %d enriched records, got %d", len(ints), len(out))
	}
	if out[0].ProductName != "Widget" || out[0].Username != "alice" {
		t.Fatalf("resolved record wrong: %+v", out[0])
	}
	if out[1].ProductName != UnknownProduct {
		t.Fatalf("dangling product should render placeholder, got %q", out[1].ProductName)
	}
	if out[2].Username != UnknownUser {
		t.Fatalf("dangling user should render placeholder, got %q", out[2].Username)
	}
	if out[3].ProductName != UnknownProduct || out[3].Username != UnknownUser {
		t.Fatalf("doubly dangling record wrong: %+v", out[3])
	}
	// order must follow the input
	for i := range ints {
		if out[i].ID != ints[i].ID {
			t.Fatalf("order not preserved at %d: %+v", i, out[i])
		}
	}
}

func TestBuildExampleDashboard(t *testing.T) {
	ints := []interaction.Interaction{
		{ID: "1", UserID: "u1", ProductID: "1", Type: interaction.TypeLike},
		{ID: "2", UserID: "u2", ProductID: "1", Type: interaction.TypeLike},
		{ID: "3", UserID: "u1", ProductID: "2", Type: interaction.TypeDislike},
	}
	prods := []product.Product{
		{ID: "1", Name: "Widget"},
		{ID: "2", Name: "Gadget"},
	}
	users := []user.User{
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob"},
	}

	d := Build(ints, prods, users)

	if len(d.MostLikedProducts) != 1 || d.MostLikedProducts[0].Name != "Widget" || d.MostLikedProducts[0].Count != 2 {
		t.Fatalf("mostLikedProducts wrong: %+v", d.MostLikedProducts)
	}
	if len(d.MostDislikedProducts) != 1 || d.MostDislikedProducts[0].Name != "Gadget" || d.MostDislikedProducts[0].Count != 1 {
		t.Fatalf("mostDislikedProducts wrong: %+v", d.MostDislikedProducts)
	}
	if len(d.MostActiveUsers) != 1 || d.MostActiveUsers[0].Username != "alice" || d.MostActiveUsers[0].Count != 2 {
		t.Fatalf("mostActiveUsers wrong: %+v", d.MostActiveUsers)
	}
	if len(d.Interactions) != 3 {
		t.Fatalf("expected 3 enriched interactions, got %d", len(d.Interactions))
	}
	if len(d.Users) != 2 {
		t.Fatalf("expected 2 users in the management list, got %d", len(d.Users))
	}
}

func TestBuildBlanksPasswords(t *testing.T) {
	users := []user.User{{ID: "u1", Username: "alice", Password: "secret"}}
	d := Build(nil, nil, users)
	if d.Users[0].Password != "" {
		t.Fatalf("dashboard must not expose passwords: %+v", d.Users[0])
	}
	if users[0].Password != "secret" {
		t.Fatalf("input slice must not be mutated")
	}
}

func TestBuildEmptyCollections(t *testing.T) {
	d := Build(nil, nil, nil)
	if len(d.MostActiveUsers) != 0 || len(d.MostLikedProducts) != 0 || len(d.MostDislikedProducts) != 0 {
		t.Fatalf("empty input must yield empty leaderboards: %+v", d)
	}
	if d.MostActiveUsers == nil || d.Interactions == nil || d.Users == nil {
		t.Fatalf("dashboard slices must be non-nil for JSON rendering")
	}
}

func TestBuildUnknownLeaderNames(t *testing.T) {
	ints := []interaction.Interaction{
		{ID: "1", UserID: "ghost", ProductID: "void", Type: interaction.TypeLike},
	}
	d := Build(ints, nil, nil)
	if d.MostActiveUsers[0].Username != Unknown {
		t.Fatalf("expected Unknown user, got %q", d.MostActiveUsers[0].Username)
	}
	if d.MostLikedProducts[0].Name != Unknown {
		t.Fatalf("expected Unknown product, got %q", d.MostLikedProducts[0].Name)
	}
}

func TestEngineSnapshot(t *testing.T) {
	intsRepo := interaction.NewInMemoryRepository([]interaction.Interaction{
		{ID: "1", UserID: "u1", ProductID: "1", Type: interaction.TypeLike},
	})
	prodRepo := product.NewInMemoryRepository([]product.Product{{ID: "1", Name: "Widget", Price: 10, CategoryID: "1"}})
	userRepo := user.NewInMemoryRepository([]user.User{{ID: "u1", Username: "alice"}})

	e := NewEngine(intsRepo, prodRepo, userRepo)

	d, err := e.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if len(d.MostLikedProducts) != 1 || d.MostLikedProducts[0].Name != "Widget" {
		t.Fatalf("unexpected dashboard: %+v", d)
	}

	// repeat calls recompute from the latest data
	if _, err := intsRepo.Create(interaction.Interaction{UserID: "u1", ProductID: "1", Type: interaction.TypeDislike}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	d, err = e.Snapshot()
	if err != nil {
		t.Fatalf("second snapshot failed: %v", err)
	}
	if len(d.Interactions) != 2 {
		t.Fatalf("expected recompute to see 2 interactions, got %d", len(d.Interactions))
	}
}

func TestEngineSnapshotEmptyInteractions(t *testing.T) {
	e := NewEngine(
		interaction.NewInMemoryRepository(nil),
		product.NewInMemoryRepository([]product.Product{{ID: "1", Name: "Widget"}}),
		user.NewInMemoryRepository([]user.User{{ID: "u1", Username: "alice"}}),
	)
	d, err := e.Snapshot()
	if err != nil {
		t.Fatalf("snapshot with empty interactions must not fail: %v", err)
	}
	if len(d.MostActiveUsers) != 0 || len(d.Interactions) != 0 {
		t.Fatalf("expected empty aggregation, got %+v", d)
	}
}
