package stats

import (
	"github.com/naruebet/storefront-admin/internal/datastore"
	"github.com/naruebet/storefront-admin/internal/interaction"
	"github.com/naruebet/storefront-admin/internal/product"
	"github.com/naruebet/storefront-admin/internal/user"
)

// Placeholder names for interactions whose product or user reference no
// longer resolves. Missing references are rendered, never treated as errors.
const (
	UnknownProduct = "Unknown Product"
	UnknownUser    = "Unknown User"
	Unknown        = "Unknown"
)

// EnrichedInteraction is an interaction with its product and user references
// resolved to display names.
type EnrichedInteraction struct {
	interaction.Interaction
	ProductName string `json:"productName"`
	Username    string `json:"username"`
}

// Leader is one entry of a leaderboard: a grouping key and how often it
// appeared.
type Leader struct {
	Key   datastore.ID
	Count int
}

type UserStat struct {
	Username string `json:"username"`
	Count    int    `json:"count"`
}

type ProductStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Dashboard is the aggregate payload behind the admin dashboard. Users is the
// management list shown next to the leaderboards, passwords blanked.
type Dashboard struct {
	MostActiveUsers      []UserStat            `json:"mostActiveUsers"`
	MostLikedProducts    []ProductStat         `json:"mostLikedProducts"`
	MostDislikedProducts []ProductStat         `json:"mostDislikedProducts"`
	Interactions         []EnrichedInteraction `json:"interactions"`
	Users                []user.User           `json:"users"`
}

// Enrich resolves the product and user reference of every interaction.
// Output preserves input order and cardinality: exactly one record per
// interaction, with placeholders where a reference dangles.
func Enrich(ints []interaction.Interaction, prods []product.Product, users []user.User) []EnrichedInteraction {
	prodNames := make(map[datastore.ID]string, len(prods))
	for _, p := range prods {
		prodNames[p.ID] = p.Name
	}
	userNames := make(map[datastore.ID]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Username
	}

	out := make([]EnrichedInteraction, 0, len(ints))
	for _, it := range ints {
		e := EnrichedInteraction{Interaction: it, ProductName: UnknownProduct, Username: UnknownUser}
		if name, ok := prodNames[it.ProductID]; ok {
			e.ProductName = name
		}
		if name, ok := userNames[it.UserID]; ok {
			e.Username = name
		}
		out = append(out, e)
	}
	return out
}

// TopByCount groups the keys, counts group sizes and returns every key tied
// for the highest count. Ties are genuine ties, never broken arbitrarily.
// Entries come back in first-appearance order so a fixed input always yields
// the same result. An empty input yields an empty result, not a zero-count
// entry.
func TopByCount(keys []datastore.ID) []Leader {
	counts := make(map[datastore.ID]int, len(keys))
	order := make([]datastore.ID, 0, len(keys))
	for _, k := range keys {
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return []Leader{}
	}

	leaders := make([]Leader, 0, 1)
	for _, k := range order {
		if counts[k] == max {
			leaders = append(leaders, Leader{Key: k, Count: max})
		}
	}
	return leaders
}

// Build recomputes the whole dashboard from the three raw collections. It is
// a pure function of its inputs and copes with any of them being empty.
func Build(ints []interaction.Interaction, prods []product.Product, users []user.User) Dashboard {
	prodNames := make(map[datastore.ID]string, len(prods))
	for _, p := range prods {
		prodNames[p.ID] = p.Name
	}
	userNames := make(map[datastore.ID]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Username
	}

	activeKeys := make([]datastore.ID, 0, len(ints))
	likeKeys := make([]datastore.ID, 0, len(ints))
	dislikeKeys := make([]datastore.ID, 0, len(ints))
	for _, it := range ints {
		activeKeys = append(activeKeys, it.UserID)
		switch it.Type {
		case interaction.TypeLike:
			likeKeys = append(likeKeys, it.ProductID)
		case interaction.TypeDislike:
			dislikeKeys = append(dislikeKeys, it.ProductID)
		}
	}

	d := Dashboard{
		MostActiveUsers:      make([]UserStat, 0, 1),
		MostLikedProducts:    make([]ProductStat, 0, 1),
		MostDislikedProducts: make([]ProductStat, 0, 1),
		Interactions:         Enrich(ints, prods, users),
		Users:                make([]user.User, 0, len(users)),
	}
	for _, u := range users {
		u.Password = ""
		d.Users = append(d.Users, u)
	}

	for _, l := range TopByCount(activeKeys) {
		name := Unknown
		if n, ok := userNames[l.Key]; ok {
			name = n
		}
		d.MostActiveUsers = append(d.MostActiveUsers, UserStat{Username: name, Count: l.Count})
	}
	for _, l := range TopByCount(likeKeys) {
		d.MostLikedProducts = append(d.MostLikedProducts, ProductStat{Name: productName(prodNames, l.Key), Count: l.Count})
	}
	for _, l := range TopByCount(dislikeKeys) {
		d.MostDislikedProducts = append(d.MostDislikedProducts, ProductStat{Name: productName(prodNames, l.Key), Count: l.Count})
	}
	return d
}

func productName(names map[datastore.ID]string, id datastore.ID) string {
	if name, ok := names[id]; ok {
		return name
	}
	return Unknown
}
