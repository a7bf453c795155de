package stats

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/naruebet/storefront-admin/internal/interaction"
	"github.com/naruebet/storefront-admin/internal/product"
	"github.com/naruebet/storefront-admin/internal/user"
)

// Engine fetches the three source collections and aggregates them into the
// dashboard payload.
type Engine struct {
	interactions interaction.Repository
	products     product.Repository
	users        user.Repository
	log          *logrus.Entry
}

func NewEngine(interactions interaction.Repository, products product.Repository, users user.Repository) *Engine {
	return &Engine{
		interactions: interactions,
		products:     products,
		users:        users,
		log:          logrus.WithField("component", "stats"),
	}
}

// Snapshot refetches all three collections and recomputes the dashboard from
// scratch, so it can be called any number of times. The fetches run
// concurrently and the errgroup is the barrier: aggregation starts only once
// every collection has arrived, whatever order the responses come back in.
// If any fetch fails the whole snapshot fails; there is no partial result.
func (e *Engine) Snapshot() (Dashboard, error) {
	var (
		ints  []interaction.Interaction
		prods []product.Product
		users []user.User
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		ints, err = e.interactions.List()
		return err
	})
	g.Go(func() error {
		var err error
		prods, err = e.products.List()
		return err
	})
	g.Go(func() error {
		var err error
		users, err = e.users.List()
		return err
	})
	if err := g.Wait(); err != nil {
		e.log.WithError(err).Error("dashboard snapshot failed")
		return Dashboard{}, err
	}

	return Build(ints, prods, users), nil
}
