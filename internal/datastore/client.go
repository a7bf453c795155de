package datastore

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/sirupsen/logrus"
)

// Collection names exposed by the backing REST store.
const (
	Products     = "products"
	Categories   = "categories"
	Users        = "users"
	Interactions = "interactions"
)

// ErrNotFound is returned when the store answers 404 for a record.
var ErrNotFound = errors.New("record not found")

// Client issues CRUD requests against a generic json-server style REST store.
// Every collection supports list, get-by-id, create, full-replace update and
// delete; list additionally supports filtering by query parameters. The
// request timeout configured here is the only timeout in the system.
type Client struct {
	base    string
	timeout time.Duration
	log     *logrus.Entry
}

func NewClient(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:    strings.TrimRight(base, "/"),
		timeout: timeout,
		log:     logrus.WithField("component", "datastore"),
	}
}

func (c *Client) url(parts ...string) string {
	return c.base + "/" + strings.Join(parts, "/")
}

// List fetches a whole collection into out.
func (c *Client) List(collection string, out interface{}) error {
	var code int
	err := gout.GET(c.url(collection)).
		SetTimeout(c.timeout).
		Code(&code).
		BindJSON(out).
		Do()
	return c.check("list "+collection, code, err)
}

// Query fetches a collection filtered by query parameters, e.g. the
// credentials lookup on users or the per-pair lookup on interactions.
func (c *Client) Query(collection string, params map[string]string, out interface{}) error {
	q := gout.H{}
	for k, v := range params {
		q[k] = v
	}
	var code int
	err := gout.GET(c.url(collection)).
		SetTimeout(c.timeout).
		SetQuery(q).
		Code(&code).
		BindJSON(out).
		Do()
	return c.check("query "+collection, code, err)
}

// Get fetches a single record by id.
func (c *Client) Get(collection string, id ID, out interface{}) error {
	var code int
	err := gout.GET(c.url(collection, id.String())).
		SetTimeout(c.timeout).
		Code(&code).
		BindJSON(out).
		Do()
	return c.check("get "+collection, code, err)
}

// Create posts a new record; the created record, including the id the store
// assigned, is decoded into out when out is non-nil.
func (c *Client) Create(collection string, body, out interface{}) error {
	df := gout.POST(c.url(collection)).
		SetTimeout(c.timeout).
		SetJSON(body)
	var code int
	df = df.Code(&code)
	if out != nil {
		df = df.BindJSON(out)
	}
	return c.check("create "+collection, code, df.Do())
}

// Update replaces a record wholesale (PUT).
func (c *Client) Update(collection string, id ID, body, out interface{}) error {
	df := gout.PUT(c.url(collection, id.String())).
		SetTimeout(c.timeout).
		SetJSON(body)
	var code int
	df = df.Code(&code)
	if out != nil {
		df = df.BindJSON(out)
	}
	return c.check("update "+collection, code, df.Do())
}

// Delete removes a record by id.
func (c *Client) Delete(collection string, id ID) error {
	var code int
	err := gout.DELETE(c.url(collection, id.String())).
		SetTimeout(c.timeout).
		Code(&code).
		Do()
	return c.check("delete "+collection, code, err)
}

func (c *Client) check(op string, code int, err error) error {
	if err != nil {
		c.log.WithError(err).Error(op)
		return fmt.Errorf("datastore: %s: %w", op, err)
	}
	if code == http.StatusNotFound {
		return ErrNotFound
	}
	if code < 200 || code > 299 {
		c.log.WithField("status", code).Error(op)
		return fmt.Errorf("datastore: %s: unexpected status %d", op, code)
	}
	return nil
}
