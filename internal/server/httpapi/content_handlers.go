package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
)

// Collection is implemented by *services.Catalog.
type Collection[T any] interface {
	List(ctx context.Context, filter models.ListFilter) ([]*T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id string, item *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

type collectionHandlers[T any] struct {
	*handlers
	coll   Collection[T]
	label  string
	plural string
}

// registerCollection mounts list/get publicly and create/update/delete
// behind the bearer middleware.
func registerCollection[T any](api *mux.Router, h *handlers, path, label, plural string, coll Collection[T]) {
	c := &collectionHandlers[T]{handlers: h, coll: coll, label: label, plural: plural}

	sub := api.PathPrefix(path).Subrouter()
	sub.HandleFunc("", c.list).Methods(http.MethodGet)
	sub.HandleFunc("/{id}", c.get).Methods(http.MethodGet)
	sub.Handle("", h.requireAuthFunc(c.create)).Methods(http.MethodPost)
	sub.Handle("/{id}", h.requireAuthFunc(c.update)).Methods(http.MethodPut)
	sub.Handle("/{id}", h.requireAuthFunc(c.delete)).Methods(http.MethodDelete)
}

func (c *collectionHandlers[T]) list(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	items, err := c.coll.List(r.Context(), filter)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, c.plural+" retrieved successfully", items)
}

func (c *collectionHandlers[T]) get(w http.ResponseWriter, r *http.Request) {
	item, err := c.coll.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		c.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, c.label+" retrieved successfully", item)
}

func (c *collectionHandlers[T]) create(w http.ResponseWriter, r *http.Request) {
	item := new(T)
	if err := decodeJSON(w, r, item); err != nil {
		c.writeError(w, r, err)
		return
	}
	created, err := c.coll.Create(r.Context(), item)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, c.label+" created successfully", created)
}

func (c *collectionHandlers[T]) update(w http.ResponseWriter, r *http.Request) {
	item := new(T)
	if err := decodeJSON(w, r, item); err != nil {
		c.writeError(w, r, err)
		return
	}
	updated, err := c.coll.Update(r.Context(), mux.Vars(r)["id"], item)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, c.label+" updated successfully", updated)
}

func (c *collectionHandlers[T]) delete(w http.ResponseWriter, r *http.Request) {
	if err := c.coll.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		c.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, c.label+" deleted successfully", nil)
}

func (c *collectionHandlers[T]) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, common.ErrNotFound) {
		writeFail(w, http.StatusNotFound, c.label+" not found")
		return
	}
	c.writeError(w, r, err)
}

func parseListFilter(r *http.Request) (models.ListFilter, error) {
	var f models.ListFilter
	q := r.URL.Query()
	for name, dst := range map[string]**bool{"published": &f.Published, "featured": &f.Featured} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return f, &common.ValidationError{Field: name, Message: name + " must be true or false"}
		}
		*dst = &v
	}
	return f, nil
}
