package rest

import (
	"net/http"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/models"
)

// orderID takes the id from the path and falls back to ?id=.
func orderID(r *http.Request) string {
	if id := r.PathValue("id"); id != "" {
		return id
	}
	return r.URL.Query().Get("id")
}

// findOrders treats every query parameter as a field=value equality filter.
func (h *handler) findOrders(w http.ResponseWriter, r *http.Request) {
	filter := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			filter[k] = v[0]
		}
	}

	docs, err := h.Orders.Find(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs, h.logger)
}

func (h *handler) getOrder(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Orders.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc, h.logger)
}

func (h *handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := decodeBody(w, r, &doc); err != nil {
		h.fail(w, r, err)
		return
	}

	id, err := h.Orders.Create(r.Context(), doc)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"insertedId": id}, h.logger)
}

func (h *handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var set models.Document
	if err := decodeBody(w, r, &set); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.Orders.Update(r.Context(), orderID(r), set)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res, h.logger)
}

func (h *handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	n, err := h.Orders.Delete(r.Context(), orderID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": n}, h.logger)
}
