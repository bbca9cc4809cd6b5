package rest

import "net/http"

func (h *handler) listContent(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.Content.List(r.Context(), collection)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeRaw(w, body)
	}
}

func (h *handler) getContent(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.Content.Get(r.Context(), collection, r.PathValue("id"))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeRaw(w, body)
	}
}
