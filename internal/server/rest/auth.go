package rest

import (
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	token, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access_token": token}, h.logger)
}

func (h *handler) me(w http.ResponseWriter, r *http.Request) {
	email, _ := EmailFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"email": email}, h.logger)
}

// userEntries lists authorization records. ?email= narrows the result to
// at most one record; the response is an array either way.
func (h *handler) userEntries(w http.ResponseWriter, r *http.Request) {
	records, err := h.UserEntries.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records, h.logger)
}
