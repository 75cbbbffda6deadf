// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_packages/internal/app"
	"hotel_packages/internal/domain"
)

const maxBody = 1 << 20

type Handlers struct{ G *app.Generator }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type generateRequest struct {
	domain.Form
	Copy bool `json:"copy"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/packages", h.generate)
	s.mux.Post("/v1/packages/html", h.generateHTML)
	s.mux.Post("/v1/clipboard", h.writeClip)
	s.mux.Get("/v1/clipboard/{id}", h.readClip)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// weakETag hashes the body the same way for every cached read.
func weakETag(body []byte) string {
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}

func decode(r *http.Request, dst any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(dst)
}

func (h *Handlers) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid form", err.Error())
		return
	}
	res := h.G.Generate(req.Form)
	if res.ErrorMessage != nil {
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	if req.Copy {
		h.G.Copy(r.Context(), &res)
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) generateHTML(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid form", err.Error())
		return
	}
	res := h.G.Generate(req.Form)
	if res.ErrorMessage == nil && req.Copy {
		h.G.Copy(r.Context(), &res)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if res.ErrorMessage != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	if err := RenderHTML(w, res); err != nil {
		log.Error().Err(err).Msg("render packages html failed")
	}
}

func (h *Handlers) writeClip(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decode(r, &req); err != nil || req.Text == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid clip", "text is required")
		return
	}
	res := domain.Result{Rendering: domain.Rendering{CopyText: req.Text}}
	h.G.Copy(r.Context(), &res)
	if res.ClipID == "" {
		writeProblem(w, http.StatusServiceUnavailable, "Clipboard unavailable", res.Notice)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": res.ClipID})
}

func (h *Handlers) readClip(w http.ResponseWriter, r *http.Request) {
	text, err := h.G.Clip(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrClipNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "clip not found or expired")
		return
	}
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Clipboard unavailable", err.Error())
		return
	}

	body := []byte(text)
	etag := weakETag(body)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write clip body")
	}
}
