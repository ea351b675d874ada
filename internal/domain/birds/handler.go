package birds

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"bird-service/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/birds", func(br chi.Router) {
		br.Post("/", createBirdHandler(svc, log))
		br.Get("/", listBirdsHandler(svc, log))

		br.Get("/{birdID}", getBirdHandler(svc, log))
		br.Put("/{birdID}", replaceBirdHandler(svc, log))
		br.Patch("/{birdID}", updateBirdHandler(svc, log))
		br.Delete("/{birdID}", deleteBirdHandler(svc, log))
	})
}

// createBirdRequest es el cuerpo para registrar un bird. id es opcional.
type createBirdRequest struct {
	ID      string `json:"id"`
	Species string `json:"species"`
	Size    string `json:"size"`
}

// replaceBirdRequest es el cuerpo de PUT; el id viene del path.
type replaceBirdRequest struct {
	Species string `json:"species"`
	Size    string `json:"size"`
}

type updateBirdRequest struct {
	Species *string `json:"species"`
	Size    *string `json:"size"`
}

// birdResponse representa un bird devuelto por la API.
type birdResponse struct {
	ID      string `json:"id"`
	Species string `json:"species"`
	Size    string `json:"size"`
}

// createBirdHandler godoc
// @Summary Registrar bird
// @Description Guarda un bird. Si no se envía id, el servicio asigna un UUID. Si el id ya existe, el registro se reemplaza.
// @Tags birds
// @Accept json
// @Produce json
// @Param payload body createBirdRequest true "Datos del bird"
// @Success 201 {object} birdResponse
// @Failure 400 {string} string "invalid json"
// @Failure 500 {string} string "internal error"
// @Router /birds [post]
func createBirdHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBirdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b := FromRecord(Record(req))
		saved, err := svc.Save(r.Context(), b)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toBirdResponse(saved))
	}
}

// listBirdsHandler godoc
// @Summary Listar birds
// @Description Devuelve todos los birds ordenados por id.
// @Tags birds
// @Produce json
// @Success 200 {array} birdResponse
// @Failure 500 {string} string "internal error"
// @Router /birds [get]
func listBirdsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := make([]birdResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBirdResponse(b))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getBirdHandler godoc
// @Summary Obtener bird
// @Tags birds
// @Produce json
// @Param birdID path string true "ID del bird"
// @Success 200 {object} birdResponse
// @Failure 404 {string} string "bird not found"
// @Failure 500 {string} string "internal error"
// @Router /birds/{birdID} [get]
func getBirdHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := birdIDParam(w, r)
		if !ok {
			return
		}

		b, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toBirdResponse(b))
	}
}

// replaceBirdHandler godoc
// @Summary Reemplazar bird
// @Description Guarda el bird con el id del path (lo crea si no existe). Un id en el body se ignora.
// @Tags birds
// @Accept json
// @Produce json
// @Param birdID path string true "ID del bird"
// @Param payload body replaceBirdRequest true "Datos del bird"
// @Success 200 {object} birdResponse
// @Failure 400 {string} string "invalid json o invalid bird id"
// @Failure 500 {string} string "internal error"
// @Router /birds/{birdID} [put]
func replaceBirdHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req replaceBirdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id, ok := birdIDParam(w, r)
		if !ok {
			return
		}
		// PUT no genera ids: el del path es la clave.
		if strings.TrimSpace(id) == "" {
			http.Error(w, "invalid bird id", http.StatusBadRequest)
			return
		}

		var b Bird
		b.SetID(id)
		b.SetSpecies(req.Species)
		b.SetSize(req.Size)

		saved, err := svc.Save(r.Context(), b)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toBirdResponse(saved))
	}
}

// updateBirdHandler godoc
// @Summary Actualizar bird
// @Description Actualiza solo los campos enviados. Campos desconocidos devuelven 400.
// @Tags birds
// @Accept json
// @Produce json
// @Param birdID path string true "ID del bird"
// @Param payload body updateBirdRequest true "Campos a modificar"
// @Success 200 {object} birdResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "bird not found"
// @Failure 500 {string} string "internal error"
// @Router /birds/{birdID} [patch]
func updateBirdHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateBirdRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id, ok := birdIDParam(w, r)
		if !ok {
			return
		}

		updated, err := svc.Update(r.Context(), id, UpdateInput(req))
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toBirdResponse(updated))
	}
}

// deleteBirdHandler godoc
// @Summary Eliminar bird
// @Tags birds
// @Param birdID path string true "ID del bird"
// @Success 204
// @Failure 404 {string} string "bird not found"
// @Failure 500 {string} string "internal error"
// @Router /birds/{birdID} [delete]
func deleteBirdHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := birdIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, r, log, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// birdIDParam devuelve el id del path sin escapar.
// chi rutea sobre RawPath cuando existe (p.ej. un id con "%2F"), y ahí el
// parámetro llega escapado.
func birdIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "birdID")
	if r.URL.RawPath == "" {
		return id, true
	}

	id, err := url.PathUnescape(id)
	if err != nil {
		http.Error(w, "invalid bird id", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func toBirdResponse(b Bird) birdResponse {
	return birdResponse(b.Record())
}

// writeError traduce errores del service a status HTTP.
// Lo que no es ErrNotFound se loguea y sale como 500 sin detalle.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "bird not found", http.StatusNotFound)
		return
	}

	log.Error("bird request failed", map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"error":      err.Error(),
	})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
