package dogs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	msgHello          = "Hello"
	msgRequired       = "name and weight are required"
	msgInvalidBody    = "invalid request body"
	msgListFailed     = "something bad happened"
	msgGetFailed      = "error getting dog by id"
	msgCreateFailed   = "error creating a new dog"
	msgUpdateFailed   = "error updating an existing dog"
	msgDeleteFailed   = "error deleting dog"
	msgNotFoundFormat = "dog by id %s does not exist"
)

const maxBodyBytes = 1 << 20

var errTrailingData = errors.New("unexpected data after JSON value")

// RegisterRoutes monta /hello y el CRUD de /api/dogs sobre r.
// GET /api/dogs se registra una sola vez.
func RegisterRoutes(r chi.Router, store Store, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("dogs")

	r.Get("/hello", helloHandler())

	r.Route("/api/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(store, log))
		dr.Post("/", createDogHandler(store, log))

		dr.Get("/{id}", getDogHandler(store, log))
		dr.Put("/{id}", updateDogHandler(store, log))
		dr.Delete("/{id}", deleteDogHandler(store, log))
	})
}

// createDogRequest es el cuerpo para dar de alta un perro.
// `required` rechaza el zero value: name "" y weight 0 cuentan como faltantes.
type createDogRequest struct {
	Name   string  `json:"name" validate:"required"`
	Weight float64 `json:"weight" validate:"required"`
}

// updateDogRequest es el cuerpo de PUT; se reenvía al Store sin validar.
type updateDogRequest struct {
	Name   *string  `json:"name"`
	Weight *float64 `json:"weight"`
}

// dogResponse representa un perro devuelto por la API.
type dogResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// messageResponse es el cuerpo de /hello y de los 400/404.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse es el cuerpo de los 500: mensaje + error crudo del Store.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// helloHandler godoc
// @Summary Hello
// @Tags misc
// @Produce json
// @Success 200 {object} messageResponse
// @Router /hello [get]
func helloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: msgHello})
	}
}

// listDogsHandler godoc
// @Summary Listar perros
// @Tags dogs
// @Produce json
// @Success 200 {array} dogResponse
// @Failure 500 {object} errorResponse
// @Router /api/dogs [get]
func listDogsHandler(store Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := store.FindAll(r.Context())
		if err != nil {
			storeFailure(w, log, msgListFailed, err)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getDogHandler godoc
// @Summary Obtener perro por id
// @Tags dogs
// @Produce json
// @Param id path string true "ID del perro"
// @Success 200 {object} dogResponse
// @Failure 404 {object} messageResponse
// @Failure 500 {object} errorResponse
// @Router /api/dogs/{id} [get]
func getDogHandler(store Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		d, err := store.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				notFound(w, http.StatusNotFound, id)
				return
			}
			storeFailure(w, log, msgGetFailed, err, zap.String("dog_id", id))
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// createDogHandler godoc
// @Summary Crear perro
// @Description name y weight son obligatorios; weight 0 se considera faltante.
// @Tags dogs
// @Accept json
// @Produce json
// @Param payload body createDogRequest true "Datos del perro"
// @Success 201 {object} dogResponse
// @Failure 400 {object} messageResponse
// @Failure 500 {object} errorResponse
// @Router /api/dogs [post]
func createDogHandler(store Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDogRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgInvalidBody, Error: err.Error()})
			return
		}
		if err := validate.Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgRequired})
			return
		}

		d, err := store.Create(r.Context(), NewDog{Name: req.Name, Weight: req.Weight})
		if err != nil {
			storeFailure(w, log, msgCreateFailed, err)
			return
		}
		writeJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

// updateDogHandler godoc
// @Summary Actualizar perro
// @Description Los campos ausentes no se tocan. Un id inexistente responde 400 (no 404).
// @Tags dogs
// @Accept json
// @Produce json
// @Param id path string true "ID del perro"
// @Param payload body updateDogRequest true "Campos a reemplazar"
// @Success 200 {object} dogResponse
// @Failure 400 {object} messageResponse
// @Failure 500 {object} errorResponse
// @Router /api/dogs/{id} [put]
func updateDogHandler(store Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req updateDogRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgInvalidBody, Error: err.Error()})
			return
		}

		d, err := store.Update(r.Context(), id, Patch{Name: req.Name, Weight: req.Weight})
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				notFound(w, http.StatusBadRequest, id)
				return
			}
			storeFailure(w, log, msgUpdateFailed, err, zap.String("dog_id", id))
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// deleteDogHandler godoc
// @Summary Borrar perro
// @Tags dogs
// @Produce json
// @Param id path string true "ID del perro"
// @Success 200 {object} dogResponse
// @Failure 404 {object} messageResponse
// @Failure 500 {object} errorResponse
// @Router /api/dogs/{id} [delete]
func deleteDogHandler(store Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		d, err := store.Delete(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				notFound(w, http.StatusNotFound, id)
				return
			}
			storeFailure(w, log, msgDeleteFailed, err, zap.String("dog_id", id))
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// decodeBody acepta un único valor JSON de hasta maxBodyBytes; un body vacío se trata como {}.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func notFound(w http.ResponseWriter, status int, id string) {
	writeJSON(w, status, messageResponse{Message: fmt.Sprintf(msgNotFoundFormat, id)})
}

func storeFailure(w http.ResponseWriter, log *zap.Logger, msg string, err error, fields ...zap.Field) {
	log.Error(msg, append(fields, zap.Error(err))...)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: msg, Error: err.Error()})
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:     d.ID,
		Name:   d.Name,
		Weight: d.Weight,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
