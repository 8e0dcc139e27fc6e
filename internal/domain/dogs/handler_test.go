package dogs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"dogs-api/internal/domain/dogs"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fake store
// -------------------------

type fakeStore struct {
	mu    sync.Mutex
	byID  map[string]dogs.Dog
	order []string
	seq   int
	fail  error
	calls map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: map[string]dogs.Dog{}, calls: map[string]int{}}
}

func (s *fakeStore) hit(op string) error {
	s.calls[op]++
	return s.fail
}

func (s *fakeStore) FindAll(ctx context.Context) ([]dogs.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.hit("find_all"); err != nil {
		return nil, err
	}
	out := make([]dogs.Dog, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

func (s *fakeStore) FindByID(ctx context.Context, id string) (dogs.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.hit("find_by_id"); err != nil {
		return dogs.Dog{}, err
	}
	d, ok := s.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return d, nil
}

func (s *fakeStore) Create(ctx context.Context, in dogs.NewDog) (dogs.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.hit("create"); err != nil {
		return dogs.Dog{}, err
	}
	s.seq++
	d := dogs.Dog{ID: strconv.Itoa(s.seq), Name: in.Name, Weight: in.Weight}
	s.byID[d.ID] = d
	s.order = append(s.order, d.ID)
	return d, nil
}

func (s *fakeStore) Update(ctx context.Context, id string, p dogs.Patch) (dogs.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.hit("update"); err != nil {
		return dogs.Dog{}, err
	}
	d, ok := s.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	d = p.Apply(d)
	s.byID[id] = d
	return d, nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) (dogs.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.hit("delete"); err != nil {
		return dogs.Dog{}, err
	}
	d, ok := s.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return d, nil
}

// -------------------------
// Helpers
// -------------------------

type dogBody struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

type msgBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newTestRouter(store dogs.Store) http.Handler {
	r := chi.NewRouter()
	dogs.RegisterRoutes(r, store, nil)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body=%s", w.Body.String())
	return out
}

func create(t *testing.T, h http.Handler, name string, weight float64) dogBody {
	t.Helper()
	b, err := json.Marshal(map[string]any{"name": name, "weight": weight})
	require.NoError(t, err)
	w := do(t, h, http.MethodPost, "/api/dogs", string(bytes.TrimSpace(b)))
	require.Equal(t, http.StatusCreated, w.Code, "body=%s", w.Body.String())
	return decode[dogBody](t, w)
}

// -------------------------
// Tests
// -------------------------

func TestHello(t *testing.T) {
	h := newTestRouter(newFakeStore())

	w := do(t, h, http.MethodGet, "/hello", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "Hello", decode[msgBody](t, w).Message)
}

func TestList_EmptyIsArray(t *testing.T) {
	h := newTestRouter(newFakeStore())

	w := do(t, h, http.MethodGet, "/api/dogs", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestList_ReturnsCreated(t *testing.T) {
	h := newTestRouter(newFakeStore())
	a := create(t, h, "Rex", 12.5)
	b := create(t, h, "Luna", 7)

	w := do(t, h, http.MethodGet, "/api/dogs", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []dogBody{a, b}, decode[[]dogBody](t, w))
}

func TestCreate_EchoesNameAndWeight(t *testing.T) {
	h := newTestRouter(newFakeStore())

	d := create(t, h, "Rex", 30)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Rex", d.Name)
	assert.Equal(t, 30.0, d.Weight)
}

func TestCreate_MissingFieldsNeverReachStore(t *testing.T) {
	cases := map[string]string{
		"empty body":     ``,
		"empty object":   `{}`,
		"missing name":   `{"weight": 10}`,
		"empty name":     `{"name": "", "weight": 10}`,
		"null name":      `{"name": null, "weight": 10}`,
		"missing weight": `{"name": "Rex"}`,
		"null weight":    `{"name": "Rex", "weight": null}`,
		"zero weight":    `{"name": "Rex", "weight": 0}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			store := newFakeStore()
			h := newTestRouter(store)

			w := do(t, h, http.MethodPost, "/api/dogs", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "name and weight are required", decode[msgBody](t, w).Message)
			assert.Zero(t, store.calls["create"])
		})
	}
}

func TestCreate_InvalidJSON(t *testing.T) {
	store := newFakeStore()
	h := newTestRouter(store)

	w := do(t, h, http.MethodPost, "/api/dogs", `{"name": "Rex", "weight": "heavy"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[msgBody](t, w)
	assert.Equal(t, "invalid request body", body.Message)
	assert.NotEmpty(t, body.Error)
	assert.Zero(t, store.calls["create"])
}

func TestCreateAndUpdate_RejectMalformedBodies(t *testing.T) {
	bodies := map[string]string{
		"syntax error":     `{"name": "Rex", "weight": 3`,
		"trailing garbage": `{"name": "Rex", "weight": 3} trailing garbage`,
		"second value":     `{"name": "Rex", "weight": 3} {"name": "Max"}`,
		"oversized":        `{"name": "` + strings.Repeat("x", 2<<20) + `", "weight": 3}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			store := newFakeStore()
			h := newTestRouter(store)
			d := create(t, h, "Rex", 30)

			w := do(t, h, http.MethodPost, "/api/dogs", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid request body", decode[msgBody](t, w).Message)
			assert.Equal(t, 1, store.calls["create"])

			w = do(t, h, http.MethodPut, "/api/dogs/"+d.ID, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid request body", decode[msgBody](t, w).Message)
			assert.Zero(t, store.calls["update"])
		})
	}
}

func TestCreate_TrailingWhitespaceIsAccepted(t *testing.T) {
	h := newTestRouter(newFakeStore())

	w := do(t, h, http.MethodPost, "/api/dogs", "{\"name\": \"Rex\", \"weight\": 3}\n\n")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGet_FoundAndNotFound(t *testing.T) {
	h := newTestRouter(newFakeStore())
	d := create(t, h, "Rex", 30)

	w := do(t, h, http.MethodGet, "/api/dogs/"+d.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, d, decode[dogBody](t, w))

	w = do(t, h, http.MethodGet, "/api/dogs/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "dog by id nope does not exist", decode[msgBody](t, w).Message)
}

func TestDelete_TwiceReturns200Then404(t *testing.T) {
	h := newTestRouter(newFakeStore())
	d := create(t, h, "Rex", 30)

	w := do(t, h, http.MethodDelete, "/api/dogs/"+d.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, d, decode[dogBody](t, w))

	w = do(t, h, http.MethodDelete, "/api/dogs/"+d.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "dog by id "+d.ID+" does not exist", decode[msgBody](t, w).Message)
}

func TestUpdate_UnknownIDIs400(t *testing.T) {
	h := newTestRouter(newFakeStore())

	w := do(t, h, http.MethodPut, "/api/dogs/ghost", `{"weight": 3}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "dog by id ghost does not exist", decode[msgBody](t, w).Message)
}

func TestUpdate_PartialPayloadThenGetReflectsIt(t *testing.T) {
	h := newTestRouter(newFakeStore())
	d := create(t, h, "Rex", 30)

	w := do(t, h, http.MethodPut, "/api/dogs/"+d.ID, `{"weight": 31.5}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[dogBody](t, w)
	assert.Equal(t, dogBody{ID: d.ID, Name: "Rex", Weight: 31.5}, updated)

	w = do(t, h, http.MethodGet, "/api/dogs/"+d.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, updated, decode[dogBody](t, w))
}

func TestUpdate_DoesNotValidateFields(t *testing.T) {
	store := newFakeStore()
	h := newTestRouter(store)
	d := create(t, h, "Rex", 30)

	w := do(t, h, http.MethodPut, "/api/dogs/"+d.ID, `{"weight": 0}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.0, decode[dogBody](t, w).Weight)
	assert.Equal(t, 1, store.calls["update"])
}

func TestStoreFailures_Return500AndKeepServing(t *testing.T) {
	cases := []struct {
		name    string
		method  string
		path    string
		body    string
		message string
	}{
		{"list", http.MethodGet, "/api/dogs", "", "something bad happened"},
		{"get", http.MethodGet, "/api/dogs/1", "", "error getting dog by id"},
		{"create", http.MethodPost, "/api/dogs", `{"name":"Rex","weight":1}`, "error creating a new dog"},
		{"update", http.MethodPut, "/api/dogs/1", `{"name":"Max"}`, "error updating an existing dog"},
		{"delete", http.MethodDelete, "/api/dogs/1", "", "error deleting dog"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			h := newTestRouter(store)
			store.fail = errors.New("connection refused")

			w := do(t, h, tc.method, tc.path, tc.body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			body := decode[msgBody](t, w)
			assert.Equal(t, tc.message, body.Message)
			assert.Equal(t, "connection refused", body.Error)

			store.fail = nil
			w = do(t, h, http.MethodGet, "/hello", "")
			assert.Equal(t, http.StatusOK, w.Code)
			w = do(t, h, http.MethodGet, "/api/dogs", "")
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
