package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachhub/catalog/internal/repository"
	"github.com/coachhub/catalog/internal/service"
)

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message *string         `json:"message"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (envelope, map[string]json.RawMessage) {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw), "body: %s", rec.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env, raw
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandlers(t *testing.T) (*CreditPackageHandler, *SkillHandler, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	svc := service.NewCatalogService(store, nil, nil, nil, discardLogger())
	return NewCreditPackageHandler(svc, discardLogger()), NewSkillHandler(svc, discardLogger()), store
}

func withTail(r *http.Request, tail string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("*", tail)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":null}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestCreditPackage_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing_name", `{"credit_amount":1,"price":1}`},
		{"blank_name", `{"name":"   ","credit_amount":1,"price":1}`},
		{"numeric_name", `{"name":5,"credit_amount":1,"price":1}`},
		{"fractional_amount", `{"name":"A","credit_amount":1.5,"price":1}`},
		{"negative_price", `{"name":"A","credit_amount":1,"price":-1}`},
		{"string_price", `{"name":"A","credit_amount":1,"price":"1"}`},
		{"name_too_long", `{"name":"` + strings.Repeat("n", 51) + `","credit_amount":1,"price":1}`},
		{"amount_overflows_column", `{"name":"A","credit_amount":2147483648,"price":1}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h, _, store := newHandlers(t)
			rec := httptest.NewRecorder()

			h.Create(rec, post(test.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env, _ := decodeEnvelope(t, rec)
			assert.Equal(t, "failed", env.Status)
			require.NotNil(t, env.Message)
			assert.Equal(t, "欄位未填寫正確", *env.Message)

			list, err := store.ListCreditPackages(context.Background())
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestCreditPackage_CreateMalformedJSONIsServerError(t *testing.T) {
	for _, body := range []string{`{"name":`, ``, `[1,2] x`, `{"name":"A"} trailing`} {
		h, _, _ := newHandlers(t)
		rec := httptest.NewRecorder()

		h.Create(rec, post(body))

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "body %q", body)
		env, _ := decodeEnvelope(t, rec)
		assert.Equal(t, "error", env.Status)
		require.NotNil(t, env.Message)
		assert.Equal(t, "伺服器錯誤", *env.Message)
	}
}

func TestCreate_NonObjectBodyIsInvalidFields(t *testing.T) {
	bodies := []struct {
		name string
		body string
	}{
		{"empty_array", `[]`},
		{"array", `[1,2]`},
		{"string", `"Gold"`},
		{"number", `5`},
		{"bool", `true`},
		{"null", `null`},
	}

	for _, test := range bodies {
		t.Run(test.name, func(t *testing.T) {
			pkgs, skills, store := newHandlers(t)

			for kind, create := range map[string]http.HandlerFunc{
				"credit_package": pkgs.Create,
				"skill":          skills.Create,
			} {
				rec := httptest.NewRecorder()
				create(rec, post(test.body))

				assert.Equal(t, http.StatusBadRequest, rec.Code, kind)
				env, _ := decodeEnvelope(t, rec)
				assert.Equal(t, "failed", env.Status, kind)
				require.NotNil(t, env.Message, kind)
				assert.Equal(t, "欄位未填寫正確", *env.Message, kind)
			}

			ctx := context.Background()
			list, err := store.ListCreditPackages(ctx)
			require.NoError(t, err)
			assert.Empty(t, list)
			skillList, err := store.ListSkills(ctx)
			require.NoError(t, err)
			assert.Empty(t, skillList)
		})
	}
}

func TestCreditPackage_CreateAndDuplicate(t *testing.T) {
	h, _, _ := newHandlers(t)
	body := `{"name":"Gold","credit_amount":10,"price":100}`

	rec := httptest.NewRecorder()
	h.Create(rec, post(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	env, raw := decodeEnvelope(t, rec)
	assert.Equal(t, "success", env.Status)
	assert.NotContains(t, raw, "message")

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Gold", data["name"])
	assert.EqualValues(t, 10, data["credit_amount"])
	assert.EqualValues(t, 100, data["price"])
	assert.NotEmpty(t, data["id"])
	assert.NotEmpty(t, data["createdAt"])

	rec = httptest.NewRecorder()
	h.Create(rec, post(body))
	assert.Equal(t, http.StatusConflict, rec.Code)
	env, _ = decodeEnvelope(t, rec)
	assert.Equal(t, "failed", env.Status)
	assert.Equal(t, "資料重複", *env.Message)
}

func TestCreditPackage_ListEmpty(t *testing.T) {
	h, _, _ := newHandlers(t)
	rec := httptest.NewRecorder()

	h.List(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","data":[]}`, rec.Body.String())
}

func TestCreditPackage_StoreFailure(t *testing.T) {
	h, _, store := newHandlers(t)
	store.Err = errors.New("connection reset")

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	h.Create(rec, post(`{"name":"A","credit_amount":1,"price":1}`))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestSkill_Delete(t *testing.T) {
	_, h, _ := newHandlers(t)

	rec := httptest.NewRecorder()
	h.Create(rec, post(`{"name":"Yoga"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	var created createdSkill
	require.NoError(t, json.Unmarshal(env.Data, &created))

	tests := []struct {
		name    string
		tail    string
		code    int
		message string
	}{
		{"empty_id", "", http.StatusBadRequest, "ID錯誤"},
		{"malformed_id", "not-a-uuid", http.StatusBadRequest, "ID錯誤"},
		{"unknown_id", uuid.NewString(), http.StatusBadRequest, "ID錯誤"},
		{"last_segment_wins", "ignored/" + created.ID, http.StatusOK, ""},
		{"already_deleted", created.ID, http.StatusBadRequest, "ID錯誤"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := withTail(httptest.NewRequest(http.MethodDelete, "/", nil), test.tail)

			h.Delete(rec, req)

			assert.Equal(t, test.code, rec.Code)
			if test.code == http.StatusOK {
				assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
				return
			}
			env, _ := decodeEnvelope(t, rec)
			assert.Equal(t, "failed", env.Status)
			require.NotNil(t, env.Message)
			assert.Equal(t, test.message, *env.Message)
		})
	}
}

// createdSkill mirrors the created skill payload.
type createdSkill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestPathID(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"abc":     "abc",
		"a/b/c":   "c",
		"abc/":    "",
		"x y%20z": "x y%20z",
	}
	for tail, want := range tests {
		req := withTail(httptest.NewRequest(http.MethodDelete, "/", nil), tail)
		assert.Equal(t, want, pathID(req), "tail %q", tail)
	}
}
