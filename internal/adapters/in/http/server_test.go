package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	httpadapter "shippinglabel/internal/adapters/in/http"
	"shippinglabel/internal/adapters/out/memory/statestore"
	"shippinglabel/internal/core/application/usecases/commands"
	"shippinglabel/internal/core/application/usecases/queries"
	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/label"
	"shippinglabel/internal/core/domain/services"
	"shippinglabel/internal/core/ports"
	"shippinglabel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryLabels is an in-memory label repository; its units of work commit
// immediately.
type memoryLabels struct {
	mu     sync.Mutex
	labels map[kernel.OrderID][]label.Record
}

func (m *memoryLabels) Save(_ context.Context, orderID kernel.OrderID, labels []label.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range labels {
		stored := m.labels[orderID]
		if i := label.IndexOf(stored, l.LabelID); i >= 0 {
			stored[i] = l.Clone()
			continue
		}
		m.labels[orderID] = append(stored, l.Clone())
	}
	return nil
}

func (m *memoryLabels) GetByOrder(_ context.Context, orderID kernel.OrderID) ([]label.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return label.CloneAll(m.labels[orderID]), nil
}

func (m *memoryLabels) Get(_ context.Context, orderID kernel.OrderID, labelID string) (label.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := label.IndexOf(m.labels[orderID], labelID); i >= 0 {
		return m.labels[orderID][i].Clone(), nil
	}
	return label.Record{}, errs.NewObjectNotFoundError("label", labelID)
}

func (m *memoryLabels) Begin(context.Context) error { return nil }
func (m *memoryLabels) Commit(context.Context) error { return nil }
func (m *memoryLabels) Rollback(context.Context) error { return nil }
func (m *memoryLabels) LabelRepository() ports.LabelRepository { return m }
func (m *memoryLabels) Create() commands.LabelUoW { return m }

// labelsReader adapts memoryLabels to the labels query.
type labelsReader struct {
	repo *memoryLabels
	err  error
}

func (r labelsReader) Handle(
	ctx context.Context,
	query queries.GetOrderLabelsQuery,
) ([]queries.GetOrderLabelsQueryResponse, error) {
	if r.err != nil {
		return nil, r.err
	}
	labels, _ := r.repo.GetByOrder(ctx, query.OrderID())
	out := make([]queries.GetOrderLabelsQueryResponse, 0, len(labels))
	for _, l := range labels {
		out = append(out, queries.GetOrderLabelsQueryResponse{LabelID: l.LabelID, Status: l.Status, ProductNames: []string{}})
	}
	return out, nil
}

type fixture struct {
	echo   *echo.Echo
	labels *memoryLabels
	reader *labelsReader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	doc, err := httpadapter.LoadAPI(t.Context())
	require.NoError(t, err)
	require.NoError(t, httpadapter.RegisterDoc(doc))
	validator, err := httpadapter.RequestValidator(doc)
	require.NoError(t, err)

	labels := &memoryLabels{labels: make(map[kernel.OrderID][]label.Record)}
	reader := &labelsReader{repo: labels}
	store := statestore.New()
	reducer := services.NewLabelReducer(nil)

	server := httpadapter.NewServer(
		commands.NewInitOrderLabelsCommandHandler(store, reducer, labels),
		commands.NewDispatchActionCommandHandler(store, reducer, labels),
		queries.NewGetOrderLabelStateQueryHandler(store),
		reader,
		slogDiscard(),
	)

	e := echo.New()
	httpadapter.Register(e, server, validator)
	return &fixture{echo: e, labels: labels, reader: reader}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

const initBody = `{
	"formData": {
		"origin": {"country": "US", "state": "NY"},
		"destination": {"country": "US", "state": "CA"},
		"selected_packages": [
			{"id": "box_1", "box_id": "medium", "weight": 1, "items": [{"product_id": 1, "name": "Mug", "weight": 1}]}
		]
	},
	"paperSize": "label",
	"enabled": true
}`

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var state map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state), rec.Body.String())
	return state
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_InitAndDispatch(t *testing.T) {
	f := newFixture(t)
	orderID := kernel.NewOrderID()
	base := "/api/v1/orders/" + orderID.String()

	rec := f.do(t, http.MethodPost, base+"/labels/init", initBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	state := decodeState(t, rec)
	assert.Equal(t, true, state["loaded"])
	assert.Equal(t, "label", state["paperSize"])

	rec = f.do(t, http.MethodPost, base+"/actions", `{"type":"addPackage"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	state = decodeState(t, rec)
	assert.Equal(t, "client_custom_0", state["addedPackageId"])

	rec = f.do(t, http.MethodGet, base+"/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client_custom_0", decodeState(t, rec)["addedPackageId"])
}

func TestServer_PurchasePersistsLabels(t *testing.T) {
	f := newFixture(t)
	orderID := kernel.NewOrderID()
	base := "/api/v1/orders/" + orderID.String()

	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, base+"/labels/init", initBody).Code)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, base+"/actions", `{"type":"purchaseRequest"}`).Code)

	rec := f.do(t, http.MethodPost, base+"/actions",
		`{"type":"purchaseResponse","response":[{"label_id":"L1","status":"PURCHASED","created_date":7}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := f.labels.GetByOrder(t.Context(), orderID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "L1", stored[0].LabelID)

	rec = f.do(t, http.MethodGet, base+"/labels", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var history []httpadapter.StoredLabel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "PURCHASED", history[0].Status)
}

func TestServer_InitUsesStoredLabels(t *testing.T) {
	f := newFixture(t)
	orderID := kernel.NewOrderID()
	require.NoError(t, f.labels.Save(t.Context(), orderID, []label.Record{{LabelID: "OLD", CreatedDate: 1}}))

	rec := f.do(t, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/labels/init", initBody)
	require.Equal(t, http.StatusOK, rec.Code)

	labels, ok := decodeState(t, rec)["labels"].([]any)
	require.True(t, ok)
	require.Len(t, labels, 1)
}

func TestServer_UnknownOrderState(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/v1/orders/"+kernel.NewOrderID().String()+"/state", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RejectsBadRequests(t *testing.T) {
	f := newFixture(t)
	base := "/api/v1/orders/" + kernel.NewOrderID().String()

	testCases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"invalid order id", http.MethodGet, "/api/v1/orders/not-a-uuid/state", ""},
		{"unknown action type", http.MethodPost, base + "/actions", `{"type":"launchRocket"}`},
		{"missing action type", http.MethodPost, base + "/actions", `{"labelId":"L1"}`},
		{"malformed action", http.MethodPost, base + "/actions", `{"type":"openItemMove","movedItemIndex":"x"}`},
		{"init without form data", http.MethodPost, base + "/labels/init", `{"paperSize":"label"}`},
		{"negative payment methods", http.MethodPost, base + "/labels/init", `{"formData":{},"numPaymentMethods":-1}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(t, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var body httpadapter.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, http.StatusBadRequest, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestServer_InternalErrorsAreNotLeaked(t *testing.T) {
	f := newFixture(t)
	f.reader.err = errors.New("connection refused by 10.0.0.5")

	rec := f.do(t, http.MethodGet, "/api/v1/orders/"+kernel.NewOrderID().String()+"/labels", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestServer_SwaggerDoc(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dispatchAction")
}

func TestOpenAPI_ActionEnumMatchesVocabulary(t *testing.T) {
	doc, err := httpadapter.LoadAPI(t.Context())
	require.NoError(t, err)

	schema := doc.Components.Schemas["Action"].Value.Properties["type"].Value
	names := make([]string, 0, len(schema.Enum))
	for _, v := range schema.Enum {
		names = append(names, v.(string))
	}

	want := make([]string, 0)
	for _, typ := range action.Types() {
		want = append(want, typ.String())
	}
	assert.ElementsMatch(t, want, names)
}
