package chi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kailas-cloud/hbnb/internal/db/memory"
	"github.com/kailas-cloud/hbnb/internal/domain"
	"github.com/kailas-cloud/hbnb/internal/repository/entity"
	"github.com/kailas-cloud/hbnb/internal/repository/keyspace"
	"github.com/kailas-cloud/hbnb/internal/repository/relation"
	amenityuc "github.com/kailas-cloud/hbnb/internal/usecase/amenity"
	"github.com/kailas-cloud/hbnb/internal/usecase/cascade"
	cityuc "github.com/kailas-cloud/hbnb/internal/usecase/city"
	healthuc "github.com/kailas-cloud/hbnb/internal/usecase/health"
	placeuc "github.com/kailas-cloud/hbnb/internal/usecase/place"
	reviewuc "github.com/kailas-cloud/hbnb/internal/usecase/review"
	searchuc "github.com/kailas-cloud/hbnb/internal/usecase/search"
	stateuc "github.com/kailas-cloud/hbnb/internal/usecase/state"
	statsuc "github.com/kailas-cloud/hbnb/internal/usecase/stats"
	useruc "github.com/kailas-cloud/hbnb/internal/usecase/user"
)

type testAPI struct {
	t       *testing.T
	handler http.Handler
}

// newTestAPI serves the full router over an in-memory store. The clock
// advances one millisecond per call so creation order is deterministic.
func newTestAPI(t *testing.T, opts RouterOptions) *testAPI {
	t.Helper()
	st := memory.NewStore()
	keys := keyspace.New("test:")
	set := entity.NewSet(st, keys)
	rels := relation.New(st, keys)

	tick := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Millisecond)
		return tick
	}

	del := cascade.New(set.States, set.Cities, set.Places, set.Amenities, set.Users, set.Reviews, rels)
	svc := Services{
		States:    stateuc.New(set.States, del).WithClock(clock),
		Cities:    cityuc.New(set.Cities, set.States, rels, del).WithClock(clock),
		Amenities: amenityuc.New(set.Amenities, del).WithClock(clock),
		Users:     useruc.New(set.Users, del).WithHashCost(bcrypt.MinCost).WithClock(clock),
		Places:    placeuc.New(set.Places, set.Cities, set.Users, set.Amenities, rels, del).WithClock(clock),
		Reviews:   reviewuc.New(set.Reviews, set.Places, set.Users, rels, del).WithClock(clock),
		Search: searchuc.NewInstrumentedSearcher(
			searchuc.New(set.Places, set.States, set.Cities, rels), zap.NewNop()),
		Stats: statsuc.New(map[domain.Kind]statsuc.Counter{
			domain.KindAmenity: set.Amenities,
			domain.KindCity:    set.Cities,
			domain.KindPlace:   set.Places,
			domain.KindReview:  set.Reviews,
			domain.KindState:   set.States,
			domain.KindUser:    set.Users,
		}),
		Health: healthuc.New(st),
	}
	return &testAPI{t: t, handler: NewRouter(NewServer(svc, zap.NewNop()), opts)}
}

// do sends a request. body may be nil, a raw string or a value to encode.
func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			a.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, APIPrefix+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

// expect sends a request, checks the status and decodes the body into out.
func (a *testAPI) expect(method, path string, body any, status int, out any) {
	a.t.Helper()
	rr := a.do(method, path, body)
	if rr.Code != status {
		a.t.Fatalf("%s %s: status %d, want %d (body %s)", method, path, rr.Code, status, rr.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
			a.t.Fatalf("%s %s: decode %q: %v", method, path, rr.Body.String(), err)
		}
	}
}

// create POSTs body and returns the new object's id.
func (a *testAPI) create(path string, body any) string {
	a.t.Helper()
	var obj map[string]any
	a.expect(http.MethodPost, path, body, http.StatusCreated, &obj)
	id, _ := obj["id"].(string)
	if id == "" {
		a.t.Fatalf("POST %s: no id in %v", path, obj)
	}
	return id
}

func (a *testAPI) errorMessage(rr *httptest.ResponseRecorder) string {
	a.t.Helper()
	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		a.t.Fatalf("decode error body %q: %v", rr.Body.String(), err)
	}
	return resp.Error
}

func ids(objs []map[string]any) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		id, _ := o["id"].(string)
		out = append(out, id)
	}
	return out
}
