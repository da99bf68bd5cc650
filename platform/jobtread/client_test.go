package jobtread

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sidebar_backend/platform/apperr"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(Config{APIURL: srv.URL}), srv
}

func TestQueryAttachesBearerCredential(t *testing.T) {
	var gotAuth string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{"ok":true}}`))
	})
	defer srv.Close()

	if err := client.Query(context.Background(), "grant-key-123", Request{Query: "query { ok }"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer grant-key-123" {
		t.Fatalf("expected bearer credential, got %q", gotAuth)
	}
}

func TestQueryDecodesDataPayload(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"jobs":{"data":[{"id":"j1","name":"Roof","status":"LEAD"}]}}}`))
	})
	defer srv.Close()

	var out struct {
		Jobs struct {
			Data []RawJob `json:"data"`
		} `json:"jobs"`
	}
	if err := client.Query(context.Background(), "key", Request{Query: "query { jobs }"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Jobs.Data) != 1 || out.Jobs.Data[0].ID != "j1" {
		t.Fatalf("unexpected decode result: %+v", out)
	}
}

func TestQueryMapsAuthStatusesToUnauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		err := client.Query(context.Background(), "bad-key", Request{Query: "query { me }"}, nil)
		srv.Close()

		if !apperr.Is(err, apperr.KindUnauthorized) {
			t.Fatalf("status %d: expected unauthorized kind, got %v", status, err)
		}
	}
}

func TestQueryMapsServerErrorsToUpstreamRejected(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	err := client.Query(context.Background(), "key", Request{Query: "query { jobs }"}, nil)
	if !apperr.Is(err, apperr.KindUpstreamRejected) {
		t.Fatalf("expected upstream rejected kind, got %v", err)
	}
}

func TestQueryMapsGraphQLErrorsToUpstreamRejected(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"message":"field does not exist"}]}`))
	})
	defer srv.Close()

	err := client.Query(context.Background(), "key", Request{Query: "query { nope }"}, nil)
	if !apperr.Is(err, apperr.KindUpstreamRejected) {
		t.Fatalf("expected upstream rejected kind for GraphQL errors, got %v", err)
	}
}

func TestQueryMapsBadBodyToMalformedResponse(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	})
	defer srv.Close()

	err := client.Query(context.Background(), "key", Request{Query: "query { jobs }"}, nil)
	if !apperr.Is(err, apperr.KindMalformedResponse) {
		t.Fatalf("expected malformed response kind, got %v", err)
	}
}

func TestQueryMapsMissingDataToMalformedResponse(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	err := client.Query(context.Background(), "key", Request{Query: "query { jobs }"}, nil)
	if !apperr.Is(err, apperr.KindMalformedResponse) {
		t.Fatalf("expected malformed response kind for missing data, got %v", err)
	}
}

func TestQueryMapsTransportFailureToUpstreamUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(Config{APIURL: srv.URL})
	srv.Close()

	err := client.Query(context.Background(), "key", Request{Query: "query { jobs }"}, nil)
	if !apperr.Is(err, apperr.KindUpstreamUnavailable) {
		t.Fatalf("expected upstream unavailable kind, got %v", err)
	}
}

func TestForwardPassesBodyThroughVerbatim(t *testing.T) {
	upstream := `{"data":{"jobs":{"data":[]}},"errors":[{"message":"partial failure"}]}`
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode forwarded body: %v", err)
		}
		if req.Query != "query { jobs { data { id } } }" {
			t.Errorf("unexpected forwarded query: %q", req.Query)
		}
		w.Write([]byte(upstream))
	})
	defer srv.Close()

	body := json.RawMessage(`{"query":"query { jobs { data { id } } }"}`)
	result, err := client.Forward(context.Background(), "key", body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != upstream {
		t.Fatalf("expected verbatim upstream body, got %s", result)
	}
}

func TestForwardRejectsMissingQuery(t *testing.T) {
	client := NewClient(Config{APIURL: "http://localhost:0"})

	if _, err := client.Forward(context.Background(), "key", json.RawMessage(`{"query":"  "}`)); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for blank query, got %v", err)
	}
	if _, err := client.Forward(context.Background(), "key", json.RawMessage(`"not an object"`)); !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request error for non-object body, got %v", err)
	}
}
