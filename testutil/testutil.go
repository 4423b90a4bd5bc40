package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// MockJSONAPI spins up a test server that plays back canned JSON bodies.
// A string response is served for every request; a []string is served one
// element per request, in order.
func MockJSONAPI(t *testing.T, responses interface{}) (*httptest.Server, func()) {
	var mu sync.Mutex
	index := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch typed := responses.(type) {
		case string:
			fmt.Fprint(w, typed)
		case []string:
			if index >= len(typed) {
				t.Errorf("mock server ran out of responses (request %d)", index+1)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, typed[index])
			index++
		default:
			bz, err := json.Marshal(typed)
			if err != nil {
				t.Errorf("mock server could not marshal response: %v", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write(bz)
		}
	}))
	return server, server.Close
}

// MockHTTPError spins up a test server that fails every request with the
// given status and JSON body.
func MockHTTPError(t *testing.T, status int, body string) (*httptest.Server, func()) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	return server, server.Close
}

func JsonPrint(a any) {
	bz, _ := json.MarshalIndent(a, "", "  ")
	fmt.Println(string(bz))
}
