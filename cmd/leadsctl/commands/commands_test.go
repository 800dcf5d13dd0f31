package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"provider-leads-service/internal/pkg/exceptions"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu      sync.Mutex
	bodies  map[string]string
	queries map[string]string
}

func newFakeAPI(t *testing.T) (*httptest.Server, *fakeAPI) {
	t.Helper()
	fake := &fakeAPI{bodies: map[string]string{}, queries: map[string]string{}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fake.mu.Lock()
		fake.bodies[r.Method+" "+r.URL.Path] = string(body)
		fake.queries[r.Method+" "+r.URL.Path] = r.URL.RawQuery
		fake.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "GET /providers":
			io.WriteString(w, `{"results":[{"number":"1234567890","enumeration_type":"NPI-1","basic":{"first_name":"JANE","last_name":"DOE"}}]}`)
		case "GET /lists":
			io.WriteString(w, `[{"_id":"list-1","name":"Q3 Leads","providers":["1234567890"]}]`)
		case "POST /lists":
			io.WriteString(w, `{"_id":"list-2","name":"Cardio NY"}`)
		case "POST /lists/list-2/providers":
			io.WriteString(w, `{"message":"Providers added"}`)
		case "POST /providers/1234567890/find-email":
			io.WriteString(w, `{"email":"jane@clinic.org"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"message":"not found"}`)
		}
	}))
	t.Cleanup(server.Close)
	return server, fake
}

func run(t *testing.T, server *httptest.Server, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--api", server.URL, "--log-level", "error"}, args...))
	err := root.Execute()
	return stdout.String(), err
}

func TestSearchCommand(t *testing.T) {
	server, fake := newFakeAPI(t)

	t.Run("Prints a table", func(t *testing.T) {
		out, err := run(t, server, "search", "--state", "ny")

		require.NoError(t, err)
		assert.Contains(t, out, "NPI")
		assert.Contains(t, out, "1234567890")
	})

	t.Run("Writes CSV to stdout", func(t *testing.T) {
		out, err := run(t, server, "search", "--state", "NY", "--csv", "-")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
		assert.Len(t, lines, 2)
	})

	t.Run("Sends the provider type as given", func(t *testing.T) {
		_, err := run(t, server, "search", "--type", "npi-9")

		require.NoError(t, err)
		fake.mu.Lock()
		defer fake.mu.Unlock()
		assert.Contains(t, fake.queries["GET /providers"], "enumeration_type=NPI-9")
	})
}

func TestListCommands(t *testing.T) {
	server, fake := newFakeAPI(t)

	out, err := run(t, server, "lists")
	require.NoError(t, err)
	assert.Contains(t, out, "list-1")
	assert.Contains(t, out, "Q3 Leads")

	out, err = run(t, server, "save-list", "--name", "Cardio NY", "1234567890")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved 1 providers to list 'Cardio NY' (list-2)")
	assert.Contains(t, fake.bodies["POST /lists/list-2/providers"], "1234567890")

	_, err = run(t, server, "save-list", "--name", " ", "1234567890")
	assert.Error(t, err)

	_, err = run(t, server, "save-list", "--name", "Bad", "123")
	assert.Error(t, err)
}

func TestSaveListReportsPartialSave(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/lists" {
			io.WriteString(w, `{"_id":"list-9","name":"Cardio NY"}`)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `{"message":"upstream down"}`)
	}))
	t.Cleanup(server.Close)

	out, err := run(t, server, "save-list", "--name", "Cardio NY", "1234567890")

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusMultiStatus, customErr.StatusCode)
	assert.Contains(t, customErr.ClientMessage, "Cardio NY")
	assert.Empty(t, out)
}

func TestFindEmailCommand(t *testing.T) {
	server, fake := newFakeAPI(t)

	out, err := run(t, server, "find-email", "1234567890", "--first", "Jane", "--last", "Doe")

	require.NoError(t, err)
	assert.Equal(t, "jane@clinic.org\n", out)
	assert.Contains(t, fake.bodies["POST /providers/1234567890/find-email"], `"organizationName"`)

	_, err = run(t, server, "find-email", "1234567890", "--first", "Jane")
	assert.Error(t, err)
}
