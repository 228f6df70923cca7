package collector

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCredentials(t *testing.T) {
	t.Setenv("COLLECTOR_TOKEN", "")
	t.Setenv("COLLECTOR_URL", "")

	file := filepath.Join(t.TempDir(), TokenFile)
	require.NoError(t, os.WriteFile(file, []byte("TOKEN=filetoken\nURL=http://netbox.loc/\n"), 0o600))

	creds, err := LoadCredentials(Credentials{}, file)
	require.NoError(t, err)
	assert.Equal(t, Credentials{Token: "filetoken", URL: "http://netbox.loc/"}, creds)

	// Flags win over the file.
	creds, err = LoadCredentials(Credentials{Token: "flagtoken"}, file)
	require.NoError(t, err)
	assert.Equal(t, "flagtoken", creds.Token)
	assert.Equal(t, "http://netbox.loc/", creds.URL)

	// Environment wins over the file.
	t.Setenv("COLLECTOR_URL", "http://env.loc")
	creds, err = LoadCredentials(Credentials{}, file)
	require.NoError(t, err)
	assert.Equal(t, "http://env.loc", creds.URL)
}

func TestLoadCredentials_Missing(t *testing.T) {
	t.Setenv("COLLECTOR_TOKEN", "")
	t.Setenv("COLLECTOR_URL", "")

	_, err := LoadCredentials(Credentials{Token: "x"}, filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/collector/":
			var req Request
			_ = json.NewDecoder(r.Body).Decode(&req)
			_ = json.NewEncoder(w).Encode(Response{Result: req.Hostname == "sw1", Detail: "got " + req.Command})
		case r.Method == http.MethodGet && r.URL.Path == "/api/collector/commands":
			_, _ = w.Write([]byte(`{"result":true,"detail":{"show version":"Version"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(Credentials{Token: "secret", URL: srv.URL + "/"}, 5*time.Second)

	res, err := c.Sync(Request{Hostname: "sw1", Command: "show inventory", Data: "x"})
	require.NoError(t, err)
	assert.Equal(t, Response{Result: true, Detail: "got show inventory"}, res)

	cmds, err := c.Commands()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"show version": "Version"}, cmds)

	_, err = NewClient(Credentials{Token: "wrong", URL: srv.URL}, time.Second).Commands()
	assert.ErrorContains(t, err, "HTTP 401")
}
