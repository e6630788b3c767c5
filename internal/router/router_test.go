package router

import (
	"net/http"
	"testing"

	"card-space/internal/cache"
	"card-space/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodPost + " /users",
		http.MethodPost + " /users/login",
		http.MethodGet + " /users",
		http.MethodGet + " /users/:id",
		http.MethodPut + " /users/:id",
		http.MethodPatch + " /users/:id",
		http.MethodDelete + " /users/:id",
		http.MethodGet + " /cards",
		http.MethodGet + " /cards/my-cards",
		http.MethodGet + " /cards/:id",
		http.MethodPost + " /cards",
		http.MethodPut + " /cards/:id",
		http.MethodPatch + " /cards/:id",
		http.MethodDelete + " /cards/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
