package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/KikePrograma-afk/Tukiosko/internal/model"
	"github.com/KikePrograma-afk/Tukiosko/internal/store"
)

// headerLoader hands every resource a header-only document, the fresh
// install state.
type headerLoader struct{}

func (headerLoader) Load(_ context.Context, resource string) string {
	if resource == "products" {
		return strings.Join(model.ProductoFields, ",") + "\n"
	}
	return strings.Join(model.VentaFields, ",") + "\n"
}

func newLoadedStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(headerLoader{})
	st.Initialize(context.Background())
	return st
}

func precio(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
