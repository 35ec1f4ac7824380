// Package gateway moves CSV documents between the remote backend and the
// embedded local fallback. Transport failures are never surfaced as
// errors: Load falls back to the local copy (then to a header-only
// default) and Save reports success as long as at least one durable copy
// was written.
package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/KikePrograma-afk/Tukiosko/internal/model"
	"github.com/KikePrograma-afk/Tukiosko/internal/storage"
)

// localPathPrefix is the key convention shared with the original
// localStorage layout.
const localPathPrefix = "/stockcsv/"

// Gateway fetches and pushes CSV text for named resources.
type Gateway struct {
	client *resty.Client
	local  *storage.Local
}

// New builds a gateway against baseURL (e.g. "http://localhost:9000")
// with the given local fallback store.
func New(baseURL string, local *storage.Local, timeout time.Duration) *Gateway {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout)
	return &Gateway{client: client, local: local}
}

// Load fetches the CSV document for a resource ("products", "sales").
// Fallback chain: remote GET → local copy → header-only default for known
// resources, empty string otherwise.
func (g *Gateway) Load(ctx context.Context, resource string) string {
	resp, err := g.client.R().SetContext(ctx).Get("/api/" + resource)
	if err == nil && resp.IsSuccess() {
		return string(resp.Body())
	}
	if err != nil {
		log.Warn().Err(err).Str("resource", resource).Msg("gateway: remote load failed, using local fallback")
	} else {
		log.Warn().Int("status", resp.StatusCode()).Str("resource", resource).Msg("gateway: remote load rejected, using local fallback")
	}

	if content, ok := g.local.Get(localKey(resource + ".csv")); ok {
		return content
	}
	return defaultCSV(resource)
}

// Save pushes encoded CSV text for filename ("products.csv", "sales.csv")
// to the remote backend and always writes the local copy as well. It
// returns true when the remote PUT or the local write succeeded — local
// storage is the durability floor.
func (g *Gateway) Save(ctx context.Context, filename, content string) bool {
	remoteOK := false
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain").
		SetBody(content).
		Put("/api/save-csv/" + filename)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("filename", filename).Msg("gateway: remote save failed")
	case !resp.IsSuccess():
		log.Warn().Int("status", resp.StatusCode()).Str("filename", filename).Msg("gateway: remote save rejected")
	default:
		remoteOK = true
	}

	localOK := true
	if err := g.local.Save(localKey(filename), content); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("gateway: local save failed")
		localOK = false
	}

	return remoteOK || localOK
}

func localKey(filename string) string {
	return localPathPrefix + filename
}

// defaultCSV returns the header-only document for resources that have a
// known schema, so a fresh install decodes to empty collections.
func defaultCSV(resource string) string {
	switch {
	case strings.Contains(resource, "products"):
		return strings.Join(model.ProductoFields, ",") + "\n"
	case strings.Contains(resource, "sales"):
		return strings.Join(model.VentaFields, ",") + "\n"
	}
	return ""
}
