// internal/common/database/directory.go
package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/models"
	"exhibitor-profile/internal/profile"
)

const directoryMapping = `{
	"mappings": {
		"properties": {
			"profileId":    {"type": "keyword"},
			"companyName":  {"type": "text", "fields": {"raw": {"type": "keyword"}}},
			"packageType":  {"type": "keyword"},
			"overall":      {"type": "integer"},
			"groupAPct":    {"type": "integer"},
			"groupBPct":    {"type": "integer"},
			"hasProducts":  {"type": "boolean"},
			"locales":      {"type": "keyword"},
			"version":      {"type": "long"},
			"updatedAt":    {"type": "date"}
		}
	}
}`

// DirectoryDocument is what the exhibitor directory ranks and filters on.
type DirectoryDocument struct {
	ProfileID   string    `json:"profileId"`
	CompanyName string    `json:"companyName"`
	PackageType string    `json:"packageType"`
	Overall     int       `json:"overall"`
	GroupAPct   int       `json:"groupAPct"`
	GroupBPct   int       `json:"groupBPct"`
	HasProducts bool      `json:"hasProducts"`
	Locales     []string  `json:"locales"`
	Version     int64     `json:"version"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewDirectoryDocument flattens a profile and its score.
func NewDirectoryDocument(p models.ExhibitorProfile, result profile.CompletionResult) DirectoryDocument {
	locales := make([]string, 0, 1+len(p.SecondaryLocales))
	for _, l := range p.ActiveLocales() {
		locales = append(locales, l.String())
	}
	return DirectoryDocument{
		ProfileID:   p.ID,
		CompanyName: p.CompanyName,
		PackageType: string(p.PackageType),
		Overall:     result.Overall,
		GroupAPct:   result.GroupAPct,
		GroupBPct:   result.GroupBPct,
		HasProducts: result.HasProducts,
		Locales:     locales,
		Version:     p.Version,
		UpdatedAt:   p.UpdatedAt,
	}
}

// DirectoryIndex writes profile documents into the exhibitor directory index.
type DirectoryIndex struct {
	client *elasticsearch.Client
	index  string
}

func NewDirectoryIndex(client *elasticsearch.Client, index string) *DirectoryIndex {
	return &DirectoryIndex{client: client, index: index}
}

func (d *DirectoryIndex) Name() string {
	return d.index
}

// EnsureIndex creates the index with its mapping when it does not exist.
func (d *DirectoryIndex) EnsureIndex(ctx context.Context) error {
	res, err := d.client.Indices.Exists(
		[]string{d.index},
		d.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return errors.NewDirectoryIndexFailedError(fmt.Errorf("check index: %w", err))
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = d.client.Indices.Create(
		d.index,
		d.client.Indices.Create.WithContext(ctx),
		d.client.Indices.Create.WithBody(strings.NewReader(directoryMapping)),
	)
	if err != nil {
		return errors.NewDirectoryIndexFailedError(fmt.Errorf("create index: %w", err))
	}
	defer res.Body.Close()
	if res.IsError() && !alreadyExists(res.Body) {
		return errors.NewDirectoryIndexFailedError(fmt.Errorf("create index: %s", res.Status()))
	}
	return nil
}

// Index upserts the document under the profile id and returns the result
// reported by Elasticsearch ("created" or "updated").
func (d *DirectoryIndex) Index(ctx context.Context, doc DirectoryDocument) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", errors.NewDirectoryIndexFailedError(fmt.Errorf("encode document: %w", err))
	}

	res, err := d.client.Index(
		d.index,
		bytes.NewReader(body),
		d.client.Index.WithContext(ctx),
		d.client.Index.WithDocumentID(doc.ProfileID),
	)
	if err != nil {
		return "", errors.NewDirectoryIndexFailedError(err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return "", errors.NewDirectoryIndexFailedError(fmt.Errorf("index document %s: %s", doc.ProfileID, res.Status()))
	}

	var ack struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(res.Body).Decode(&ack); err != nil {
		return "", errors.NewDirectoryIndexFailedError(fmt.Errorf("decode index response: %w", err))
	}
	return ack.Result, nil
}

// Delete removes a profile from the directory. A missing document is not an error.
func (d *DirectoryIndex) Delete(ctx context.Context, profileID string) error {
	res, err := d.client.Delete(
		d.index,
		profileID,
		d.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return errors.NewDirectoryIndexFailedError(err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return errors.NewDirectoryIndexFailedError(fmt.Errorf("delete document %s: %s", profileID, res.Status()))
	}
	return nil
}

func alreadyExists(body io.Reader) bool {
	var e struct {
		Error struct {
			Type string `json:"type"`
		} `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&e); err != nil {
		return false
	}
	return e.Error.Type == "resource_already_exists_exception"
}
