package leadsapi

import (
	"errors"
	"provider-leads-service/internal/app/models"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("response body is not valid JSON")

// collection returns the array at the root of body or under the first
// envelope key present. A missing collection is empty, not an error.
func collection(body []byte, envelopeKeys ...string) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, errInvalidJSON
	}

	root := gjson.ParseBytes(body)
	if root.IsArray() {
		return root, nil
	}
	for _, key := range envelopeKeys {
		if value := root.Get(key); value.IsArray() {
			return value, nil
		}
	}
	return gjson.Parse("[]"), nil
}

func firstString(result gjson.Result, paths ...string) string {
	for _, path := range paths {
		if value := result.Get(path); value.Exists() && value.Type != gjson.Null {
			if s := strings.TrimSpace(value.String()); s != "" {
				return s
			}
		}
	}
	return ""
}

// normalizeProvider decodes one provider and settles its canonical NPI from
// "number", falling back to "npi".
func normalizeProvider(raw gjson.Result) (models.Provider, error) {
	var provider models.Provider
	if err := json.Unmarshal([]byte(raw.Raw), &provider); err != nil {
		return provider, err
	}
	provider.NPI = models.NPI(firstString(raw, "number", "npi"))
	return provider, nil
}

func normalizeProviders(body []byte) ([]models.Provider, error) {
	items, err := collection(body, "results", "providers", "data")
	if err != nil {
		return nil, err
	}

	providers := make([]models.Provider, 0, len(items.Array()))
	for _, item := range items.Array() {
		if !item.IsObject() {
			continue
		}
		provider, err := normalizeProvider(item)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}
	return providers, nil
}

// normalizeList reads the id from "_id" or "id" and the count from
// "provider_count" or the length of "providers".
func normalizeList(raw gjson.Result) models.List {
	list := models.List{
		ID:   firstString(raw, "_id", "id"),
		Name: firstString(raw, "name", "listName"),
	}

	providers := raw.Get("providers")
	if providers.IsArray() {
		for _, entry := range providers.Array() {
			var npi string
			if entry.IsObject() {
				npi = firstString(entry, "number", "npi")
			} else {
				npi = strings.TrimSpace(entry.String())
			}
			if npi != "" {
				list.ProviderNPIs = append(list.ProviderNPIs, npi)
			}
		}
	}

	if count := raw.Get("provider_count"); count.Exists() && count.Type == gjson.Number {
		list.ProviderCount = int(count.Int())
	} else {
		list.ProviderCount = len(providers.Array())
	}
	return list
}

func normalizeLists(body []byte) ([]models.List, error) {
	items, err := collection(body, "results", "lists", "data")
	if err != nil {
		return nil, err
	}

	lists := make([]models.List, 0, len(items.Array()))
	for _, item := range items.Array() {
		if item.IsObject() {
			lists = append(lists, normalizeList(item))
		}
	}
	return lists, nil
}

func normalizeCreatedList(body []byte, requestedName string) (*models.List, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}

	root := gjson.ParseBytes(body)
	for _, key := range []string{"list", "data"} {
		if envelope := root.Get(key); envelope.IsObject() && firstString(root, "_id", "id") == "" {
			root = envelope
			break
		}
	}

	list := normalizeList(root)
	if list.ID == "" {
		return nil, errors.New("created list has no id")
	}
	if list.Name == "" {
		list.Name = requestedName
	}
	return &list, nil
}

func normalizeEmailResult(npi string, body []byte) (*models.EmailLookupResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}

	root := gjson.ParseBytes(body)
	result := &models.EmailLookupResult{
		NPI:     npi,
		Email:   firstString(root, "email", "data.email"),
		Message: firstString(root, "message"),
	}
	result.Found = result.Email != ""
	return result, nil
}
