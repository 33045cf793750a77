package resume

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of a résumé document.
type Format int

const (
	// FormatJSON is the default document format.
	FormatJSON Format = iota
	// FormatYAML is selected by a .yaml or .yml extension.
	FormatYAML
)

// Item is one résumé of a batch, in input order. Err is set when the item
// could not be decoded; its Record is then empty.
type Item struct {
	ID     string
	Record Record
	Err    error
}

// FormatFor picks the document format from a file name or URL.
func FormatFor(name string) (format Format) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		format = FormatJSON
	}
	return format
}

// IDFor derives a résumé id from a file name or URL.
func IDFor(name string) (id string) {
	base := filepath.Base(name)
	id = strings.TrimSuffix(base, filepath.Ext(base))
	return id
}

// ParseDocument decodes either a single record (a mapping with section keys)
// or a batch mapping of id to record. Batch entries that fail to decode are
// returned with Err set instead of failing the whole document.
func ParseDocument(id string, data []byte, format Format) (items []Item, err error) {
	var entries []rawEntry
	switch format {
	case FormatYAML:
		entries, err = yamlEntries(data)
	default:
		entries, err = jsonEntries(data)
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to parse document %s", id)
		return items, err
	}

	if isSingleRecord(entries) {
		var record Record
		record, err = decodeRecord(data, format)
		if err != nil {
			err = errors.Wrapf(err, "failed to decode record %s", id)
			return items, err
		}
		items = append(items, Item{ID: id, Record: record})
		return items, err
	}

	items = batchItems(entries)
	return items, err
}

// ParseBatch decodes a mapping of id to record whatever its keys are named.
func ParseBatch(data []byte, format Format) (items []Item, err error) {
	var entries []rawEntry
	switch format {
	case FormatYAML:
		entries, err = yamlEntries(data)
	default:
		entries, err = jsonEntries(data)
	}
	if err != nil {
		err = errors.Wrap(err, "failed to parse batch")
		return items, err
	}

	items = batchItems(entries)
	return items, err
}

func batchItems(entries []rawEntry) (items []Item) {
	items = make([]Item, 0, len(entries))
	for _, entry := range entries {
		item := Item{ID: entry.key}
		item.Record, item.Err = entry.decode()
		if item.Err != nil {
			item.Err = errors.Wrapf(item.Err, "failed to decode record %s", entry.key)
		}
		items = append(items, item)
	}
	return items
}

// Load reads a résumé or batch document from disk.
func Load(path string) (items []Item, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read resume file: %s", path)
		return items, err
	}

	items, err = ParseDocument(IDFor(path), data, FormatFor(path))
	return items, err
}

// LoadDir loads every .json, .yaml and .yml document under dir. Hidden files
// and directories are skipped. A file that cannot be read or parsed becomes a
// single failed item so the rest of the batch still runs.
func LoadDir(dir string) (items []Item, err error) {
	walkErr := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) (walkFuncErr error) {
		if walkErr != nil {
			walkFuncErr = walkErr
			return walkFuncErr
		}

		if strings.HasPrefix(d.Name(), ".") && path != dir {
			if d.IsDir() {
				walkFuncErr = filepath.SkipDir
			}
			return walkFuncErr
		}

		if d.IsDir() || !isDocument(d.Name()) {
			return walkFuncErr
		}

		loaded, loadErr := Load(path)
		if loadErr != nil {
			items = append(items, Item{ID: IDFor(path), Err: loadErr})
			return walkFuncErr
		}
		items = append(items, loaded...)
		return walkFuncErr
	})

	if walkErr != nil {
		err = errors.Wrapf(walkErr, "failed to walk resume directory: %s", dir)
		return items, err
	}

	return items, err
}

func isDocument(name string) (ok bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		ok = true
	}
	return ok
}

// isSingleRecord reports whether any top-level key names a section, ignoring case.
func isSingleRecord(entries []rawEntry) (single bool) {
	for _, entry := range entries {
		for _, section := range defaultSectionOrder {
			if strings.EqualFold(entry.key, section) {
				single = true
				return single
			}
		}
	}
	return single
}

func decodeRecord(data []byte, format Format) (record Record, err error) {
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &record)
	default:
		err = json.Unmarshal(data, &record)
	}
	return record, err
}

// rawEntry is one top-level key of a document with its undecoded value.
type rawEntry struct {
	key       string
	jsonValue json.RawMessage
	yamlValue *yaml.Node
}

func (e rawEntry) decode() (record Record, err error) {
	if e.yamlValue != nil {
		err = e.yamlValue.Decode(&record)
		return record, err
	}
	err = json.Unmarshal(e.jsonValue, &record)
	return record, err
}

func jsonEntries(data []byte) (entries []rawEntry, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var tok json.Token
	tok, err = dec.Token()
	if err != nil {
		return entries, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		err = errors.New("document must be a JSON object")
		return entries, err
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return entries, err
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		err = dec.Decode(&raw)
		if err != nil {
			return entries, err
		}
		entries = append(entries, rawEntry{key: key, jsonValue: raw})
	}

	return entries, err
}

func yamlEntries(data []byte) (entries []rawEntry, err error) {
	var doc yaml.Node
	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return entries, err
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		err = errors.New("document must be a YAML mapping")
		return entries, err
	}

	mapping := doc.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		entries = append(entries, rawEntry{
			key:       mapping.Content[i].Value,
			yamlValue: mapping.Content[i+1],
		})
	}

	return entries, err
}
