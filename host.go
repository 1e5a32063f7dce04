package wikidot

import (
	"bytes"
	"sync"

	"github.com/wikidot-go/wikidot/tree"
)

// Host is the collaborator interface the parser and renderers call out
// to for anything that isn't pure text transformation: interwiki
// expansion, page metadata, localized UI strings, and module
// rendering. Implementations must be safe to call concurrently from
// independent goroutines parsing independent documents -- settings and
// any cache a Host maintains are its own concern, and must be guarded
// accordingly.
type Host interface {
	Interwiki(raw string) (string, bool)
	GetTitle(pageID string) string
	GetRating(pageID string) (int, bool)
	GetTags(pageID string) []string
	GetLinkLabel(url, label string, fallback func(string) string) string
	GetMessage(locale, key string) string
	RenderModule(buf *bytes.Buffer, module tree.Module, mode Mode) error
}

// InMemoryHost is a Host backed by plain in-memory tables, intended
// for tests and small embedders. It guards its tables with a
// sync.RWMutex so independent goroutines may look pages up
// concurrently while a parse is in flight -- the same read-mostly
// cache shape the teacher's import resolver uses for its own
// concurrent lookup table.
type InMemoryHost struct {
	mu        sync.RWMutex
	interwiki map[string]string
	titles    map[string]string
	ratings   map[string]int
	tags      map[string][]string
	messages  map[string]map[string]string
}

// NewInMemoryHost builds an InMemoryHost with empty tables.
func NewInMemoryHost() *InMemoryHost {
	return &InMemoryHost{
		interwiki: make(map[string]string),
		titles:    make(map[string]string),
		ratings:   make(map[string]int),
		tags:      make(map[string][]string),
		messages:  make(map[string]map[string]string),
	}
}

func (h *InMemoryHost) SetInterwiki(prefix, baseURL string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.interwiki[prefix] = baseURL
}

func (h *InMemoryHost) SetPage(pageID, title string, rating int, tags []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.titles[pageID] = title
	h.ratings[pageID] = rating
	h.tags[pageID] = tags
}

func (h *InMemoryHost) SetMessage(locale, key, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.messages[locale] == nil {
		h.messages[locale] = make(map[string]string)
	}
	h.messages[locale][key] = value
}

func (h *InMemoryHost) Interwiki(raw string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.interwiki[raw]
	return v, ok
}

func (h *InMemoryHost) GetTitle(pageID string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.titles[pageID]
}

func (h *InMemoryHost) GetRating(pageID string) (int, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.ratings[pageID]
	return v, ok
}

func (h *InMemoryHost) GetTags(pageID string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.tags[pageID]...)
}

func (h *InMemoryHost) GetLinkLabel(url, label string, fallback func(string) string) string {
	if label != "" {
		return label
	}
	return fallback(url)
}

func (h *InMemoryHost) GetMessage(locale, key string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if m, ok := h.messages[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

func (h *InMemoryHost) RenderModule(buf *bytes.Buffer, module tree.Module, mode Mode) error {
	buf.WriteString("[module:" + module.Name + "]")
	return nil
}
