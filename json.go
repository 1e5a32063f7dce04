package wikidot

import (
	"encoding/json"
	"fmt"

	"github.com/wikidot-go/wikidot/tree"
)

// Document is the top-level JSON wire shape: settings, page metadata,
// and the finalized syntax tree, side by side the way a renderer
// consumes them.
type Document struct {
	Settings  Settings
	PageInfo  PageInfo
	TableOfContents []tree.TocEntry
	Footnotes []tree.Elements
	Elements  tree.Elements
}

// MarshalJSON writes the document using kebab-case keys and an
// {element, data} envelope around every tree node, matching the wire
// format external renderers are written against.
func (d Document) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"settings":          encodeSettings(d.Settings),
		"page-info":         encodePageInfo(d.PageInfo),
		"syntax-tree": map[string]interface{}{
			"elements":          encodeElements(d.Elements),
			"table-of-contents": encodeToc(d.TableOfContents),
			"footnotes":         encodeFootnotes(d.Footnotes),
		},
	}
	return json.Marshal(out)
}

// UnmarshalJSON reverses MarshalJSON. It rejects element kinds it does
// not recognize rather than silently dropping them.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Settings   json.RawMessage `json:"settings"`
		PageInfo   json.RawMessage `json:"page-info"`
		SyntaxTree struct {
			Elements        []json.RawMessage `json:"elements"`
			TableOfContents []tree.TocEntry   `json:"table-of-contents"`
			Footnotes       [][]json.RawMessage `json:"footnotes"`
		} `json:"syntax-tree"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Settings) > 0 {
		s, err := decodeSettings(raw.Settings)
		if err != nil {
			return err
		}
		d.Settings = s
	}
	if len(raw.PageInfo) > 0 {
		var p struct {
			PageID   string `json:"page-id"`
			Slug     string `json:"slug"`
			Category string `json:"category"`
			Locale   string `json:"locale"`
			Title    string `json:"title"`
		}
		if err := json.Unmarshal(raw.PageInfo, &p); err != nil {
			return err
		}
		d.PageInfo = PageInfo(p)
	}
	els, err := decodeElementList(raw.SyntaxTree.Elements)
	if err != nil {
		return err
	}
	d.Elements = tree.Of(els...)
	d.TableOfContents = raw.SyntaxTree.TableOfContents
	for _, f := range raw.SyntaxTree.Footnotes {
		fe, err := decodeElementList(f)
		if err != nil {
			return err
		}
		d.Footnotes = append(d.Footnotes, tree.Of(fe...))
	}
	return nil
}

func encodeSettings(s Settings) map[string]interface{} {
	return map[string]interface{}{
		"mode":               s.Mode.String(),
		"enable-page-syntax": s.EnablePageSyntax,
		"use-true-ids":       s.UseTrueIDs,
		"allow-local-paths":  s.AllowLocalPaths,
		"interwiki":          s.Interwiki,
	}
}

func decodeSettings(data json.RawMessage) (Settings, error) {
	var raw struct {
		Mode             string            `json:"mode"`
		EnablePageSyntax bool              `json:"enable-page-syntax"`
		UseTrueIDs       bool              `json:"use-true-ids"`
		AllowLocalPaths  bool              `json:"allow-local-paths"`
		Interwiki        map[string]string `json:"interwiki"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Settings{}, err
	}
	mode, err := modeFromString(raw.Mode)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Mode:             mode,
		EnablePageSyntax: raw.EnablePageSyntax,
		UseTrueIDs:       raw.UseTrueIDs,
		AllowLocalPaths:  raw.AllowLocalPaths,
		Interwiki:        raw.Interwiki,
	}, nil
}

func modeFromString(s string) (Mode, error) {
	switch s {
	case "page":
		return ModePage, nil
	case "draft":
		return ModeDraft, nil
	case "forum-post":
		return ModeForumPost, nil
	case "direct-message":
		return ModeDirectMessage, nil
	case "list":
		return ModeList, nil
	default:
		return 0, fmt.Errorf("wikidot: unknown mode %q", s)
	}
}

func encodePageInfo(p PageInfo) map[string]interface{} {
	return map[string]interface{}{
		"page-id":  p.PageID,
		"slug":     p.Slug,
		"category": p.Category,
		"locale":   p.Locale,
		"title":    p.Title,
	}
}

func encodeToc(entries []tree.TocEntry) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			"level":  e.Level,
			"text":   e.Text,
			"anchor": e.Anchor,
		})
	}
	return out
}

func encodeFootnotes(footnotes []tree.Elements) [][]interface{} {
	out := make([][]interface{}, 0, len(footnotes))
	for _, f := range footnotes {
		out = append(out, encodeElements(f))
	}
	return out
}

func encodeElements(e tree.Elements) []interface{} {
	out := make([]interface{}, 0, len(e.Items))
	for _, el := range e.Items {
		out = append(out, encodeElement(el))
	}
	return out
}

func encodeAttributes(a tree.Attributes) map[string]string {
	if a == nil {
		return map[string]string{}
	}
	return a
}

// encodeElement builds the {element, data} envelope for one node. The
// element kind string is kebab-case and is the only thing a consumer
// needs to switch on to know how to interpret data.
func encodeElement(el tree.Element) map[string]interface{} {
	switch v := el.(type) {
	case tree.Text:
		return envelope("text", map[string]interface{}{"value": v.Value})
	case tree.Raw:
		return envelope("raw", map[string]interface{}{"value": v.Value})
	case tree.Email:
		return envelope("email", map[string]interface{}{"address": v.Address})
	case tree.LineBreak:
		return envelope("line-break", map[string]interface{}{})
	case tree.LineBreaks:
		return envelope("line-breaks", map[string]interface{}{"count": v.N})
	case tree.HorizontalRule:
		return envelope("horizontal-rule", map[string]interface{}{})
	case tree.Container:
		return envelope("container", map[string]interface{}{
			"kind":       containerKindName(v.Kind),
			"children":   encodeElements(v.Children),
			"attributes": encodeAttributes(v.Attributes),
		})
	case tree.Link:
		return envelope("link", map[string]interface{}{
			"target": map[string]interface{}{
				"url":  v.Target.Url,
				"page": v.Target.Page,
			},
			"label": map[string]interface{}{
				"text": v.Label.Text,
				"url":  v.Label.URL,
			},
			"new-tab":   v.NewTab,
			"interwiki": v.Interwiki,
		})
	case tree.Anchor:
		return envelope("anchor", map[string]interface{}{
			"children":   encodeElements(v.Children),
			"attributes": encodeAttributes(v.Attributes),
		})
	case tree.List:
		return envelope("list", map[string]interface{}{
			"type":  listTypeName(v.Type),
			"items": encodeListItems(v.Items),
		})
	case tree.DefinitionList:
		items := make([]map[string]interface{}, 0, len(v.Items))
		for _, it := range v.Items {
			items = append(items, map[string]interface{}{
				"key":   encodeElements(it.Key),
				"value": encodeElements(it.Value),
			})
		}
		return envelope("definition-list", map[string]interface{}{"items": items})
	case tree.RadioButton:
		return envelope("radio-button", map[string]interface{}{
			"name":       v.Name,
			"checked":    v.Checked,
			"attributes": encodeAttributes(v.Attributes),
		})
	case tree.CheckBox:
		return envelope("check-box", map[string]interface{}{
			"checked":    v.Checked,
			"attributes": encodeAttributes(v.Attributes),
		})
	case tree.Collapsible:
		return envelope("collapsible", map[string]interface{}{
			"children":    encodeElements(v.Children),
			"show-text":   v.ShowText,
			"hide-text":   v.HideText,
			"show-top":    v.ShowTop,
			"show-bottom": v.ShowBottom,
			"attributes":  encodeAttributes(v.Attributes),
		})
	case tree.Color:
		return envelope("color", map[string]interface{}{
			"spec":     v.Spec,
			"children": encodeElements(v.Children),
		})
	case tree.Code:
		return envelope("code", map[string]interface{}{
			"body":     v.Body,
			"language": v.Language,
		})
	case tree.Html:
		return envelope("html", map[string]interface{}{"body": v.Body})
	case tree.Iframe:
		return envelope("iframe", map[string]interface{}{
			"url":        v.Url,
			"attributes": encodeAttributes(v.Attributes),
		})
	case tree.Module:
		return envelope("module", map[string]interface{}{
			"name":      v.Name,
			"arguments": encodeAttributes(v.Arguments),
			"body":      v.Body,
		})
	case tree.Footnote:
		return envelope("footnote", map[string]interface{}{"children": encodeElements(v.Children)})
	default:
		panic(fmt.Sprintf("wikidot: json encoding of element type %T is not implemented", el))
	}
}

func encodeListItems(items []tree.ListItem) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		if it.IsSubList {
			out = append(out, map[string]interface{}{
				"is-sub-list": true,
				"sub-list":    encodeElement(*it.SubList),
			})
			continue
		}
		out = append(out, map[string]interface{}{
			"is-sub-list": false,
			"elements":    encodeElements(it.Elements),
		})
	}
	return out
}

func envelope(kind string, data map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"element": kind, "data": data}
}

var containerKindNames = map[tree.ContainerKind]string{
	tree.Paragraph:     "paragraph",
	tree.Div:           "div",
	tree.Blockquote:    "blockquote",
	tree.Header1:       "header1",
	tree.Header2:       "header2",
	tree.Header3:       "header3",
	tree.Header4:       "header4",
	tree.Header5:       "header5",
	tree.Header6:       "header6",
	tree.Bold:          "bold",
	tree.Italics:       "italics",
	tree.Underline:     "underline",
	tree.Strikethrough: "strikethrough",
	tree.Superscript:   "superscript",
	tree.Subscript:     "subscript",
	tree.Monospace:     "monospace",
	tree.Mark:          "mark",
	tree.Ruby:          "ruby",
	tree.RubyText:      "ruby-text",
	tree.Hidden:        "hidden",
	tree.Invisible:     "invisible",
	tree.Span:          "span",
}

var containerKindsByName = func() map[string]tree.ContainerKind {
	out := make(map[string]tree.ContainerKind, len(containerKindNames))
	for k, v := range containerKindNames {
		out[v] = k
	}
	return out
}()

func containerKindName(k tree.ContainerKind) string {
	if name, ok := containerKindNames[k]; ok {
		return name
	}
	panic(fmt.Sprintf("wikidot: unnamed container kind %d", k))
}

func containerKindFromName(name string) (tree.ContainerKind, error) {
	if k, ok := containerKindsByName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("wikidot: unknown container kind %q", name)
}

func listTypeName(t tree.ListType) string {
	switch t {
	case tree.BulletList:
		return "bullet"
	case tree.NumberedList:
		return "numbered"
	case tree.GenericList:
		return "generic"
	default:
		panic(fmt.Sprintf("wikidot: unnamed list type %d", t))
	}
}

func listTypeFromName(name string) (tree.ListType, error) {
	switch name {
	case "bullet":
		return tree.BulletList, nil
	case "numbered":
		return tree.NumberedList, nil
	case "generic":
		return tree.GenericList, nil
	default:
		return 0, fmt.Errorf("wikidot: unknown list type %q", name)
	}
}

func decodeElementList(raw []json.RawMessage) ([]tree.Element, error) {
	out := make([]tree.Element, 0, len(raw))
	for _, r := range raw {
		el, err := decodeElement(r)
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	return out, nil
}

func decodeElements(raw []json.RawMessage) (tree.Elements, error) {
	items, err := decodeElementList(raw)
	if err != nil {
		return tree.Elements{}, err
	}
	return tree.Of(items...), nil
}

func decodeAttributes(m map[string]string) tree.Attributes {
	if len(m) == 0 {
		return nil
	}
	out := make(tree.Attributes, len(m))
	for k, v := range m {
		out.Set(k, v)
	}
	return out
}

// decodeElement reverses encodeElement for exactly the kinds it
// produces; Partial never reaches the wire since Finalize asserts it
// does not survive parsing.
func decodeElement(raw json.RawMessage) (tree.Element, error) {
	var env struct {
		Element string          `json:"element"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	switch env.Element {
	case "text":
		var d struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return tree.Text{Value: d.Value}, nil
	case "raw":
		var d struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return tree.Raw{Value: d.Value}, nil
	case "email":
		var d struct {
			Address string `json:"address"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return tree.Email{Address: d.Address}, nil
	case "line-break":
		return tree.LineBreak{}, nil
	case "line-breaks":
		var d struct {
			Count int `json:"count"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return tree.NewLineBreaks(d.Count), nil
	case "horizontal-rule":
		return tree.HorizontalRule{}, nil
	case "container":
		var d struct {
			Kind       string            `json:"kind"`
			Children   []json.RawMessage `json:"children"`
			Attributes map[string]string `json:"attributes"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		kind, err := containerKindFromName(d.Kind)
		if err != nil {
			return nil, err
		}
		children, err := decodeElements(d.Children)
		if err != nil {
			return nil, err
		}
		return tree.Container{Kind: kind, Children: children, Attributes: decodeAttributes(d.Attributes)}, nil
	case "link":
		var d struct {
			Target struct {
				Url  string `json:"url"`
				Page string `json:"page"`
			} `json:"target"`
			Label struct {
				Text string `json:"text"`
				URL  bool   `json:"url"`
			} `json:"label"`
			NewTab    bool `json:"new-tab"`
			Interwiki bool `json:"interwiki"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return tree.Link{
			Target:    tree.LinkLocation{Url: d.Target.Url, Page: d.Target.Page},
			Label:     tree.LinkLabel{Text: d.Label.Text, URL: d.Label.URL},
			NewTab:    d.NewTab,
			Interwiki: d.Interwiki,
		}, nil
	case "anchor":
		var d struct {
			Children   []json.RawMessage `json:"children"`
			Attributes map[string]string `json:"attributes"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		children, err := decodeElements(d.Children)
		if err != nil {
			return nil, err
		}
		return tree.Anchor{Children: children, Attributes: decodeAttributes(d.Attributes)}, nil
	case "list":
		var d struct {
			Type  string `json:"type"`
			Items []struct {
				IsSubList bool              `json:"is-sub-list"`
				Elements  []json.RawMessage `json:"elements"`
				SubList   json.RawMessage   `json:"sub-list"`
			} `json:"items"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		typ, err := listTypeFromName(d.Type)
		if err != nil {
			return nil, err
		}
		items := make([]tree.ListItem, 0, len(d.Items))
		for _, it := range d.Items {
			if it.IsSubList {
				sub, err := decodeElement(it.SubList)
				if err != nil {
					return nil, err
				}
				subList, ok := sub.(tree.List)
				if !ok {
					return nil, fmt.Errorf("wikidot: list item sub-list decoded as %T, want List", sub)
				}
				items = append(items, tree.ListItem{IsSubList: true, SubList: &subList})
				continue
			}
			els, err := decodeElements(it.Elements)
			if err != nil {
				return nil, err
			}
			items = append(items, tree.ListItem{Elements: els})
		}
		return tree.List{Type: typ, Items: items}, nil
	case "definition-list":
		var d struct {
			Items []struct {
				Key   []json.RawMessage `json:"key"`
				Value []json.RawMessage `json:"value"`
			} `json:"items"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		items := make([]tree.DefinitionListItem, 0, len(d.Items))
		for _, it := range d.Items {
			key, err := decodeElements(it.Key)
			if err != nil {
				return nil, err
			}
			value, err := decodeElements(it.Value)
			if err != nil {
				return nil, err
			}
			items = append(items, tree.DefinitionListItem{Key: key, Value: value})
		}
		return tree.DefinitionList{Items: items}, nil
	case "radio-button":
		var d struct {
			Name       string            `json:"name"`
			Checked    bool              `json:"checked"`
			Attributes map[string]string `json:"attributes"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return tree.RadioButton{Name: d.Name, Checked: d.Checked, Attributes: decodeAttributes(d.Attributes)}, nil
	case "check-box":
		var d struct {
			Checked    bool              `json:"checked"`
			Attributes map[string]string `json:"attributes"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return tree.CheckBox{Checked: d.Checked, Attributes: decodeAttributes(d.Attributes)}, nil
	case "collapsible":
		var d struct {
			Children   []json.RawMessage `json:"children"`
			ShowText   string            `json:"show-text"`
			HideText   string            `json:"hide-text"`
			ShowTop    bool              `json:"show-top"`
			ShowBottom bool              `json:"show-bottom"`
			Attributes map[string]string `json:"attributes"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		children, err := decodeElements(d.Children)
		if err != nil {
			return nil, err
		}
		return tree.Collapsible{
			Children:   children,
			ShowText:   d.ShowText,
			HideText:   d.HideText,
			ShowTop:    d.ShowTop,
			ShowBottom: d.ShowBottom,
			Attributes: decodeAttributes(d.Attributes),
		}, nil
	case "color":
		var d struct {
			Spec     string            `json:"spec"`
			Children []json.RawMessage `json:"children"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		children, err := decodeElements(d.Children)
		if err != nil {
			return nil, err
		}
		return tree.Color{Spec: d.Spec, Children: children}, nil
	case "code":
		var d struct {
			Body     string `json:"body"`
			Language string `json:"language"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return tree.Code{Body: d.Body, Language: d.Language}, nil
	case "html":
		var d struct {
			Body string `json:"body"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return tree.Html{Body: d.Body}, nil
	case "iframe":
		var d struct {
			Url        string            `json:"url"`
			Attributes map[string]string `json:"attributes"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return tree.Iframe{Url: d.Url, Attributes: decodeAttributes(d.Attributes)}, nil
	case "module":
		var d struct {
			Name      string            `json:"name"`
			Arguments map[string]string `json:"arguments"`
			Body      string            `json:"body"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return tree.Module{Name: d.Name, Arguments: decodeAttributes(d.Arguments), Body: d.Body}, nil
	case "footnote":
		var d struct {
			Children []json.RawMessage `json:"children"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		children, err := decodeElements(d.Children)
		if err != nil {
			return nil, err
		}
		return tree.Footnote{Children: children}, nil
	default:
		return nil, fmt.Errorf("wikidot: unknown element kind %q", env.Element)
	}
}
