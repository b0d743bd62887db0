// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"strings"

	"smartpress/internal/apperror"
	"smartpress/internal/model"
)

// Federation routes qualified "store_spec/local_path" calls across a
// named, ordered collection of backends. store_spec may be a single
// store name or a "|"-separated fallback list for read operations;
// write/delete operations require a single name.
type Federation struct {
	order    []string
	backends map[string]Backend
}

// NewFederation builds a Federation from store configuration, in the
// order given. Each entry's Type selects the concrete backend:
// "file" (FileStore), "db" (DBStore), "code" (CodeStore).
func NewFederation(configs []model.StoreConfig) (*Federation, error) {
	f := &Federation{backends: make(map[string]Backend, len(configs))}
	for _, cfg := range configs {
		backend, err := newBackend(cfg)
		if err != nil {
			return nil, fmt.Errorf("store %q: %w", cfg.Name, err)
		}
		f.order = append(f.order, cfg.Name)
		f.backends[cfg.Name] = backend
	}
	return f, nil
}

func newBackend(cfg model.StoreConfig) (Backend, error) {
	switch cfg.Type {
	case "file":
		return NewFileStore(cfg.Path, cfg.Tags)
	case "db":
		return NewDBStore(cfg.URL)
	case "code":
		return NewCodeStore(), nil
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
}

func (f *Federation) backend(name string) (Backend, bool) {
	b, ok := f.backends[name]
	return b, ok
}

// splitPath splits path once on "/" into (store_spec, rest). A missing
// separator is a path error.
func splitPath(path string) (string, string, error) {
	storeSpec, rest, ok := strings.Cut(path, "/")
	if !ok {
		return "", "", apperror.InvalidPath(path)
	}
	return storeSpec, rest, nil
}

// fallbackNames splits a store_spec on "|" into its ordered fallback list.
func fallbackNames(storeSpec string) []string {
	return strings.Split(storeSpec, "|")
}

// singleName rejects a store_spec containing "|": write/delete calls
// must name exactly one backend.
func singleName(storeSpec string) (string, error) {
	if strings.Contains(storeSpec, "|") {
		return "", &apperror.Error{Kind: apperror.KindInvalidPath, Msg: "invalid path: write/delete requires a single store name", Path: storeSpec}
	}
	return storeSpec, nil
}

// ResolvedWidget is a widget definition together with whether the
// backend that served it was the code store — the signal the rendering
// pass uses to decide whether this element is context-injecting.
type ResolvedWidget struct {
	Widget      *model.Widget
	IsCodeStore bool
}

func (f *Federation) LoadWidgetDefinition(ctx context.Context, path string) (ResolvedWidget, error) {
	storeSpec, rest, err := splitPath(path)
	if err != nil {
		return ResolvedWidget{}, err
	}
	for _, name := range fallbackNames(storeSpec) {
		b, ok := f.backend(name)
		if !ok {
			continue
		}
		w, err := b.LoadWidgetDefinition(ctx, rest)
		if err != nil {
			return ResolvedWidget{}, err
		}
		if w != nil {
			_, isCode := b.(*CodeStore)
			return ResolvedWidget{Widget: w, IsCodeStore: isCode}, nil
		}
	}
	return ResolvedWidget{}, apperror.NotFound("widget", "widget not found: "+path, "", path)
}

func (f *Federation) LoadPageDefinition(ctx context.Context, path string) (*model.Page, error) {
	storeSpec, rest, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	for _, name := range fallbackNames(storeSpec) {
		b, ok := f.backend(name)
		if !ok {
			continue
		}
		p, err := b.LoadPageDefinition(ctx, rest)
		if err != nil {
			return nil, err
		}
		if p != nil {
			if p.Store == "" {
				p.Store = name
			}
			return p, nil
		}
	}
	return nil, apperror.NotFound("page", "page not found: "+path, "", path)
}

func (f *Federation) SavePageDefinition(ctx context.Context, path string, page *model.Page) error {
	storeSpec, rest, err := splitPath(path)
	if err != nil {
		return err
	}
	name, err := singleName(storeSpec)
	if err != nil {
		return err
	}
	b, ok := f.backend(name)
	if !ok {
		return apperror.NotFound("store", "store not found: "+name, name, path)
	}
	return b.SavePageDefinition(ctx, rest, page)
}

func (f *Federation) DeletePageDefinition(ctx context.Context, path string) (bool, error) {
	storeSpec, rest, err := splitPath(path)
	if err != nil {
		return false, err
	}
	name, err := singleName(storeSpec)
	if err != nil {
		return false, err
	}
	b, ok := f.backend(name)
	if !ok {
		return false, apperror.NotFound("store", "store not found: "+name, name, path)
	}
	return b.DeletePageDefinition(ctx, rest)
}

func (f *Federation) LoadCssClassDefinition(ctx context.Context, path string) (*model.CssClass, error) {
	storeSpec, rest, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	for _, name := range fallbackNames(storeSpec) {
		b, ok := f.backend(name)
		if !ok {
			continue
		}
		c, err := b.LoadCssClassDefinition(ctx, rest)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}
	return nil, apperror.NotFound("css_class", "css class not found: "+path, "", path)
}

// GetPageList fans out across every backend (or just filter["store"],
// when present), collecting each backend's full matching set before
// re-slicing by offset/limit at the federation layer — true global
// pagination rather than a per-backend slice naively concatenated.
func (f *Federation) GetPageList(ctx context.Context, offset, limit int, filter model.PageFilter) (model.PageListResult, error) {
	names := f.order
	if only, ok := filter["store"]; ok {
		names = []string{only}
	}

	var all []model.PageInfo
	for _, name := range names {
		b, ok := f.backend(name)
		if !ok {
			continue
		}
		part, err := b.GetPageList(ctx, 0, 0, filter)
		if err != nil {
			return model.PageListResult{}, err
		}
		for _, item := range part.Results {
			if item.Store == "" {
				item.Store = name
			}
			all = append(all, item)
		}
	}

	return paginate(all, offset, limit), nil
}

// GetWidgetList fans out across every backend, qualifying each result's
// name as "store_name/widget_name" — the listing is a catalog, the
// bodies are already cleared by the backend's own summary type.
func (f *Federation) GetWidgetList(ctx context.Context) (model.WidgetListResult, error) {
	var all []model.WidgetSummary
	for _, name := range f.order {
		b, ok := f.backend(name)
		if !ok {
			continue
		}
		part, err := b.GetWidgetList(ctx)
		if err != nil {
			return model.WidgetListResult{}, err
		}
		for _, w := range part.Results {
			w.Name = name + "/" + w.Name
			all = append(all, w)
		}
	}
	return model.WidgetListResult{Count: len(all), Results: all}, nil
}

// LoadCssClasses fans out across every backend and concatenates results
// unqualified — unlike widgets, the listing contract does not call for
// a qualified rename here.
func (f *Federation) LoadCssClasses(ctx context.Context) (model.CssClassListResult, error) {
	var all []model.CssClassSummary
	for _, name := range f.order {
		b, ok := f.backend(name)
		if !ok {
			continue
		}
		part, err := b.LoadCssClasses(ctx)
		if err != nil {
			return model.CssClassListResult{}, err
		}
		all = append(all, part.Results...)
	}
	return model.CssClassListResult{Count: len(all), Results: all}, nil
}

// Stores returns the ordered list of configured store names, for
// catalog endpoints.
func (f *Federation) Stores() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Close releases any resources held by backends that need it (DBStore's
// sql.DB). Other backend kinds no-op.
func (f *Federation) Close() error {
	var firstErr error
	for _, b := range f.backends {
		if closer, ok := b.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
