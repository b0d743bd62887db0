// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"smartpress/internal/apperror"
	"smartpress/internal/model"
)

// fileStoreConfig is the shape of {path}/config.yaml: the widgets tag's
// payload. css_classes files are scanned separately, one per *.yaml.
type fileStoreConfig struct {
	Widgets []model.Widget `yaml:"widgets"`
}

type cssClassFile struct {
	CssClasses []model.CssClass `yaml:"css_classes"`
}

// FileStore is a YAML-on-disk backend: widgets and CSS classes are
// loaded once at construction time, pages are read/written lazily per
// call. The "widgets" and "css_classes" tags decide whether those two
// kinds are loaded; page operations are served whether or not the
// "pages" tag is present.
type FileStore struct {
	path string
	tags []string

	widgets    map[string]model.Widget
	cssClasses map[string]model.CssClass
}

// NewFileStore constructs a FileStore rooted at path, eagerly loading
// widgets and CSS classes according to tags. Pages are not preloaded —
// they are read and written directly against the filesystem.
func NewFileStore(path string, tags []string) (*FileStore, error) {
	fs := &FileStore{
		path:       path,
		tags:       tags,
		widgets:    make(map[string]model.Widget),
		cssClasses: make(map[string]model.CssClass),
	}

	if fs.hasTag("widgets") {
		if err := fs.loadWidgets(); err != nil {
			return nil, err
		}
	}
	if fs.hasTag("css_classes") {
		if err := fs.loadCssClasses(); err != nil {
			return nil, err
		}
	}

	return fs, nil
}

func (fs *FileStore) hasTag(tag string) bool {
	for _, t := range fs.tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (fs *FileStore) loadWidgets() error {
	data, err := os.ReadFile(filepath.Join(fs.path, "config.yaml"))
	if err != nil {
		return apperror.Backend("read config.yaml", err)
	}

	var cfg fileStoreConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return apperror.Backend("parse config.yaml", err)
	}

	for _, w := range cfg.Widgets {
		w.HTML = fs.expandInline(w.HTML)
		w.CSS = fs.expandInline(w.CSS)
		fs.widgets[w.Name] = w
	}
	return nil
}

// expandInline replaces a field value that looks like a relative path to
// an existing file with that file's contents. A value that isn't a path
// to a file under the store root (e.g. literal HTML/CSS) passes through
// unchanged.
func (fs *FileStore) expandInline(value string) string {
	if value == "" || strings.ContainsAny(value, "{}<>\n") {
		return value
	}
	candidate := filepath.Join(fs.path, value)
	contents, err := os.ReadFile(candidate)
	if err != nil {
		return value
	}
	return string(contents)
}

func (fs *FileStore) loadCssClasses() error {
	entries, err := os.ReadDir(fs.path)
	if err != nil {
		return apperror.Backend("list css class files", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		if entry.Name() == "config.yaml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(fs.path, entry.Name()))
		if err != nil {
			return apperror.Backend("read "+entry.Name(), err)
		}
		var f cssClassFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return apperror.Backend("parse "+entry.Name(), err)
		}
		for _, c := range f.CssClasses {
			fs.cssClasses[c.Name] = c
		}
	}
	return nil
}

func (fs *FileStore) LoadWidgetDefinition(_ context.Context, localPath string) (*model.Widget, error) {
	w, ok := fs.widgets[localPath]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (fs *FileStore) GetWidgetList(_ context.Context) (model.WidgetListResult, error) {
	result := model.WidgetListResult{Results: make([]model.WidgetSummary, 0, len(fs.widgets))}
	for _, w := range fs.widgets {
		result.Results = append(result.Results, model.WidgetSummary{
			Name:        w.Name,
			Description: w.Description,
			Icon:        w.Icon,
			Editor:      w.Editor,
		})
	}
	result.Count = len(result.Results)
	return result, nil
}

func (fs *FileStore) LoadCssClassDefinition(_ context.Context, localPath string) (*model.CssClass, error) {
	c, ok := fs.cssClasses[localPath]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (fs *FileStore) LoadCssClasses(_ context.Context) (model.CssClassListResult, error) {
	result := model.CssClassListResult{Results: make([]model.CssClassSummary, 0, len(fs.cssClasses))}
	for _, c := range fs.cssClasses {
		result.Results = append(result.Results, model.CssClassSummary{
			Name:        c.Name,
			Description: c.Description,
			Tags:        c.Tags,
		})
	}
	result.Count = len(result.Results)
	return result, nil
}

func (fs *FileStore) pagePath(localPath string) string {
	return filepath.Join(fs.path, localPath+".yaml")
}

func (fs *FileStore) LoadPageDefinition(_ context.Context, localPath string) (*model.Page, error) {
	data, err := os.ReadFile(fs.pagePath(localPath))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Backend("read page "+localPath, err)
	}
	var p model.Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, apperror.Backend("parse page "+localPath, err)
	}
	return &p, nil
}

func (fs *FileStore) SavePageDefinition(_ context.Context, localPath string, page *model.Page) error {
	data, err := yaml.Marshal(page)
	if err != nil {
		return apperror.Backend("marshal page "+localPath, err)
	}
	path := fs.pagePath(localPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperror.Backend("create page directory", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperror.Backend("write page "+localPath, err)
	}
	return nil
}

func (fs *FileStore) DeletePageDefinition(_ context.Context, localPath string) (bool, error) {
	err := os.Remove(fs.pagePath(localPath))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, apperror.Backend("delete page "+localPath, err)
	}
	return true, nil
}

// GetPageList walks the store directory for *.yaml page files, skipping
// the store's own config.yaml at the root. The id is the path relative
// to the store root, minus extension. filter["type"]
// selects "template" (filenames starting with "_") or "page" (all
// others); other filter keys are ignored at this layer.
func (fs *FileStore) GetPageList(_ context.Context, offset, limit int, filter model.PageFilter) (model.PageListResult, error) {
	var all []model.PageInfo

	err := filepath.WalkDir(fs.path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".yaml" {
			return nil
		}
		rel, err := filepath.Rel(fs.path, p)
		if err != nil {
			return err
		}
		if rel == "config.yaml" {
			return nil
		}
		id := strings.TrimSuffix(rel, ".yaml")
		name := filepath.Base(rel)
		isTemplate := strings.HasPrefix(name, "_")
		switch filter["type"] {
		case "template":
			if !isTemplate {
				return nil
			}
		case "page":
			if isTemplate {
				return nil
			}
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		var page model.Page
		if err := yaml.Unmarshal(data, &page); err != nil {
			return nil // skip malformed entries rather than fail the whole listing
		}
		all = append(all, model.PageInfo{ID: id, Title: page.Title})
		return nil
	})
	if err != nil {
		return model.PageListResult{}, apperror.Backend("list pages", err)
	}

	return paginate(all, offset, limit), nil
}

// paginate applies offset/limit to a full result set, reporting the
// unsliced count as the total.
func paginate(all []model.PageInfo, offset, limit int) model.PageListResult {
	count := len(all)
	if offset < 0 {
		offset = 0
	}
	if offset > count {
		offset = count
	}
	end := count
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return model.PageListResult{Count: count, Results: all[offset:end]}
}
