// Package content 维护页面与工具目录：slug、标题、图标等静态元数据。
// 内置一份默认目录，外部 YAML 目录（可选）整体覆盖同名文件。
package content

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Page 静态内容页元数据
type Page struct {
	Slug     string `yaml:"slug" json:"slug"`
	Title    string `yaml:"title" json:"title"`
	Category string `yaml:"category" json:"category"` // anatomy / ayurveda / yoga
	Icon     string `yaml:"icon" json:"icon"`
	Summary  string `yaml:"summary" json:"summary,omitempty"`
}

// Calculator 工具元数据
type Calculator struct {
	Slug        string `yaml:"slug" json:"slug"`
	Title       string `yaml:"title" json:"title"`
	Icon        string `yaml:"icon" json:"icon"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// Catalog 目录文件的整体结构
type Catalog struct {
	Pages       []Page       `yaml:"pages"`
	Calculators []Calculator `yaml:"calculators"`
}

// Registry 目录注册表，支持热更新
type Registry struct {
	mu      sync.RWMutex
	catalog Catalog
	dir     string
}

// NewRegistry 创建注册表并加载目录。dir 为空时只用内置目录。
func NewRegistry(dir string) (*Registry, error) {
	r := &Registry{dir: dir}
	if err := r.Load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Load 重新加载：先内置默认，再按文件名顺序合并目录下的 *.yaml
func (r *Registry) Load() error {
	var catalog Catalog
	if err := yaml.Unmarshal(defaultsYAML, &catalog); err != nil {
		return fmt.Errorf("解析内置目录失败: %w", err)
	}

	if r.dir != "" {
		if err := mergeDir(&catalog, r.dir); err != nil {
			return err
		}
	}

	r.mu.Lock()
	r.catalog = catalog
	r.mu.Unlock()

	slog.Info("内容目录已加载",
		"pages", len(catalog.Pages),
		"calculators", len(catalog.Calculators),
	)
	return nil
}

// mergeDir 把目录下的 YAML 文件合并进 catalog（同 slug 覆盖，新 slug 追加）
func mergeDir(catalog *Catalog, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			// 目录不存在等价于没有外部覆盖
			return nil
		}
		return fmt.Errorf("读取内容目录失败: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("读取 %s 失败: %w", name, err)
		}
		var overlay Catalog
		if err := yaml.Unmarshal(raw, &overlay); err != nil {
			return fmt.Errorf("解析 %s 失败: %w", name, err)
		}
		catalog.Pages = mergeBySlug(catalog.Pages, overlay.Pages, func(p Page) string { return p.Slug })
		catalog.Calculators = mergeBySlug(catalog.Calculators, overlay.Calculators, func(c Calculator) string { return c.Slug })
	}
	return nil
}

func mergeBySlug[T any](base, overlay []T, slug func(T) string) []T {
	index := make(map[string]int, len(base))
	for i, item := range base {
		index[slug(item)] = i
	}
	for _, item := range overlay {
		if i, ok := index[slug(item)]; ok {
			base[i] = item
		} else {
			index[slug(item)] = len(base)
			base = append(base, item)
		}
	}
	return base
}

// Pages 返回全部页面
func (r *Registry) Pages() []Page {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Page(nil), r.catalog.Pages...)
}

// Calculators 返回全部工具
func (r *Registry) Calculators() []Calculator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Calculator(nil), r.catalog.Calculators...)
}

// KnownCalculator 判断 slug 是否在目录里
func (r *Registry) KnownCalculator(slug string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.catalog.Calculators {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// CalculatorIcon 返回工具图标；未知 slug 返回兜底图标
func (r *Registry) CalculatorIcon(slug string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.catalog.Calculators {
		if c.Slug == slug {
			return c.Icon
		}
	}
	return "sparkles"
}
