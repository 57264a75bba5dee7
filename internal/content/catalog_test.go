package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistryDefaults(t *testing.T) {
	r, err := NewRegistry("")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if len(r.Pages()) == 0 {
		t.Error("内置目录应包含页面")
	}
	if !r.KnownCalculator("bmi") || !r.KnownCalculator("mood") {
		t.Error("内置目录应包含 bmi 和 mood")
	}
	if r.KnownCalculator("nope") {
		t.Error("未知 slug 不应命中")
	}
	if icon := r.CalculatorIcon("bmi"); icon != "scale" {
		t.Errorf("bmi icon=%q, want scale", icon)
	}
	if icon := r.CalculatorIcon("nope"); icon == "" {
		t.Error("未知 slug 应有兜底图标")
	}
}

func TestRegistryOverlayDir(t *testing.T) {
	dir := t.TempDir()
	overlay := `
calculators:
  - slug: bmi
    title: 重命名的 BMI
    icon: gauge
  - slug: custom
    title: 自定义工具
    icon: wrench
`
	if err := os.WriteFile(filepath.Join(dir, "10-extra.yaml"), []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewRegistry(dir)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	// 同 slug 覆盖
	if icon := r.CalculatorIcon("bmi"); icon != "gauge" {
		t.Errorf("覆盖后 bmi icon=%q, want gauge", icon)
	}
	// 新 slug 追加
	if !r.KnownCalculator("custom") {
		t.Error("追加的工具应可见")
	}
	// 内置的其他条目保留
	if !r.KnownCalculator("whr") {
		t.Error("未覆盖的内置工具应保留")
	}
}

func TestRegistryMissingDir(t *testing.T) {
	r, err := NewRegistry(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("目录不存在不应报错: %v", err)
	}
	if len(r.Calculators()) == 0 {
		t.Error("应回退到内置目录")
	}
}
