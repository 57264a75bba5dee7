package repository

import (
	"context"
	"testing"

	"github.com/yuqie6/lifemirror/internal/testutil"
)

func TestKVRepositorySetGetRemove(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewKVRepository(db)
	ctx := context.Background()

	if _, ok, err := repo.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get missing: ok=%v err=%v", ok, err)
	}

	if err := repo.Set(ctx, "ledger", `{"a":1}`); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := repo.Set(ctx, "ledger", `{"a":2}`); err != nil {
		t.Fatalf("Set overwrite error: %v", err)
	}

	v, ok, err := repo.Get(ctx, "ledger")
	if err != nil || !ok {
		t.Fatalf("Get error: ok=%v err=%v", ok, err)
	}
	if v != `{"a":2}` {
		t.Fatalf("value=%q, want overwritten", v)
	}

	if err := repo.Remove(ctx, "ledger"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "ledger"); ok {
		t.Fatal("Get after Remove should miss")
	}
	// 删除不存在的 key 不算错误
	if err := repo.Remove(ctx, "ledger"); err != nil {
		t.Fatalf("Remove absent error: %v", err)
	}
}

func TestKVRepositoryKeysPrefix(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewKVRepository(db)
	ctx := context.Background()

	_ = repo.Set(ctx, "hydration_2026-08-30", "3")
	_ = repo.Set(ctx, "hydration_2026-08-31", "5")
	_ = repo.Set(ctx, "hydrationGoal_2026-08-31", "8")
	_ = repo.Set(ctx, "moodLog", "[]")

	keys, err := repo.Keys(ctx, "hydration_")
	if err != nil {
		t.Fatalf("Keys error: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("keys=%v, want 2 entries", keys)
	}
	// 下划线是 LIKE 通配符，必须被转义，不能匹配到 hydrationGoal_*
	for _, k := range keys {
		if k == "hydrationGoal_2026-08-31" || k == "moodLog" {
			t.Fatalf("prefix scan leaked key %q", k)
		}
	}
}
