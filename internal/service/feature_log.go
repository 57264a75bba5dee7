package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yuqie6/lifemirror/internal/journal"
)

// featureLog 按特性名动态分发时用的擦除接口。
// 类型化访问（dashboard、CLI）直接用 JournalService 上的字段。
type featureLog interface {
	list(ctx context.Context) any
	append(ctx context.Context, payload json.RawMessage) (any, error)
	remove(ctx context.Context, id string) (bool, error)
	clear(ctx context.Context) error
}

type logAdapter[T any] struct {
	log      *journal.Log[T]
	validate func(T) error
}

// adapt 把类型化日志包成 featureLog
func adapt[T any](log *journal.Log[T], validate func(T) error) featureLog {
	return &logAdapter[T]{log: log, validate: validate}
}

func (a *logAdapter[T]) list(ctx context.Context) any {
	entries := a.log.List(ctx)
	if entries == nil {
		// API 契约里空日志是 []，不是 null
		entries = []journal.Entry[T]{}
	}
	return entries
}

func (a *logAdapter[T]) append(ctx context.Context, payload json.RawMessage) (any, error) {
	var value T
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("负载格式不对: %w", err)
	}
	if err := a.validate(value); err != nil {
		return nil, err
	}
	return a.log.Append(ctx, value)
}

func (a *logAdapter[T]) remove(ctx context.Context, id string) (bool, error) {
	return a.log.Remove(ctx, id)
}

func (a *logAdapter[T]) clear(ctx context.Context) error {
	return a.log.Clear(ctx)
}
