package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Hint  string `json:"hint,omitempty"`
}

// WriteJSON 将数据序列化为 JSON 并写入响应
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteAPIError(w http.ResponseWriter, status int, e APIError) {
	if strings.TrimSpace(e.Error) == "" {
		e.Error = http.StatusText(status)
	}
	WriteJSON(w, status, e)
}

// WriteError 写入错误响应
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteAPIError(w, status, APIError{Error: msg})
}

// readJSON 从请求体读取并解析 JSON
func readJSON(r *http.Request, out any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

// readRawJSON 读取原始请求体（上限 1MB），交给下游按日志类型解码
func readRawJSON(r *http.Request) (json.RawMessage, error) {
	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, 1<<20))
}
