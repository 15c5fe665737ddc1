package keygen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"
)

// Lang selects the source language Render emits.
type Lang string

const (
	LangGo Lang = "go"
	LangC  Lang = "c"
)

// ParseLang accepts "go" or "c", case-insensitively.
func ParseLang(s string) (Lang, error) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case LangGo:
		return LangGo, nil
	case LangC:
		return LangC, nil
	}
	return "", fmt.Errorf("unknown language %q (want go or c)", s)
}

var funcs = template.FuncMap{
	"hex": func(v uint64) string { return fmt.Sprintf("0x%016x", v) },
}

var goTemplate = template.Must(template.New("go").Funcs(funcs).Parse(`// Code generated by zobristgen; DO NOT EDIT.

package zobrist

// Keys holds one key per [piece][row][col]; see PieceIndex for the piece order.
var Keys = [14][10][9]uint64{
{{- range .Keys}}
	{
{{- range .}}
		{ {{- range $i, $k := .}}{{if $i}}, {{end}}{{hex $k}}{{end -}} },
{{- end}}
	},
{{- end}}
}

// SideKey is folded into the hash when black is to move.
const SideKey uint64 = {{hex .Side}}

// InitKeys is a no-op: the keys are compile-time constants.
func InitKeys() {}
`))

// cTemplate reproduces the engine's zobrist.c byte for byte.
var cTemplate = template.Must(template.New("c").Funcs(funcs).Parse(`#include "zobrist.h"

#include <stdlib.h>

uint64_t zobrist_keys[14][10][9] = {
{{range .Keys}}    {
{{range .}}        { {{- range .}}{{hex .}}ULL, {{end}}}, 
{{end}}    }, 
{{end}}};

uint64_t zobrist_player = {{hex .Side}}ULL;

void init_zobrist_keys() {
    // Keys are pre-generated and hardcoded
}
`))

// Render writes t as source code in lang. Go output is gofmt'd.
func Render(w io.Writer, t Table, lang Lang) error {
	var buf bytes.Buffer
	switch lang {
	case LangGo:
		if err := goTemplate.Execute(&buf, t); err != nil {
			return fmt.Errorf("render go: %w", err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return fmt.Errorf("format go: %w", err)
		}
		buf.Reset()
		buf.Write(src)
	case LangC:
		if err := cTemplate.Execute(&buf, t); err != nil {
			return fmt.Errorf("render c: %w", err)
		}
	default:
		return fmt.Errorf("render: unknown language %q", lang)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
