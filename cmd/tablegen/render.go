// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/katalvlaran/lvrng/subcycle"
)

// perRow is the number of literals on one line of a generated array.
const perRow = 8

// table is the template view of one generated array.
type table struct {
	Var   string
	Name  string
	Block uint64
	Rows  []string
}

func newTable(varName string, t *subcycle.Table[uint32]) table {
	entries := t.Entries()
	rows := make([]string, 0, subcycle.Entries/perRow)
	for i := 0; i < len(entries); i += perRow {
		cells := make([]string, perRow)
		for j := range cells {
			cells[j] = fmt.Sprintf("0x%08X,", entries[i+j])
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return table{Var: varName, Name: t.Component().Name, Block: t.BlockSize(), Rows: rows}
}

var fileTemplate = template.Must(template.New("tables").Parse(`// Code generated by tablegen; DO NOT EDIT.

package {{.Package}}
{{range .Tables}}
// {{.Var}} holds the {{.Name}} checkpoints, block size {{.Block}}.
var {{.Var}} = [Entries]uint32{
{{range .Rows}}	{{.}}
{{end}}}
{{end}}`))

// render executes the file template and gofmts the result.
func render(pkg string, tables []table) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Tables  []table
	}{pkg, tables})
	if err != nil {
		return nil, fmt.Errorf("render tables: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
