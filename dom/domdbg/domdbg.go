/*
Package domdbg implements helpers to debug a styled tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/styling/dom/styledtree"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	Keys      []string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
}

// DefaultKeys are the properties displayed if a client does not provide
// a list of property keys.
var DefaultKeys = []string{
	"display",
	"margin-top", "margin-right", "margin-bottom", "margin-left",
	"padding-top", "padding-right", "padding-bottom", "padding-left",
	"color",
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree, a Writer, and an optional list of property keys.
// For every node which has been styled, the diagram will include a
// record of the computed values of these properties.
//
// If the client does not provide a list of keys, DefaultKeys will be used.
func ToGraphViz(root *styledtree.StyNode, w io.Writer, keys []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Keys: keys}
	if keys == nil {
		gparams.Keys = DefaultKeys
	}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("styles").Parse(stylesTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*styledtree.StyNode]string, 256)
	err = root.Walk(func(sn *styledtree.StyNode) error {
		if err := domNode(sn, w, dict, &gparams); err != nil {
			return err
		}
		if p := sn.ParentNode(); p != nil {
			return gparams.EdgeTmpl.Execute(w, edge{dict[p], dict[sn]})
		}
		return nil
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	Name  string
	Label string
}

type property struct {
	Key, Value string
}

type styles struct {
	Name       string
	Properties []property
}

type edge struct {
	N1, N2 string
}

func domNode(sn *styledtree.StyNode, w io.Writer, dict map[*styledtree.StyNode]string,
	gparams *graphParamsType) error {
	//
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[sn] = name
	label := sn.Element().FullName()
	if cs := sn.ComputedStyle(); cs != nil {
		label = cs.Display.Symbol() + " " + label
	}
	if err := gparams.NodeTmpl.Execute(w, node{name, label}); err != nil {
		return err
	}
	if sn.ComputedStyle() == nil {
		return nil
	}
	st := styles{Name: name}
	for _, key := range gparams.Keys {
		if v, ok := sn.Property(key); ok && v != "" {
			st.Properties = append(st.Properties, property{key, escape(v)})
		}
	}
	return gparams.StyleTmpl.Execute(w, st)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")
	return r.Replace(s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const stylesTmpl = `{{ .Name }}_styles [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_styles [dir=none weight=1 style="dashed"] ;
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
