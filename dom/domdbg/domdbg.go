/*
Package domdbg implements helpers to debug an in-memory DOM tree.

Dump prints an indented element tree with classes, attributes and inline
styles, grouped by style property group. ToGraphViz writes the same
information as a GraphViz (DOT) digraph.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package domdbg

import (
	"fmt"
	"io"
	"sort"
	"text/template"

	tp "github.com/xlab/treeprint"

	"github.com/npillmayer/overlayscroll/dom/memdom"
	"github.com/npillmayer/overlayscroll/dom/style"
	"github.com/npillmayer/overlayscroll/dom/style/cssom/douceuradapter"
)

// Dump returns a tree print of the element tree under root.
func Dump(root *memdom.Element) string {
	p := tp.New()
	dump(p, root)
	return p.String()
}

func dump(p tp.Tree, e *memdom.Element) {
	branch := p.AddBranch(e.String())
	dumpStyles(branch, e)
	for _, ch := range e.Children() {
		dump(branch, ch)
	}
}

func dumpStyles(p tp.Tree, e *memdom.Element) {
	for _, a := range e.Node().Attr {
		if a.Key != "class" && a.Key != "style" {
			p.AddMetaNode("@"+a.Key, a.Val)
		}
	}
	for _, pg := range groups(e) {
		g := p.AddMetaBranch("style", pg.Name)
		for _, kv := range pg.Properties {
			g.AddNode(kv.String())
		}
	}
}

// PropertyGroup is a named group of inline style properties of an element.
type PropertyGroup struct {
	Name       string
	Properties []style.KeyValue
}

func groups(e *memdom.Element) []*PropertyGroup {
	text, _ := e.Attr("style")
	kv, err := douceuradapter.ParseInline(text)
	if err != nil || len(kv) == 0 {
		return nil
	}
	byName := make(map[string]*PropertyGroup)
	var pgs []*PropertyGroup
	for _, p := range kv {
		name := style.GroupNameFromPropertyKey(p.Key)
		pg := byName[name]
		if pg == nil {
			pg = &PropertyGroup{Name: name}
			byName[name] = pg
			pgs = append(pgs, pg)
		}
		pg.Properties = append(pg.Properties, p)
	}
	sort.Slice(pgs, func(i, j int) bool { return pgs[i].Name < pgs[j].Name })
	return pgs
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
}

// ToGraphViz outputs a diagram for an element tree. The diagram is in
// GraphViz (DOT) format and includes the inline styles of every element,
// one record per style property group.
func ToGraphViz(root *memdom.Element, w io.Writer) error {
	gparams := graphParamsType{Fontname: "Helvetica"}
	head := template.Must(template.New("dom").Parse(graphHeadTmpl))
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	if err := head.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*memdom.Element]string, 64)
	if err := nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

type node struct {
	Name  string
	Label string
}

func nodes(e *memdom.Element, w io.Writer, dict map[*memdom.Element]string, gparams *graphParamsType) error {
	name := nodeName(e, dict)
	if err := gparams.NodeTmpl.Execute(w, node{name, e.String()}); err != nil {
		return err
	}
	for i, pg := range groups(e) {
		pgname := fmt.Sprintf("%s_pg%d", name, i)
		if err := gparams.StylegroupTmpl.Execute(w, struct {
			Name string
			PG   *PropertyGroup
		}{pgname, pg}); err != nil {
			return err
		}
		if err := gparams.PgedgeTmpl.Execute(w, []string{name, pgname}); err != nil {
			return err
		}
	}
	for _, ch := range e.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, []string{name, nodeName(ch, dict)}); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(e *memdom.Element, dict map[*memdom.Element]string) string {
	name := dict[e]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[e] = name
	}
	return name
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

const styleGroupTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .PG.Name }}</font></td></tr>
      {{ range .PG.Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ index . 0 }} -> {{ index . 1 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ index . 0 }} -> {{ index . 1 }} [dir=none weight=1 style="dashed"] ;
`
