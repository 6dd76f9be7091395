package view

import (
	"html/template"
	"io"

	"newsflash/internal/usecase"
)

// PageTemplate is the name gin renders the reader page under.
const PageTemplate = "page"

var navLinks = []string{"new", "past", "comments", "ask", "show", "jobs", "submit"}

var footerLinks = []string{"Guidelines", "FAQ", "Lists", "API", "Security", "Legal", "Contact"}

const pageHTML = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Newsflash</title>
<style>
body{margin:0;background:#f6f6ef;font-family:Verdana,Geneva,sans-serif;font-size:10pt;color:#000}
a{color:inherit;text-decoration:none}a:hover{text-decoration:underline}
.wrap{max-width:64rem;margin:0 auto;padding:0 .5rem}
#header{background:#000;color:#fff;height:1.75rem}
#header .wrap{display:flex;align-items:center;gap:.5rem;padding-top:.25rem}
#header nav{display:flex;gap:.5rem;font-size:8pt}
#header .spacer{flex:1}
#categories{display:flex;gap:.5rem;font-size:8pt;padding:.5rem;border-bottom:1px solid #000}
#categories a{color:#828282}#categories a.active{color:#ff6600;font-weight:bold}
.item{display:flex;gap:.25rem;font-size:8pt;line-height:1.25rem}
.rank{color:#828282;min-width:1.5rem;text-align:right}
.host,.meta{color:#828282}
#pagination{padding:1rem 0;font-size:8pt}
#pagination .count{color:#828282;margin-left:.5rem}
#footer{border-top:1px solid #ccc;margin-top:1rem;padding:1rem;font-size:8pt;color:#828282;text-align:center}
</style>
</head>
<body>
<div id="header"><div class="wrap">
<b>Newsflash</b>
<nav>{{range .Nav}}<a href="#">{{.}}</a>{{end}}</nav>
<span class="spacer"></span>
<a href="#" class="login">login</a>
</div></div>
<div id="categories" class="wrap">
{{range .Page.Categories}}<a href="/?category={{.Label}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
{{end}}</div>
<div id="content" class="wrap">
{{if .Page.Loading}}<p class="loading">Loading...</p>
{{else}}<div id="articles">
{{range .Page.Items}}<div class="item">
<span class="rank">{{.Rank}}.</span>
<div>
<div><a class="title" href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a>{{if .Host}} <span class="host">({{.Host}})</span>{{end}}</div>
<div class="meta">{{with .Byline}}{{.}} | {{end}}<a href="#">discuss</a></div>
</div>
</div>
{{end}}</div>
{{end}}<div id="pagination">
{{if .Page.HasMore}}<a class="more" href="/?category={{.Page.Category.Label}}&amp;page={{.Page.NextPage}}">More</a>{{end}}
<span class="count">Page {{.Page.CurrentPage}} of {{.Page.TotalPages}}</span>
</div>
</div>
<div id="footer" class="wrap">
{{range $i, $l := .Footer}}{{if $i}} | {{end}}<a href="#">{{$l}}</a>{{end}}
</div>
</body>
</html>
{{end}}`

// Template parses the page template. It panics on a malformed template.
func Template() *template.Template {
	return template.Must(template.New("newsflash").Parse(pageHTML))
}

// Data wraps a page view with the static chrome links for the template.
func Data(page usecase.PageView) map[string]any {
	return map[string]any{
		"Page":   page,
		"Nav":    navLinks,
		"Footer": footerLinks,
	}
}

// HTML renders page to w.
func HTML(w io.Writer, page usecase.PageView) error {
	return Template().ExecuteTemplate(w, PageTemplate, Data(page))
}
