package web

import _ "embed"

//go:embed index.html
var embeddedIndexHTML []byte

// IndexHTML is the single-page bulk mailer UI served at /.
var IndexHTML = embeddedIndexHTML
