package mockup

import (
	"bytes"
	"html/template"
	"strings"
)

// shellTemplate is the document every fragment is embedded into. Styling and
// icons are pulled from CDNs at view time.
var shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <script src="https://cdn.tailwindcss.com"></script>
    <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">
    <style>
        @import url('https://fonts.googleapis.com/css2?family=Inter:wght@300;400;600;700&display=swap');
        body { font-family: 'Inter', sans-serif; background-color: #f3f4f6; }
        ::-webkit-scrollbar { display: none; }
    </style>
</head>
<body class="min-h-screen flex items-center justify-center p-4 bg-gray-100">
{{.}}
</body>
</html>
`))

var errorTemplate = template.Must(template.New("error").Parse(`<div class="bg-white p-8 rounded-xl shadow-xl border-l-4 border-red-500 max-w-lg">
    <h2 class="text-2xl font-bold text-red-600 mb-4">{{.Title}}</h2>
    <div class="text-gray-700 text-sm font-mono bg-gray-50 p-4 rounded border border-gray-200 overflow-auto max-h-64">
        {{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}
    </div>
    {{- with .Hint}}
    <p class="text-gray-500 text-xs mt-4"><strong>Fix:</strong> {{.}}</p>
    {{- end}}
</div>`))

// fallbackDocument is served if the shell itself cannot be executed.
const fallbackDocument = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Error</title></head>
<body><h2>Rendering failed</h2></body>
</html>
`

// Wrap embeds a trusted HTML fragment into the document shell. The fragment
// is not escaped; callers must only pass markup they produced or accepted as
// a component body.
func Wrap(fragment string) string {
	var buf bytes.Buffer
	if err := shellTemplate.Execute(&buf, template.HTML(fragment)); err != nil {
		return fallbackDocument
	}
	return buf.String()
}

// ErrorDocument renders a titled error card as a complete document. Title,
// message and hint are escaped; newlines in message become line breaks.
func ErrorDocument(title, message, hint string) string {
	data := struct {
		Title string
		Lines []string
		Hint  string
	}{
		Title: title,
		Lines: strings.Split(message, "\n"),
		Hint:  hint,
	}

	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, data); err != nil {
		return fallbackDocument
	}
	return Wrap(buf.String())
}
