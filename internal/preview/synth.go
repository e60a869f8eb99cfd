package preview

import (
	"fmt"
	"strings"

	"github.com/brayanj4y/code-assist/internal/project"
)

// maxDocumentSize caps the synthesized document so a runaway buffer cannot
// exhaust memory on repeated renders.
const maxDocumentSize = 4 << 20

// Synthesize composes the three source buffers into one self-contained HTML
// document: the css inlined as a style block, the html as body content, and
// the js wrapped in an exception handler that surfaces runtime errors as an
// overlay bar inside the document instead of throwing.
//
// The output is a pure function of the bundle: identical input yields a
// byte-identical document.
func Synthesize(b project.SourceBundle) (string, error) {
	if len(b.HTML)+len(b.CSS)+len(b.JS) > maxDocumentSize {
		return "", fmt.Errorf("combined sources exceed %d bytes", maxDocumentSize)
	}

	var doc strings.Builder
	doc.Grow(len(docHead) + len(docMiddle) + len(docTail) + len(b.HTML) + len(b.CSS) + len(b.JS))
	doc.WriteString(docHead)
	doc.WriteString(b.CSS)
	doc.WriteString(docMiddle)
	doc.WriteString(b.HTML)
	doc.WriteString(docScriptOpen)
	doc.WriteString(b.JS)
	doc.WriteString(docTail)
	return doc.String(), nil
}

const docHead = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>`

const docMiddle = `</style>
  </head>
  <body>
`

const docScriptOpen = `
    <script>
      try {
`

const docTail = `
      } catch (error) {
        console.error('JavaScript Error:', error);

        var errorDiv = document.createElement('div');
        errorDiv.style.position = 'fixed';
        errorDiv.style.bottom = '0';
        errorDiv.style.left = '0';
        errorDiv.style.right = '0';
        errorDiv.style.padding = '8px';
        errorDiv.style.background = 'rgba(255, 0, 0, 0.7)';
        errorDiv.style.color = 'white';
        errorDiv.style.fontFamily = 'monospace';
        errorDiv.style.fontSize = '12px';
        errorDiv.style.zIndex = '9999';
        errorDiv.textContent = 'JavaScript Error: ' + error.message;
        document.body.appendChild(errorDiv);
      }
    </script>
  </body>
</html>
`
