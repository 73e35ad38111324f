package swizzle

import (
	"context"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/sync/errgroup"
)

const (
	SourceFile = "swizzle_gen.go"
	TestFile   = "swizzle_gen_test.go"
)

var sourceTemplate = template.Must(template.New("source").Parse(`// Code generated by swizzlegen. DO NOT EDIT.

package {{.Package}}
{{range .Funcs}}
// {{.Name}} returns ({{.Doc}}).
func {{.Name}}{{.Signature}} {{.Result}} {
	return {{.Result}}{ {{- .Elems -}} }
}
{{end}}`))

var testTemplate = template.Must(template.New("test").Parse(`// Code generated by swizzlegen. DO NOT EDIT.

package {{.Package}}

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratedSwizzles(t *testing.T) {
	v2 := Vec2{1, 2}
	v3 := Vec3{1, 2, 3}
{{range .Funcs}}{{if .Generic}}
	require.Equal(t, {{.Result}}{ {{- .Want -}} }, {{.Name}}(v2), "{{.Name}} of Vec2")
{{- end}}
	require.Equal(t, {{.Result}}{ {{- .Want -}} }, {{.Name}}(v3), "{{.Name}} of Vec3")
{{- end}}
}
`))

type templateData struct {
	Package string
	Funcs   []Func
}

// Render writes the gofmt'ed swizzle functions.
func Render(w io.Writer, pkg string, funcs []Func) error {
	return render(w, sourceTemplate, templateData{Package: pkg, Funcs: funcs})
}

// RenderTest writes a test checking every function against the sample input.
func RenderTest(w io.Writer, pkg string, funcs []Func) error {
	return render(w, testTemplate, templateData{Package: pkg, Funcs: funcs})
}

func render(w io.Writer, tmpl *template.Template, data templateData) error {
	buf := buffers.get()
	defer buffers.put(buf)

	if err := tmpl.Execute(buf, data); err != nil {
		return fmt.Errorf("execute %s template: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", tmpl.Name(), err)
	}
	_, err = w.Write(src)
	return err
}

// Generate expands m and writes SourceFile and TestFile into dir. It
// returns the written paths.
func Generate(ctx context.Context, m *Manifest, dir string) ([]string, error) {
	funcs, err := m.Expand()
	if err != nil {
		return nil, err
	}

	outputs := []struct {
		name   string
		render func(io.Writer, string, []Func) error
	}{
		{SourceFile, Render},
		{TestFile, RenderTest},
	}

	paths := make([]string, len(outputs))
	group, ctx := errgroup.WithContext(ctx)
	for i, out := range outputs {
		paths[i] = filepath.Join(dir, out.name)
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf := buffers.get()
			defer buffers.put(buf)

			if err := out.render(buf, m.Package, funcs); err != nil {
				return err
			}
			return os.WriteFile(paths[i], buf.Bytes(), 0o644)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
