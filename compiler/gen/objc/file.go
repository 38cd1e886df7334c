package objc

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/syssam/objcgen/compiler/gen"
)

var (
	//go:embed template/*.tmpl
	templateFS embed.FS

	templates = template.Must(template.New("objc").ParseFS(templateFS, "template/*.tmpl"))
)

// fileData is passed to the file templates.
type fileData struct {
	Header        string
	Comment       []string
	Manager       string
	Class         string
	Director      string
	NativeManager string

	DefaultManager     bool
	Declarations       string
	Implementations    string
	Constructor        string
	DefaultManagerImpl string
}

// Files renders the header and implementation file of the manager.
func (m *Manager) Files(c *gen.Config, comment string) ([]*gen.File, error) {
	data := &fileData{
		Header:          c.Header,
		Manager:         m.name,
		Class:           m.class(),
		Director:        m.director,
		NativeManager:   m.namespace + "::" + m.object + "Manager",
		DefaultManager:  c.HasFeature(gen.FeatureDefaultManager.Name),
		Declarations:    m.FetchDeclarations(),
		Implementations: m.FetchImplementations(),
		Constructor:     m.ConstructorImplementation(),
	}
	if comment = strings.TrimSpace(comment); comment != "" {
		data.Comment = strings.Split(comment, "\n")
	}
	if data.DefaultManager {
		data.DefaultManagerImpl = m.DefaultManagerImplementation()
	}
	header, err := execute("header.tmpl", data)
	if err != nil {
		return nil, gen.NewGenerationError("render", m.name+".h", "", err)
	}
	source, err := execute("source.tmpl", data)
	if err != nil {
		return nil, gen.NewGenerationError("render", m.name+".mm", "", err)
	}
	return []*gen.File{
		{Path: m.name + ".h", Content: header},
		{Path: m.name + ".mm", Content: source},
	}, nil
}

func execute(name string, data *fileData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}
