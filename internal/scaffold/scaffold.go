package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Params are the open-ended named parameters for a pattern type.
// Recognized keys: "name" (exported symbol name) and, for selection,
// "selection_type" (single|multi|group). Unknown keys are ignored so
// callers can pass through user flags untouched.
type Params map[string]string

type generator func(Params) (string, error)

var generators = map[string]generator{
	"selection": generateSelection,
	"form":      generateForm,
	"context":   generateContext,
	"registry":  generateRegistry,
	"component": generateComponent,
}

// Types lists the recognized pattern types, for CLI validation and help.
func Types() []string {
	return []string{"selection", "form", "context", "registry", "component"}
}

// Generate renders the named pattern and writes it to outputPath, creating
// missing parent directories and overwriting any existing file. The body is
// rendered fully in memory before the destination is opened, so a template
// error never leaves a partial file behind. Returns the written path.
func Generate(patternType, outputPath string, params Params) (string, error) {
	gen, ok := generators[patternType]
	if !ok {
		return "", fmt.Errorf("unknown pattern type: %s", patternType)
	}
	code, err := gen(params)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(outputPath, []byte(code), 0o644); err != nil {
		return "", err
	}
	return outputPath, nil
}

// tmplData feeds the source templates. Base is the symbol name without its
// "use" prefix (UseSelection helpers derive interface names from it);
// Lower is the kebab-ish lowercase used in component class names.
type tmplData struct {
	Name  string
	Base  string
	Lower string
}

func data(params Params, def string) tmplData {
	name := params["name"]
	if name == "" {
		name = def
	}
	return tmplData{
		Name:  name,
		Base:  strings.TrimPrefix(name, "use"),
		Lower: strings.ToLower(name),
	}
}

// render executes src with [[ ]] delimiters: the emitted TypeScript and Vue
// SFC text uses {{ }} itself.
func render(src string, d tmplData) (string, error) {
	t, err := template.New("pattern").Delims("[[", "]]").Parse(src)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := t.Execute(&sb, d); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func generateSelection(params Params) (string, error) {
	st := params["selection_type"]
	if st == "" {
		st = "multi"
	}
	var src string
	switch st {
	case "single":
		src = selectionSingleTmpl
	case "multi":
		src = selectionMultiTmpl
	case "group":
		src = selectionGroupTmpl
	default:
		return "", fmt.Errorf("unknown selection type: %s (use single|multi|group)", st)
	}
	return render(src, data(params, "useSelection"))
}

func generateForm(params Params) (string, error) {
	return render(formTmpl, data(params, "useForm"))
}

func generateContext(params Params) (string, error) {
	d := data(params, "useAppContext")
	d.Base = strings.TrimSuffix(d.Base, "Context")
	return render(contextTmpl, d)
}

func generateRegistry(params Params) (string, error) {
	return render(registryTmpl, data(params, "useRegistry"))
}

func generateComponent(params Params) (string, error) {
	return render(componentTmpl, data(params, "CustomComponent"))
}
