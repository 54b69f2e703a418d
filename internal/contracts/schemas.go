package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"listings-service/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ключи схем, которыми пользуются обработчики и тесты.
const (
	PropertyCreateRequest = "PropertyCreateRequest/1.0.0"
	PropertyUpdateRequest = "PropertyUpdateRequest/1.0.0"
	BulkDeleteRequest     = "BulkDeleteRequest/1.0.0"
	AdminLoginRequest     = "AdminLoginRequest/1.0.0"
	PropertyEvent         = "PropertyEventEvent/1.0.0"
)

// schemaRoots - каталоги в SchemasFS и суффикс, который получает имя схемы.
var schemaRoots = map[string]string{
	"requests": "Request",
	"events":   "Event",
}

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	if err := loadSchemas(schemas.SchemasFS); err != nil {
		// Схемы встроены в бинарник, ошибка здесь - ошибка сборки.
		panic(fmt.Sprintf("contracts: %v", err))
	}
}

func loadSchemas(fsys fs.FS) error {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	for root := range schemaRoots {
		err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil
			}
			file, err := fsys.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				return fmt.Errorf("failed to add schema resource %s: %w", path, err)
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return fmt.Errorf("error walking schema resources: %w", err)
		}
	}

	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			return fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		key := generateKeyFromPath(path)
		if key == "" {
			return fmt.Errorf("schema path %s does not match <root>/<name>/v<N>.json", path)
		}
		compiledSchemas[key] = schema
	}
	return nil
}

// generateKeyFromPath: "requests/property-create/v1.json" -> "PropertyCreateRequest/1.0.0".
func generateKeyFromPath(path string) string {
	parts := strings.Split(strings.TrimSuffix(path, ".json"), "/")
	if len(parts) != 3 {
		return ""
	}
	suffix, ok := schemaRoots[parts[0]]
	if !ok || !strings.HasPrefix(parts[2], "v") {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[1], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString(suffix)

	version := strings.TrimPrefix(parts[2], "v") + ".0.0"
	return fmt.Sprintf("%s/%s", name.String(), version)
}

// ValidationError - тело не прошло проверку схемой. Текст пригоден для ответа клиенту.
type ValidationError struct {
	Schema string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("request does not match %s: %s", e.Schema, e.Reason)
}

// Validate проверяет JSON-тело по схеме с ключом key.
func Validate(key string, body []byte) error {
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema %q not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return &ValidationError{Schema: key, Reason: "body is not a valid JSON"}
	}

	if err := schema.Validate(v); err != nil {
		return &ValidationError{Schema: key, Reason: describe(err)}
	}
	return nil
}

// describe берет самую глубокую причину, она понятнее всего пользователю.
func describe(err error) string {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	location := verr.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("%s: %s", location, verr.Message)
}
