package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

const usage = `usage: apierrorgen -t <taxonomy> -o <output> [options...]

Generate structured error classes from a YAML taxonomy.

Options:

  -t <taxonomy>  YAML taxonomy file, can be specified multiple times. Required.
  -o <output>    Output filename for generated Go code. Required.
  -n <package>   Go package name, defaults to "main".
  -p <path>      Import path of the output package, if it is not main.
  -g <schema>    Also write the error codes and keys as GraphQL enums.
`

type stringSliceFlag []string

func (v *stringSliceFlag) String() string {
	return fmt.Sprint([]string(*v))
}

func (v *stringSliceFlag) Set(s string) error {
	*v = append(*v, s)
	return nil
}

const apierror = "git.sr.ht/~emersion/apierror"

var knownCodes = map[string]string{
	"VALIDATION_ERROR":          "CodeValidation",
	"BAD_USER_INPUT":            "CodeBadUserInput",
	"GRAPHQL_PARSE_FAILED":      "CodeGraphQLParseFailed",
	"GRAPHQL_VALIDATION_FAILED": "CodeGraphQLValidationFailed",
	"INTERNAL_SERVER_ERROR":     "CodeInternalServerError",
}

var knownKeys = map[string]string{
	"invalid-attribute": "KeyInvalidAttribute",
	"missing-attribute": "KeyMissingAttribute",
	"not-found":         "KeyNotFound",
}

func genDescription(s string) jen.Code {
	if s == "" {
		return jen.Null()
	}
	return jen.Comment(s).Line()
}

func genConst(known map[string]string, typeName, value string) jen.Code {
	if name, ok := known[value]; ok {
		return jen.Qual(apierror, name)
	}
	return jen.Qual(apierror, typeName).Call(jen.Lit(value))
}

func genData(data map[string]interface{}) (jen.Code, error) {
	dict := jen.Dict{}
	for k, v := range data {
		switch v.(type) {
		case string, bool, int, int64, float64:
			dict[jen.Lit(k)] = jen.Lit(v)
		case nil:
			dict[jen.Lit(k)] = jen.Nil()
		default:
			return nil, fmt.Errorf("data field %q: unsupported value type %T", k, v)
		}
	}
	return jen.Map(jen.String()).Interface().Values(dict), nil
}

func genDef(def errorDef) (jen.Code, error) {
	fields := jen.Dict{
		jen.Id("Key"):  genConst(knownKeys, "Key", def.Key),
		jen.Id("Code"): genConst(knownCodes, "Code", def.Code),
	}
	if def.Message != "" {
		fields[jen.Id("Message")] = jen.Lit(def.Message)
	}
	if len(def.Data) > 0 {
		data, err := genData(def.Data)
		if err != nil {
			return nil, fmt.Errorf("error %q: %v", def.Name, err)
		}
		fields[jen.Id("Data")] = data
	}
	if len(def.InternalData) > 0 {
		data, err := genData(def.InternalData)
		if err != nil {
			return nil, fmt.Errorf("error %q: internal %v", def.Name, err)
		}
		fields[jen.Id("InternalData")] = data
	}
	if def.HidePath || def.HideLocations {
		opts := jen.Dict{}
		if def.HidePath {
			opts[jen.Id("HidePath")] = jen.True()
		}
		if def.HideLocations {
			opts[jen.Id("HideLocations")] = jen.True()
		}
		fields[jen.Id("Options")] = jen.Qual(apierror, "Options").Values(opts)
	}

	return jen.Add(genDescription(def.Description)).Id(def.Name).Op("=").Qual(apierror, "Define").Call(
		jen.Lit(def.Name),
		jen.Qual(apierror, "Definition").Values(fields),
	), nil
}

func genFile(pkgPath, pkgName string, defs []errorDef) (*jen.File, error) {
	var f *jen.File
	if pkgPath != "" {
		f = jen.NewFilePathName(pkgPath, pkgName)
	} else {
		f = jen.NewFile(pkgName)
	}
	f.HeaderComment("Code generated by apierrorgen - DO NOT EDIT")

	var vars []jen.Code
	for _, def := range defs {
		v, err := genDef(def)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	f.Var().Defs(vars...)
	return f, nil
}

// enumValueName turns a key such as "missing-attribute" into MISSING_ATTRIBUTE.
func enumValueName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}

func genEnum(name, description, kind string, values []string) (*ast.Definition, error) {
	sort.Strings(values)
	def := &ast.Definition{
		Kind:        ast.Enum,
		Name:        name,
		Description: description,
	}
	seen := make(map[string]string)
	for _, v := range values {
		valueName := enumValueName(v)
		if prev, ok := seen[valueName]; ok {
			return nil, fmt.Errorf("%s %q and %q both map to enum value %s", kind, prev, v, valueName)
		}
		seen[valueName] = v
		def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
			Name:        valueName,
			Description: v,
		})
	}
	return def, nil
}

func genSchema(defs []errorDef) (string, error) {
	codes := make(map[string]struct{})
	keys := make(map[string]struct{})
	for _, def := range defs {
		codes[def.Code] = struct{}{}
		keys[def.Key] = struct{}{}
	}

	var codeList, keyList []string
	for c := range codes {
		codeList = append(codeList, c)
	}
	for k := range keys {
		keyList = append(keyList, k)
	}

	codeEnum, err := genEnum("ErrorCode", "Value of extensions.code on API errors.", "codes", codeList)
	if err != nil {
		return "", err
	}
	keyEnum, err := genEnum("ErrorKey", "Value of extensions.key on API errors.", "keys", keyList)
	if err != nil {
		return "", err
	}

	doc := ast.SchemaDocument{
		Definitions: ast.DefinitionList{codeEnum, keyEnum},
	}

	var sb strings.Builder
	formatter.NewFormatter(&sb).FormatSchemaDocument(&doc)
	schema := sb.String()

	if _, err := parser.ParseSchema(&ast.Source{Name: "errors.graphql", Input: schema}); err != nil {
		return "", fmt.Errorf("generated schema is invalid: %v", err)
	}
	return schema, nil
}

func main() {
	var taxonomyFilenames []string
	var pkgName, pkgPath, outputFilename, schemaFilename string
	flag.Var((*stringSliceFlag)(&taxonomyFilenames), "t", "taxonomy filename")
	flag.StringVar(&pkgName, "n", "main", "package name")
	flag.StringVar(&pkgPath, "p", "", "package import path")
	flag.StringVar(&outputFilename, "o", "", "output filename")
	flag.StringVar(&schemaFilename, "g", "", "GraphQL schema output filename")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
	}
	flag.Parse()

	if len(taxonomyFilenames) == 0 || outputFilename == "" || len(flag.Args()) > 0 {
		flag.Usage()
		os.Exit(1)
	}

	var defs []errorDef
	for _, filename := range taxonomyFilenames {
		t, err := loadTaxonomy(filename)
		if err != nil {
			log.Fatalf("failed to load taxonomy %q: %v", filename, err)
		}
		defs = append(defs, t.Errors...)
	}

	defs, err := checkDefs(defs)
	if err != nil {
		log.Fatal(err)
	}

	f, err := genFile(pkgPath, pkgName, defs)
	if err != nil {
		log.Fatal(err)
	}
	if err := f.Save(outputFilename); err != nil {
		log.Fatalf("failed to save output file: %v", err)
	}

	if schemaFilename != "" {
		schema, err := genSchema(defs)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(schemaFilename, []byte(schema), 0644); err != nil {
			log.Fatalf("failed to save schema file: %v", err)
		}
	}
}
