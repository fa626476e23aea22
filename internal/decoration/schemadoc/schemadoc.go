// Package schemadoc publishes the decoration configuration as a JSON Schema
// document so form builders can render fields and enum pickers from it.
package schemadoc

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"

	"decor-golang/internal/decoration"
)

func Configuration() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	doc := reflector.ReflectFromType(reflect.TypeOf(decoration.Configuration{}))
	if doc == nil {
		return nil, fmt.Errorf("schemadoc: failed to reflect decoration configuration")
	}
	doc.Title = "Decoration Configuration"
	doc.Description = "Decoration details attached to an order line item. Only the details object matching technique is expected."

	return doc, nil
}
