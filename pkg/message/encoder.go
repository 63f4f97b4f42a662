package message

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Namespace constants for gateway documents
const (
	NsPlatform = "http://schemas.firstatlanticcommerce.com/gateway/data"
	NsXSD      = "http://www.w3.org/2001/XMLSchema"
	NsXSI      = "http://www.w3.org/2001/XMLSchema-instance"
)

// ErrEmptyElementName is returned when a field has no name
var ErrEmptyElementName = errors.New("empty element name")

const xmlDeclaration = `<?xml version="1.0"?>`

// Encode builds the request document for op from fields
func Encode(op Operation, fields Field) (*etree.Document, error) {
	return EncodeRoot(op.RequestRoot(), fields)
}

// EncodeRoot builds a document with the given root element. The root carries
// the platform default namespace and the xsd/xsi declarations.
//
// A RawBody is parsed in place as the root's inner content. An Object
// becomes nested elements in order; a top-level Scalar becomes a single
// empty element named by its value.
func EncodeRoot(root string, fields Field) (*etree.Document, error) {
	if root == "" {
		return nil, ErrEmptyElementName
	}

	if raw, ok := fields.(RawBody); ok {
		var b strings.Builder
		b.WriteString(xmlDeclaration)
		b.WriteString("<" + root)
		b.WriteString(` xmlns="` + NsPlatform + `"`)
		b.WriteString(` xmlns:xsd="` + NsXSD + `"`)
		b.WriteString(` xmlns:xsi="` + NsXSI + `">`)
		b.WriteString(string(raw))
		b.WriteString("</" + root + ">")

		doc := etree.NewDocument()
		if err := doc.ReadFromString(b.String()); err != nil {
			return nil, fmt.Errorf("parsing raw body for %s: %w", root, err)
		}
		return doc, nil
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)

	elem := doc.CreateElement(root)
	elem.CreateAttr("xmlns", NsPlatform)
	elem.CreateAttr("xmlns:xsd", NsXSD)
	elem.CreateAttr("xmlns:xsi", NsXSI)

	if err := appendField(elem, fields); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", root, err)
	}

	return doc, nil
}

func appendField(parent *etree.Element, f Field) error {
	switch v := f.(type) {
	case nil:
		return nil
	case Scalar:
		if v == "" {
			return ErrEmptyElementName
		}
		parent.CreateElement(string(v))
	case Object:
		for _, e := range v {
			if e.Name == "" {
				return ErrEmptyElementName
			}
			child := parent.CreateElement(e.Name)
			switch cv := e.Value.(type) {
			case nil:
			case Scalar:
				child.SetText(string(cv))
			case RawBody:
				child.SetText(string(cv))
			case Object:
				if err := appendField(child, cv); err != nil {
					return fmt.Errorf("%s: %w", e.Name, err)
				}
			}
		}
	case RawBody:
		parent.SetText(string(v))
	}
	return nil
}

// Serialize renders doc for transmission
func Serialize(doc *etree.Document) ([]byte, error) {
	return doc.WriteToBytes()
}
