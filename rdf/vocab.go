package rdf

// XSD datatype IRIs recognised by the classifier.
const (
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	XSDString   = XSDNamespace + "string"
	XSDBoolean  = XSDNamespace + "boolean"
	XSDDateTime = XSDNamespace + "dateTime"

	XSDInteger            = XSDNamespace + "integer"
	XSDNonNegativeInteger = XSDNamespace + "nonNegativeInteger"
	XSDNonPositiveInteger = XSDNamespace + "nonPositiveInteger"
	XSDNegativeInteger    = XSDNamespace + "negativeInteger"
	XSDPositiveInteger    = XSDNamespace + "positiveInteger"
	XSDLong               = XSDNamespace + "long"
	XSDInt                = XSDNamespace + "int"
	XSDShort              = XSDNamespace + "short"
	XSDByte               = XSDNamespace + "byte"
	XSDUnsignedLong       = XSDNamespace + "unsignedLong"
	XSDUnsignedInt        = XSDNamespace + "unsignedInt"
	XSDUnsignedShort      = XSDNamespace + "unsignedShort"
	XSDUnsignedByte       = XSDNamespace + "unsignedByte"

	RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

var integerDatatypes = map[string]bool{
	XSDInteger:            true,
	XSDNonNegativeInteger: true,
	XSDNonPositiveInteger: true,
	XSDNegativeInteger:    true,
	XSDPositiveInteger:    true,
	XSDLong:               true,
	XSDInt:                true,
	XSDShort:              true,
	XSDByte:               true,
	XSDUnsignedLong:       true,
	XSDUnsignedInt:        true,
	XSDUnsignedShort:      true,
	XSDUnsignedByte:       true,
}

// IsIntegerDatatype reports whether dt is xsd:integer or one of its derived types.
func IsIntegerDatatype(dt string) bool { return integerDatatypes[dt] }
