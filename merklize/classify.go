package merklize

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"xdao.co/merklize/rdf"
)

var bareDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// localDateTime is an xsd:dateTime lexical form without a zone offset.
const localDateTime = "2006-01-02T15:04:05.999999999"

// objectAction is what the builder does with a classified quad.
type objectAction int

const (
	emitLeaf objectAction = iota
	skipLeaf
)

// classifyObject maps a quad object to a leaf value. Blank-node objects are
// skipped when they are parent targets and rejected otherwise.
func classifyObject(r *Relationship, idx rdf.Index, obj rdf.Term) (Value, objectAction, error) {
	switch obj.Kind {
	case rdf.KindLiteral:
		v, err := classifyLiteral(obj)
		return v, emitLeaf, err
	case rdf.KindIRI:
		if obj.Value == "" {
			return Value{}, emitLeaf, newError(KindStructural, ruleEmptyIRI, "empty IRI object at "+idx.String())
		}
		return StringValue(obj.Value), emitLeaf, nil
	case rdf.KindBlankNode:
		if r.IsParentTarget(idx) {
			return Value{}, skipLeaf, nil
		}
		return Value{}, emitLeaf, newError(KindNotSupported, ruleBlankNode, "blank node object _:"+obj.Value+" at "+idx.String()+" has no nested statements")
	case rdf.KindVariable:
		return StringValue(obj.Value), emitLeaf, nil
	default:
		return Value{}, emitLeaf, newError(KindStructural, ruleTermKind, fmt.Sprintf("unrecognised term kind %d at %s", int(obj.Kind), idx))
	}
}

func classifyLiteral(obj rdf.Term) (Value, error) {
	switch dt := obj.Datatype; {
	case dt == rdf.XSDBoolean:
		switch obj.Value {
		case "true":
			return BoolValue(true), nil
		case "false":
			return BoolValue(false), nil
		default:
			return Value{}, newError(KindStructural, ruleBoolean, fmt.Sprintf("invalid xsd:boolean %q", obj.Value))
		}
	case rdf.IsIntegerDatatype(dt):
		i, err := strconv.ParseInt(obj.Value, 10, 64)
		if err != nil {
			return Value{}, wrapError(KindStructural, ruleInteger, fmt.Sprintf("invalid integer %q for <%s>", obj.Value, dt), err)
		}
		return IntValue(i), nil
	case dt == rdf.XSDDateTime:
		t, err := parseDateTime(obj.Value)
		if err != nil {
			return Value{}, wrapError(KindStructural, ruleDateTime, fmt.Sprintf("invalid xsd:dateTime %q", obj.Value), err)
		}
		return TimeValue(t), nil
	default:
		return StringValue(obj.Value), nil
	}
}

// parseDateTime accepts a bare YYYY-MM-DD date (midnight UTC), an RFC 3339
// timestamp, or a timestamp without zone offset which is read as UTC.
func parseDateTime(s string) (time.Time, error) {
	if bareDate.MatchString(s) {
		return time.ParseInLocation(time.DateOnly, s, time.UTC)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	if t, lerr := time.ParseInLocation(localDateTime, s, time.UTC); lerr == nil {
		return t, nil
	}
	return time.Time{}, err
}
