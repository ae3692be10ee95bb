package docentry

import (
	"github.com/Zachacious/go-luadoc/internal/diagnostic"
	"github.com/Zachacious/go-luadoc/internal/doccomment"
	"github.com/Zachacious/go-luadoc/internal/syntax"
	"github.com/Zachacious/go-luadoc/internal/tags"
)

// FromComment decides which kind of entry a parsed comment describes and
// runs the matching builder.
//
// The kind comes from an @class, @function, @method or @interface tag when
// there is one, then from an @type tag, then from the documented
// declaration. The name comes from the same place. The within scope comes
// from an @within tag, then from the table a function is declared in, then
// from defaultWithin.
func FromComment(comment *doccomment.DocComment, block tags.Block, defaultWithin *string) (DocEntry, error) {
	var (
		diags   diagnostic.Collector
		entry   *tags.EntryTag
		within  *tags.WithinTag
		typeTag *tags.TypeTag
	)

	for _, tag := range block.Tags {
		switch t := tag.(type) {
		case tags.EntryTag:
			if entry != nil {
				diags.Addf(t.Source, "only one of @class, @function, @method or @interface may be used")
				continue
			}
			entry = &t
		case tags.WithinTag:
			if within != nil {
				diags.Addf(t.Source, "@within may only be used once")
				continue
			}
			within = &t
		case tags.TypeTag:
			if typeTag == nil {
				typeTag = &t
			}
		}
	}

	kind, functionType, name, ok := selectKind(comment.Node, entry, typeTag)
	if !ok {
		diags.Addf(comment.Span(), "unable to determine what kind of doc entry this is; add @class, @function, @method, @interface or @type")
		return nil, diags.Err()
	}
	if name == "" {
		diags.Addf(comment.Span(), "unable to determine the name of this %s doc entry", kind)
		return nil, diags.Err()
	}

	args := ParseArguments{
		Name:   name,
		Desc:   block.Desc,
		Source: comment,
	}

	for _, tag := range block.Tags {
		switch tag.Kind() {
		case tags.KindEntry:
			continue
		case tags.KindWithin:
			// Classes have no scope, so @within is left for the class
			// builder to report.
			if kind != KindClass {
				continue
			}
		}
		args.Tags = append(args.Tags, tag)
	}

	switch {
	case within != nil:
		scope := within.Name.Text()
		args.Within = &scope
	case functionOwner(comment.Node) != "":
		scope := functionOwner(comment.Node)
		args.Within = &scope
	default:
		args.Within = defaultWithin
	}

	built, err := build(kind, functionType, args)

	if diags.Len() == 0 {
		return built, err
	}
	diags.Extend(err)
	return nil, diags.Err()
}

func selectKind(node syntax.Node, entry *tags.EntryTag, typeTag *tags.TypeTag) (Kind, FunctionType, string, bool) {
	if entry != nil {
		name := entry.Name.Text()
		switch entry.Entry {
		case tags.EntryClass:
			return KindClass, "", name, true
		case tags.EntryFunction:
			return KindFunction, FunctionStatic, name, true
		case tags.EntryMethod:
			return KindFunction, FunctionMethod, name, true
		case tags.EntryInterface:
			return KindType, "", name, true
		}
	}

	if typeTag != nil {
		return KindType, "", typeTag.Name.Text(), true
	}

	switch n := node.(type) {
	case *syntax.FunctionDeclaration:
		if n.Method {
			return KindFunction, FunctionMethod, n.ShortName(), true
		}
		return KindFunction, FunctionStatic, n.ShortName(), true
	case *syntax.TypeDeclaration:
		return KindType, "", n.Name, true
	case *syntax.TableTypeDeclaration:
		return KindType, "", n.Name, true
	}
	return "", "", "", false
}

func functionOwner(node syntax.Node) string {
	if fn, ok := node.(*syntax.FunctionDeclaration); ok {
		return fn.Owner
	}
	return ""
}

// build runs the builder for kind. A failed build returns a nil DocEntry,
// not an interface holding a nil pointer.
func build(kind Kind, functionType FunctionType, args ParseArguments) (DocEntry, error) {
	switch kind {
	case KindClass:
		entry, err := ParseClass(args)
		if err != nil {
			return nil, err
		}
		return entry, nil
	case KindFunction:
		entry, err := ParseFunction(args, functionType)
		if err != nil {
			return nil, err
		}
		return entry, nil
	default:
		entry, err := ParseType(args)
		if err != nil {
			return nil, err
		}
		return entry, nil
	}
}
