package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/porrinha/internal/argvec"
	"github.com/specialistvlad/porrinha/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translatePlayer turns a player block into the argument vector its factory
// expects: the label is the program name and every args element one token.
func translatePlayer(ctx context.Context, block *playerBlock) (*argvec.Vector, error) {
	spec := argvec.Empty()
	spec.SetProgramName(block.Kind)

	if !isExprDefined(block.Args) {
		return spec, nil
	}
	val, diags := block.Args.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("player '%s': invalid args: %w", block.Kind, diags)
	}
	tokens, err := tokensFromValue(val)
	if err != nil {
		return nil, fmt.Errorf("player '%s': %w", block.Kind, err)
	}
	for _, token := range tokens {
		spec.PushBack(token)
	}

	ctxlog.FromContext(ctx).Debug("Translated player block.", "kind", block.Kind, "args", tokens)
	return spec, nil
}

// isExprDefined reports whether an optional attribute was written in the file.
// gohcl fills omitted optional expressions with a zero-width placeholder, so
// a nil check alone is not enough.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	return rng.End.Byte > rng.Start.Byte
}

// tokensFromValue converts a list or tuple of primitives into strings.
func tokensFromValue(val cty.Value) ([]string, error) {
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, fmt.Errorf("args must be a list, got %s", ty.FriendlyName())
	}

	var tokens []string
	i := 0
	for it := val.ElementIterator(); it.Next(); i++ {
		_, el := it.Element()
		if el.IsNull() {
			return nil, fmt.Errorf("args[%d] must not be null", i)
		}
		str, err := convert.Convert(el, cty.String)
		if err != nil {
			return nil, fmt.Errorf("args[%d]: %w", i, err)
		}
		tokens = append(tokens, str.AsString())
	}
	return tokens, nil
}
