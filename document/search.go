package document

import (
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Search evaluates a JMESPath expression against a document tree. The result
// is made of plain Go values as produced by ToInterface.
func Search(expression string, v Value) (interface{}, error) {
	jp, err := jmespath.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid search expression %q, %w", expression, err)
	}

	result, err := jp.Search(ToInterface(v))
	if err != nil {
		return nil, fmt.Errorf("search %q failed, %w", expression, err)
	}
	return result, nil
}
