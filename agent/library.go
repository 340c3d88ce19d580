package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library answers the function calls of a model.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

type Function interface {
	// Declare this function
	Declaration() *genai.FunctionDeclaration
	// Call this function
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary dispatches calls to the function of the same name.
func NewLibrary[T Function](functions []T) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, e := range functions {
			if e.Declaration().Name == call.Name {
				return e.Call(ctx, call.ID, call.Args)
			}
		}
		return errorResponse(call.ID, call.Name, fmt.Errorf("unknown function %s", call.Name))
	}
}

func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, e := range functions {
		result = append(result, e.Declaration())
	}
	return result
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}
