package itemgen

import "context"

// Generator produces review items from course material.
type Generator interface {
	// Generate produces a batch of validated items for the given input.
	// All configured validators run on every item before returning.
	Generate(ctx context.Context, input GenerateInput) ([]*Item, error)
}
