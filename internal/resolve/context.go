package resolve

import (
	"fmt"

	"github.com/Aeastr/iconkit/internal/icon"
)

// Context is the pair of axes a document is resolved against.
type Context struct {
	Appearance icon.Appearance
	Idiom      icon.Idiom
}

func (c Context) String() string {
	return fmt.Sprintf("%s/%s", c.Appearance, c.Idiom)
}

// AllContexts returns every appearance/idiom combination in a stable order.
func AllContexts() []Context {
	contexts := make([]Context, 0, len(icon.Appearances())*len(icon.Idioms()))
	for _, appearance := range icon.Appearances() {
		for _, idiom := range icon.Idioms() {
			contexts = append(contexts, Context{Appearance: appearance, Idiom: idiom})
		}
	}
	return contexts
}

// ParseContext builds a Context from wire tokens.
func ParseContext(appearance, idiom string) (Context, error) {
	parsedAppearance, err := icon.ParseAppearance(appearance)
	if err != nil {
		return Context{}, err
	}
	parsedIdiom, err := icon.ParseIdiom(idiom)
	if err != nil {
		return Context{}, err
	}
	return Context{Appearance: parsedAppearance, Idiom: parsedIdiom}, nil
}
