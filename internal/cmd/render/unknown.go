package render

import (
	"fmt"
	"strings"

	"github.com/open-cli-collective/mobiledoc-cli/internal/config"
	"github.com/open-cli-collective/mobiledoc-cli/pkg/mobiledoc"
)

// unknownCardHandler returns the handler for an unknown card policy. The fail
// policy returns nil so the renderer's default handler applies.
func unknownCardHandler(policy string) (mobiledoc.CardRenderFunc, error) {
	switch policy {
	case config.UnknownCardsFail, "":
		return nil, nil
	case config.UnknownCardsSkip:
		return func(*mobiledoc.RenderContext) (any, error) {
			return nil, nil
		}, nil
	case config.UnknownCardsComment:
		return func(ctx *mobiledoc.RenderContext) (any, error) {
			// "--" is not allowed inside an HTML comment
			name := strings.ReplaceAll(ctx.Env.Name, "--", "- -")
			return fmt.Sprintf("<!-- unknown card: %s -->", name), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown card policy %q (valid: %s)", policy, strings.Join(config.ValidUnknownCardPolicies(), ", "))
	}
}
