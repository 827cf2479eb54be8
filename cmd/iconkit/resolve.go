package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aeastr/iconkit/internal/icon"
	"github.com/Aeastr/iconkit/internal/resolve"
)

type resolveOptions struct {
	appearance string
	idiom      string
	jsonOutput bool
}

var resolveCmdRunner = runResolve

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <bundle-or-icon.json>",
		Short: "Project a document onto render contexts and print the concrete values",
		Long: `Resolve replaces every specializable property with the single value the given
appearance/idiom context selects. Without --appearance/--idiom it resolves the
contexts configured in iconkit.yaml, or all six when none are configured. A
context that fails to resolve (missing background fill) is reported without
blocking the others.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolveCmdRunner(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.appearance, "appearance", "", "Resolve a single appearance (light, dark, tinted)")
	cmd.Flags().StringVar(&opts.idiom, "idiom", "", "Resolve a single idiom (square, circle)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output resolved documents as JSON")

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootFlags, path string, opts *resolveOptions) error {
	log, err := newLogger(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(3)
	}

	bundle, settings, err := loadWorkspace(root, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading document: %v\n", err)
		os.Exit(2)
	}

	contexts, err := selectContexts(settings, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selecting contexts: %v\n", err)
		os.Exit(2)
	}

	log.With("bundle", bundle.Path).With("contexts", len(contexts)).Debug("resolving")

	failed, err := resolveAll(cmd, bundle.Document, contexts, opts)
	if err != nil {
		return err
	}
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

// resolveAll projects the document onto every context and renders the results.
// It returns how many contexts failed; one bad context must not block the
// others.
func resolveAll(cmd *cobra.Command, doc *icon.Document, contexts []resolve.Context, opts *resolveOptions) (int, error) {
	payloads := []resolvedJSONIcon{}
	failed := 0
	for _, ctx := range contexts {
		resolved, err := resolve.Icon(doc, ctx)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "Context %s failed: %v\n", ctx, err)
			continue
		}

		if opts.jsonOutput {
			payloads = append(payloads, resolvedToJSON(resolved))
		} else {
			renderResolvedText(cmd, resolved)
		}
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(payloads); err != nil {
			return failed, err
		}
	}

	return failed, nil
}

func selectContexts(settings settingsContexts, opts *resolveOptions) ([]resolve.Context, error) {
	if opts.appearance != "" || opts.idiom != "" {
		if opts.appearance == "" || opts.idiom == "" {
			return nil, fmt.Errorf("--appearance and --idiom must be given together")
		}
		ctx, err := resolve.ParseContext(opts.appearance, opts.idiom)
		if err != nil {
			return nil, err
		}
		return []resolve.Context{ctx}, nil
	}
	return settings.ResolveContexts()
}

// settingsContexts is the slice of config.Settings the resolve command needs.
type settingsContexts interface {
	ResolveContexts() ([]resolve.Context, error)
}

func renderResolvedText(cmd *cobra.Command, resolved *resolve.ResolvedIcon) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Context: %s\n", resolved.Context)
	fmt.Fprintf(out, "Background: %s\n", resolved.Fill.String())

	for gi, group := range resolved.GroupsInPaintOrder() {
		fmt.Fprintf(out, "Group %d (blur=%g, specular=%t, lighting=%s", gi, group.BlurMaterial, group.Specular, group.Lighting)
		if group.Hidden {
			fmt.Fprint(out, ", hidden")
		}
		fmt.Fprintln(out, ")")

		for _, layer := range group.LayersInPaintOrder() {
			fmt.Fprintf(out, "  %s image=%s opacity=%g blend=%s scale=%g translation=(%g, %g)",
				layer.Name, layer.ImageName, layer.Opacity, layer.BlendMode,
				layer.Position.Scale, layer.Position.Translation.X, layer.Position.Translation.Y)
			if layer.Fill != nil {
				fmt.Fprintf(out, " fill=%s", layer.Fill.String())
			}
			if layer.Hidden {
				fmt.Fprint(out, " (hidden)")
			}
			fmt.Fprintln(out)
		}
	}
	fmt.Fprintln(out)
}

type resolvedJSONLayer struct {
	Name        string     `json:"name,omitempty"`
	ImageName   string     `json:"image_name"`
	Scale       float64    `json:"scale"`
	Translation [2]float64 `json:"translation"`
	Fill        string     `json:"fill,omitempty"`
	Opacity     float64    `json:"opacity"`
	BlendMode   string     `json:"blend_mode"`
	Hidden      bool       `json:"hidden"`
}

type resolvedJSONGroup struct {
	BlurMaterial float64             `json:"blur_material"`
	Specular     bool                `json:"specular"`
	Lighting     string              `json:"lighting"`
	Hidden       bool                `json:"hidden"`
	Layers       []resolvedJSONLayer `json:"layers"`
}

type resolvedJSONIcon struct {
	Appearance string              `json:"appearance"`
	Idiom      string              `json:"idiom"`
	Fill       string              `json:"fill"`
	Groups     []resolvedJSONGroup `json:"groups"`
}

func resolvedToJSON(resolved *resolve.ResolvedIcon) resolvedJSONIcon {
	payload := resolvedJSONIcon{
		Appearance: string(resolved.Context.Appearance),
		Idiom:      string(resolved.Context.Idiom),
		Fill:       resolved.Fill.String(),
		Groups:     make([]resolvedJSONGroup, len(resolved.Groups)),
	}

	for gi, group := range resolved.Groups {
		jsonGroup := resolvedJSONGroup{
			BlurMaterial: group.BlurMaterial,
			Specular:     group.Specular,
			Lighting:     string(group.Lighting),
			Hidden:       group.Hidden,
			Layers:       make([]resolvedJSONLayer, len(group.Layers)),
		}
		for li, layer := range group.Layers {
			jsonLayer := resolvedJSONLayer{
				Name:        layer.Name,
				ImageName:   layer.ImageName,
				Scale:       layer.Position.Scale,
				Translation: [2]float64{layer.Position.Translation.X, layer.Position.Translation.Y},
				Opacity:     layer.Opacity,
				BlendMode:   string(layer.BlendMode),
				Hidden:      layer.Hidden,
			}
			if layer.Fill != nil {
				jsonLayer.Fill = layer.Fill.String()
			}
			jsonGroup.Layers[li] = jsonLayer
		}
		payload.Groups[gi] = jsonGroup
	}

	return payload
}
