package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fiberscope/fiberscope/buildtype"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a renderer descriptor's build type",
	Long: `Classify guesses whether a renderer was built in a development or
production configuration from its descriptor: version string, bundle-type
flag, and the stringified source of its well-known functions.

The verdict is advisory. When the descriptor gives no usable signal the
classifier answers "production".

Examples:
  # A dev bundle of the modern family
  fiberscope classify --version 18.2.0 --bundle-type 1

  # Production flag set, but check the fiber lookup source anyway
  fiberscope classify --version 18.2.0 --find-fiber-source 'function(a,b){return c(a,b)}'

  # Legacy family, root-render source read from a file
  fiberscope classify --mount --render-root-file render.js.txt`,
	RunE: runClassify,
}

var (
	classifyVersion          string
	classifyBundleType       int
	classifyFindFiberSource  string
	classifyFindFiberFile    string
	classifyMount            bool
	classifyRenderRootSource string
	classifyRenderRootFile   string
)

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(&classifyVersion, "version", "", "Renderer version string (marks the modern family)")
	classifyCmd.Flags().IntVar(&classifyBundleType, "bundle-type", 0, "Numeric bundle-type flag (positive means dev)")
	classifyCmd.Flags().StringVar(&classifyFindFiberSource, "find-fiber-source", "", "Stringified fiber lookup function")
	classifyCmd.Flags().StringVar(&classifyFindFiberFile, "find-fiber-file", "", "File holding the stringified fiber lookup function")
	classifyCmd.Flags().BoolVar(&classifyMount, "mount", false, "Renderer exposes the legacy mounting object")
	classifyCmd.Flags().StringVar(&classifyRenderRootSource, "render-root-source", "", "Stringified legacy root-render function")
	classifyCmd.Flags().StringVar(&classifyRenderRootFile, "render-root-file", "", "File holding the stringified root-render function")
}

func runClassify(cmd *cobra.Command, args []string) error {
	desc, err := descriptorFromFlags()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), buildtype.Classify(desc))
	return nil
}

// descriptorFromFlags assembles the descriptor the classify flags describe.
// File flags take precedence over their literal counterparts.
func descriptorFromFlags() (buildtype.Descriptor, error) {
	findFiber, err := sourceFlag(classifyFindFiberFile, classifyFindFiberSource)
	if err != nil {
		return buildtype.Descriptor{}, fmt.Errorf("fiber lookup source: %w", err)
	}
	renderRoot, err := sourceFlag(classifyRenderRootFile, classifyRenderRootSource)
	if err != nil {
		return buildtype.Descriptor{}, fmt.Errorf("root-render source: %w", err)
	}

	return buildtype.Descriptor{
		Version:          classifyVersion,
		BundleType:       classifyBundleType,
		FindFiberSource:  findFiber,
		HasMount:         classifyMount || renderRoot != "",
		RenderRootSource: renderRoot,
	}, nil
}

func sourceFlag(file, literal string) (string, error) {
	if file == "" {
		return literal, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), nil
}
