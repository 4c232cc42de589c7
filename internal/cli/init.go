package cli

import (
	"fmt"
	"path/filepath"

	"github.com/morozRed/powerdex/internal/fileutil"
	"github.com/spf13/cobra"
)

const starterYAML = `# powerdex configuration. POWERDEX_* environment variables and command
# flags override these values.
input_path: .
output_path: output

# Top level categories listed in the root index. Empty writes every
# category that has power sets.
power_categories: []

# Power sets removed before linking. Glob rules on the full set name;
# a leading ! re-includes a set an earlier rule removed.
filter_powersets: []

# Categories shared by every archetype.
global_categories: []

output_style: pretty
output_format: json
issue: ""
source: ""
base_json_url: ""
log_level: info

# Rewrite icon names into asset URLs. {icon} is the lower cased icon name
# with ext, {md5} the first byte of its MD5 in hex.
# assets:
#   base_asset_url: https://cdn.example.com/
#   ext: .png
#   archetype_icon_format: "archetypes/{icon}"
#   powers_icon_format: "powers/{md5}/{icon}"
`

const starterHCL = `# powerdex configuration. POWERDEX_* environment variables and command
# flags override these values.
input_path  = "."
output_path = "output"

power_categories  = []
filter_powersets  = []
global_categories = []

output_style  = "pretty"
output_format = "json"
log_level     = "info"

# assets {
#   base_asset_url        = "https://cdn.example.com/"
#   ext                   = ".png"
#   archetype_icon_format = "archetypes/{icon}"
#   powers_icon_format    = "powers/{md5}/{icon}"
# }
`

func RunInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	useHCL, err := OptionalBoolFlag(cmd, "hcl")
	if err != nil {
		return usageError(err)
	}

	name, content := "powerdex.yaml", starterYAML
	if useHCL {
		name, content = "powerdex.hcl", starterHCL
	}
	path := filepath.Join(dir, name)

	written, err := fileutil.WriteIfMissing(path, []byte(content), 0644)
	if err != nil {
		return failure(fmt.Errorf("failed to write %s: %w", path, err))
	}
	if !written {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, left unchanged\n", path)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
