package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/linkgroup"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
)

// newGroupsCmd creates the groups command. It resolves the schema's
// component links into groups under the selected policy and prints one
// group per line.
func newGroupsCmd() *cobra.Command {
	var policyStr string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "groups [file]",
		Short: "Resolve component link groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schema.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read schema: %w", err)
			}

			if policyStr == "" {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				policyStr = cfg.Links.Policy
			}
			policy, err := linkgroup.ParsePolicy(policyStr)
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(s.Components))
			names := make(map[string]string, len(s.Components))
			for _, c := range s.Components {
				ids = append(ids, c.ID)
				names[c.ID] = c.Name
			}
			groups := linkgroup.Groups(ids, s.Links, policy)

			if jsonOut {
				return writeJSONOutput(groups, "")
			}

			printInfo("Policy: %s", StyleHighlight.Render(policy.String()))
			for i, group := range groups {
				labels := make([]string, len(group))
				for j, id := range group {
					label := id
					if name := names[id]; name != "" {
						label = name + " " + StyleDim.Render("("+id+")")
					}
					labels[j] = label
				}
				if len(group) > 1 {
					fmt.Printf("  %d. %s\n", i+1, strings.Join(labels, StyleDim.Render(" · ")))
				} else {
					fmt.Printf("  %d. %s\n", i+1, StyleDim.Render(labels[0]))
				}
			}
			printDetail("%d groups, %d links", len(groups), len(s.Links))
			return nil
		},
	}

	cmd.Flags().StringVar(&policyStr, "policy", "", "link policy: transitive (default), one-to-one")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit groups as JSON")
	return cmd
}
