package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/exdir/exdir"
)

func newAttrsCommand(env *cliEnv) *cobra.Command {
	var (
		set    []string
		remove []string
	)

	cmd := &cobra.Command{
		Use:   "attrs <object-dir>",
		Short: "Print or edit the attributes of an exdir object",
		Long: `Print or edit the attributes of an exdir object.

Without flags the attributes are printed as YAML. --set key=value parses
value as a YAML scalar or flow collection, so --set rate=30000 stores an
integer and --set 'gains=[1.5, 2]' stores a list.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := exdir.OpenObject(args[0], env.options()...)
			if err != nil {
				return err
			}

			if len(set) > 0 || len(remove) > 0 {
				for _, kv := range set {
					key, value, err := parseAssignment(kv)
					if err != nil {
						return err
					}
					obj.SetAttr(key, value)
				}
				for _, key := range remove {
					obj.DeleteAttr(key)
				}
				if err := obj.WriteAttrs(); err != nil {
					return err
				}
			}

			if !obj.HasAttrs() {
				return nil
			}
			enc := yaml.NewEncoder(env.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(obj.Attrs()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringArrayVar(&set, "set", nil, "Set an attribute (key=value). Repeatable.")
	cmd.Flags().StringArrayVar(&remove, "delete", nil, "Delete an attribute. Repeatable.")
	return cmd
}

// parseAssignment splits key=value and decodes value as YAML.
func parseAssignment(kv string) (string, any, error) {
	key, raw, ok := strings.Cut(kv, "=")
	if !ok || key == "" {
		return "", nil, fmt.Errorf("invalid attribute %q: expected key=value", kv)
	}
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return "", nil, fmt.Errorf("invalid value for %q: %w", key, err)
	}
	return key, value, nil
}
