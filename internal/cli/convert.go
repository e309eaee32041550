package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schema-context/internal/app"
)

type convertOptions struct {
	Schema    string
	Namespace string
	NsURI     string
	Output    string
}

func newConvertCommand() *cobra.Command {
	opts := convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a single schema document to a context document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Schema, "schema", "", "Schema document path")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "Namespace prefix for generated @id values")
	cmd.Flags().StringVar(&opts.NsURI, "nsuri", "", "Namespace URI the prefix expands to")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output context file path")
	_ = viper.BindPFlag("schema", cmd.Flags().Lookup("schema"))
	_ = viper.BindPFlag("namespace", cmd.Flags().Lookup("namespace"))
	_ = viper.BindPFlag("nsuri", cmd.Flags().Lookup("nsuri"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runConvert(ctx context.Context, cmd *cobra.Command, opts convertOptions) error {
	service := app.NewService()
	result, err := service.Convert(ctx, app.ConvertRequest{
		SchemaPath:   resolveString(cmd, opts.Schema, "schema", "schema"),
		Namespace:    resolveString(cmd, opts.Namespace, "namespace", "namespace"),
		NamespaceURI: resolveString(cmd, opts.NsURI, "nsuri", "nsuri"),
		OutputPath:   resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("converted: %s\n", result.OutputPath)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
